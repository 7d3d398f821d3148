package safejson

// safe-json is a combinator based validation library for untrusted data.
// Copyright (C) 2026 Ryan Haskell

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

import "time"

// Time builds a validator matching time.Time values and strings parseable
// with the given layout.
func Time(layout string) Validator[time.Time] {
	return Validator[time.Time]{
		classify: func(val any) outcome[time.Time] {
			if t, ok := val.(time.Time); ok {
				return pass(t)
			}
			if name := typeNameOf(val); name != "string" {
				return fail[time.Time](&Expectation{Expected: "timestamp", Actual: name})
			}
			t, err := time.Parse(layout, indirect(val).String())
			if err != nil {
				return fail[time.Time](&Expectation{Expected: "timestamp", Actual: "string"})
			}
			return pass(t)
		},
	}
}
