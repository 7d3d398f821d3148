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

import "github.com/google/uuid"

// UUID matches uuid.UUID values and their RFC 4122 string forms.
var UUID = Validator[uuid.UUID]{
	classify: func(val any) outcome[uuid.UUID] {
		if id, ok := val.(uuid.UUID); ok {
			return pass(id)
		}
		if name := typeNameOf(val); name != "string" {
			return fail[uuid.UUID](&Expectation{Expected: "uuid", Actual: name})
		}
		id, err := uuid.Parse(indirect(val).String())
		if err != nil {
			return fail[uuid.UUID](&Expectation{Expected: "uuid", Actual: "string"})
		}
		return pass(id)
	},
}
