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

// Null matches the null value only. Nil pointers count as null; Undefined
// and the zero values of other types do not.
var Null = Validator[any]{
	classify: func(val any) outcome[any] {
		if name := typeNameOf(val); name != "null" {
			return fail[any](&Expectation{Expected: "null", Actual: name})
		}
		return pass[any](nil)
	},
}
