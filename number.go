package safejson

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

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

type number interface {
	constraints.Integer | constraints.Float
}

// Number matches any numeric value and yields it as a float64. NaN and the
// infinities are numbers; numeric strings are not (no coercion).
var Number = NumberOf[float64]()

// NumberOf builds a validator that matches any numeric value and yields it
// converted to T, following Go conversion rules.
func NumberOf[T number]() Validator[T] {
	target := reflect.TypeOf(*new(T))
	return Validator[T]{
		classify: func(val any) outcome[T] {
			if name := typeNameOf(val); name != "number" {
				return fail[T](&Expectation{Expected: "number", Actual: name})
			}
			return pass(indirect(val).Convert(target).Interface().(T))
		},
	}
}
