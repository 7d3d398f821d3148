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

// Array builds a validator matching a sequence whose every element
// satisfies elem. Elements are checked in index order and the first failure
// stops the whole check, wrapped as an IndexProblem. On success the output
// is a fresh slice of the validated values in input order; an empty input
// passes with an empty slice.
func Array[T any](elem Validator[T]) Validator[[]T] {
	return Validator[[]T]{
		classify: func(val any) outcome[[]T] {
			if name := typeNameOf(val); name != "array" {
				return fail[[]T](&Expectation{Expected: "array", Actual: name})
			}
			vo := indirect(val)
			out := make([]T, 0, vo.Len())
			for i := 0; i < vo.Len(); i++ {
				res := elem.classify(vo.Index(i).Interface())
				if !res.ok {
					return fail[[]T](&IndexProblem{Index: i, Inner: res.problem})
				}
				out = append(out, res.value)
			}
			return pass(out)
		},
	}
}
