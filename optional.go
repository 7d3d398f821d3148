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

// Optional wraps inner so the resulting validator never fails. A value the
// inner validator accepts yields a pointer to it; anything else (absent,
// null, wrong type, malformed nested content) yields nil. The inner Problem
// is discarded, so a malformed value is indistinguishable from an absent
// one.
func Optional[T any](inner Validator[T]) Validator[*T] {
	return Validator[*T]{
		classify: func(val any) outcome[*T] {
			res := inner.classify(val)
			if !res.ok {
				return pass[*T](nil)
			}
			v := res.value
			return pass(&v)
		},
	}
}
