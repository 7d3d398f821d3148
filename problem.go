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

import "fmt"

// A Problem describes why a validation attempt failed. It is one of
// *Expectation, *FieldProblem or *IndexProblem; the two wrapping variants
// record the path from the root of the input down to the mismatch, one
// level per enclosing field or element. Error renders the whole path as
// display text.
type Problem interface {
	error
	problem()
}

// Expectation is a plain type mismatch: the type name expected at the point
// of failure versus the type name observed there.
type Expectation struct {
	Expected string
	Actual   string
}

func (p *Expectation) Error() string {
	return fmt.Sprintf("Expected %s, got %s.", p.Expected, p.Actual)
}

func (p *Expectation) problem() {}

// FieldProblem wraps the Problem found while checking a named object field.
type FieldProblem struct {
	Field string
	Inner Problem
}

func (p *FieldProblem) Error() string {
	return fmt.Sprintf("Problem with field %q: %s", p.Field, p.Inner.Error())
}

func (p *FieldProblem) Unwrap() error { return p.Inner }

func (p *FieldProblem) problem() {}

// IndexProblem wraps the Problem found while checking an array element.
type IndexProblem struct {
	Index int
	Inner Problem
}

func (p *IndexProblem) Error() string {
	return fmt.Sprintf("Problem at index \"%d\": %s", p.Index, p.Inner.Error())
}

func (p *IndexProblem) Unwrap() error { return p.Inner }

func (p *IndexProblem) problem() {}
