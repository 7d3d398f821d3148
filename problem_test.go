package safejson_test

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

import (
	"errors"
	"testing"

	sj "github.com/ryan-haskell/safe-json"
	"github.com/stretchr/testify/assert"
)

func TestProblemRendering(t *testing.T) {
	assert := assert.New(t)

	exp := &sj.Expectation{Expected: "number", Actual: "string"}
	assert.Equal("Expected number, got string.", exp.Error())

	fp := &sj.FieldProblem{Field: "age", Inner: exp}
	assert.Equal(`Problem with field "age": Expected number, got string.`, fp.Error())

	ip := &sj.IndexProblem{Index: 2, Inner: fp}
	assert.Equal(`Problem at index "2": Problem with field "age": Expected number, got string.`, ip.Error())
}

func TestProblemPathFromNestedValidation(t *testing.T) {
	assert := assert.New(t)

	v := sj.Array(sj.Object(
		sj.Field("id", sj.String),
	))

	res := v.Run([]any{
		map[string]any{"id": "a"},
		map[string]any{"id": nil},
	},
		func(items []map[string]any) any { return items },
		func(p sj.Problem) any { return p.Error() })

	assert.Equal(`Problem at index "1": Problem with field "id": Expected string, got null.`, res)
}

func TestProblemUnwrapChain(t *testing.T) {
	assert := assert.New(t)

	var p sj.Problem = &sj.IndexProblem{
		Index: 1,
		Inner: &sj.FieldProblem{
			Field: "id",
			Inner: &sj.Expectation{Expected: "string", Actual: "null"},
		},
	}

	var exp *sj.Expectation
	if assert.True(errors.As(p, &exp)) {
		assert.Equal("string", exp.Expected)
		assert.Equal("null", exp.Actual)
	}
}
