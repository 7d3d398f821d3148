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
	"testing"

	sj "github.com/ryan-haskell/safe-json"
	"github.com/stretchr/testify/assert"
)

func TestOptionalNeverFails(t *testing.T) {
	assert := assert.New(t)

	v := sj.Optional(sj.Number)

	for _, input := range []any{123, nil, sj.Undefined, true, "str", map[string]any{}, []any{1}} {
		assert.True(v.WorksWith(input))
	}
}

func TestOptionalValue(t *testing.T) {
	assert := assert.New(t)

	v := sj.Optional(sj.Number)

	out := v.Run(123,
		func(n *float64) any { return n },
		func(p sj.Problem) any { return p })
	if n, ok := out.(*float64); assert.True(ok) && assert.NotNil(n) {
		assert.Equal(float64(123), *n)
	}

	out = v.Run("garbage",
		func(n *float64) any { return n },
		func(p sj.Problem) any { return p })
	if n, ok := out.(*float64); assert.True(ok) {
		assert.Nil(n)
	}
}

func TestOptionalSwallowsNestedProblems(t *testing.T) {
	assert := assert.New(t)

	// A present-but-malformed value is indistinguishable from an absent one.
	v := sj.Optional(sj.Object(
		sj.Field("id", sj.String),
	))

	assert.True(v.WorksWith(map[string]any{"id": 42}))
	assert.True(v.WorksWith(sj.Undefined))

	out := v.Run(map[string]any{"id": 42},
		func(fields *map[string]any) any { return fields },
		func(p sj.Problem) any { return p })
	if fields, ok := out.(*map[string]any); assert.True(ok) {
		assert.Nil(fields)
	}
}
