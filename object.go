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

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// An ObjectField pairs a field name with the validator for that field's
// value. Build values with Field; the order fields are passed to Object is
// the order they are checked.
type ObjectField struct {
	name  string
	check func(val any) outcome[any]
}

// Field declares that an object field called name must satisfy v. The typed
// result is erased so validators of different shapes can sit side by side
// in one Object.
func Field[T any](name string, v Validator[T]) ObjectField {
	return ObjectField{
		name: name,
		check: func(val any) outcome[any] {
			res := v.classify(val)
			if !res.ok {
				return fail[any](res.problem)
			}
			return pass[any](res.value)
		},
	}
}

// Object builds a validator for a keyed object shape. The input must be a
// string-keyed map or a struct; arrays and everything else fail with an
// "object" Expectation. Fields are checked in declaration order against the
// input's values, with Undefined standing in for absent keys, and the first
// failing field stops the whole check, wrapped as a FieldProblem. On success
// the output map holds exactly the declared fields mapped to their validated
// values; undeclared input keys are dropped.
func Object(fields ...ObjectField) Validator[map[string]any] {
	declared := make([]ObjectField, len(fields))
	copy(declared, fields)

	return Validator[map[string]any]{
		classify: func(val any) outcome[map[string]any] {
			if name := typeNameOf(val); name != "object" {
				return fail[map[string]any](&Expectation{Expected: "object", Actual: name})
			}
			out := make(map[string]any, len(declared))
			for _, f := range declared {
				res := f.check(extract(val, f.name))
				if !res.ok {
					return fail[map[string]any](&FieldProblem{Field: f.name, Inner: res.problem})
				}
				out[f.name] = res.value
			}
			return pass(out)
		},
	}
}

// extract looks up the named field on a map or struct input, returning
// Undefined when the key is absent. A key present with an explicit nil
// value is null, not undefined.
func extract(val any, name string) any {
	vo := indirect(val)
	switch vo.Kind() {
	case reflect.Map:
		key := reflect.ValueOf(name)
		if !key.Type().ConvertibleTo(vo.Type().Key()) {
			return Undefined
		}
		v := vo.MapIndex(key.Convert(vo.Type().Key()))
		if !v.IsValid() {
			return Undefined
		}
		return v.Interface()
	case reflect.Struct:
		v := vo.FieldByName(name)
		if !v.IsValid() || !v.CanInterface() {
			return Undefined
		}
		return v.Interface()
	}
	return Undefined
}

// DecodeJSON unmarshals raw JSON into the dynamically typed value tree that
// validators consume: bool, float64, string, nil, []any and map[string]any.
func DecodeJSON(data []byte) (any, error) {
	var val any
	if err := json.Unmarshal(data, &val); err != nil {
		return nil, fmt.Errorf("unmarshalling JSON value: %w", err)
	}
	return val, nil
}
