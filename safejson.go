// Package safejson validates dynamically typed data against a declared
// shape, yielding either a typed value or a Problem that records where in
// the structure validation failed and why.
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

import "reflect"

// A Validator classifies an arbitrary input value as a T. It holds a single
// classify function fixed at construction time; validators are immutable,
// reusable and safe to share across goroutines.
type Validator[T any] struct {
	classify func(val any) outcome[T]
}

// outcome is the result of one classification attempt. Exactly one of value
// and problem is meaningful, selected by ok.
type outcome[T any] struct {
	ok      bool
	value   T
	problem Problem
}

func pass[T any](val T) outcome[T] {
	return outcome[T]{ok: true, value: val}
}

func fail[T any](p Problem) outcome[T] {
	return outcome[T]{problem: p}
}

// WorksWith reports whether data matches the validator's shape. The Problem
// from a failed attempt is discarded; use Run to observe it.
func (v Validator[T]) WorksWith(data any) bool {
	return v.classify(data).ok
}

// Run classifies data and invokes exactly one of the two handlers,
// synchronously: onPass with the typed value, or onFail with the Problem.
// The chosen handler's return value is returned.
func (v Validator[T]) Run(data any, onPass func(val T) any, onFail func(p Problem) any) any {
	res := v.classify(data)
	if res.ok {
		return onPass(res.value)
	}
	return onFail(res.problem)
}

type undefined struct{}

// Undefined stands in for a value that was absent from its enclosing
// object. Its type name is "undefined"; no validator except Optional
// accepts it.
var Undefined undefined

// typeNameOf reports the type name used for dispatch and for Expectation
// problems: "array" for sequence kinds, "null" for nil (including nil
// pointers), otherwise the runtime classification of the value.
func typeNameOf(val any) string {
	if val == nil {
		return "null"
	}
	if _, ok := val.(undefined); ok {
		return "undefined"
	}
	vo := reflect.ValueOf(val)
	for vo.Kind() == reflect.Pointer {
		if vo.IsNil() {
			return "null"
		}
		vo = vo.Elem()
	}
	switch vo.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return vo.Kind().String()
	}
}

// indirect peels pointers off val so checks see the underlying value. Only
// called after typeNameOf has ruled out nil pointers.
func indirect(val any) reflect.Value {
	vo := reflect.ValueOf(val)
	for vo.Kind() == reflect.Pointer {
		vo = vo.Elem()
	}
	return vo
}
