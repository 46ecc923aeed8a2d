/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package types

import (
	"strconv"
	"strings"
)

type Kind int

const (
	Unknown Kind = iota

	Boolean
	String
	Int
	Float
)

func (k Kind) String() string {
	switch k {
	case Boolean:
		return "boolean"
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	}
	return "unknown"
}

type Value interface {
	Kind() Kind
	String() string
}

type (
	unknownVal struct{}
	booleanVal bool
	stringVal  string
	intVal     int64
	floatVal   float64
)

func (unknownVal) Kind() Kind { return Unknown }
func (booleanVal) Kind() Kind { return Boolean }
func (stringVal) Kind() Kind  { return String }
func (intVal) Kind() Kind     { return Int }
func (floatVal) Kind() Kind   { return Float }

func (unknownVal) String() string   { return "unknown" }
func (b booleanVal) String() string { return strconv.FormatBool(bool(b)) }
func (s stringVal) String() string  { return string(s) }
func (i intVal) String() string     { return strconv.FormatInt(int64(i), 10) }

// String renders floats so they never read as integers: 2.0 prints as "2.0".
func (f floatVal) String() string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

func MakeUnknown() Value        { return unknownVal{} }
func MakeBoolean(b bool) Value  { return booleanVal(b) }
func MakeString(s string) Value { return stringVal(s) }
func MakeInt(i int64) Value     { return intVal(i) }
func MakeFloat(f float64) Value { return floatVal(f) }

// IsNumeric reports whether v is an int or a float.
func IsNumeric(v Value) bool {
	if v == nil {
		return false
	}
	return v.Kind() == Int || v.Kind() == Float
}

func IntVal(v Value) int64 {
	switch x := v.(type) {
	case intVal:
		return int64(x)
	default:
		panic("Not an int")
	}
}

func FloatVal(v Value) float64 {
	switch x := v.(type) {
	case floatVal:
		return float64(x)
	case intVal:
		return float64(x)
	default:
		panic("Not a number")
	}
}

func BoolVal(v Value) bool {
	switch x := v.(type) {
	case booleanVal:
		return bool(x)
	default:
		panic("Not a boolean")
	}
}

func StringVal(v Value) string {
	switch x := v.(type) {
	case stringVal:
		return string(x)
	default:
		panic("Not a string")
	}
}

// Equal reports whether a and b hold the same value. Ints and floats compare
// numerically, values of unrelated kinds are never equal.
func Equal(a, b Value) bool {
	if IsNumeric(a) && IsNumeric(b) {
		a, b = upcast(a, b)
		return a == b
	}
	if a == nil || b == nil {
		return a == b
	}
	return a.Kind() == b.Kind() && a == b
}

// upcast promotes both operands to float when either of them is a float.
func upcast(a, b Value) (Value, Value) {
	if a.Kind() == Float || b.Kind() == Float {
		return MakeFloat(FloatVal(a)), MakeFloat(FloatVal(b))
	}
	return a, b
}
