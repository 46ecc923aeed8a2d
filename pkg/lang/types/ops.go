/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package types

import (
	"math"

	"github.com/pkg/errors"
)

var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrIntegerOverflow = errors.New("integer overflow")
)

// UnaryOp applies a prefix operator ("negate" or "not") to operand.
func UnaryOp(operator string, operand Value) (Value, error) {
	switch operator {
	case "negate":
		switch x := operand.(type) {
		case intVal:
			if x == math.MinInt64 {
				return nil, errors.Wrapf(ErrIntegerOverflow, "-(%d)", int64(x))
			}
			return MakeInt(-int64(x)), nil
		case floatVal:
			return MakeFloat(-float64(x)), nil
		}
		return nil, errors.Errorf("operator '-' expects a numeric operand, got %s", kindOf(operand))
	case "not":
		if x, ok := operand.(booleanVal); ok {
			return MakeBoolean(!bool(x)), nil
		}
		return nil, errors.Errorf("operator '!' expects a boolean operand, got %s", kindOf(operand))
	}

	return nil, errors.Errorf("unknown unary operator %s", operator)
}

// BinaryOp applies an infix operator to already evaluated operands.
func BinaryOp(left Value, operator string, right Value) (Value, error) {
	switch operator {
	case "==":
		return MakeBoolean(Equal(left, right)), nil
	case "!=":
		return MakeBoolean(!Equal(left, right)), nil
	case "&&", "||":
		l, lok := left.(booleanVal)
		r, rok := right.(booleanVal)
		if !lok || !rok {
			return nil, errors.Errorf("operator '%s' expects boolean operands, got %s and %s", operator, kindOf(left), kindOf(right))
		}
		if operator == "&&" {
			return MakeBoolean(bool(l) && bool(r)), nil
		}
		return MakeBoolean(bool(l) || bool(r)), nil
	}

	if !IsNumeric(left) || !IsNumeric(right) {
		return nil, errors.Errorf("operator '%s' expects numeric operands, got %s and %s", operator, kindOf(left), kindOf(right))
	}

	// True division, the result is always a float
	if operator == "/" {
		divisor := FloatVal(right)
		if divisor == 0 {
			return nil, ErrDivisionByZero
		}
		return MakeFloat(FloatVal(left) / divisor), nil
	}

	left, right = upcast(left, right)

	switch l := left.(type) {
	case intVal:
		r := right.(intVal)
		switch operator {
		case "+":
			sum := l + r
			if (r > 0 && sum < l) || (r < 0 && sum > l) {
				return nil, overflow(l, operator, r)
			}
			return MakeInt(int64(sum)), nil
		case "-":
			diff := l - r
			if (r < 0 && diff < l) || (r > 0 && diff > l) {
				return nil, overflow(l, operator, r)
			}
			return MakeInt(int64(diff)), nil
		case "*":
			product := l * r
			if l != 0 && (product/l != r || (l == -1 && r == math.MinInt64)) {
				return nil, overflow(l, operator, r)
			}
			return MakeInt(int64(product)), nil
		case "<":
			return MakeBoolean(l < r), nil
		case ">":
			return MakeBoolean(l > r), nil
		case "<=":
			return MakeBoolean(l <= r), nil
		case ">=":
			return MakeBoolean(l >= r), nil
		}
	case floatVal:
		r := right.(floatVal)
		switch operator {
		case "+":
			return MakeFloat(float64(l + r)), nil
		case "-":
			return MakeFloat(float64(l - r)), nil
		case "*":
			return MakeFloat(float64(l * r)), nil
		case "<":
			return MakeBoolean(l < r), nil
		case ">":
			return MakeBoolean(l > r), nil
		case "<=":
			return MakeBoolean(l <= r), nil
		case ">=":
			return MakeBoolean(l >= r), nil
		}
	}

	return nil, errors.Errorf("unknown binary operator %s", operator)
}

func overflow(l intVal, operator string, r intVal) error {
	return errors.Wrapf(ErrIntegerOverflow, "%d %s %d", int64(l), operator, int64(r))
}

func kindOf(v Value) string {
	if v == nil {
		return Unknown.String()
	}
	return v.Kind().String()
}
