/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package evaluator

import (
	"fmt"
	"io"

	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/common/parse"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/ast"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type SymbolMap map[string]types.Value

// RuntimeError is a failure while executing a program, located at the node
// being evaluated.
type RuntimeError struct {
	Position int
	Message  string
	cause    error
}

func (r *RuntimeError) Error() string {
	return fmt.Sprintf("Runtime error: %s at position %d", r.Message, r.Position)
}

func (r *RuntimeError) FormatError(input string) string {
	return parse.FormatAt("Runtime error found in program:\n", input, parse.At(r.Position, 1), r.Message)
}

func (r *RuntimeError) Cause() error  { return r.cause }
func (r *RuntimeError) Unwrap() error { return r.cause }

func runtimeError(node ast.Node, cause error) *RuntimeError {
	return &RuntimeError{Position: node.Pos(), Message: cause.Error(), cause: cause}
}

type Evaluator struct {
	Symbols SymbolMap
	Out     io.Writer
	Log     zerolog.Logger

	// Last holds the value of the most recent expression statement
	Last types.Value
}

func New(out io.Writer, log zerolog.Logger) *Evaluator {
	return &Evaluator{Symbols: make(SymbolMap), Out: out, Log: log}
}

// Evaluate runs the statements of program in order, stopping at the first
// error.
func (e *Evaluator) Evaluate(program *ast.ProgramNode) error {
	if e.Symbols == nil {
		e.Symbols = make(SymbolMap)
	}

	for _, statement := range program.Statements {
		if err := e.statement(statement); err != nil {
			return err
		}
	}

	return nil
}

func (e *Evaluator) statement(node ast.Node) error {
	switch n := node.(type) {
	case *ast.PrintNode:
		v, err := e.expression(n.Value)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(e.Out, v.String()); err != nil {
			return errors.Wrap(err, "unable to write output")
		}
	case *ast.AssignNode:
		target, ok := n.Target.(*ast.IdentifierNode)
		if !ok {
			return runtimeError(n, errors.Errorf("cannot assign to %s", n.Target.Tag()))
		}
		v, err := e.expression(n.Value)
		if err != nil {
			return err
		}
		e.Symbols[target.Name] = v
		e.Log.Trace().Str("name", target.Name).Str("value", v.String()).Msg("assign")
	default:
		v, err := e.expression(n)
		if err != nil {
			return err
		}
		e.Last = v
	}

	return nil
}

func (e *Evaluator) expression(node ast.Node) (types.Value, error) {
	switch n := node.(type) {
	case *ast.NumberNode:
		return n.Val, nil
	case *ast.BooleanNode:
		return n.Val, nil
	case *ast.IdentifierNode:
		v, ok := e.Symbols[n.Name]
		if !ok {
			return nil, runtimeError(n, errors.Errorf("undefined variable '%s'", n.Name))
		}
		return v, nil
	case *ast.UnaryOpNode:
		operand, err := e.expression(n.Operand)
		if err != nil {
			return nil, err
		}
		v, err := types.UnaryOp(string(n.Op), operand)
		if err != nil {
			return nil, runtimeError(n, err)
		}
		return v, nil
	case *ast.BinaryOpNode:
		return e.binary(n)
	}

	return nil, runtimeError(node, errors.Errorf("'%s' is not an expression", node.Tag()))
}

func (e *Evaluator) binary(n *ast.BinaryOpNode) (types.Value, error) {
	left, err := e.expression(n.Left)
	if err != nil {
		return nil, err
	}

	// && and || only evaluate the right side when it decides the result
	if n.Op == ast.BinaryAnd || n.Op == ast.BinaryOr {
		if left.Kind() != types.Boolean {
			return nil, runtimeError(n, errors.Errorf("operator '%s' expects boolean operands, got %s", n.Op, left.Kind()))
		}
		if b := types.BoolVal(left); (n.Op == ast.BinaryAnd && !b) || (n.Op == ast.BinaryOr && b) {
			return left, nil
		}
	}

	right, err := e.expression(n.Right)
	if err != nil {
		return nil, err
	}

	v, err := types.BinaryOp(left, string(n.Op), right)
	if err != nil {
		return nil, runtimeError(n, err)
	}
	return v, nil
}
