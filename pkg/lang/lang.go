/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package lang ties the tokenizer, parser and evaluator together.
package lang

import (
	"errors"
	"io"

	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/ast"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/evaluator"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/parser"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/tokenizer"
	"github.com/rs/zerolog"
)

type sourceError interface {
	FormatError(input string) string
}

// FormatError renders err against source with the offending position
// underlined. Errors without a position fall back to their message.
func FormatError(source string, err error) string {
	var located sourceError
	if errors.As(err, &located) {
		return located.FormatError(source)
	}
	return err.Error() + "\n"
}

// Prepare tokenizes and parses source into a program tree.
func Prepare(source string) (*ast.ProgramNode, error) {
	return PrepareWithLogger(source, zerolog.Nop())
}

func PrepareWithLogger(source string, log zerolog.Logger) (*ast.ProgramNode, error) {
	tokens, err := tokenizer.New(log).Tokenize(source)
	if err != nil {
		return nil, err
	}

	return parser.New(tokens, log).Parse()
}

// Run prepares source and evaluates it, writing printed values to out.
// Assignments are recorded in symbols when it is non-nil.
func Run(source string, out io.Writer, symbols evaluator.SymbolMap) error {
	program, err := Prepare(source)
	if err != nil {
		return err
	}

	e := evaluator.New(out, zerolog.Nop())
	if symbols != nil {
		e.Symbols = symbols
	}

	return e.Evaluate(program)
}
