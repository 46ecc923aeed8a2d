/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"io"

	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/ast"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/evaluator"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/tokenizer"
	"github.com/rs/zerolog"
)

const Usage = `usage:
    <program>         run a program, variables persist between lines
    .tokens <program> print the tokens of a program
    .ast <program>    print the syntax tree of a program
    .symbols          print the variables defined so far
    help              print this message
    exit              leave the repl
`

// Session evaluates REPL lines against a single symbol table
type Session struct {
	Out    io.Writer
	Writer OutputWriter
	Log    zerolog.Logger

	eval *evaluator.Evaluator
}

func NewSession(out io.Writer, output string, log zerolog.Logger) *Session {
	return &Session{
		Out:    out,
		Writer: NewOutputWriter(out, output),
		Log:    log,
		eval:   evaluator.New(out, log),
	}
}

func (s *Session) Symbols() evaluator.SymbolMap {
	return s.eval.Symbols
}

// Execute handles one line of input. It reports whether the session should
// end. Errors from the program are returned with the offending source so
// callers can render them with lang.FormatError.
func (s *Session) Execute(line string) (bool, error) {
	cmd := ParseREPLCommand(line)

	switch cmd.Name {
	case CommandExit:
		return true, nil
	case CommandHelp:
		_, err := fmt.Fprint(s.Out, Usage)
		return false, err
	case CommandSymbols:
		return false, s.Writer.Write(SymbolTable(s.eval.Symbols))
	case CommandTokens:
		tokens, err := tokenizer.New(s.Log).Tokenize(cmd.Arg)
		if err != nil {
			return false, err
		}
		return false, s.Writer.Write(TokenTable(tokens))
	case CommandAST:
		program, err := lang.PrepareWithLogger(cmd.Arg, s.Log)
		if err != nil {
			return false, err
		}
		_, err = fmt.Fprint(s.Out, ast.ASTToString(program))
		return false, err
	}

	if cmd.Arg == "" {
		return false, nil
	}

	program, err := lang.PrepareWithLogger(cmd.Arg, s.Log)
	if err != nil {
		return false, err
	}

	s.eval.Last = nil
	if err := s.eval.Evaluate(program); err != nil {
		return false, err
	}

	// Echo the value of a bare expression, like most interactive shells
	if s.eval.Last != nil {
		_, err = fmt.Fprintln(s.Out, s.eval.Last.String())
	}
	return false, err
}
