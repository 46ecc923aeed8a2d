/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"sort"

	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/common/parse"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/ast"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/evaluator"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/tokenizer"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/types"
	"github.com/pkg/errors"
)

type Token struct {
	Tag      string `json:"tag"`
	Position int    `json:"position"`
	Lexeme   string `json:"lexeme,omitempty"`
	Value    any    `json:"value,omitempty"`
}

type TokensResponse struct {
	Tokens []Token `json:"tokens"`
}

type ParseResponse struct {
	Sexp string `json:"sexp"`
	Tree string `json:"tree"`
}

type Symbol struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type RunResponse struct {
	Output  string   `json:"output"`
	Symbols []Symbol `json:"symbols"`
}

type ErrorResponse struct {
	Error    string `json:"error"`
	Kind     string `json:"kind"`
	Position *int   `json:"position,omitempty"`
}

func NewTokensResponse(tokens []tokenizer.Token) TokensResponse {
	resp := TokensResponse{Tokens: make([]Token, 0, len(tokens))}
	for _, tok := range tokens {
		resp.Tokens = append(resp.Tokens, Token{
			Tag:      string(tok.Tag),
			Position: tok.Position,
			Lexeme:   tok.Lexeme,
			Value:    jsonValue(tok.Value),
		})
	}
	return resp
}

func NewParseResponse(program *ast.ProgramNode) ParseResponse {
	return ParseResponse{
		Sexp: ast.Sexp(program),
		Tree: ast.ASTToString(program),
	}
}

func NewRunResponse(output string, symbols evaluator.SymbolMap) RunResponse {
	resp := RunResponse{Output: output, Symbols: []Symbol{}}
	for name, v := range symbols {
		resp.Symbols = append(resp.Symbols, Symbol{Name: name, Kind: v.Kind().String(), Value: v.String()})
	}
	sort.Slice(resp.Symbols, func(i, j int) bool {
		return resp.Symbols[i].Name < resp.Symbols[j].Name
	})
	return resp
}

// NewErrorResponse classifies err by the stage that produced it
func NewErrorResponse(err error) ErrorResponse {
	resp := ErrorResponse{Error: err.Error(), Kind: "request"}

	var (
		lexicalError *parse.LexicalError
		syntaxError  *parse.SyntaxError
		runtimeError *evaluator.RuntimeError
	)

	switch {
	case errors.As(err, &lexicalError):
		pos := lexicalError.Position()
		resp.Kind, resp.Position = "lexical", &pos
	case errors.As(err, &syntaxError):
		pos := syntaxError.Position()
		resp.Kind, resp.Position = "syntax", &pos
	case errors.As(err, &runtimeError):
		pos := runtimeError.Position
		resp.Kind, resp.Position = "runtime", &pos
	case errors.Is(err, ErrTooLarge), errors.Is(err, ErrTooDeep):
		resp.Kind = "limit"
	}

	return resp
}

func jsonValue(v types.Value) any {
	if v == nil {
		return nil
	}
	switch v.Kind() {
	case types.Int:
		return types.IntVal(v)
	case types.Float:
		return types.FloatVal(v)
	case types.Boolean:
		return types.BoolVal(v)
	}
	return v.String()
}
