/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package tokenizer

import (
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/common/parse"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/types"
)

// Tag is the lexical category of a Token. Operator and keyword tags are the
// symbol or keyword itself.
type Tag string

const (
	// TOK_EOF tags the sentinel token closing every token stream
	TOK_EOF Tag = ""

	TOK_NUMBER     Tag = "number"
	TOK_IDENTIFIER Tag = "identifier"
	TOK_BOOLEAN    Tag = "boolean"
	TOK_WHITESPACE Tag = "whitespace"
	TOK_ERROR      Tag = "error"

	// Keywords
	TOK_PRINT Tag = "print"
	TOK_TRUE  Tag = "true"
	TOK_FALSE Tag = "false"
	TOK_IF    Tag = "if"
	TOK_THEN  Tag = "then"
	TOK_AND   Tag = "and"
	TOK_OR    Tag = "or"

	// Punctuation
	TOK_PLUS      Tag = "+"
	TOK_MINUS     Tag = "-"
	TOK_STAR      Tag = "*"
	TOK_SLASH     Tag = "/"
	TOK_PAREN_L   Tag = "("
	TOK_PAREN_R   Tag = ")"
	TOK_SEMICOLON Tag = ";"

	// Expressions
	TOK_LESS_EQ    Tag = "<="
	TOK_LESS       Tag = "<"
	TOK_GREATER_EQ Tag = ">="
	TOK_GREATER    Tag = ">"
	TOK_EQ_EQ      Tag = "=="
	TOK_NOT_EQ     Tag = "!="
	TOK_BANG       Tag = "!"
	TOK_AND_AND    Tag = "&&"
	TOK_OR_OR      Tag = "||"
	TOK_ASSIGN     Tag = "="
)

func (t Tag) ToString() string {
	if t == TOK_EOF {
		return "EOF"
	}
	return string(t)
}

// Token is a single lexical unit. Value holds the literal for number,
// boolean and identifier tokens and is nil otherwise.
type Token struct {
	Tag      Tag
	Position int
	Lexeme   string
	Value    types.Value
}

// Location is the source range the token was scanned from
func (t Token) Location() parse.Location {
	return parse.At(t.Position, len(t.Lexeme))
}

// IsEOF reports whether t is the end-of-stream sentinel
func (t Token) IsEOF() bool {
	return t.Tag == TOK_EOF
}
