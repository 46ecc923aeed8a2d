/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// matchFunc returns the byte length of the match starting at input[pos:], or
// 0 if the rule does not match there.
type matchFunc func(input string, pos int) int

// Rule pairs a tag with the pattern that produces it.
type Rule struct {
	Tag   Tag
	Match matchFunc
}

// rules is the lexical grammar in priority order. The tokenizer commits to the
// first rule that matches, so keywords shadow identifiers and two character
// operators must come before their one character prefixes.
var rules = []Rule{
	{TOK_PRINT, literal("print")},
	{TOK_TRUE, literal("true")},
	{TOK_FALSE, literal("false")},
	{TOK_IF, literal("if")},
	{TOK_THEN, literal("then")},
	{TOK_AND, literal("and")},
	{TOK_OR, literal("or")},
	{TOK_NUMBER, MatchNumber},
	{TOK_IDENTIFIER, MatchIdentifier},
	{TOK_PLUS, literal("+")},
	{TOK_MINUS, literal("-")},
	{TOK_STAR, literal("*")},
	{TOK_SLASH, literal("/")},
	{TOK_PAREN_L, literal("(")},
	{TOK_PAREN_R, literal(")")},
	{TOK_SEMICOLON, literal(";")},
	{TOK_LESS_EQ, literal("<=")},
	{TOK_LESS, literal("<")},
	{TOK_GREATER_EQ, literal(">=")},
	{TOK_GREATER, literal(">")},
	{TOK_EQ_EQ, literal("==")},
	{TOK_NOT_EQ, literal("!=")},
	{TOK_BANG, literal("!")},
	{TOK_AND_AND, literal("&&")},
	{TOK_OR_OR, literal("||")},
	{TOK_ASSIGN, literal("=")},
	{TOK_WHITESPACE, MatchWhitespace},
	{TOK_ERROR, matchAny},
}

// Rules returns a copy of the lexical rules in the order they are tried.
func Rules() []Rule {
	r := make([]Rule, len(rules))
	copy(r, rules)
	return r
}

// match finds the first rule matching at pos. The trailing catch-all rule
// guarantees a match while pos < len(input).
func match(input string, pos int) (Rule, int) {
	for _, rule := range rules {
		if width := rule.Match(input, pos); width > 0 {
			return rule, width
		}
	}
	return rules[len(rules)-1], 0
}

func literal(s string) matchFunc {
	return func(input string, pos int) int {
		if strings.HasPrefix(input[pos:], s) {
			return len(s)
		}
		return 0
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentifierStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func digits(input string, pos int) int {
	size := 0
	for pos+size < len(input) && isDigit(input[pos+size]) {
		size++
	}
	return size
}

// MatchNumber returns the length of the next token, assuming it is a number.
// The alternatives are tried in order, like a regular expression alternation.
//
// Grammar:
//
//	number          = *DIGIT "." 1*DIGIT / 1*DIGIT "." *DIGIT / 1*DIGIT
func MatchNumber(input string, pos int) int {
	lsize := digits(input, pos)

	if pos+lsize < len(input) && input[pos+lsize] == '.' {
		rsize := digits(input, pos+lsize+1)

		if rsize > 0 || lsize > 0 {
			return lsize + rsize + 1
		}
	}

	return lsize
}

// MatchIdentifier returns the length of the next token, assuming it is an
// identifier.
//
// Grammar:
//
//	identifier      = ( ALPHA / "_" ) *( ALPHA / DIGIT / "_" )
func MatchIdentifier(input string, pos int) int {
	if pos >= len(input) || !isIdentifierStart(input[pos]) {
		return 0
	}

	size := 1
	for pos+size < len(input) && (isIdentifierStart(input[pos+size]) || isDigit(input[pos+size])) {
		size++
	}

	return size
}

// MatchWhitespace returns the length of the run of whitespace at pos
func MatchWhitespace(input string, pos int) int {
	size := 0
	for pos+size < len(input) {
		r, width := utf8.DecodeRuneInString(input[pos+size:])
		if !unicode.IsSpace(r) {
			break
		}
		size += width
	}
	return size
}

// matchAny consumes a single rune, it backs the error rule
func matchAny(input string, pos int) int {
	_, width := utf8.DecodeRuneInString(input[pos:])
	return width
}
