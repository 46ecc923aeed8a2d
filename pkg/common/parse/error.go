/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"
	"strings"
)

// LexicalError is returned by the tokenizer when no lexical rule matches the
// input at Location.Start.
type LexicalError struct {
	Location Location
	Text     string
	Message  string
}

func NewLexicalError(loc Location, text string, m string) *LexicalError {
	return &LexicalError{Location: loc, Text: text, Message: m}
}

func (l *LexicalError) Error() string {
	return fmt.Sprintf("Syntax error: %s at position %d", l.Message, l.Location.Start)
}

// Position is the byte offset of the offending input
func (l *LexicalError) Position() int {
	return l.Location.Start
}

func (l *LexicalError) FormatError(input string) string {
	return FormatAt("Lexical error found in program:\n", input, l.Location, l.Message)
}

// SyntaxError is returned by the parser when the token at Location does not
// fit the grammar. Tag is the tag of that token, empty for end of input.
type SyntaxError struct {
	Location Location
	Tag      string
	Message  string
}

func NewSyntaxError(tag string, loc Location, m string) *SyntaxError {
	return &SyntaxError{Location: loc, Tag: tag, Message: m}
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax error: %s at position %d", s.Message, s.Location.Start)
}

// Position is the byte offset of the offending token
func (s *SyntaxError) Position() int {
	return s.Location.Start
}

func (s *SyntaxError) FormatError(input string) string {
	return FormatAt("Syntax error found in program:\n", input, s.Location, s.Message)
}

// FormatAt renders the source line holding loc.Start with a caret under
// the offending range.
func FormatAt(header string, input string, loc Location, message string) string {
	start := loc.Start
	if start > len(input) {
		start = len(input)
	}

	lineStart := strings.LastIndexByte(input[:start], '\n') + 1
	lineEnd := strings.IndexByte(input[start:], '\n')
	if lineEnd < 0 {
		lineEnd = len(input)
	} else {
		lineEnd += start
	}

	repeat := loc.End - loc.Start - 1
	if repeat < 0 {
		repeat = 0
	}
	if start+repeat+1 > lineEnd {
		repeat = 0
	}

	errorString := header
	errorString += input[lineStart:lineEnd]
	errorString += fmt.Sprintf("\n%s^%s ", strings.Repeat(" ", start-lineStart), strings.Repeat("~", repeat))
	errorString += fmt.Sprintf("%s\n", message)
	return errorString
}
