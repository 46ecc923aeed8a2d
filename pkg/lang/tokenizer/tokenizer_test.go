/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package tokenizer

import (
	"errors"
	"strings"
	"testing"

	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/common/parse"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleTokens(t *testing.T) {
	symbols := []Tag{
		TOK_PLUS, TOK_MINUS, TOK_STAR, TOK_SLASH, TOK_PAREN_L, TOK_PAREN_R, TOK_SEMICOLON,
		TOK_LESS_EQ, TOK_LESS, TOK_GREATER_EQ, TOK_GREATER, TOK_EQ_EQ, TOK_NOT_EQ,
		TOK_BANG, TOK_AND_AND, TOK_OR_OR, TOK_ASSIGN,
	}

	for _, symbol := range symbols {
		tokens, err := Tokenize(string(symbol))
		require.NoError(t, err)
		require.Len(t, tokens, 2, "symbol %s", symbol)

		assert.Equal(t, symbol, tokens[0].Tag)
		assert.Equal(t, 0, tokens[0].Position)
		assert.Nil(t, tokens[0].Value)
		assert.Equal(t, Token{Tag: TOK_EOF, Position: len(symbol)}, tokens[1])
	}
}

func TestNumberTokens(t *testing.T) {
	for s, want := range map[string]int64{"1": 1, "11": 11, "0": 0, "12345": 12345} {
		tokens, err := Tokenize(s)
		require.NoError(t, err)
		require.Len(t, tokens, 2)
		assert.Equal(t, TOK_NUMBER, tokens[0].Tag)
		assert.Equal(t, types.MakeInt(want), tokens[0].Value)
	}

	for s, want := range map[string]float64{"1.1": 1.1, "11.11": 11.11, "11.": 11, ".11": 0.11, "3.0": 3} {
		tokens, err := Tokenize(s)
		require.NoError(t, err)
		require.Len(t, tokens, 2)
		assert.Equal(t, TOK_NUMBER, tokens[0].Tag)
		assert.Equal(t, types.MakeFloat(want), tokens[0].Value, "number %s", s)
	}
}

func TestNumberSplitsOnSecondDot(t *testing.T) {
	tokens, err := Tokenize("1.2.3")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, types.MakeFloat(1.2), tokens[0].Value)
	assert.Equal(t, types.MakeFloat(0.3), tokens[1].Value)
	assert.Equal(t, 3, tokens[1].Position)
}

func TestBooleanTokens(t *testing.T) {
	for _, s := range []string{"true", "false"} {
		tokens, err := Tokenize(s)
		require.NoError(t, err)
		require.Len(t, tokens, 2)
		assert.Equal(t, TOK_BOOLEAN, tokens[0].Tag)
		assert.Equal(t, types.MakeBoolean(s == "true"), tokens[0].Value)
	}
}

func TestKeywords(t *testing.T) {
	for _, keyword := range []Tag{TOK_PRINT, TOK_IF, TOK_THEN, TOK_AND, TOK_OR} {
		tokens, err := Tokenize(string(keyword))
		require.NoError(t, err)
		require.Len(t, tokens, 2)
		assert.Equal(t, keyword, tokens[0].Tag)
		assert.Nil(t, tokens[0].Value)
	}
}

func TestKeywordsShadowIdentifiers(t *testing.T) {
	// Keywords are plain prefixes, the first matching rule wins
	tokens, err := Tokenize("printx")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, TOK_PRINT, tokens[0].Tag)
	assert.Equal(t, TOK_IDENTIFIER, tokens[1].Tag)
	assert.Equal(t, types.MakeString("x"), tokens[1].Value)
	assert.Equal(t, 5, tokens[1].Position)
}

func TestIdentifierTokens(t *testing.T) {
	for _, s := range []string{"x", "y", "z", "alpha", "beta", "gamma", "_tmp", "a3", "snake_case_9"} {
		tokens, err := Tokenize(s)
		require.NoError(t, err)
		require.Len(t, tokens, 2)
		assert.Equal(t, TOK_IDENTIFIER, tokens[0].Tag)
		assert.Equal(t, types.MakeString(s), tokens[0].Value)
	}
}

func TestMultipleTokens(t *testing.T) {
	tokens, err := Tokenize("1+2")
	require.NoError(t, err)
	assert.Equal(t, []Token{
		{Tag: TOK_NUMBER, Position: 0, Lexeme: "1", Value: types.MakeInt(1)},
		{Tag: TOK_PLUS, Position: 1, Lexeme: "+"},
		{Tag: TOK_NUMBER, Position: 2, Lexeme: "2", Value: types.MakeInt(2)},
		{Tag: TOK_EOF, Position: 3},
	}, tokens)
}

func TestWhitespace(t *testing.T) {
	tokens, err := Tokenize("1 + 2")
	require.NoError(t, err)
	assert.Equal(t, []Token{
		{Tag: TOK_NUMBER, Position: 0, Lexeme: "1", Value: types.MakeInt(1)},
		{Tag: TOK_PLUS, Position: 2, Lexeme: "+"},
		{Tag: TOK_NUMBER, Position: 4, Lexeme: "2", Value: types.MakeInt(2)},
		{Tag: TOK_EOF, Position: 5},
	}, tokens)

	tokens, err = Tokenize(" \t\n ")
	require.NoError(t, err)
	assert.Equal(t, []Token{{Tag: TOK_EOF, Position: 4}}, tokens)
}

func TestLongestOperatorFirst(t *testing.T) {
	tokens, err := Tokenize("a<=b<c>=d>e==f!=g!h&&i||j=k")
	require.NoError(t, err)

	var tags []Tag
	for _, tok := range tokens {
		if tok.Tag != TOK_IDENTIFIER {
			tags = append(tags, tok.Tag)
		}
	}

	assert.Equal(t, []Tag{
		TOK_LESS_EQ, TOK_LESS, TOK_GREATER_EQ, TOK_GREATER, TOK_EQ_EQ, TOK_NOT_EQ,
		TOK_BANG, TOK_AND_AND, TOK_OR_OR, TOK_ASSIGN, TOK_EOF,
	}, tags)
}

func TestSentinel(t *testing.T) {
	for _, s := range []string{"", "x", "print 1; print 2", "  (1 + 2) * 3  "} {
		tokens, err := Tokenize(s)
		require.NoError(t, err)
		last := tokens[len(tokens)-1]
		assert.True(t, last.IsEOF())
		assert.Nil(t, last.Value)
		assert.Equal(t, len(s), last.Position)
	}
}

func TestDeterministic(t *testing.T) {
	input := "x = 3; print x * (2.5 + -y) <= 10 && !false"
	first, err := Tokenize(input)
	require.NoError(t, err)
	second, err := Tokenize(input)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestError(t *testing.T) {
	tokens, err := Tokenize("$1+2")
	assert.Nil(t, tokens)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Syntax error")

	var lexErr *parse.LexicalError
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, 0, lexErr.Position())
	assert.Equal(t, "$", lexErr.Text)

	_, err = Tokenize("1 + 2 & 3")
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, 6, lexErr.Position())
}

func TestIntegerOutOfRange(t *testing.T) {
	_, err := Tokenize("99999999999999999999")
	var lexErr *parse.LexicalError
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, 0, lexErr.Position())
}

func TestFloatOutOfRange(t *testing.T) {
	_, err := Tokenize("x = " + strings.Repeat("9", 400) + ".0")
	var lexErr *parse.LexicalError
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, 4, lexErr.Position())
	assert.Contains(t, lexErr.Message, "invalid number")
}

func TestRulePriority(t *testing.T) {
	index := map[Tag]int{}
	for i, rule := range Rules() {
		index[rule.Tag] = i
	}

	before := [][2]Tag{
		{TOK_PRINT, TOK_IDENTIFIER},
		{TOK_TRUE, TOK_IDENTIFIER},
		{TOK_OR, TOK_IDENTIFIER},
		{TOK_NUMBER, TOK_IDENTIFIER},
		{TOK_LESS_EQ, TOK_LESS},
		{TOK_GREATER_EQ, TOK_GREATER},
		{TOK_EQ_EQ, TOK_ASSIGN},
		{TOK_NOT_EQ, TOK_BANG},
		{TOK_WHITESPACE, TOK_ERROR},
	}

	for _, pair := range before {
		assert.Less(t, index[pair[0]], index[pair[1]], "%s must be tried before %s", pair[0], pair[1])
	}

	rules := Rules()
	assert.Equal(t, TOK_ERROR, rules[len(rules)-1].Tag)
}

func TestMatchNumber(t *testing.T) {
	cases := map[string]int{
		"123":   3,
		"1.5":   3,
		".5":    2,
		"5.":    2,
		".":     0,
		"abc":   0,
		"1.2.3": 3,
	}

	for input, width := range cases {
		assert.Equal(t, width, MatchNumber(input, 0), "input %q", input)
	}
}
