/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package tokenizer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/common/parse"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/types"
	"github.com/rs/zerolog"
)

type Tokenizer struct {
	Log zerolog.Logger
}

func New(log zerolog.Logger) *Tokenizer {
	return &Tokenizer{Log: log}
}

// Tokenize splits input into tokens using a tokenizer that does not log.
func Tokenize(input string) ([]Token, error) {
	return New(zerolog.Nop()).Tokenize(input)
}

// Tokenize scans input from left to right and returns its tokens followed by
// the end-of-stream sentinel. Whitespace is dropped. The first character no
// rule accepts aborts the scan with a *parse.LexicalError.
func (t *Tokenizer) Tokenize(input string) ([]Token, error) {
	var tokens []Token

	pos := 0
	for pos < len(input) {
		rule, width := match(input, pos)
		lexeme := input[pos : pos+width]

		if rule.Tag == TOK_ERROR {
			return nil, parse.NewLexicalError(parse.At(pos, width), lexeme,
				fmt.Sprintf("illegal character '%s'", lexeme))
		}

		if rule.Tag != TOK_WHITESPACE {
			tok, err := makeToken(rule.Tag, pos, lexeme)
			if err != nil {
				return nil, err
			}

			t.Log.Trace().
				Str("tag", tok.Tag.ToString()).
				Int("position", tok.Position).
				Str("lexeme", tok.Lexeme).
				Msg("token")

			tokens = append(tokens, tok)
		}

		pos += width
	}

	tokens = append(tokens, Token{Tag: TOK_EOF, Position: pos})

	t.Log.Debug().Int("tokens", len(tokens)).Int("bytes", len(input)).Msg("tokenized input")

	return tokens, nil
}

// makeToken builds a token and converts its literal value
func makeToken(tag Tag, pos int, lexeme string) (Token, error) {
	tok := Token{Tag: tag, Position: pos, Lexeme: lexeme}

	switch tag {
	case TOK_NUMBER:
		if strings.Contains(lexeme, ".") {
			f, err := strconv.ParseFloat(lexeme, 64)
			if err != nil {
				return tok, parse.NewLexicalError(tok.Location(), lexeme,
					fmt.Sprintf("invalid number '%s'", lexeme))
			}
			tok.Value = types.MakeFloat(f)
		} else {
			i, err := strconv.ParseInt(lexeme, 10, 64)
			if err != nil {
				return tok, parse.NewLexicalError(tok.Location(), lexeme,
					fmt.Sprintf("integer '%s' out of range", lexeme))
			}
			tok.Value = types.MakeInt(i)
		}
	case TOK_TRUE, TOK_FALSE:
		tok.Value = types.MakeBoolean(tag == TOK_TRUE)
		tok.Tag = TOK_BOOLEAN
	case TOK_IDENTIFIER:
		tok.Value = types.MakeString(lexeme)
	}

	return tok, nil
}
