/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/tokenizer"
)

// Depth returns the deepest nesting the parser would recurse through for
// tokens: open parentheses plus pending prefix operators. Callers taking
// untrusted input can reject programs above a limit before calling Parse.
func Depth(tokens []tokenizer.Token) int {
	var (
		stack   []int
		parens  int
		pending int
		deepest int
		prev    = tokenizer.TOK_EOF
	)

	outer := 0
	for _, tok := range tokens {
		switch tok.Tag {
		case tokenizer.TOK_PAREN_L:
			stack = append(stack, pending)
			outer += pending
			pending = 0
			parens++
		case tokenizer.TOK_PAREN_R:
			if len(stack) > 0 {
				outer -= stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				parens--
			}
			// The group is the operand of any prefix operators before it
			pending = 0
		case tokenizer.TOK_BANG:
			pending++
		case tokenizer.TOK_MINUS:
			if !endsOperand(prev) {
				pending++
			}
		case tokenizer.TOK_NUMBER, tokenizer.TOK_BOOLEAN, tokenizer.TOK_IDENTIFIER:
			pending = 0
		}

		if d := parens + outer + pending; d > deepest {
			deepest = d
		}
		prev = tok.Tag
	}

	return deepest
}

func endsOperand(tag tokenizer.Tag) bool {
	switch tag {
	case tokenizer.TOK_NUMBER, tokenizer.TOK_BOOLEAN, tokenizer.TOK_IDENTIFIER, tokenizer.TOK_PAREN_R:
		return true
	}
	return false
}
