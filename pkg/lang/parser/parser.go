/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"fmt"

	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/common/parse"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/ast"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/tokenizer"
	"github.com/rs/zerolog"
)

type Parser struct {
	Tokens []tokenizer.Token
	Log    zerolog.Logger
	pos    int
}

func New(tokens []tokenizer.Token, log zerolog.Logger) *Parser {
	return &Parser{Tokens: tokens, Log: log}
}

// Parse builds the program for a sentinel terminated token stream, as
// returned by tokenizer.Tokenize.
func Parse(tokens []tokenizer.Token) (*ast.ProgramNode, error) {
	return New(tokens, zerolog.Nop()).Parse()
}

func (p *Parser) Parse() (program *ast.ProgramNode, err error) {
	defer func() {
		if e := recover(); e != nil {
			syntaxError, ok := e.(*parse.SyntaxError)
			if !ok {
				panic(e)
			}
			program = nil
			err = syntaxError
		}
	}()

	if len(p.Tokens) == 0 || !p.Tokens[len(p.Tokens)-1].IsEOF() {
		end := 0
		if len(p.Tokens) > 0 {
			last := p.Tokens[len(p.Tokens)-1]
			end = last.Position + len(last.Lexeme)
		}
		return nil, parse.NewSyntaxError("", parse.At(end, 0), "token stream is missing the end-of-stream marker")
	}

	p.pos = 0
	program = p.program()

	// If we didn't consume every token, the rest is garbage
	if tok := p.peek(); !tok.IsEOF() {
		return nil, p.syntaxError(tok, fmt.Sprintf("unexpected %s after end of statement", describe(tok)))
	}

	return program, nil
}

// program returns a ProgramNode
//
// Grammar:
//
//	program         = [ statement *( ";" statement ) [ ";" ] ]
func (p *Parser) program() *ast.ProgramNode {
	p.trace("program")

	program := ast.ProgramNode{BaseNode: ast.BaseNode{Token: p.peek()}}

	for !p.peek().IsEOF() {
		program.Statements = append(program.Statements, p.statement())

		if p.peek().Tag != tokenizer.TOK_SEMICOLON {
			break
		}
		p.next()
	}

	return &program
}

// statement returns a PrintNode, an AssignNode, or the result of expression
//
// Grammar:
//
//	statement       = ( "print" expression ) / ( expression [ "=" expression ] )
func (p *Parser) statement() ast.Node {
	p.trace("statement")

	if tok := p.peek(); tok.Tag == tokenizer.TOK_PRINT {
		p.next()
		return &ast.PrintNode{BaseNode: ast.BaseNode{Token: tok}, Value: p.expression()}
	}

	target := p.expression()

	if tok := p.peek(); tok.Tag == tokenizer.TOK_ASSIGN {
		p.next()
		return &ast.AssignNode{BaseNode: ast.BaseNode{Token: tok}, Target: target, Value: p.expression()}
	}

	return target
}

// expression returns the result of logicalExpression
//
// Grammar:
//
//	expression      = logical-expression
func (p *Parser) expression() ast.Node {
	return p.logicalExpression()
}

// logicalExpression returns a BinaryOpNode, or the result of logicalTerm
//
// Grammar:
//
//	logical-expression = logical-term *( "||" logical-term )
func (p *Parser) logicalExpression() ast.Node {
	p.trace("logical-expression")
	return p.binary(p.logicalTerm, tokenizer.TOK_OR_OR)
}

// logicalTerm returns a BinaryOpNode, or the result of logicalFactor
//
// Grammar:
//
//	logical-term    = logical-factor *( "&&" logical-factor )
func (p *Parser) logicalTerm() ast.Node {
	p.trace("logical-term")
	return p.binary(p.logicalFactor, tokenizer.TOK_AND_AND)
}

// logicalFactor returns the result of relationalExpression
//
// Grammar:
//
//	logical-factor  = relational-expression
func (p *Parser) logicalFactor() ast.Node {
	return p.relationalExpression()
}

// relationalExpression returns a BinaryOpNode, or the result of
// arithmeticExpression. Comparisons chain to the left: a<b<c is (a<b)<c.
//
// Grammar:
//
//	relational-expression = arithmetic-expression *( ( "<" / ">" / "<=" / ">=" / "==" / "!=" ) arithmetic-expression )
func (p *Parser) relationalExpression() ast.Node {
	p.trace("relational-expression")
	return p.binary(p.arithmeticExpression,
		tokenizer.TOK_LESS, tokenizer.TOK_GREATER, tokenizer.TOK_LESS_EQ,
		tokenizer.TOK_GREATER_EQ, tokenizer.TOK_EQ_EQ, tokenizer.TOK_NOT_EQ)
}

// arithmeticExpression returns a BinaryOpNode, or the result of term
//
// Grammar:
//
//	arithmetic-expression = term *( ( "+" / "-" ) term )
func (p *Parser) arithmeticExpression() ast.Node {
	p.trace("arithmetic-expression")
	return p.binary(p.term, tokenizer.TOK_PLUS, tokenizer.TOK_MINUS)
}

// term returns a BinaryOpNode, or the result of factor
//
// Grammar:
//
//	term            = factor *( ( "*" / "/" ) factor )
func (p *Parser) term() ast.Node {
	p.trace("term")
	return p.binary(p.factor, tokenizer.TOK_STAR, tokenizer.TOK_SLASH)
}

// factor returns a leaf node, a UnaryOpNode, or a parenthesized expression
//
// Grammar:
//
//	factor          = number / boolean / identifier / "(" expression ")" /
//	                ( "-" factor ) / ( "!" factor )
func (p *Parser) factor() ast.Node {
	p.trace("factor")

	tok := p.peek()

	switch tok.Tag {
	case tokenizer.TOK_NUMBER:
		p.next()
		return ast.MakeNumberNode(tok)
	case tokenizer.TOK_BOOLEAN:
		p.next()
		return ast.MakeBooleanNode(tok)
	case tokenizer.TOK_IDENTIFIER:
		p.next()
		return ast.MakeIdentifierNode(tok)
	case tokenizer.TOK_PAREN_L:
		p.next()

		// We're an expression group, so call expression
		expr := p.expression()

		// Expect a closing paren
		if t := p.peek(); t.Tag != tokenizer.TOK_PAREN_R {
			panic(p.syntaxError(t, fmt.Sprintf("unexpected %s, expected ')' to close '(' at position %d", describe(t), tok.Position)))
		}
		p.next()

		return expr
	case tokenizer.TOK_MINUS:
		p.next()
		return &ast.UnaryOpNode{BaseNode: ast.BaseNode{Token: tok}, Op: ast.UnaryNegate, Operand: p.factor()}
	case tokenizer.TOK_BANG:
		p.next()
		return &ast.UnaryOpNode{BaseNode: ast.BaseNode{Token: tok}, Op: ast.UnaryNot, Operand: p.factor()}
	}

	panic(p.syntaxError(tok, fmt.Sprintf("unexpected %s, expected a number, identifier, '(', '-' or '!'", describe(tok))))
}

// operation is one "operator operand" pair following the first operand of a
// binary precedence level.
type operation struct {
	operator tokenizer.Token
	operand  ast.Node
}

// binary parses operand *( operator operand ) for the given operators and
// folds the result to the left.
func (p *Parser) binary(operand func() ast.Node, operators ...tokenizer.Tag) ast.Node {
	first := operand()

	var rest []operation
	for p.accept(operators...) {
		operator := p.next()
		rest = append(rest, operation{operator: operator, operand: operand()})
	}

	return foldLeft(first, rest)
}

// foldLeft nests the operations so that a op b op c becomes (a op b) op c.
func foldLeft(first ast.Node, rest []operation) ast.Node {
	node := first
	for _, o := range rest {
		node = &ast.BinaryOpNode{
			BaseNode: ast.BaseNode{Token: o.operator},
			Op:       ast.BinaryOp(o.operator.Tag),
			Left:     node,
			Right:    o.operand,
		}
	}
	return node
}

// peek returns the current token. The sentinel is never consumed, so the
// cursor cannot run past the end of the stream.
func (p *Parser) peek() tokenizer.Token {
	return p.Tokens[p.pos]
}

// next consumes and returns the current token
func (p *Parser) next() tokenizer.Token {
	tok := p.Tokens[p.pos]
	if !tok.IsEOF() {
		p.pos++
	}
	return tok
}

func (p *Parser) accept(tags ...tokenizer.Tag) bool {
	current := p.peek().Tag
	for _, tag := range tags {
		if current == tag {
			return true
		}
	}
	return false
}

func (p *Parser) syntaxError(tok tokenizer.Token, message string) *parse.SyntaxError {
	return parse.NewSyntaxError(string(tok.Tag), tok.Location(), message)
}

func (p *Parser) trace(rule string) {
	tok := p.peek()
	p.Log.Trace().
		Str("rule", rule).
		Str("tag", tok.Tag.ToString()).
		Int("position", tok.Position).
		Msg("parse")
}

func describe(tok tokenizer.Token) string {
	if tok.IsEOF() {
		return "end of input"
	}
	return fmt.Sprintf("token '%s'", tok.Lexeme)
}
