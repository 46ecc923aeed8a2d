/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/tokenizer"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/types"
)

// Node is implemented by the node types of this package only.
type Node interface {
	// Tag names the variant: "number", "+", "assign", "program", ...
	Tag() string
	// Pos is the source offset of the token that introduced the node
	Pos() int
	node()
}

type Visitor interface {
	Visit(Node) Visitor
}

type UnaryOp string

const (
	UnaryNegate UnaryOp = "negate"
	UnaryNot    UnaryOp = "not"
)

type BinaryOp string

const (
	BinaryOr           BinaryOp = "||"
	BinaryAnd          BinaryOp = "&&"
	BinaryLess         BinaryOp = "<"
	BinaryGreater      BinaryOp = ">"
	BinaryLessEqual    BinaryOp = "<="
	BinaryGreaterEqual BinaryOp = ">="
	BinaryEqual        BinaryOp = "=="
	BinaryNotEqual     BinaryOp = "!="
	BinaryAdd          BinaryOp = "+"
	BinarySubtract     BinaryOp = "-"
	BinaryMultiply     BinaryOp = "*"
	BinaryDivide       BinaryOp = "/"
)

type (
	BaseNode struct {
		Token tokenizer.Token
	}

	ProgramNode struct {
		BaseNode
		Statements []Node
	}

	PrintNode struct {
		BaseNode
		Value Node
	}

	AssignNode struct {
		BaseNode
		Target Node
		Value  Node
	}

	BinaryOpNode struct {
		BaseNode
		Op    BinaryOp
		Left  Node
		Right Node
	}

	UnaryOpNode struct {
		BaseNode
		Op      UnaryOp
		Operand Node
	}

	NumberNode struct {
		BaseNode
		Val types.Value
	}

	BooleanNode struct {
		BaseNode
		Val types.Value
	}

	IdentifierNode struct {
		BaseNode
		Name string
	}
)

// -- BaseNode

func (b *BaseNode) Pos() int {
	return b.Token.Position
}

func (b *BaseNode) node() {}

func (p *ProgramNode) Tag() string    { return "program" }
func (p *PrintNode) Tag() string      { return "print" }
func (a *AssignNode) Tag() string     { return "assign" }
func (b *BinaryOpNode) Tag() string   { return string(b.Op) }
func (u *UnaryOpNode) Tag() string    { return string(u.Op) }
func (n *NumberNode) Tag() string     { return "number" }
func (b *BooleanNode) Tag() string    { return "boolean" }
func (i *IdentifierNode) Tag() string { return "identifier" }

//-- NumberNode

func MakeNumberNode(tok tokenizer.Token) *NumberNode {
	return &NumberNode{BaseNode: BaseNode{Token: tok}, Val: tok.Value}
}

//-- BooleanNode

func MakeBooleanNode(tok tokenizer.Token) *BooleanNode {
	return &BooleanNode{BaseNode: BaseNode{Token: tok}, Val: tok.Value}
}

//-- IdentifierNode

func MakeIdentifierNode(tok tokenizer.Token) *IdentifierNode {
	return &IdentifierNode{BaseNode: BaseNode{Token: tok}, Name: types.StringVal(tok.Value)}
}
