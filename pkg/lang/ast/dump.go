/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"reflect"
	"strings"
)

type Dumper struct {
	Output string
	indent int
}

func (d *Dumper) Visit(node Node) Visitor {
	if node == nil {
		d.indent -= 1
		return nil
	}

	level := strings.Repeat("    ", d.indent)

	value := node.Tag()
	switch t := node.(type) {
	case *NumberNode:
		value = t.Val.String()
	case *BooleanNode:
		value = t.Val.String()
	case *IdentifierNode:
		value = t.Name
	}

	t := reflect.TypeOf(node)
	output := level + t.Elem().Name() + "[" + value + "]" + "\n"

	d.Output += output
	d.indent += 1

	return d
}

// ASTToString renders the tree one node per line, children indented below
// their parent.
func ASTToString(node Node) string {
	d := Dumper{}
	Walk(&d, node)
	return d.Output
}

// Sexp renders the tree as a single line S-expression, e.g. (+ 1 (* 2 4)).
func Sexp(node Node) string {
	var b strings.Builder
	writeSexp(&b, node)
	return b.String()
}

func writeSexp(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case *NumberNode:
		b.WriteString(n.Val.String())
	case *BooleanNode:
		b.WriteString(n.Val.String())
	case *IdentifierNode:
		b.WriteString(n.Name)
	case *UnaryOpNode:
		writeList(b, n.Tag(), n.Operand)
	case *BinaryOpNode:
		writeList(b, n.Tag(), n.Left, n.Right)
	case *AssignNode:
		writeList(b, n.Tag(), n.Target, n.Value)
	case *PrintNode:
		writeList(b, n.Tag(), n.Value)
	case *ProgramNode:
		writeList(b, n.Tag(), n.Statements...)
	default:
		panic("Unexpected Node passed to Sexp")
	}
}

func writeList(b *strings.Builder, head string, children ...Node) {
	b.WriteString("(")
	b.WriteString(head)
	for _, child := range children {
		b.WriteString(" ")
		writeSexp(b, child)
	}
	b.WriteString(")")
}
