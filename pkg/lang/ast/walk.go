/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

// Walk traverses the tree depth-first. Visit is called on node first; if it
// returns a non-nil visitor, that visitor walks each child and then receives
// Visit(nil).
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *ProgramNode:
		for _, s := range n.Statements {
			Walk(v, s)
		}

	case *PrintNode:
		Walk(v, n.Value)

	case *AssignNode:
		Walk(v, n.Target)
		Walk(v, n.Value)

	case *BinaryOpNode:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *UnaryOpNode:
		Walk(v, n.Operand)

	case *NumberNode, *BooleanNode, *IdentifierNode:
		// Skip, leaf nodes

	default:
		panic("Unexpected Node passed to Walk")
	}

	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect calls f for every node of the tree in depth-first order, and with
// nil after a node's children. Returning false skips the children of a node.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
