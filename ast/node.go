// Package ast declares the types used to represent syntax trees for
// JavaScript programs evaluated one unit at a time by a REPL host.
//
// Every variant family (statements, expressions, binding targets, import
// specifiers, ...) is a closed set: the member types implement an unexported
// marker method, and code that dispatches over a family uses a type switch.
package ast

// Idx is a compact encoding of a source position within JS code: the byte
// offset plus one. The zero Idx marks nodes that were synthesized rather
// than parsed.
type Idx int

type Node interface {
	// Idx0 returns the index of the first character belonging to the node.
	Idx0() Idx
	// Idx1 returns the index of the first character immediately after the node.
	Idx1() Idx
}

type VisitableNode interface {
	VisitWith(v Visitor)
	VisitChildrenWith(v Visitor)
}

// Program is the root of a parsed unit. It owns its statements.
type Program struct {
	Body Statements
}

func (n *Program) Idx0() Idx {
	if len(n.Body) == 0 {
		return 0
	}
	return n.Body[0].Idx0()
}

func (n *Program) Idx1() Idx {
	if len(n.Body) == 0 {
		return 0
	}
	return n.Body[len(n.Body)-1].Idx1()
}
