package generator

import (
	"strings"

	"github.com/t14raptor/replify/ast"
)

type state struct {
	out    *strings.Builder
	node   ast.Node
	parent *state
	indent int

	// noIn is set inside a for-loop initializer, where a bare in operator
	// would be read as a for-in head.
	noIn bool
}

func (s *state) wrap(node ast.Node) *state {
	return &state{
		out:    s.out,
		node:   node,
		parent: s,
		indent: s.indent,
		noIn:   s.noIn,
	}
}

func (s *state) line() {
	s.out.WriteString("\n")
}

func (s *state) lineAndPad() {
	s.line()
	s.out.WriteString(strings.Repeat("    ", s.indent))
}

// expr generates e as a child of the current node, parenthesized when it
// binds looser than min.
func (s *state) expr(e ast.Expr, min int) {
	child := s.wrap(e)
	if precedence(e) < min || s.noIn && isIn(e) {
		child.noIn = false
		s.out.WriteString("(")
		gen(child)
		s.out.WriteString(")")
		return
	}
	gen(child)
}

func (s *state) list(list ast.Expressions, min int) {
	for i := range list {
		if i > 0 {
			s.out.WriteString(", ")
		}
		if !list[i].IsNone() {
			s.expr(list[i].Expr, min)
		}
	}
}

// body generates the body of a compound statement. Bodies that are not
// blocks are printed as one-statement blocks.
func (s *state) body(st *ast.Statement) {
	switch st.Stmt.(type) {
	case *ast.BlockStatement, *ast.EmptyStatement:
		gen(s.wrap(st.Stmt))
	default:
		gen(s.wrap(&ast.BlockStatement{List: ast.Statements{*st}}))
	}
}
