package toplevelawait

import "github.com/t14raptor/replify/ast"

// Detection is what the top-level scan found.
type Detection struct {
	// Await is set when an await expression or a for await loop occurs
	// outside every function.
	Await bool
	// Return is set when a return statement occurs outside every function.
	Return bool
}

type detector struct {
	ast.NoopVisitor
	depth int
	found Detection
}

func (v *detector) VisitAwaitExpression(n *ast.AwaitExpression) {
	if v.depth == 0 {
		v.found.Await = true
	}
	n.VisitChildrenWith(v)
}

func (v *detector) VisitForOfStatement(n *ast.ForOfStatement) {
	if n.Await && v.depth == 0 {
		v.found.Await = true
	}
	n.VisitChildrenWith(v)
}

func (v *detector) VisitReturnStatement(n *ast.ReturnStatement) {
	if v.depth == 0 {
		v.found.Return = true
	}
	n.VisitChildrenWith(v)
}

func (v *detector) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	v.depth++
	n.VisitChildrenWith(v)
	v.depth--
}

func (v *detector) VisitArrowFunctionLiteral(n *ast.ArrowFunctionLiteral) {
	v.depth++
	n.VisitChildrenWith(v)
	v.depth--
}

// VisitFieldDefinition evaluates a computed key in the enclosing scope and
// the initializer as its own function.
func (v *detector) VisitFieldDefinition(n *ast.FieldDefinition) {
	n.Key.VisitWith(v)
	v.depth++
	n.Initializer.VisitWith(v)
	v.depth--
}

func (v *detector) VisitClassStaticBlock(n *ast.ClassStaticBlock) {
	v.depth++
	n.VisitChildrenWith(v)
	v.depth--
}

// Detect scans p for top-level await and return.
func Detect(p *ast.Program) Detection {
	visitor := &detector{}
	visitor.V = visitor
	p.VisitWith(visitor)
	return visitor.found
}
