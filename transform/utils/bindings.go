package utils

import "github.com/t14raptor/replify/ast"

// PatternCollector collects the identifiers bound by a binding pattern. It
// does not descend into default values or computed keys.
type PatternCollector struct {
	ast.NoopVisitor
	ids []*ast.Identifier
}

func (v *PatternCollector) VisitExpression(n *ast.Expression) {
	switch n.Expr.(type) {
	case *ast.Identifier, *ast.ObjectPattern, *ast.ArrayPattern, *ast.AssignExpression:
		n.VisitChildrenWith(v)
	}
}

func (v *PatternCollector) VisitIdentifier(n *ast.Identifier) {
	v.ids = append(v.ids, n)
}

func (v *PatternCollector) VisitPropertyShort(n *ast.PropertyShort) {
	v.ids = append(v.ids, n.Name)
}

func (v *PatternCollector) VisitPropertyKeyed(n *ast.PropertyKeyed) {
	n.Value.VisitWith(v)
}

// VisitAssignExpression handles defaulted elements, target = default.
func (v *PatternCollector) VisitAssignExpression(n *ast.AssignExpression) {
	n.Left.VisitWith(v)
}

func (v *PatternCollector) VisitMemberExpression(n *ast.MemberExpression) {}

// CollectPatternIds returns the identifiers bound by target in source order.
func CollectPatternIds(target *ast.BindingTarget) []*ast.Identifier {
	visitor := &PatternCollector{}
	visitor.V = visitor
	target.VisitWith(visitor)
	return visitor.ids
}

// CollectDeclaratorIds returns the identifiers bound by every declarator of
// a declaration, in source order.
func CollectDeclaratorIds(decl *ast.VariableDeclaration) []*ast.Identifier {
	visitor := &PatternCollector{}
	visitor.V = visitor
	for i := range decl.List {
		decl.List[i].Target.VisitWith(visitor)
	}
	return visitor.ids
}
