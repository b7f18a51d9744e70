package toplevelawait

import (
	"github.com/t14raptor/replify/ast"
	"github.com/t14raptor/replify/token"
	"github.com/t14raptor/replify/transform/utils"
)

// varHoister turns var declarations nested in top-level blocks and loops
// into assignments and records the names they bind. It does not enter
// functions or class static blocks, which scope their own vars.
type varHoister struct {
	ast.NoopVisitor

	names []string
	seen  map[string]struct{}
}

func newVarHoister() *varHoister {
	h := &varHoister{seen: make(map[string]struct{})}
	h.V = h
	return h
}

func (h *varHoister) add(decl *ast.VariableDeclaration) {
	for _, id := range utils.CollectDeclaratorIds(decl) {
		if _, ok := h.seen[id.Name]; ok {
			continue
		}
		h.seen[id.Name] = struct{}{}
		h.names = append(h.names, id.Name)
	}
}

// declaration returns a var declaration for every name recorded so far and
// resets the hoister.
func (h *varHoister) declaration() (ast.Statement, bool) {
	if len(h.names) == 0 {
		return ast.Statement{}, false
	}
	list := make(ast.VariableDeclarators, 0, len(h.names))
	for _, name := range h.names {
		list = append(list, utils.Declarator(utils.Ident(name), nil))
	}
	h.names = nil
	return utils.Declaration(token.Var, list...), true
}

// initializers assigns each initialized declarator of decl. A declarator
// without one keeps the current value, so it assigns nothing.
func initializers(decl *ast.VariableDeclaration) *ast.Expression {
	var exprs []*ast.Expression
	for _, d := range decl.List {
		if d.Initializer != nil {
			exprs = append(exprs, utils.Assign(&ast.Expression{Expr: d.Target.Target}, d.Initializer))
		}
	}
	if len(exprs) == 0 {
		return nil
	}
	return utils.Sequence(exprs...)
}

func isVar(n ast.Node) (*ast.VariableDeclaration, bool) {
	decl, ok := n.(*ast.VariableDeclaration)
	return decl, ok && decl.Token == token.Var
}

func (h *varHoister) VisitStatement(n *ast.Statement) {
	decl, ok := isVar(n.Stmt)
	if !ok {
		n.VisitChildrenWith(h)
		return
	}
	h.add(decl)
	decl.List.VisitWith(h)
	if e := initializers(decl); e != nil {
		n.Stmt = &ast.ExpressionStatement{Expression: e}
	} else {
		n.Stmt = &ast.EmptyStatement{Semicolon: decl.Idx}
	}
}

func (h *varHoister) VisitForStatement(n *ast.ForStatement) {
	if n.Initializer != nil {
		if decl, ok := isVar(n.Initializer.Initializer); ok {
			h.add(decl)
			decl.List.VisitWith(h)
			if e := initializers(decl); e != nil {
				n.Initializer.Initializer = e
			} else {
				n.Initializer = nil
			}
		}
	}
	n.VisitChildrenWith(h)
}

func (h *varHoister) into(n *ast.ForInto) {
	if decl, ok := isVar(n.Into); ok && len(decl.List) == 1 {
		h.add(decl)
		n.Into = &ast.Expression{Expr: decl.List[0].Target.Target}
	}
}

func (h *varHoister) VisitForInStatement(n *ast.ForInStatement) {
	h.into(n.Into)
	n.VisitChildrenWith(h)
}

func (h *varHoister) VisitForOfStatement(n *ast.ForOfStatement) {
	h.into(n.Into)
	n.VisitChildrenWith(h)
}

func (h *varHoister) VisitFunctionLiteral(n *ast.FunctionLiteral)           {}
func (h *varHoister) VisitArrowFunctionLiteral(n *ast.ArrowFunctionLiteral) {}
func (h *varHoister) VisitClassStaticBlock(n *ast.ClassStaticBlock)         {}
