// Package toplevelawait wraps a program that awaits at the top level into
// an immediately invoked async arrow function, so that a host which only
// evaluates scripts can run it.
//
// Top-level declarations are hoisted out of the wrapper so that their
// bindings stay visible once it completes:
//
//	let x = 1; await f(); x + 1;
//
// becomes
//
//	let x;
//	(async () => {
//	    x = 1;
//	    await f();
//	    return x + 1;
//	})();
//
// const bindings are hoisted as let, since the wrapper assigns them. var
// declarations nested in top-level blocks and loops are hoisted as well and
// become assignments in place.
package toplevelawait

import (
	"github.com/t14raptor/replify/ast"
	"github.com/t14raptor/replify/token"
	"github.com/t14raptor/replify/transform/utils"
)

type Outcome int

const (
	// Unchanged means the program does not await at the top level.
	Unchanged Outcome = iota
	// Declined means the program returns at the top level and was left
	// as is.
	Declined
	// Wrapped means the program was rewritten.
	Wrapped
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Declined:
		return "declined"
	case Wrapped:
		return "wrapped"
	}
	return "unknown"
}

// Transform rewrites p in place when it awaits at the top level and does
// not return there.
func Transform(p *ast.Program) Outcome {
	d := Detect(p)
	switch {
	case !d.Await:
		return Unchanged
	case d.Return:
		return Declined
	}

	var hoisted, body ast.Statements
	vars := newVarHoister()
	for _, stmt := range p.Body {
		switch n := stmt.Stmt.(type) {
		case *ast.FunctionDeclaration:
			if n.Function.Name == nil {
				body = append(body, stmt)
				continue
			}
			name := n.Function.Name.Name
			hoisted = append(hoisted, utils.Declaration(token.Var, utils.Declarator(utils.Ident(name), nil)))
			body = append(body, utils.ExprStmt(utils.Assign(utils.IdentExpr(name), &ast.Expression{Expr: n.Function})))
		case *ast.ClassDeclaration:
			if n.Class.Name == nil {
				body = append(body, stmt)
				continue
			}
			name := n.Class.Name.Name
			hoisted = append(hoisted, utils.Declaration(token.Let, utils.Declarator(utils.Ident(name), nil)))
			body = append(body, utils.ExprStmt(utils.Assign(utils.IdentExpr(name), &ast.Expression{Expr: n.Class})))
		case *ast.VariableDeclaration:
			if decl, ok := hoist(n); ok {
				hoisted = append(hoisted, decl)
			}
			body = append(body, utils.ExprStmt(assignments(n)))
		default:
			stmt.VisitWith(vars)
			if decl, ok := vars.declaration(); ok {
				hoisted = append(hoisted, decl)
			}
			body = append(body, stmt)
		}
	}

	if last := len(body) - 1; last >= 0 {
		if n, ok := body[last].Stmt.(*ast.ExpressionStatement); ok {
			if _, assign := n.Expression.Expr.(*ast.AssignExpression); !assign {
				body[last] = utils.Return(n.Expression)
			}
		}
	}

	p.Body = append(hoisted, utils.ExprStmt(utils.AsyncIIFE(body)))
	return Wrapped
}

// hoist declares every name bound by n, as var for var declarations and
// as let otherwise.
func hoist(n *ast.VariableDeclaration) (ast.Statement, bool) {
	ids := utils.CollectDeclaratorIds(n)
	if len(ids) == 0 {
		return ast.Statement{}, false
	}
	kind := token.Let
	if n.Token == token.Var {
		kind = token.Var
	}
	list := make(ast.VariableDeclarators, 0, len(ids))
	for _, id := range ids {
		list = append(list, utils.Declarator(utils.Ident(id.Name), nil))
	}
	return utils.Declaration(kind, list...), true
}

// assignments turns the declarators of n into one assignment each, joined
// left to right with the comma operator.
func assignments(n *ast.VariableDeclaration) *ast.Expression {
	exprs := make([]*ast.Expression, 0, len(n.List))
	for _, d := range n.List {
		init := d.Initializer
		if init == nil {
			init = utils.Undefined()
		}
		exprs = append(exprs, utils.Assign(&ast.Expression{Expr: d.Target.Target}, init))
	}
	return utils.Sequence(exprs...)
}
