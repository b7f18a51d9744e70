package utils

import (
	"github.com/t14raptor/replify/ast"
	"github.com/t14raptor/replify/token"
)

// Synthesized nodes carry no source positions.

func Ident(name string) *ast.Identifier {
	return &ast.Identifier{Name: name}
}

func IdentExpr(name string) *ast.Expression {
	return &ast.Expression{Expr: Ident(name)}
}

// Undefined returns the identifier undefined, assigned to declarators that
// had no initializer.
func Undefined() *ast.Expression {
	return IdentExpr("undefined")
}

func Assign(left, right *ast.Expression) *ast.Expression {
	return &ast.Expression{Expr: &ast.AssignExpression{
		Operator: token.Assign,
		Left:     left,
		Right:    right,
	}}
}

// Sequence joins exprs with the comma operator. A single expression is
// returned as is.
func Sequence(exprs ...*ast.Expression) *ast.Expression {
	if len(exprs) == 1 {
		return exprs[0]
	}
	seq := &ast.SequenceExpression{Sequence: make(ast.Expressions, 0, len(exprs))}
	for _, e := range exprs {
		seq.Sequence = append(seq.Sequence, *e)
	}
	return &ast.Expression{Expr: seq}
}

func Await(e *ast.Expression) *ast.Expression {
	return &ast.Expression{Expr: &ast.AwaitExpression{Argument: e}}
}

func ExprStmt(e *ast.Expression) ast.Statement {
	return ast.Statement{Stmt: &ast.ExpressionStatement{Expression: e}}
}

func Return(e *ast.Expression) ast.Statement {
	return ast.Statement{Stmt: &ast.ReturnStatement{Argument: e}}
}

// Declarator binds target to init. A nil init leaves the binding
// uninitialized.
func Declarator(target ast.Target, init *ast.Expression) ast.VariableDeclarator {
	return ast.VariableDeclarator{
		Target:      &ast.BindingTarget{Target: target},
		Initializer: init,
	}
}

// Declaration builds a var, let or const statement.
func Declaration(kind token.Token, list ...ast.VariableDeclarator) ast.Statement {
	return ast.Statement{Stmt: &ast.VariableDeclaration{
		Token: kind,
		List:  list,
	}}
}

// Member reads property name off obj, as obj.name when name is an
// identifier name and obj["name"] otherwise.
func Member(obj *ast.Expression, name string) *ast.Expression {
	prop := &ast.MemberProperty{}
	if token.IsIdentifierName(name) {
		prop.Prop = Ident(name)
	} else {
		prop.Prop = &ast.ComputedProperty{
			Expr: &ast.Expression{Expr: &ast.StringLiteral{Value: name}},
		}
	}
	return &ast.Expression{Expr: &ast.MemberExpression{Object: obj, Property: prop}}
}

// PropertyKey returns the key for name in an object literal or pattern.
func PropertyKey(name string) *ast.Expression {
	if token.IsIdentifierName(name) {
		return IdentExpr(name)
	}
	return &ast.Expression{Expr: &ast.StringLiteral{Value: name}}
}

// Load returns the dynamic load of source: import(source), or
// loader(source) when a loader function is named. Options, if not nil, is
// passed as the second argument.
func Load(loader string, source *ast.StringLiteral, options *ast.Expression) *ast.Expression {
	src := &ast.Expression{Expr: &ast.StringLiteral{Value: source.Value, Raw: source.Raw}}
	if loader == "" {
		return &ast.Expression{Expr: &ast.ImportExpression{Source: src, Options: options}}
	}
	call := &ast.CallExpression{
		Callee:       IdentExpr(loader),
		ArgumentList: ast.Expressions{*src},
	}
	if options != nil {
		call.ArgumentList = append(call.ArgumentList, *options)
	}
	return &ast.Expression{Expr: call}
}

// AsyncIIFE returns (async () => { body })().
func AsyncIIFE(body ast.Statements) *ast.Expression {
	return &ast.Expression{Expr: &ast.CallExpression{
		Callee: &ast.Expression{Expr: &ast.ArrowFunctionLiteral{
			Body:  &ast.ConciseBody{Body: &ast.BlockStatement{List: body}},
			Async: true,
		}},
	}}
}
