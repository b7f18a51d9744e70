// Package imports rewrites static import declarations into awaited dynamic
// loads that bind the same local names.
//
//	import def, { a, b as c } from "m";
//
// becomes
//
//	const { default: def, a: a, b: c } = await import("m");
//
// Each declaration is replaced in place; it is not hoisted above the
// statements that precede it.
package imports

import (
	"github.com/t14raptor/replify/ast"
	"github.com/t14raptor/replify/token"
	"github.com/t14raptor/replify/transform/utils"
)

type options struct {
	loader string
}

type Option func(*options)

// WithLoader makes the rewritten code call the named function instead of
// the native import().
func WithLoader(name string) Option {
	return func(o *options) {
		o.loader = name
	}
}

// Transform rewrites every import declaration of p and returns how many
// were rewritten.
func Transform(p *ast.Program, opts ...Option) int {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	count := 0
	body := make(ast.Statements, 0, len(p.Body))
	for _, stmt := range p.Body {
		decl, ok := stmt.Stmt.(*ast.ImportDeclaration)
		if !ok {
			body = append(body, stmt)
			continue
		}
		body = append(body, o.rewrite(decl)...)
		count++
	}
	if count > 0 {
		p.Body = body
	}
	return count
}

type specifiers struct {
	def   *ast.ImportDefaultSpecifier
	ns    *ast.ImportNamespaceSpecifier
	named []*ast.ImportNamedSpecifier
}

func classify(decl *ast.ImportDeclaration) specifiers {
	var s specifiers
	for _, spec := range decl.Specifiers {
		switch n := spec.ImportSpec.(type) {
		case *ast.ImportDefaultSpecifier:
			s.def = n
		case *ast.ImportNamespaceSpecifier:
			s.ns = n
		case *ast.ImportNamedSpecifier:
			s.named = append(s.named, n)
		}
	}
	return s
}

func (o *options) load(decl *ast.ImportDeclaration) *ast.Expression {
	var attributes *ast.Expression
	if decl.Attributes != nil {
		attributes = &ast.Expression{Expr: &ast.ObjectLiteral{Value: ast.Properties{{
			Prop: &ast.PropertyKeyed{
				Key:   utils.IdentExpr("with"),
				Kind:  ast.PropertyKindValue,
				Value: &ast.Expression{Expr: decl.Attributes},
			},
		}}}}
	}
	return utils.Await(utils.Load(o.loader, decl.Source, attributes))
}

func (o *options) rewrite(decl *ast.ImportDeclaration) ast.Statements {
	if len(decl.Specifiers) == 0 {
		return ast.Statements{utils.ExprStmt(o.load(decl))}
	}

	s := classify(decl)
	if s.ns != nil {
		return o.namespace(decl, s)
	}
	return o.destructure(decl, s)
}

// namespace binds the namespace object first, then reads the default and
// named bindings off it.
func (o *options) namespace(decl *ast.ImportDeclaration, s specifiers) ast.Statements {
	ns := s.ns.Local.Name
	out := ast.Statements{
		utils.Declaration(token.Const, utils.Declarator(utils.Ident(ns), o.load(decl))),
	}
	if s.def != nil {
		out = append(out, utils.Declaration(token.Const,
			utils.Declarator(utils.Ident(s.def.Local.Name), utils.Member(utils.IdentExpr(ns), "default"))))
	}
	for _, spec := range s.named {
		out = append(out, utils.Declaration(token.Const,
			utils.Declarator(utils.Ident(spec.Local.Name), utils.Member(utils.IdentExpr(ns), spec.ImportedName()))))
	}
	return out
}

// destructure binds everything with one object pattern over the loaded
// namespace. Shorthand properties are only used when there is no default
// binding.
func (o *options) destructure(decl *ast.ImportDeclaration, s specifiers) ast.Statements {
	pattern := &ast.ObjectPattern{}
	if s.def != nil {
		pattern.Properties = append(pattern.Properties, ast.Property{Prop: &ast.PropertyKeyed{
			Key:   utils.IdentExpr("default"),
			Kind:  ast.PropertyKindValue,
			Value: utils.IdentExpr(s.def.Local.Name),
		}})
	}
	for _, spec := range s.named {
		imported, local := spec.ImportedName(), spec.Local.Name
		if imported == local && s.def == nil {
			pattern.Properties = append(pattern.Properties, ast.Property{Prop: &ast.PropertyShort{
				Name: utils.Ident(local),
			}})
			continue
		}
		pattern.Properties = append(pattern.Properties, ast.Property{Prop: &ast.PropertyKeyed{
			Key:   utils.PropertyKey(imported),
			Kind:  ast.PropertyKindValue,
			Value: utils.IdentExpr(local),
		}})
	}
	return ast.Statements{
		utils.Declaration(token.Const, utils.Declarator(pattern, o.load(decl))),
	}
}
