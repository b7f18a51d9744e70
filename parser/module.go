package parser

import (
	"github.com/t14raptor/replify/ast"
	"github.com/t14raptor/replify/token"
)

// isImportDeclaration reports whether the import at the current token starts
// a static import rather than import() or import.meta.
func (p *parser) isImportDeclaration() bool {
	next := p.peek().Kind
	return next != token.LeftParenthesis && next != token.Period
}

// parseImportDeclaration parses
//
//	import "m";
//	import def from "m";
//	import * as ns from "m";
//	import def, { a, b as c, "d e" as f } from "m" with { type: "json" };
func (p *parser) parseImportDeclaration() *ast.ImportDeclaration {
	node := &ast.ImportDeclaration{Import: p.expect(token.Import)}

	if p.currentKind() != token.String {
		p.parseImportClause(node)
		if p.isIdentifierNamed("from") {
			p.next()
		} else {
			p.errorUnexpectedToken(p.currentKind())
		}
	}
	node.Source = p.parseModuleSpecifier()

	if !p.token.OnNewLine && (p.currentKind() == token.With || p.isIdentifierNamed("assert")) {
		p.next()
		node.Attributes = p.parseImportAttributes()
	}

	if p.currentKind() == token.Semicolon {
		node.Semicolon = p.currentOffset()
		p.next()
	} else {
		p.semicolon()
	}
	return node
}

func (p *parser) parseImportClause(node *ast.ImportDeclaration) {
	if p.isBindingId(p.currentKind()) {
		node.Specifiers = append(node.Specifiers, ast.ImportSpecifier{
			ImportSpec: &ast.ImportDefaultSpecifier{Local: p.parseIdentifier()},
		})
		if p.currentKind() != token.Comma {
			return
		}
		p.next()
	}

	switch p.currentKind() {
	case token.Multiply:
		star := p.currentOffset()
		p.next()
		if p.isIdentifierNamed("as") {
			p.next()
		} else {
			p.errorUnexpectedToken(p.currentKind())
		}
		node.Specifiers = append(node.Specifiers, ast.ImportSpecifier{
			ImportSpec: &ast.ImportNamespaceSpecifier{Star: star, Local: p.parseBindingIdentifier()},
		})
	case token.LeftBrace:
		p.parseNamedImports(node)
	default:
		p.errorUnexpectedToken(p.currentKind())
	}
}

func (p *parser) parseNamedImports(node *ast.ImportDeclaration) {
	p.expect(token.LeftBrace)
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		kind := p.currentKind()
		spec := &ast.ImportNamedSpecifier{}
		switch {
		case kind == token.String:
			spec.Imported = &ast.Expression{Expr: p.parseModuleSpecifier()}
		case token.ID(kind):
			spec.Imported = &ast.Expression{Expr: p.parseIdentifier()}
		default:
			p.errorUnexpectedToken(kind)
			p.next()
			continue
		}

		if p.isIdentifierNamed("as") {
			p.next()
			spec.Local = p.parseBindingIdentifier()
		} else {
			switch imported := spec.Imported.Expr.(type) {
			case *ast.Identifier:
				if !p.isBindingId(kind) {
					p.errorAt(imported.Idx, "Unexpected reserved word")
				}
				spec.Local = &ast.Identifier{Idx: imported.Idx, Name: imported.Name}
			case *ast.StringLiteral:
				p.errorAt(imported.Idx, "A string literal cannot be used as an imported binding")
				spec.Local = &ast.Identifier{Idx: imported.Idx, Name: imported.Value}
			}
		}
		node.Specifiers = append(node.Specifiers, ast.ImportSpecifier{ImportSpec: spec})

		if p.currentKind() != token.RightBrace {
			p.expect(token.Comma)
		}
	}
	p.expect(token.RightBrace)
}

func (p *parser) parseModuleSpecifier() *ast.StringLiteral {
	idx := p.currentOffset()
	if p.currentKind() != token.String {
		p.errorUnexpectedToken(p.currentKind())
		return &ast.StringLiteral{Idx: idx}
	}
	value := p.currentString()
	raw := p.token.Raw(p.scanner)
	p.next()
	return &ast.StringLiteral{Idx: idx, Value: value, Raw: raw}
}

// parseImportAttributes parses the object after with or assert. Keys are
// identifier names or strings and every value must be a string.
func (p *parser) parseImportAttributes() *ast.ObjectLiteral {
	attributes := p.parseObjectLiteral()
	for _, prop := range attributes.Value {
		keyed, ok := prop.Prop.(*ast.PropertyKeyed)
		if !ok || keyed.Computed || keyed.Kind != ast.PropertyKindValue {
			p.errorAt(prop.Idx0(), "Invalid import attribute")
			continue
		}
		if _, ok := keyed.Value.Expr.(*ast.StringLiteral); !ok {
			p.errorAt(keyed.Value.Idx0(), "Import attribute value must be a string")
		}
	}
	return attributes
}
