package ast

import "github.com/t14raptor/replify/token"

type (
	FunctionDeclaration struct {
		Function *FunctionLiteral
	}

	ClassDeclaration struct {
		Class *ClassLiteral
	}

	// VariableDeclaration is a var, let or const declaration; Token holds
	// which one.
	VariableDeclaration struct {
		List    VariableDeclarators
		Comment string

		Idx   Idx
		Token token.Token
	}

	VariableDeclarators []VariableDeclarator

	VariableDeclarator struct {
		Target      *BindingTarget
		Initializer *Expression `optional:"true"`
	}

	// ImportDeclaration is a static import. A declaration with no
	// specifiers is a side-effect-only import.
	ImportDeclaration struct {
		Import     Idx
		Specifiers ImportSpecifiers
		Source     *StringLiteral
		Attributes *ObjectLiteral `optional:"true"`
		Semicolon  Idx
	}

	ImportSpecifiers []ImportSpecifier

	ImportSpecifier struct {
		ImportSpec
	}

	// ImportSpec is one of *ImportDefaultSpecifier, *ImportNamespaceSpecifier
	// or *ImportNamedSpecifier.
	ImportSpec interface {
		Node
		VisitableNode
		_importSpec()
	}

	// ImportDefaultSpecifier is the "def" in import def from "m".
	ImportDefaultSpecifier struct {
		Local *Identifier
	}

	// ImportNamespaceSpecifier is the "* as ns" in import * as ns from "m".
	ImportNamespaceSpecifier struct {
		Star  Idx
		Local *Identifier
	}

	// ImportNamedSpecifier is one "a" or "a as b" inside braces. Imported is
	// an *Identifier or, for arbitrary module export names, a *StringLiteral.
	ImportNamedSpecifier struct {
		Imported *Expression
		Local    *Identifier
	}
)

func (*FunctionDeclaration) _stmt() {}
func (*ClassDeclaration) _stmt()    {}
func (*VariableDeclaration) _stmt() {}
func (*ImportDeclaration) _stmt()   {}

func (*VariableDeclarator) _expr() {}

func (*ImportDefaultSpecifier) _importSpec()   {}
func (*ImportNamespaceSpecifier) _importSpec() {}
func (*ImportNamedSpecifier) _importSpec()     {}

// ImportedName returns the export name a named specifier refers to.
func (s *ImportNamedSpecifier) ImportedName() string {
	switch n := s.Imported.Expr.(type) {
	case *Identifier:
		return n.Name
	case *StringLiteral:
		return n.Value
	}
	return ""
}
