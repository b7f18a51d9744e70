package generator

import (
	"math"

	"github.com/t14raptor/replify/ast"
	"github.com/t14raptor/replify/token"
)

// Binding power of each expression form. Binary operators sit between
// precConditional and precUnary, offset by token.Precedence.
const (
	precLowest = iota
	precSequence
	precAssign
	precConditional
)

const (
	precUnary = precConditional + 13 + iota
	precPostfix
	precCall
	precPrimary
)

func precedence(e ast.Expr) int {
	switch n := e.(type) {
	case *ast.SequenceExpression:
		return precSequence
	case *ast.AssignExpression, *ast.ArrowFunctionLiteral, *ast.YieldExpression, *ast.SpreadElement:
		return precAssign
	case *ast.ConditionalExpression:
		return precConditional
	case *ast.BinaryExpression:
		return precConditional + n.Operator.Precedence(true)
	case *ast.UnaryExpression, *ast.AwaitExpression:
		return precUnary
	case *ast.UpdateExpression:
		if n.Postfix {
			return precPostfix
		}
		return precUnary
	case *ast.NumberLiteral:
		if n.Raw == "" && math.Signbit(n.Value) {
			return precUnary
		}
	case *ast.CallExpression, *ast.NewExpression, *ast.MemberExpression, *ast.PrivateDotExpression,
		*ast.OptionalChain, *ast.Optional, *ast.ImportExpression, *ast.MetaProperty:
		return precCall
	case *ast.TemplateLiteral:
		if n.Tag != nil {
			return precCall
		}
	}
	return precPrimary
}

func isIn(e ast.Expr) bool {
	b, ok := e.(*ast.BinaryExpression)
	return ok && b.Operator == token.In
}

// mixesCoalesce reports whether e is an operand of op that must be
// parenthesized because ?? cannot be mixed with || or && unparenthesized.
func mixesCoalesce(op token.Token, e ast.Expr) bool {
	b, ok := e.(*ast.BinaryExpression)
	if !ok {
		return false
	}
	switch op {
	case token.Coalesce:
		return b.Operator == token.LogicalOr || b.Operator == token.LogicalAnd
	case token.LogicalOr, token.LogicalAnd:
		return b.Operator == token.Coalesce
	}
	return false
}

// leftmost returns the expression whose text starts the generated text of e.
func leftmost(e ast.Expr) ast.Expr {
	for {
		switch n := e.(type) {
		case *ast.AssignExpression:
			e = n.Left.Expr
		case *ast.BinaryExpression:
			e = n.Left.Expr
		case *ast.ConditionalExpression:
			e = n.Test.Expr
		case *ast.SequenceExpression:
			e = n.Sequence[0].Expr
		case *ast.CallExpression:
			e = n.Callee.Expr
		case *ast.MemberExpression:
			e = n.Object.Expr
		case *ast.PrivateDotExpression:
			e = n.Left.Expr
		case *ast.OptionalChain:
			e = n.Base.Expr
		case *ast.Optional:
			e = n.Expr.Expr
		case *ast.UpdateExpression:
			if !n.Postfix {
				return e
			}
			e = n.Operand.Expr
		case *ast.TemplateLiteral:
			if n.Tag == nil {
				return e
			}
			e = n.Tag.Expr
		default:
			return e
		}
	}
}

// startsWithBrace reports whether e would start with { and be read as a
// block.
func startsWithBrace(e ast.Expr) bool {
	switch leftmost(e).(type) {
	case *ast.ObjectLiteral, *ast.ObjectPattern:
		return true
	}
	return false
}

// startsAmbiguously reports whether e cannot start an expression statement
// without parentheses.
func startsAmbiguously(e ast.Expr) bool {
	switch leftmost(e).(type) {
	case *ast.ObjectLiteral, *ast.ObjectPattern, *ast.FunctionLiteral, *ast.ClassLiteral:
		return true
	}
	return false
}

// containsCall reports whether the member chain of a new callee contains a
// call, which would otherwise take the arguments of new.
func containsCall(e ast.Expr) bool {
	for {
		switch n := e.(type) {
		case *ast.CallExpression:
			return true
		case *ast.MemberExpression:
			e = n.Object.Expr
		case *ast.PrivateDotExpression:
			e = n.Left.Expr
		case *ast.TemplateLiteral:
			if n.Tag == nil {
				return false
			}
			e = n.Tag.Expr
		default:
			return false
		}
	}
}
