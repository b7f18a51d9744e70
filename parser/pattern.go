package parser

import (
	"github.com/t14raptor/replify/ast"
	"github.com/t14raptor/replify/token"
)

// parseBindingTarget parses the target of a declarator, parameter or catch
// clause: an identifier or an object or array binding pattern.
func (p *parser) parseBindingTarget() *ast.BindingTarget {
	switch p.currentKind() {
	case token.LeftBracket:
		return &ast.BindingTarget{Target: p.parseArrayBindingPattern()}
	case token.LeftBrace:
		return &ast.BindingTarget{Target: p.parseObjectBindingPattern()}
	}
	if p.isBindingId(p.currentKind()) {
		return &ast.BindingTarget{Target: p.parseIdentifier()}
	}
	idx := p.currentOffset()
	p.errorUnexpectedToken(p.currentKind())
	p.nextStatement()
	return &ast.BindingTarget{Target: &ast.InvalidExpression{From: idx, To: p.currentOffset()}}
}

// parseBindingElement parses a binding target with an optional default,
// represented as an assignment in the pattern slot.
func (p *parser) parseBindingElement() ast.Expression {
	target := p.parseBindingTarget()
	elem := ast.Expression{Expr: target.Target}
	if p.currentKind() == token.Assign {
		p.next()
		allowIn := p.scope.allowIn
		p.scope.allowIn = true
		value := p.parseAssignmentExpression()
		p.scope.allowIn = allowIn
		elem = ast.Expression{Expr: &ast.AssignExpression{
			Operator: token.Assign,
			Left:     &ast.Expression{Expr: target.Target},
			Right:    value,
		}}
	}
	return elem
}

func (p *parser) parseArrayBindingPattern() *ast.ArrayPattern {
	node := &ast.ArrayPattern{LeftBracket: p.expect(token.LeftBracket)}
	for p.currentKind() != token.RightBracket && p.currentKind() != token.Eof {
		switch p.currentKind() {
		case token.Comma:
			node.Elements = append(node.Elements, ast.Expression{})
			p.next()
			continue
		case token.Ellipsis:
			p.next()
			node.Rest = &ast.Expression{Expr: p.parseBindingTarget().Target}
			if p.currentKind() != token.RightBracket {
				p.errorf("Rest element must be last element")
			}
		default:
			node.Elements = append(node.Elements, p.parseBindingElement())
		}
		if p.currentKind() != token.RightBracket {
			p.expect(token.Comma)
		}
	}
	node.RightBracket = p.expect(token.RightBracket)
	return node
}

func (p *parser) parseObjectBindingPattern() *ast.ObjectPattern {
	node := &ast.ObjectPattern{LeftBrace: p.expect(token.LeftBrace)}
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		if p.currentKind() == token.Ellipsis {
			p.next()
			node.Rest = &ast.Expression{Expr: p.parseBindingIdentifier()}
			if p.currentKind() != token.RightBrace {
				p.errorf("Rest element must be last element")
			}
		} else {
			node.Properties = append(node.Properties, p.parseBindingProperty())
		}
		if p.currentKind() != token.RightBrace {
			p.expect(token.Comma)
		}
	}
	node.RightBrace = p.expect(token.RightBrace)
	return node
}

func (p *parser) parseBindingProperty() ast.Property {
	keyKind := p.currentKind()
	key, computed := p.parseObjectPropertyKey()
	if p.currentKind() == token.Colon {
		p.next()
		value := p.parseBindingElement()
		return ast.Property{Prop: &ast.PropertyKeyed{
			Key:      key,
			Kind:     ast.PropertyKindValue,
			Value:    &value,
			Computed: computed,
		}}
	}

	id, ok := key.Expr.(*ast.Identifier)
	if !ok || computed || !p.isBindingId(keyKind) {
		p.errorUnexpectedToken(p.currentKind())
		return ast.Property{Prop: &ast.PropertyKeyed{Key: key, Kind: ast.PropertyKindValue, Value: key}}
	}
	short := &ast.PropertyShort{Name: id}
	if p.currentKind() == token.Assign {
		p.next()
		allowIn := p.scope.allowIn
		p.scope.allowIn = true
		short.Initializer = p.parseAssignmentExpression()
		p.scope.allowIn = allowIn
	}
	return ast.Property{Prop: short}
}

// reinterpretAsAssignmentTarget turns an object or array literal parsed in
// expression position into the equivalent assignment pattern, as in
// [a, b] = [b, a] or ({x} = obj).
func (p *parser) reinterpretAsAssignmentTarget(expr *ast.Expression) *ast.Expression {
	switch n := expr.Expr.(type) {
	case *ast.Identifier, *ast.MemberExpression, *ast.PrivateDotExpression:
		return expr
	case *ast.ObjectLiteral:
		return &ast.Expression{Expr: p.reinterpretAsObjectAssignmentPattern(n)}
	case *ast.ArrayLiteral:
		return &ast.Expression{Expr: p.reinterpretAsArrayAssignmentPattern(n)}
	case *ast.ObjectPattern, *ast.ArrayPattern:
		return expr
	}
	p.errorAt(expr.Idx0(), "Invalid destructuring assignment target")
	return &ast.Expression{Expr: &ast.InvalidExpression{From: expr.Idx0(), To: expr.Idx1()}}
}

// reinterpretAsAssignmentElement keeps a default (target = value) and
// reinterprets its target.
func (p *parser) reinterpretAsAssignmentElement(expr *ast.Expression) *ast.Expression {
	if assign, ok := expr.Expr.(*ast.AssignExpression); ok && assign.Operator == token.Assign {
		assign.Left = p.reinterpretAsAssignmentTarget(assign.Left)
		return expr
	}
	return p.reinterpretAsAssignmentTarget(expr)
}

func (p *parser) reinterpretAsArrayAssignmentPattern(left *ast.ArrayLiteral) *ast.ArrayPattern {
	pattern := &ast.ArrayPattern{
		LeftBracket:  left.LeftBracket,
		RightBracket: left.RightBracket,
	}
	for i := range left.Value {
		elem := &left.Value[i]
		if elem.IsNone() {
			pattern.Elements = append(pattern.Elements, ast.Expression{})
			continue
		}
		if spread, ok := elem.Expr.(*ast.SpreadElement); ok {
			if i != len(left.Value)-1 {
				p.errorAt(spread.Ellipsis, "Rest element must be last element")
			}
			pattern.Rest = p.reinterpretAsAssignmentTarget(spread.Expression)
			continue
		}
		pattern.Elements = append(pattern.Elements, *p.reinterpretAsAssignmentElement(elem))
	}
	return pattern
}

func (p *parser) reinterpretAsObjectAssignmentPattern(left *ast.ObjectLiteral) *ast.ObjectPattern {
	pattern := &ast.ObjectPattern{
		LeftBrace:  left.LeftBrace,
		RightBrace: left.RightBrace,
	}
	for i, prop := range left.Value {
		switch n := prop.Prop.(type) {
		case *ast.PropertyShort:
			pattern.Properties = append(pattern.Properties, prop)
		case *ast.PropertyKeyed:
			if n.Kind != ast.PropertyKindValue {
				p.errorAt(n.Idx0(), "Invalid destructuring assignment target")
				continue
			}
			n.Value = p.reinterpretAsAssignmentElement(n.Value)
			pattern.Properties = append(pattern.Properties, prop)
		case *ast.SpreadElement:
			if i != len(left.Value)-1 {
				p.errorAt(n.Ellipsis, "Rest element must be last element")
			}
			pattern.Rest = p.reinterpretAsAssignmentTarget(n.Expression)
		}
	}
	return pattern
}
