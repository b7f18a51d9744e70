package parser

import (
	"github.com/t14raptor/replify/ast"
	"github.com/t14raptor/replify/token"
)

func (p *parser) parseIdentifier() *ast.Identifier {
	literal := p.currentString()
	idx := p.currentOffset()
	p.next()
	return &ast.Identifier{Idx: idx, Name: literal}
}

// isBindingId reports whether tok can be used as a binding identifier or
// identifier reference in the current scope.
func (p *parser) isBindingId(tok token.Token) bool {
	switch tok {
	case token.Identifier:
		return true
	case token.Await:
		return !p.scope.allowAwait
	case token.Yield:
		return !p.scope.allowYield
	}
	return token.UnreservedWord(tok)
}

func (p *parser) parseBindingIdentifier() *ast.Identifier {
	if !p.isBindingId(p.currentKind()) {
		p.errorUnexpectedToken(p.currentKind())
		idx := p.currentOffset()
		p.next()
		return &ast.Identifier{Idx: idx}
	}
	return p.parseIdentifier()
}

func (p *parser) parsePrimaryExpression() *ast.Expression {
	idx := p.currentOffset()
	switch p.currentKind() {
	case token.Identifier:
		return &ast.Expression{Expr: p.parseIdentifier()}
	case token.Null:
		p.next()
		return &ast.Expression{Expr: &ast.NullLiteral{Idx: idx}}
	case token.Boolean:
		value := p.currentString() == "true"
		p.next()
		return &ast.Expression{Expr: &ast.BooleanLiteral{Idx: idx, Value: value}}
	case token.String:
		value := p.currentString()
		raw := p.token.Raw(p.scanner)
		p.next()
		return &ast.Expression{Expr: &ast.StringLiteral{Idx: idx, Value: value, Raw: raw}}
	case token.Number:
		raw := p.token.Raw(p.scanner)
		value, err := parseNumberLiteral(raw)
		if err != nil {
			p.errorf("%s", err.Error())
		}
		p.next()
		return &ast.Expression{Expr: &ast.NumberLiteral{Idx: idx, Value: value, Raw: raw}}
	case token.Slash, token.QuotientAssign:
		pattern, flags, literal := p.scanner.ParseRegExp()
		p.next()
		return &ast.Expression{Expr: &ast.RegExpLiteral{Idx: idx, Literal: literal, Pattern: pattern, Flags: flags}}
	case token.LeftBrace:
		return &ast.Expression{Expr: p.parseObjectLiteral()}
	case token.LeftBracket:
		return &ast.Expression{Expr: p.parseArrayLiteral()}
	case token.LeftParenthesis:
		return p.parseParenthesisedExpression()
	case token.NoSubstitutionTemplate, token.TemplateHead:
		return &ast.Expression{Expr: p.parseTemplateLiteral(nil)}
	case token.This:
		p.next()
		return &ast.Expression{Expr: &ast.ThisExpression{Idx: idx}}
	case token.Super:
		p.next()
		switch p.currentKind() {
		case token.Period, token.LeftBracket, token.LeftParenthesis:
		default:
			p.errorf("'super' keyword unexpected here")
		}
		return &ast.Expression{Expr: &ast.SuperExpression{Idx: idx}}
	case token.Async:
		if next := p.peek(); next.Kind == token.Function && !next.OnNewLine {
			p.next()
			return &ast.Expression{Expr: p.parseFunction(false, true, idx)}
		}
	case token.Function:
		return &ast.Expression{Expr: p.parseFunction(false, false, idx)}
	case token.Class:
		return &ast.Expression{Expr: p.parseClass(false)}
	case token.Import:
		return p.parseImportExpression()
	case token.PrivateIdentifier:
		// Only valid as the left operand of in, which the binary loop checks.
		return &ast.Expression{Expr: p.parsePrivateIdentifier()}
	}

	if p.isBindingId(p.currentKind()) {
		return &ast.Expression{Expr: p.parseIdentifier()}
	}

	p.errorUnexpectedToken(p.currentKind())
	p.nextStatement()
	return &ast.Expression{Expr: &ast.InvalidExpression{From: idx, To: p.currentOffset()}}
}

func (p *parser) parsePrivateIdentifier() *ast.PrivateIdentifier {
	idx := p.currentOffset()
	name := p.currentString()
	p.next()
	return &ast.PrivateIdentifier{Identifier: &ast.Identifier{Idx: idx + 1, Name: name}}
}

// parseImportExpression parses import(source[, options]) and import.meta.
func (p *parser) parseImportExpression() *ast.Expression {
	idx := p.expect(token.Import)
	if p.currentKind() == token.Period {
		p.next()
		if !p.isIdentifierNamed("meta") {
			p.errorf("The only valid meta property for import is 'import.meta'")
		}
		return &ast.Expression{Expr: &ast.MetaProperty{
			Meta:     &ast.Identifier{Idx: idx, Name: "import"},
			Property: p.parseIdentifier(),
			Idx:      idx,
		}}
	}

	p.expect(token.LeftParenthesis)
	node := &ast.ImportExpression{Import: idx}
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	node.Source = p.parseAssignmentExpression()
	if p.currentKind() == token.Comma {
		p.next()
		if p.currentKind() != token.RightParenthesis {
			node.Options = p.parseAssignmentExpression()
			if p.currentKind() == token.Comma {
				p.next()
			}
		}
	}
	p.scope.allowIn = allowIn
	node.RightParenthesis = p.expect(token.RightParenthesis)
	return &ast.Expression{Expr: node}
}

func (p *parser) parseParenthesisedExpression() *ast.Expression {
	opening := p.expect(token.LeftParenthesis)
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	defer func() { p.scope.allowIn = allowIn }()

	var list ast.Expressions
	for p.currentKind() != token.RightParenthesis && p.currentKind() != token.Eof {
		if p.currentKind() == token.Ellipsis {
			// Only valid in an arrow parameter list; the caller rescans.
			start := p.currentOffset()
			p.errorUnexpectedToken(token.Ellipsis)
			p.next()
			expr := p.parseAssignmentExpression()
			list = append(list, ast.Expression{Expr: &ast.InvalidExpression{From: start, To: expr.Idx1()}})
		} else {
			list = append(list, *p.parseAssignmentExpression())
		}
		if p.currentKind() != token.Comma {
			break
		}
		p.next()
		if p.currentKind() == token.RightParenthesis {
			p.errorUnexpectedToken(token.RightParenthesis)
		}
	}
	closing := p.expect(token.RightParenthesis)

	switch len(list) {
	case 0:
		p.errorAt(closing, errUnexpectedToken, token.RightParenthesis)
		return &ast.Expression{Expr: &ast.InvalidExpression{From: opening, To: closing + 1}}
	case 1:
		return &list[0]
	}
	return &ast.Expression{Expr: &ast.SequenceExpression{Sequence: list}}
}

func (p *parser) parseObjectPropertyKey() (key *ast.Expression, computed bool) {
	idx := p.currentOffset()
	switch kind := p.currentKind(); {
	case kind == token.LeftBracket:
		p.next()
		allowIn := p.scope.allowIn
		p.scope.allowIn = true
		key = p.parseAssignmentExpression()
		p.scope.allowIn = allowIn
		p.expect(token.RightBracket)
		return key, true
	case kind == token.String:
		value := p.currentString()
		raw := p.token.Raw(p.scanner)
		p.next()
		return &ast.Expression{Expr: &ast.StringLiteral{Idx: idx, Value: value, Raw: raw}}, false
	case kind == token.Number:
		raw := p.token.Raw(p.scanner)
		value, err := parseNumberLiteral(raw)
		if err != nil {
			p.errorf("%s", err.Error())
		}
		p.next()
		return &ast.Expression{Expr: &ast.NumberLiteral{Idx: idx, Value: value, Raw: raw}}, false
	case kind == token.PrivateIdentifier:
		return &ast.Expression{Expr: p.parsePrivateIdentifier()}, false
	case token.ID(kind):
		return &ast.Expression{Expr: p.parseIdentifier()}, false
	}
	p.errorUnexpectedToken(p.currentKind())
	p.next()
	return &ast.Expression{Expr: &ast.InvalidExpression{From: idx, To: p.currentOffset()}}, false
}

// isPropertyKeyStart reports whether the current token can begin a
// property name, used to tell get/set/async/static modifiers from
// properties with those names.
func (p *parser) isPropertyKeyStart() bool {
	switch kind := p.currentKind(); {
	case kind == token.LeftBracket, kind == token.String, kind == token.Number,
		kind == token.PrivateIdentifier, kind == token.Multiply:
		return true
	case token.ID(kind):
		return true
	}
	return false
}

func (p *parser) parseObjectProperty() ast.Property {
	if p.currentKind() == token.Ellipsis {
		idx := p.currentOffset()
		p.next()
		return ast.Property{Prop: &ast.SpreadElement{Ellipsis: idx, Expression: p.parseAssignmentExpression()}}
	}

	start := p.currentOffset()
	kind := ast.PropertyKindValue
	async, generator := false, false

	if p.isIdentifierNamed("get") || p.isIdentifierNamed("set") || p.currentKind() == token.Async {
		st := p.mark()
		word := p.currentKind()
		name := p.currentString()
		p.next()
		if p.isPropertyKeyStart() && !(word == token.Async && p.token.OnNewLine) {
			switch {
			case word == token.Async:
				async = true
			case name == "get":
				kind = ast.PropertyKindGet
			default:
				kind = ast.PropertyKindSet
			}
		} else {
			p.restore(st)
		}
	}
	if p.currentKind() == token.Multiply && kind == ast.PropertyKindValue {
		generator = true
		p.next()
	}

	keyKind := p.currentKind()
	key, computed := p.parseObjectPropertyKey()
	if _, private := key.Expr.(*ast.PrivateIdentifier); private {
		p.errorAt(start, "Private names are not allowed in object literals")
	}

	if kind != ast.PropertyKindValue || async || generator || p.currentKind() == token.LeftParenthesis {
		if kind == ast.PropertyKindValue {
			kind = ast.PropertyKindMethod
		}
		return ast.Property{Prop: &ast.PropertyKeyed{
			Key:      key,
			Kind:     kind,
			Value:    &ast.Expression{Expr: p.parseMethodDefinition(start, async, generator)},
			Computed: computed,
		}}
	}

	if p.currentKind() == token.Colon {
		p.next()
		return ast.Property{Prop: &ast.PropertyKeyed{
			Key:      key,
			Kind:     ast.PropertyKindValue,
			Value:    p.parseAssignmentExpression(),
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
		// Cover grammar for {a = 1} = obj; only valid once reinterpreted
		// as a pattern.
		p.next()
		short.Initializer = p.parseAssignmentExpression()
	}
	return ast.Property{Prop: short}
}

// parseMethodDefinition parses the parameter list and body of an object
// or class method whose key has already been read.
func (p *parser) parseMethodDefinition(start ast.Idx, async, generator bool) *ast.FunctionLiteral {
	node := &ast.FunctionLiteral{
		Function:  start,
		Async:     async,
		Generator: generator,
	}
	p.openFunctionScope(async, generator)
	node.ParameterList = p.parseFunctionParameterList()
	node.Body = p.parseBlockStatement()
	p.closeScope()
	return node
}

func (p *parser) parseObjectLiteral() *ast.ObjectLiteral {
	node := &ast.ObjectLiteral{LeftBrace: p.expect(token.LeftBrace)}
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		node.Value = append(node.Value, p.parseObjectProperty())
		if p.currentKind() != token.RightBrace {
			p.expect(token.Comma)
		}
	}
	p.scope.allowIn = allowIn
	node.RightBrace = p.expect(token.RightBrace)
	return node
}

func (p *parser) parseArrayLiteral() *ast.ArrayLiteral {
	node := &ast.ArrayLiteral{LeftBracket: p.expect(token.LeftBracket)}
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	for p.currentKind() != token.RightBracket && p.currentKind() != token.Eof {
		switch p.currentKind() {
		case token.Comma:
			node.Value = append(node.Value, ast.Expression{})
			p.next()
			continue
		case token.Ellipsis:
			idx := p.currentOffset()
			p.next()
			node.Value = append(node.Value, ast.Expression{Expr: &ast.SpreadElement{Ellipsis: idx, Expression: p.parseAssignmentExpression()}})
		default:
			node.Value = append(node.Value, *p.parseAssignmentExpression())
		}
		if p.currentKind() != token.RightBracket {
			p.expect(token.Comma)
		}
	}
	p.scope.allowIn = allowIn
	node.RightBracket = p.expect(token.RightBracket)
	return node
}

// parseTemplateLiteral parses a template starting at its first part. Tagged
// templates may contain malformed escapes; their cooked value is then
// undefined and Valid is false.
func (p *parser) parseTemplateLiteral(tag *ast.Expression) *ast.TemplateLiteral {
	node := &ast.TemplateLiteral{OpenQuote: p.currentOffset(), Tag: tag}
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	defer func() { p.scope.allowIn = allowIn }()

	for {
		kind := p.currentKind()
		element := ast.TemplateElement{
			Idx:     p.currentOffset() + 1,
			Literal: p.token.TemplateLiteral(p.scanner),
			Parsed:  p.currentString(),
			Valid:   !p.scanner.TemplateInvalid,
		}
		if !element.Valid {
			element.Parsed = ""
			if tag == nil {
				p.errorf("Invalid escape sequence in template")
			}
		}
		node.Elements = append(node.Elements, element)

		if kind == token.NoSubstitutionTemplate || kind == token.TemplateTail {
			node.CloseQuote = p.token.Idx1 - 1
			p.next()
			return node
		}
		if kind != token.TemplateHead && kind != token.TemplateMiddle {
			p.errorUnexpectedToken(kind)
			node.CloseQuote = p.currentOffset()
			return node
		}

		p.next()
		node.Expressions = append(node.Expressions, *p.parseExpression())
		if p.currentKind() != token.RightBrace {
			p.errorUnexpectedToken(p.currentKind())
			node.CloseQuote = p.currentOffset()
			return node
		}
		p.scanner.ReadTemplateContinuation()
		p.token = p.scanner.Token
	}
}

func (p *parser) parseArgumentList() (argumentList ast.Expressions, idx0, idx1 ast.Idx) {
	idx0 = p.expect(token.LeftParenthesis)
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	for p.currentKind() != token.RightParenthesis && p.currentKind() != token.Eof {
		if p.currentKind() == token.Ellipsis {
			idx := p.currentOffset()
			p.next()
			argumentList = append(argumentList, ast.Expression{Expr: &ast.SpreadElement{Ellipsis: idx, Expression: p.parseAssignmentExpression()}})
		} else {
			argumentList = append(argumentList, *p.parseAssignmentExpression())
		}
		if p.currentKind() != token.Comma {
			break
		}
		p.next()
	}
	p.scope.allowIn = allowIn
	idx1 = p.expect(token.RightParenthesis)
	return
}

func (p *parser) parseCallExpression(left *ast.Expression) *ast.Expression {
	argumentList, idx0, idx1 := p.parseArgumentList()
	return &ast.Expression{Expr: &ast.CallExpression{
		Callee:           left,
		LeftParenthesis:  idx0,
		ArgumentList:     argumentList,
		RightParenthesis: idx1,
	}}
}

func (p *parser) parseDotMember(left *ast.Expression) *ast.Expression {
	if p.currentKind() == token.PrivateIdentifier {
		return &ast.Expression{Expr: &ast.PrivateDotExpression{
			Left:       left,
			Identifier: p.parsePrivateIdentifier(),
		}}
	}
	if !token.ID(p.currentKind()) {
		idx := p.currentOffset()
		p.errorUnexpectedToken(p.currentKind())
		p.next()
		return &ast.Expression{Expr: &ast.InvalidExpression{From: idx, To: p.currentOffset()}}
	}
	return &ast.Expression{Expr: &ast.MemberExpression{
		Object:   left,
		Property: &ast.MemberProperty{Prop: p.parseIdentifier()},
	}}
}

func (p *parser) parseBracketMember(left *ast.Expression) *ast.Expression {
	idx0 := p.expect(token.LeftBracket)
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	member := p.parseExpression()
	p.scope.allowIn = allowIn
	idx1 := p.expect(token.RightBracket)
	return &ast.Expression{Expr: &ast.MemberExpression{
		Object: left,
		Property: &ast.MemberProperty{Prop: &ast.ComputedProperty{
			LeftBracket:  idx0,
			Expr:         member,
			RightBracket: idx1,
		}},
	}}
}

func (p *parser) parseNewExpression() *ast.Expression {
	idx := p.expect(token.New)
	if p.currentKind() == token.Period {
		p.next()
		if !p.isIdentifierNamed("target") {
			p.errorf("The only valid meta property for new is 'new.target'")
		}
		return &ast.Expression{Expr: &ast.MetaProperty{
			Meta:     &ast.Identifier{Idx: idx, Name: "new"},
			Property: p.parseIdentifier(),
			Idx:      idx,
		}}
	}

	callee := p.parseLeftHandSideExpression()
	node := &ast.NewExpression{New: idx, Callee: callee}
	if p.currentKind() == token.LeftParenthesis {
		node.ArgumentList, node.LeftParenthesis, node.RightParenthesis = p.parseArgumentList()
	}
	return &ast.Expression{Expr: node}
}

// parseLeftHandSideExpression parses a member expression without calls,
// the callee of a new expression.
func (p *parser) parseLeftHandSideExpression() *ast.Expression {
	var left *ast.Expression
	if p.currentKind() == token.New {
		left = p.parseNewExpression()
	} else {
		left = p.parsePrimaryExpression()
	}

	for {
		switch p.currentKind() {
		case token.Period:
			p.next()
			left = p.parseDotMember(left)
		case token.LeftBracket:
			left = p.parseBracketMember(left)
		case token.NoSubstitutionTemplate, token.TemplateHead:
			left = &ast.Expression{Expr: p.parseTemplateLiteral(left)}
		case token.QuestionDot:
			p.errorf("Invalid optional chain from new expression")
			return left
		default:
			return left
		}
	}
}

func (p *parser) parseLeftHandSideExpressionAllowCall() *ast.Expression {
	var left *ast.Expression
	if p.currentKind() == token.New {
		left = p.parseNewExpression()
	} else {
		left = p.parsePrimaryExpression()
	}

	optional := false
	for {
		switch p.currentKind() {
		case token.Period:
			p.next()
			left = p.parseDotMember(left)
		case token.LeftBracket:
			left = p.parseBracketMember(left)
		case token.LeftParenthesis:
			left = p.parseCallExpression(left)
		case token.QuestionDot:
			optional = true
			p.next()
			left = &ast.Expression{Expr: &ast.Optional{Expr: left}}
			switch p.currentKind() {
			case token.LeftParenthesis:
				left = p.parseCallExpression(left)
			case token.LeftBracket:
				left = p.parseBracketMember(left)
			default:
				left = p.parseDotMember(left)
			}
		case token.NoSubstitutionTemplate, token.TemplateHead:
			if optional {
				p.errorf("Invalid tagged template on optional chain")
			}
			left = &ast.Expression{Expr: p.parseTemplateLiteral(left)}
		default:
			if optional {
				left = &ast.Expression{Expr: &ast.OptionalChain{Base: left}}
			}
			return left
		}
	}
}

func (p *parser) parseUpdateExpression() *ast.Expression {
	switch p.currentKind() {
	case token.Increment, token.Decrement:
		tkn := p.currentKind()
		idx := p.currentOffset()
		p.next()
		operand := p.parseUnaryExpression()
		if !isSimpleAssignTarget(operand) {
			p.errorAt(idx, "Invalid left-hand side in prefix operation")
		}
		return &ast.Expression{Expr: &ast.UpdateExpression{Operator: tkn, Idx: idx, Operand: operand}}
	}

	operand := p.parseLeftHandSideExpressionAllowCall()
	switch p.currentKind() {
	case token.Increment, token.Decrement:
		if p.token.OnNewLine {
			break
		}
		tkn := p.currentKind()
		idx := p.currentOffset()
		p.next()
		if !isSimpleAssignTarget(operand) {
			p.errorAt(idx, "Invalid left-hand side in postfix operation")
		}
		return &ast.Expression{Expr: &ast.UpdateExpression{Operator: tkn, Idx: idx, Operand: operand, Postfix: true}}
	}
	return operand
}

func (p *parser) parseUnaryExpression() *ast.Expression {
	switch p.currentKind() {
	case token.Plus, token.Minus, token.Not, token.BitwiseNot, token.Delete, token.Void, token.Typeof:
		tkn := p.currentKind()
		idx := p.currentOffset()
		p.next()
		return &ast.Expression{Expr: &ast.UnaryExpression{Operator: tkn, Idx: idx, Operand: p.parseUnaryExpression()}}
	case token.Await:
		if p.scope.allowAwait {
			idx := p.currentOffset()
			p.next()
			if p.scope.inFuncParams {
				p.errorAt(idx, "Illegal await-expression in formal parameters of async function")
			}
			return &ast.Expression{Expr: &ast.AwaitExpression{Await: idx, Argument: p.parseUnaryExpression()}}
		}
	}
	return p.parseUpdateExpression()
}

func (p *parser) parseBinaryExpressionOrHigher(minPrecedence Precedence) *ast.Expression {
	lhsParenthesized := p.currentKind() == token.LeftParenthesis
	lhs := p.parseUnaryExpression()
	return p.parseBinaryExpressionRest(lhs, lhsParenthesized, minPrecedence)
}

func (p *parser) parseBinaryExpressionRest(lhs *ast.Expression, lhsParenthesized bool, minPrecedence Precedence) *ast.Expression {
	if _, private := lhs.Expr.(*ast.PrivateIdentifier); private && (p.currentKind() != token.In || !p.scope.allowIn) {
		p.errorAt(lhs.Idx0(), "Unexpected private name")
	}

	for {
		kind := p.currentKind()
		lbp := kindToPrecedence(kind)
		if lbp <= minPrecedence {
			break
		}
		if kind == token.In && !p.scope.allowIn {
			break
		}
		p.next()

		rhsParenthesized := p.currentKind() == token.LeftParenthesis
		rhs := p.parseBinaryExpressionOrHigher(lbp ^ 1)

		switch kind {
		case token.Coalesce:
			if isLogicalAndOr(rhs) && !rhsParenthesized || isLogicalAndOr(lhs) && !lhsParenthesized {
				p.errorf("Logical expressions and coalesce expressions cannot be mixed. Wrap either by parentheses")
			}
		case token.LogicalAnd, token.LogicalOr:
			if isCoalesce(rhs) && !rhsParenthesized || isCoalesce(lhs) && !lhsParenthesized {
				p.errorf("Logical expressions and coalesce expressions cannot be mixed. Wrap either by parentheses")
			}
		case token.Exponent:
			if !lhsParenthesized {
				switch lhs.Expr.(type) {
				case *ast.UnaryExpression, *ast.AwaitExpression:
					p.errorf("Unary operator used immediately before exponentiation expression. Parenthesis must be used to disambiguate operator precedence")
				}
			}
		}
		lhs = &ast.Expression{Expr: &ast.BinaryExpression{Operator: kind, Left: lhs, Right: rhs}}
		lhsParenthesized = false
	}
	return lhs
}

func isLogicalAndOr(e *ast.Expression) bool {
	b, ok := e.Expr.(*ast.BinaryExpression)
	return ok && (b.Operator == token.LogicalAnd || b.Operator == token.LogicalOr)
}

func isCoalesce(e *ast.Expression) bool {
	b, ok := e.Expr.(*ast.BinaryExpression)
	return ok && b.Operator == token.Coalesce
}

func (p *parser) parseConditionalExpression() *ast.Expression {
	left := p.parseBinaryExpressionOrHigher(PrecedenceLowest)
	if p.currentKind() != token.QuestionMark {
		return left
	}
	p.next()
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	consequent := p.parseAssignmentExpression()
	p.scope.allowIn = allowIn
	p.expect(token.Colon)
	return &ast.Expression{Expr: &ast.ConditionalExpression{
		Test:       left,
		Consequent: consequent,
		Alternate:  p.parseAssignmentExpression(),
	}}
}

func (p *parser) parseArrowFunction(start ast.Idx, paramList ast.ParameterList, async bool) *ast.Expression {
	if p.token.OnNewLine {
		p.errorf("Line terminator not permitted before arrow")
	}
	p.expect(token.Arrow)
	node := &ast.ArrowFunctionLiteral{
		Start:         start,
		ParameterList: paramList,
		Async:         async,
	}
	node.Body = p.parseArrowFunctionBody(async)
	return &ast.Expression{Expr: node}
}

func (p *parser) parseArrowFunctionBody(async bool) *ast.ConciseBody {
	p.openFunctionScope(async, false)
	p.scope.allowIn = p.scope.outer.allowIn
	defer p.closeScope()
	if p.currentKind() == token.LeftBrace {
		p.scope.allowIn = true
		return &ast.ConciseBody{Body: p.parseBlockStatement()}
	}
	return &ast.ConciseBody{Body: p.parseAssignmentExpression()}
}

// parseArrowParameters rescans a parenthesized cover expression as an
// arrow function parameter list.
func (p *parser) parseArrowParameters(state parserState, async bool) ast.ParameterList {
	p.restore(state)
	if async {
		p.next()
	}
	p.openFunctionScope(async, false)
	params := p.parseFunctionParameterList()
	p.closeScope()
	return params
}

func (p *parser) parseAssignmentExpression() *ast.Expression {
	start := p.currentOffset()
	parenthesis := false
	async := false
	var state parserState

	switch p.currentKind() {
	case token.LeftParenthesis:
		state = p.mark()
		parenthesis = true
	case token.Async:
		next := p.peek()
		if !next.OnNewLine {
			if p.isBindingId(next.Kind) && next.Kind != token.Async {
				p.next()
				id := p.parseBindingIdentifier()
				return p.parseArrowFunction(start, singleParameter(id), true)
			}
			if next.Kind == token.LeftParenthesis {
				state = p.mark()
				async = true
			}
		}
	case token.Yield:
		if p.scope.allowYield {
			return &ast.Expression{Expr: p.parseYieldExpression()}
		}
	}

	left := p.parseConditionalExpression()

	if p.currentKind() == token.Arrow {
		switch {
		case async:
			if _, ok := left.Expr.(*ast.CallExpression); ok {
				return p.parseArrowFunction(start, p.parseArrowParameters(state, true), true)
			}
		case parenthesis:
			return p.parseArrowFunction(start, p.parseArrowParameters(state, false), false)
		default:
			if id, ok := left.Expr.(*ast.Identifier); ok {
				return p.parseArrowFunction(start, singleParameter(id), false)
			}
		}
		p.errorf("Malformed arrow function parameter list")
		return &ast.Expression{Expr: &ast.InvalidExpression{From: start, To: left.Idx1()}}
	}

	operator := p.currentKind()
	if !operator.IsAssign() {
		return left
	}

	idx := p.currentOffset()
	switch left.Expr.(type) {
	case *ast.ObjectLiteral, *ast.ArrayLiteral:
		if operator == token.Assign && !parenthesis {
			left = p.reinterpretAsAssignmentTarget(left)
			break
		}
		p.errorAt(idx, "Invalid left-hand side in assignment")
	default:
		if !isSimpleAssignTarget(left) {
			p.errorAt(idx, "Invalid left-hand side in assignment")
		}
	}
	p.next()
	return &ast.Expression{Expr: &ast.AssignExpression{
		Operator: operator,
		Left:     left,
		Right:    p.parseAssignmentExpression(),
	}}
}

func singleParameter(id *ast.Identifier) ast.ParameterList {
	return ast.ParameterList{
		Opening: id.Idx,
		Closing: id.Idx1() - 1,
		List: ast.VariableDeclarators{{
			Target: &ast.BindingTarget{Target: id},
		}},
	}
}

func isSimpleAssignTarget(e *ast.Expression) bool {
	switch e.Expr.(type) {
	case *ast.Identifier, *ast.MemberExpression, *ast.PrivateDotExpression:
		return true
	}
	return false
}

func (p *parser) parseYieldExpression() *ast.YieldExpression {
	idx := p.expect(token.Yield)
	if p.scope.inFuncParams {
		p.errorAt(idx, "Yield expression not allowed in formal parameter")
	}
	node := &ast.YieldExpression{Yield: idx}

	if !p.token.OnNewLine && p.currentKind() == token.Multiply {
		node.Delegate = true
		p.next()
	}
	if node.Delegate || !p.canInsertSemicolon() && startsExpression(p.currentKind()) {
		node.Argument = p.parseAssignmentExpression()
	}
	return node
}

// startsExpression reports whether an expression can begin with kind. It
// decides whether yield has an argument.
func startsExpression(kind token.Token) bool {
	switch kind {
	case token.RightParenthesis, token.RightBracket, token.RightBrace, token.Comma,
		token.Colon, token.Semicolon, token.Eof, token.QuestionMark, token.Arrow,
		token.In, token.InstanceOf, token.TemplateMiddle, token.TemplateTail:
		return false
	}
	if kind.IsAssign() {
		return false
	}
	return kindToPrecedence(kind) == 0 || kind == token.Plus || kind == token.Minus || kind == token.Slash
}

func (p *parser) parseExpression() *ast.Expression {
	left := p.parseAssignmentExpression()
	if p.currentKind() != token.Comma {
		return left
	}
	list := ast.Expressions{*left}
	for p.currentKind() == token.Comma {
		p.next()
		list = append(list, *p.parseAssignmentExpression())
	}
	return &ast.Expression{Expr: &ast.SequenceExpression{Sequence: list}}
}
