package parser

import (
	"github.com/t14raptor/replify/ast"
	"github.com/t14raptor/replify/token"
)

func (p *parser) parseProgram() *ast.Program {
	program := &ast.Program{}
	for p.currentKind() != token.Eof {
		idx := p.currentOffset()
		if p.currentKind() == token.Import && p.isImportDeclaration() {
			program.Body = append(program.Body, ast.Statement{Stmt: p.parseImportDeclaration()})
		} else {
			program.Body = append(program.Body, *p.parseStatement())
		}
		if p.currentOffset() == idx && p.currentKind() != token.Eof {
			p.next()
		}
	}
	return program
}

func (p *parser) parseStatementList() (list ast.Statements) {
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		idx := p.currentOffset()
		list = append(list, *p.parseStatement())
		if p.currentOffset() == idx && p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
			p.next()
		}
	}
	return
}

func (p *parser) parseBlockStatement() *ast.BlockStatement {
	node := &ast.BlockStatement{}
	node.LeftBrace = p.expect(token.LeftBrace)
	node.List = p.parseStatementList()
	node.RightBrace = p.expect(token.RightBrace)
	return node
}

func (p *parser) parseStatement() *ast.Statement {
	idx := p.currentOffset()
	switch p.currentKind() {
	case token.Semicolon:
		p.next()
		return &ast.Statement{Stmt: &ast.EmptyStatement{Semicolon: idx}}
	case token.LeftBrace:
		return &ast.Statement{Stmt: p.parseBlockStatement()}
	case token.Var, token.Const:
		return p.parseVariableStatement()
	case token.Let:
		if p.isLetDeclaration() {
			return p.parseVariableStatement()
		}
	case token.Function:
		return &ast.Statement{Stmt: &ast.FunctionDeclaration{Function: p.parseFunction(true, false, idx)}}
	case token.Async:
		if next := p.peek(); next.Kind == token.Function && !next.OnNewLine {
			p.next()
			return &ast.Statement{Stmt: &ast.FunctionDeclaration{Function: p.parseFunction(true, true, idx)}}
		}
	case token.Class:
		return &ast.Statement{Stmt: &ast.ClassDeclaration{Class: p.parseClass(true)}}
	case token.If:
		return p.parseIfStatement()
	case token.Do:
		return p.parseDoWhileStatement()
	case token.While:
		return p.parseWhileStatement()
	case token.For:
		return p.parseForStatement()
	case token.Break, token.Continue:
		return p.parseBranchStatement()
	case token.Return:
		return p.parseReturnStatement()
	case token.With:
		return p.parseWithStatement()
	case token.Switch:
		return p.parseSwitchStatement()
	case token.Throw:
		return p.parseThrowStatement()
	case token.Try:
		return p.parseTryStatement()
	case token.Debugger:
		p.next()
		p.semicolon()
		return &ast.Statement{Stmt: &ast.DebuggerStatement{Debugger: idx}}
	case token.Import:
		if p.isImportDeclaration() {
			p.errorf("Cannot use import statement outside the top level")
			p.parseImportDeclaration()
			return &ast.Statement{Stmt: &ast.BadStatement{From: idx, To: p.currentOffset()}}
		}
	case token.Export:
		p.errorf("Unexpected token 'export'")
		p.next()
		p.nextStatement()
		return &ast.Statement{Stmt: &ast.BadStatement{From: idx, To: p.currentOffset()}}
	}

	expression := p.parseExpression()
	if id, ok := expression.Expr.(*ast.Identifier); ok && p.currentKind() == token.Colon {
		return p.parseLabelledStatement(id)
	}
	p.semicolon()
	return &ast.Statement{Stmt: &ast.ExpressionStatement{Expression: expression}}
}

func (p *parser) parseLabelledStatement(label *ast.Identifier) *ast.Statement {
	colon := p.expect(token.Colon)
	if p.scope.hasLabel(label.Name) {
		p.errorAt(label.Idx, "Label '%s' has already been declared", label.Name)
	}
	p.scope.labels = append(p.scope.labels, label.Name)
	statement := p.parseStatement()
	p.scope.labels = p.scope.labels[:len(p.scope.labels)-1]
	return &ast.Statement{Stmt: &ast.LabelledStatement{
		Label:     label,
		Colon:     colon,
		Statement: statement,
	}}
}

// isLetDeclaration reports whether the let at the current token starts a
// lexical declaration rather than an identifier reference.
func (p *parser) isLetDeclaration() bool {
	next := p.peek()
	return next.Kind == token.LeftBracket || next.Kind == token.LeftBrace || p.isBindingId(next.Kind)
}

func (p *parser) parseVariableDeclarationList() *ast.VariableDeclaration {
	node := &ast.VariableDeclaration{Idx: p.currentOffset(), Token: p.currentKind()}
	p.next()
	for {
		declarator := ast.VariableDeclarator{Target: p.parseBindingTarget()}
		if p.currentKind() == token.Assign {
			p.next()
			declarator.Initializer = p.parseAssignmentExpression()
		}
		node.List = append(node.List, declarator)
		if p.currentKind() != token.Comma {
			return node
		}
		p.next()
	}
}

func (p *parser) checkDeclarationInitializers(decl *ast.VariableDeclaration) {
	for _, declarator := range decl.List {
		if declarator.Initializer != nil {
			continue
		}
		switch declarator.Target.Target.(type) {
		case *ast.ObjectPattern, *ast.ArrayPattern:
			p.errorAt(declarator.Target.Idx0(), "Missing initializer in destructuring declaration")
		default:
			if decl.Token == token.Const {
				p.errorAt(declarator.Target.Idx0(), "Missing initializer in const declaration")
			}
		}
	}
}

func (p *parser) parseVariableStatement() *ast.Statement {
	decl := p.parseVariableDeclarationList()
	p.checkDeclarationInitializers(decl)
	p.semicolon()
	return &ast.Statement{Stmt: decl}
}

// parseFunction parses a function declaration or expression. start is the
// position of the async keyword for async functions, otherwise that of the
// function keyword.
func (p *parser) parseFunction(declaration, async bool, start ast.Idx) *ast.FunctionLiteral {
	node := &ast.FunctionLiteral{Function: start, Async: async}
	p.expect(token.Function)
	if p.currentKind() == token.Multiply {
		node.Generator = true
		p.next()
	}

	if declaration {
		if p.currentKind() == token.LeftParenthesis {
			p.errorf("Function statements require a function name")
		} else {
			node.Name = p.parseBindingIdentifier()
		}
	}
	p.openFunctionScope(async, node.Generator)
	defer p.closeScope()
	if !declaration && p.currentKind() != token.LeftParenthesis {
		// The name of a function expression follows its own await and
		// yield rules.
		node.Name = p.parseBindingIdentifier()
	}
	node.ParameterList = p.parseFunctionParameterList()
	node.Body = p.parseBlockStatement()
	return node
}

func (p *parser) parseFunctionParameterList() ast.ParameterList {
	opening := p.expect(token.LeftParenthesis)
	inFuncParams := p.scope.inFuncParams
	p.scope.inFuncParams = true
	defer func() { p.scope.inFuncParams = inFuncParams }()

	var list ast.VariableDeclarators
	var rest *ast.BindingTarget
	for p.currentKind() != token.RightParenthesis && p.currentKind() != token.Eof {
		if p.currentKind() == token.Ellipsis {
			p.next()
			rest = p.parseBindingTarget()
			if p.currentKind() != token.RightParenthesis {
				p.errorf("Rest parameter must be last formal parameter")
			}
			break
		}
		param := ast.VariableDeclarator{Target: p.parseBindingTarget()}
		if p.currentKind() == token.Assign {
			p.next()
			param.Initializer = p.parseAssignmentExpression()
		}
		list = append(list, param)
		if p.currentKind() != token.RightParenthesis {
			p.expect(token.Comma)
		}
	}
	closing := p.expect(token.RightParenthesis)

	return ast.ParameterList{
		Opening: opening,
		List:    list,
		Rest:    rest,
		Closing: closing,
	}
}

func (p *parser) parseClass(declaration bool) *ast.ClassLiteral {
	node := &ast.ClassLiteral{Class: p.expect(token.Class)}

	if p.isBindingId(p.currentKind()) {
		node.Name = p.parseIdentifier()
	} else if declaration {
		p.errorf("Class statements require a class name")
	}

	if p.currentKind() == token.Extends {
		p.next()
		node.SuperClass = p.parseLeftHandSideExpressionAllowCall()
	}

	p.expect(token.LeftBrace)
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		if p.currentKind() == token.Semicolon {
			p.next()
			continue
		}
		idx := p.currentOffset()
		node.Body = append(node.Body, p.parseClassElement())
		if p.currentOffset() == idx {
			p.next()
		}
	}
	node.RightBrace = p.expect(token.RightBrace)
	return node
}

func (p *parser) parseClassElement() ast.ClassElement {
	start := p.currentOffset()

	static := false
	if p.currentKind() == token.Static {
		st := p.mark()
		p.next()
		if p.currentKind() == token.LeftBrace {
			p.openFunctionScope(false, false)
			block := p.parseBlockStatement()
			p.closeScope()
			return ast.ClassElement{Element: &ast.ClassStaticBlock{Static: start, Block: block}}
		}
		if p.isPropertyKeyStart() {
			static = true
		} else {
			p.restore(st)
		}
	}

	kind := ast.PropertyKindMethod
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
	if p.currentKind() == token.Multiply && kind == ast.PropertyKindMethod {
		generator = true
		p.next()
	}

	key, computed := p.parseObjectPropertyKey()

	if kind != ast.PropertyKindMethod || async || generator || p.currentKind() == token.LeftParenthesis {
		return ast.ClassElement{Element: &ast.MethodDefinition{
			Idx:      start,
			Key:      key,
			Kind:     kind,
			Body:     p.parseMethodDefinition(start, async, generator),
			Computed: computed,
			Static:   static,
		}}
	}

	field := &ast.FieldDefinition{
		Idx:      start,
		Key:      key,
		Computed: computed,
		Static:   static,
	}
	if p.currentKind() == token.Assign {
		p.next()
		p.openFunctionScope(false, false)
		field.Initializer = p.parseAssignmentExpression()
		p.closeScope()
	}
	p.semicolon()
	return ast.ClassElement{Element: field}
}

func (p *parser) parseIfStatement() *ast.Statement {
	node := &ast.IfStatement{If: p.expect(token.If)}
	p.expect(token.LeftParenthesis)
	node.Test = p.parseExpression()
	p.expect(token.RightParenthesis)
	node.Consequent = p.parseStatement()
	if p.currentKind() == token.Else {
		p.next()
		node.Alternate = p.parseStatement()
	}
	return &ast.Statement{Stmt: node}
}

func (p *parser) parseIterationBody() *ast.Statement {
	inIteration := p.scope.inIteration
	p.scope.inIteration = true
	defer func() { p.scope.inIteration = inIteration }()
	return p.parseStatement()
}

func (p *parser) parseDoWhileStatement() *ast.Statement {
	node := &ast.DoWhileStatement{Do: p.expect(token.Do)}
	node.Body = p.parseIterationBody()
	p.expect(token.While)
	p.expect(token.LeftParenthesis)
	node.Test = p.parseExpression()
	p.expect(token.RightParenthesis)
	if p.currentKind() == token.Semicolon {
		p.next()
	}
	return &ast.Statement{Stmt: node}
}

func (p *parser) parseWhileStatement() *ast.Statement {
	node := &ast.WhileStatement{While: p.expect(token.While)}
	p.expect(token.LeftParenthesis)
	node.Test = p.parseExpression()
	p.expect(token.RightParenthesis)
	node.Body = p.parseIterationBody()
	return &ast.Statement{Stmt: node}
}

func (p *parser) parseWithStatement() *ast.Statement {
	node := &ast.WithStatement{With: p.expect(token.With)}
	p.expect(token.LeftParenthesis)
	node.Object = p.parseExpression()
	p.expect(token.RightParenthesis)
	node.Body = p.parseStatement()
	return &ast.Statement{Stmt: node}
}

func (p *parser) parseForStatement() *ast.Statement {
	idx := p.expect(token.For)
	await := false
	if p.currentKind() == token.Await {
		if !p.scope.allowAwait {
			p.errorUnexpectedToken(token.Await)
		}
		await = true
		p.next()
	}
	p.expect(token.LeftParenthesis)

	var initializer *ast.ForLoopInitializer
	if p.currentKind() != token.Semicolon {
		allowIn := p.scope.allowIn
		p.scope.allowIn = false
		kind := p.currentKind()
		if kind == token.Var || kind == token.Const || kind == token.Let && p.isLetDeclaration() {
			decl := p.parseVariableDeclarationList()
			p.scope.allowIn = allowIn
			if len(decl.List) == 1 && (p.currentKind() == token.In || p.isIdentifierNamed("of")) {
				if decl.List[0].Initializer != nil {
					p.errorAt(decl.Idx, "for-in/of loop variable declaration may not have an initializer")
				}
				return p.parseForInOrOf(idx, &ast.ForInto{Into: decl}, await)
			}
			p.checkDeclarationInitializers(decl)
			initializer = &ast.ForLoopInitializer{Initializer: decl}
		} else {
			expr := p.parseExpression()
			p.scope.allowIn = allowIn
			if p.currentKind() == token.In || p.isIdentifierNamed("of") {
				target := p.reinterpretAsAssignmentTarget(expr)
				return p.parseForInOrOf(idx, &ast.ForInto{Into: target}, await)
			}
			initializer = &ast.ForLoopInitializer{Initializer: expr}
		}
	}

	if await {
		p.errorf("for await requires an of clause")
	}
	node := &ast.ForStatement{For: idx, Initializer: initializer}
	p.expect(token.Semicolon)
	if p.currentKind() != token.Semicolon {
		node.Test = p.parseExpression()
	}
	p.expect(token.Semicolon)
	if p.currentKind() != token.RightParenthesis {
		node.Update = p.parseExpression()
	}
	p.expect(token.RightParenthesis)
	node.Body = p.parseIterationBody()
	return &ast.Statement{Stmt: node}
}

func (p *parser) parseForInOrOf(idx ast.Idx, into *ast.ForInto, await bool) *ast.Statement {
	if p.currentKind() == token.In {
		if await {
			p.errorf("for await requires an of clause")
		}
		p.next()
		node := &ast.ForInStatement{For: idx, Into: into}
		node.Source = p.parseExpression()
		p.expect(token.RightParenthesis)
		node.Body = p.parseIterationBody()
		return &ast.Statement{Stmt: node}
	}

	p.next()
	node := &ast.ForOfStatement{For: idx, Into: into, Await: await}
	node.Source = p.parseAssignmentExpression()
	p.expect(token.RightParenthesis)
	node.Body = p.parseIterationBody()
	return &ast.Statement{Stmt: node}
}

func (p *parser) parseBranchStatement() *ast.Statement {
	kind := p.currentKind()
	idx := p.currentOffset()
	p.next()

	var label *ast.Identifier
	if !p.token.OnNewLine && p.isBindingId(p.currentKind()) {
		label = p.parseIdentifier()
		if !p.scope.hasLabel(label.Name) {
			p.errorAt(label.Idx, "Undefined label '%s'", label.Name)
		}
	}
	switch {
	case kind == token.Continue && !p.scope.inIteration:
		p.errorAt(idx, "Illegal continue statement: no surrounding iteration statement")
	case kind == token.Break && label == nil && !p.scope.inIteration && !p.scope.inSwitch:
		p.errorAt(idx, "Illegal break statement")
	}
	p.semicolon()

	if kind == token.Break {
		return &ast.Statement{Stmt: &ast.BreakStatement{Idx: idx, Label: label}}
	}
	return &ast.Statement{Stmt: &ast.ContinueStatement{Idx: idx, Label: label}}
}

// parseReturnStatement accepts return outside of functions; whether that is
// legal is left to the caller of the parser.
func (p *parser) parseReturnStatement() *ast.Statement {
	node := &ast.ReturnStatement{Return: p.expect(token.Return)}
	if !p.canInsertSemicolon() {
		node.Argument = p.parseExpression()
	}
	p.semicolon()
	return &ast.Statement{Stmt: node}
}

func (p *parser) parseSwitchStatement() *ast.Statement {
	node := &ast.SwitchStatement{Switch: p.expect(token.Switch)}
	p.expect(token.LeftParenthesis)
	node.Discriminant = p.parseExpression()
	p.expect(token.RightParenthesis)
	p.expect(token.LeftBrace)

	inSwitch := p.scope.inSwitch
	p.scope.inSwitch = true
	defer func() { p.scope.inSwitch = inSwitch }()

	seenDefault := false
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		clause := ast.CaseStatement{Case: p.currentOffset()}
		switch p.currentKind() {
		case token.Case:
			p.next()
			clause.Test = p.parseExpression()
		case token.Default:
			if seenDefault {
				p.errorf("More than one default clause in switch statement")
			}
			seenDefault = true
			p.next()
		default:
			p.errorUnexpectedToken(p.currentKind())
			p.next()
			continue
		}
		p.expect(token.Colon)
		for p.currentKind() != token.Case && p.currentKind() != token.Default &&
			p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
			idx := p.currentOffset()
			clause.Consequent = append(clause.Consequent, *p.parseStatement())
			if p.currentOffset() == idx {
				p.next()
			}
		}
		node.Body = append(node.Body, clause)
	}
	node.RightBrace = p.expect(token.RightBrace)
	return &ast.Statement{Stmt: node}
}

func (p *parser) parseThrowStatement() *ast.Statement {
	node := &ast.ThrowStatement{Throw: p.expect(token.Throw)}
	if p.token.OnNewLine {
		p.errorf("Illegal newline after throw")
	}
	node.Argument = p.parseExpression()
	p.semicolon()
	return &ast.Statement{Stmt: node}
}

func (p *parser) parseTryStatement() *ast.Statement {
	node := &ast.TryStatement{Try: p.expect(token.Try)}
	node.Body = p.parseBlockStatement()

	if p.currentKind() == token.Catch {
		catch := &ast.CatchStatement{Catch: p.currentOffset()}
		p.next()
		if p.currentKind() == token.LeftParenthesis {
			p.next()
			catch.Parameter = p.parseBindingTarget()
			p.expect(token.RightParenthesis)
		}
		catch.Body = p.parseBlockStatement()
		node.Catch = catch
	}
	if p.currentKind() == token.Finally {
		p.next()
		node.Finally = p.parseBlockStatement()
	}

	if node.Catch == nil && node.Finally == nil {
		p.errorf("Missing catch or finally after try")
	}
	return &ast.Statement{Stmt: node}
}
