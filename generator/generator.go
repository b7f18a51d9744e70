package generator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/t14raptor/replify/ast"
	"github.com/t14raptor/replify/token"
)

// Generate prints node as JavaScript source. Statements are printed one per
// line, indented by four spaces per block level.
func Generate(node ast.Node) string {
	s := &state{
		out:    &strings.Builder{},
		node:   node,
		parent: &state{},
	}
	gen(s)
	return s.out.String()
}

func gen(s *state) {
	switch n := s.node.(type) {
	case nil:
	case *ast.Program:
		for _, b := range n.Body {
			gen(s.wrap(b.Stmt))
			s.line()
		}

	// Statements.
	case *ast.BadStatement:
	case *ast.BlockStatement:
		if len(n.List) == 0 {
			s.out.WriteString("{}")
			return
		}
		s.out.WriteString("{")
		s.indent++
		for _, st := range n.List {
			s.lineAndPad()
			gen(s.wrap(st.Stmt))
		}
		s.indent--
		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.BreakStatement:
		s.out.WriteString("break")
		if n.Label != nil {
			s.out.WriteString(" " + n.Label.Name)
		}
		s.out.WriteString(";")
	case *ast.ContinueStatement:
		s.out.WriteString("continue")
		if n.Label != nil {
			s.out.WriteString(" " + n.Label.Name)
		}
		s.out.WriteString(";")
	case *ast.CaseStatement:
		if n.Test != nil {
			s.out.WriteString("case ")
			s.expr(n.Test.Expr, precLowest)
			s.out.WriteString(":")
		} else {
			s.out.WriteString("default:")
		}
		s.indent++
		for _, st := range n.Consequent {
			s.lineAndPad()
			gen(s.wrap(st.Stmt))
		}
		s.indent--
	case *ast.CatchStatement:
		s.out.WriteString("catch ")
		if n.Parameter != nil {
			s.out.WriteString("(")
			gen(s.wrap(n.Parameter.Target))
			s.out.WriteString(") ")
		}
		gen(s.wrap(n.Body))
	case *ast.DebuggerStatement:
		s.out.WriteString("debugger;")
	case *ast.DoWhileStatement:
		s.out.WriteString("do ")
		s.body(n.Body)
		s.out.WriteString(" while (")
		s.expr(n.Test.Expr, precLowest)
		s.out.WriteString(");")
	case *ast.EmptyStatement:
		s.out.WriteString(";")
	case *ast.ExpressionStatement:
		if startsAmbiguously(n.Expression.Expr) {
			s.out.WriteString("(")
			gen(s.wrap(n.Expression.Expr))
			s.out.WriteString(")")
		} else {
			s.expr(n.Expression.Expr, precLowest)
		}
		s.out.WriteString(";")
		if len(n.Comment) > 0 {
			s.out.WriteString(" // " + n.Comment)
		}
	case *ast.IfStatement:
		s.out.WriteString("if (")
		s.expr(n.Test.Expr, precLowest)
		s.out.WriteString(") ")
		s.body(n.Consequent)
		if n.Alternate != nil {
			s.out.WriteString(" else ")
			if _, ok := n.Alternate.Stmt.(*ast.IfStatement); ok {
				gen(s.wrap(n.Alternate.Stmt))
			} else {
				s.body(n.Alternate)
			}
		}
	case *ast.LabelledStatement:
		s.out.WriteString(n.Label.Name + ": ")
		gen(s.wrap(n.Statement.Stmt))
	case *ast.ReturnStatement:
		s.out.WriteString("return")
		if n.Argument != nil {
			s.out.WriteString(" ")
			s.expr(n.Argument.Expr, precLowest)
		}
		s.out.WriteString(";")
	case *ast.SwitchStatement:
		s.out.WriteString("switch (")
		s.expr(n.Discriminant.Expr, precLowest)
		s.out.WriteString(") {")
		s.indent++
		for i := range n.Body {
			s.lineAndPad()
			gen(s.wrap(&n.Body[i]))
		}
		s.indent--
		if len(n.Body) > 0 {
			s.lineAndPad()
		}
		s.out.WriteString("}")
	case *ast.ThrowStatement:
		s.out.WriteString("throw ")
		s.expr(n.Argument.Expr, precLowest)
		s.out.WriteString(";")
	case *ast.TryStatement:
		s.out.WriteString("try ")
		gen(s.wrap(n.Body))
		if n.Catch != nil {
			s.out.WriteString(" ")
			gen(s.wrap(n.Catch))
		}
		if n.Finally != nil {
			s.out.WriteString(" finally ")
			gen(s.wrap(n.Finally))
		}
	case *ast.WhileStatement:
		s.out.WriteString("while (")
		s.expr(n.Test.Expr, precLowest)
		s.out.WriteString(") ")
		s.body(n.Body)
	case *ast.WithStatement:
		s.out.WriteString("with (")
		s.expr(n.Object.Expr, precLowest)
		s.out.WriteString(") ")
		s.body(n.Body)
	case *ast.ForStatement:
		s.out.WriteString("for (")
		if n.Initializer != nil {
			init := s.wrap(n.Initializer.Initializer)
			init.noIn = true
			switch i := n.Initializer.Initializer.(type) {
			case *ast.VariableDeclaration:
				init.declaration(i)
			case *ast.Expression:
				init.expr(i.Expr, precLowest)
			}
		}
		s.out.WriteString(";")
		if n.Test != nil {
			s.out.WriteString(" ")
			s.expr(n.Test.Expr, precLowest)
		}
		s.out.WriteString(";")
		if n.Update != nil {
			s.out.WriteString(" ")
			s.expr(n.Update.Expr, precLowest)
		}
		s.out.WriteString(") ")
		s.body(n.Body)
	case *ast.ForInStatement:
		s.out.WriteString("for (")
		s.forInto(n.Into)
		s.out.WriteString(" in ")
		s.expr(n.Source.Expr, precLowest)
		s.out.WriteString(") ")
		s.body(n.Body)
	case *ast.ForOfStatement:
		s.out.WriteString("for ")
		if n.Await {
			s.out.WriteString("await ")
		}
		s.out.WriteString("(")
		s.forInto(n.Into)
		s.out.WriteString(" of ")
		s.expr(n.Source.Expr, precAssign)
		s.out.WriteString(") ")
		s.body(n.Body)
	case *ast.FunctionDeclaration:
		gen(s.wrap(n.Function))
	case *ast.ClassDeclaration:
		gen(s.wrap(n.Class))
	case *ast.VariableDeclaration:
		s.declaration(n)
		s.out.WriteString(";")
		if len(n.Comment) > 0 {
			s.out.WriteString(" // " + n.Comment)
		}
	case *ast.VariableDeclarator:
		gen(s.wrap(n.Target.Target))
		if n.Initializer != nil {
			s.out.WriteString(" = ")
			s.expr(n.Initializer.Expr, precAssign)
		}
	case *ast.ImportDeclaration:
		s.importDeclaration(n)

	// Expressions.
	case *ast.Identifier:
		s.out.WriteString(n.Name)
	case *ast.PrivateIdentifier:
		s.out.WriteString("#" + n.Identifier.Name)
	case *ast.NullLiteral:
		s.out.WriteString("null")
	case *ast.BooleanLiteral:
		s.out.WriteString(strconv.FormatBool(n.Value))
	case *ast.NumberLiteral:
		s.out.WriteString(numberText(n))
	case *ast.StringLiteral:
		if n.Raw != "" {
			s.out.WriteString(n.Raw)
		} else {
			s.out.WriteString(quote(n.Value))
		}
	case *ast.RegExpLiteral:
		s.out.WriteString(n.Literal)
	case *ast.TemplateLiteral:
		if n.Tag != nil {
			s.expr(n.Tag.Expr, precCall)
		}
		s.out.WriteString("`")
		for i, el := range n.Elements {
			s.out.WriteString(el.Literal)
			if i < len(n.Expressions) {
				s.out.WriteString("${")
				s.expr(n.Expressions[i].Expr, precLowest)
				s.out.WriteString("}")
			}
		}
		s.out.WriteString("`")
	case *ast.ThisExpression:
		s.out.WriteString("this")
	case *ast.SuperExpression:
		s.out.WriteString("super")
	case *ast.MetaProperty:
		s.out.WriteString(n.Meta.Name + "." + n.Property.Name)
	case *ast.InvalidExpression:
	case *ast.ArrayLiteral:
		s.out.WriteString("[")
		s.list(n.Value, precAssign)
		if len(n.Value) > 0 && n.Value[len(n.Value)-1].IsNone() {
			s.out.WriteString(",")
		}
		s.out.WriteString("]")
	case *ast.ArrayPattern:
		s.out.WriteString("[")
		s.list(n.Elements, precAssign)
		if n.Rest != nil {
			if len(n.Elements) > 0 {
				s.out.WriteString(", ")
			}
			s.out.WriteString("...")
			s.expr(n.Rest.Expr, precAssign)
		} else if len(n.Elements) > 0 && n.Elements[len(n.Elements)-1].IsNone() {
			s.out.WriteString(",")
		}
		s.out.WriteString("]")
	case *ast.ObjectLiteral:
		s.properties(n.Value, nil)
	case *ast.ObjectPattern:
		s.properties(n.Properties, n.Rest)
	case *ast.PropertyShort:
		s.out.WriteString(n.Name.Name)
		if n.Initializer != nil {
			s.out.WriteString(" = ")
			s.expr(n.Initializer.Expr, precAssign)
		}
	case *ast.PropertyKeyed:
		if n.Kind == ast.PropertyKindValue {
			s.key(n.Key, n.Computed)
			s.out.WriteString(": ")
			s.expr(n.Value.Expr, precAssign)
			return
		}
		fn, _ := n.Value.Expr.(*ast.FunctionLiteral)
		s.method(n.Kind, n.Key, n.Computed, fn)
	case *ast.SpreadElement:
		s.out.WriteString("...")
		s.expr(n.Expression.Expr, precAssign)
	case *ast.FunctionLiteral:
		if n.Async {
			s.out.WriteString("async ")
		}
		s.out.WriteString("function")
		if n.Generator {
			s.out.WriteString("*")
		}
		if n.Name != nil {
			s.out.WriteString(" " + n.Name.Name)
		}
		gen(s.wrap(&n.ParameterList))
		s.out.WriteString(" ")
		gen(s.wrap(n.Body))
	case *ast.ArrowFunctionLiteral:
		if n.Async {
			s.out.WriteString("async ")
		}
		gen(s.wrap(&n.ParameterList))
		s.out.WriteString(" => ")
		switch b := n.Body.Body.(type) {
		case *ast.BlockStatement:
			gen(s.wrap(b))
		case *ast.Expression:
			if startsWithBrace(b.Expr) {
				s.out.WriteString("(")
				gen(s.wrap(b.Expr))
				s.out.WriteString(")")
			} else {
				s.expr(b.Expr, precAssign)
			}
		}
	case *ast.ParameterList:
		s.out.WriteString("(")
		for i := range n.List {
			if i > 0 {
				s.out.WriteString(", ")
			}
			gen(s.wrap(&n.List[i]))
		}
		if n.Rest != nil {
			if len(n.List) > 0 {
				s.out.WriteString(", ")
			}
			s.out.WriteString("...")
			gen(s.wrap(n.Rest.Target))
		}
		s.out.WriteString(")")
	case *ast.ClassLiteral:
		s.out.WriteString("class")
		if n.Name != nil {
			s.out.WriteString(" " + n.Name.Name)
		}
		if n.SuperClass != nil {
			s.out.WriteString(" extends ")
			s.expr(n.SuperClass.Expr, precCall)
		}
		if len(n.Body) == 0 {
			s.out.WriteString(" {}")
			return
		}
		s.out.WriteString(" {")
		s.indent++
		for _, el := range n.Body {
			s.lineAndPad()
			gen(s.wrap(el.Element))
		}
		s.indent--
		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.FieldDefinition:
		if n.Static {
			s.out.WriteString("static ")
		}
		s.key(n.Key, n.Computed)
		if n.Initializer != nil {
			s.out.WriteString(" = ")
			s.expr(n.Initializer.Expr, precAssign)
		}
		s.out.WriteString(";")
	case *ast.MethodDefinition:
		if n.Static {
			s.out.WriteString("static ")
		}
		s.method(n.Kind, n.Key, n.Computed, n.Body)
	case *ast.ClassStaticBlock:
		s.out.WriteString("static ")
		gen(s.wrap(n.Block))
	case *ast.AssignExpression:
		s.expr(n.Left.Expr, precCall)
		s.out.WriteString(" " + n.Operator.String() + " ")
		s.expr(n.Right.Expr, precAssign)
	case *ast.BinaryExpression:
		prec := precedence(n)
		left, right := prec, prec+1
		if n.Operator == token.Exponent {
			left, right = precPostfix, prec
		}
		if mixesCoalesce(n.Operator, n.Left.Expr) {
			left = precPrimary
		}
		if mixesCoalesce(n.Operator, n.Right.Expr) {
			right = precPrimary
		}
		s.expr(n.Left.Expr, left)
		s.out.WriteString(" " + n.Operator.String() + " ")
		s.expr(n.Right.Expr, right)
	case *ast.UnaryExpression:
		op := n.Operator.String()
		s.out.WriteString(op)
		if len(op) > 1 || repeatsSign(n.Operator, n.Operand.Expr) {
			s.out.WriteString(" ")
		}
		s.expr(n.Operand.Expr, precUnary)
	case *ast.UpdateExpression:
		if n.Postfix {
			s.expr(n.Operand.Expr, precPostfix)
			s.out.WriteString(n.Operator.String())
			return
		}
		s.out.WriteString(n.Operator.String())
		s.expr(n.Operand.Expr, precUnary)
	case *ast.AwaitExpression:
		s.out.WriteString("await ")
		s.expr(n.Argument.Expr, precUnary)
	case *ast.YieldExpression:
		s.out.WriteString("yield")
		if n.Delegate {
			s.out.WriteString("*")
		}
		if n.Argument != nil {
			s.out.WriteString(" ")
			s.expr(n.Argument.Expr, precAssign)
		}
	case *ast.ConditionalExpression:
		s.expr(n.Test.Expr, precConditional+1)
		s.out.WriteString(" ? ")
		s.expr(n.Consequent.Expr, precAssign)
		s.out.WriteString(" : ")
		s.expr(n.Alternate.Expr, precAssign)
	case *ast.SequenceExpression:
		s.list(n.Sequence, precAssign)
	case *ast.CallExpression:
		s.callee(n.Callee.Expr)
		if _, ok := n.Callee.Expr.(*ast.Optional); ok {
			s.out.WriteString("?.")
		}
		s.out.WriteString("(")
		s.list(n.ArgumentList, precAssign)
		s.out.WriteString(")")
	case *ast.NewExpression:
		s.out.WriteString("new ")
		if containsCall(n.Callee.Expr) {
			s.out.WriteString("(")
			gen(s.wrap(n.Callee.Expr))
			s.out.WriteString(")")
		} else {
			s.callee(n.Callee.Expr)
		}
		s.out.WriteString("(")
		s.list(n.ArgumentList, precAssign)
		s.out.WriteString(")")
	case *ast.ImportExpression:
		s.out.WriteString("import(")
		s.expr(n.Source.Expr, precAssign)
		if n.Options != nil {
			s.out.WriteString(", ")
			s.expr(n.Options.Expr, precAssign)
		}
		s.out.WriteString(")")
	case *ast.MemberExpression:
		s.callee(n.Object.Expr)
		_, optional := n.Object.Expr.(*ast.Optional)
		switch p := n.Property.Prop.(type) {
		case *ast.Identifier:
			if optional {
				s.out.WriteString("?.")
			} else {
				s.out.WriteString(".")
			}
			s.out.WriteString(p.Name)
		case *ast.ComputedProperty:
			if optional {
				s.out.WriteString("?.")
			}
			s.out.WriteString("[")
			s.expr(p.Expr.Expr, precLowest)
			s.out.WriteString("]")
		}
	case *ast.PrivateDotExpression:
		s.callee(n.Left.Expr)
		if _, ok := n.Left.Expr.(*ast.Optional); ok {
			s.out.WriteString("?.")
		} else {
			s.out.WriteString(".")
		}
		s.out.WriteString("#" + n.Identifier.Identifier.Name)
	case *ast.OptionalChain:
		gen(s.wrap(n.Base.Expr))
	case *ast.Optional:
		s.callee(n.Expr.Expr)
	default:
		panic(fmt.Sprintf("gen: unexpected node type %T", n))
	}
}

// callee generates the object of a member access or the callee of a call.
func (s *state) callee(e ast.Expr) {
	switch n := e.(type) {
	case *ast.OptionalChain:
		s.out.WriteString("(")
		gen(s.wrap(e))
		s.out.WriteString(")")
		return
	case *ast.NumberLiteral:
		if isPlainInteger(numberText(n)) {
			s.out.WriteString("(")
			gen(s.wrap(e))
			s.out.WriteString(")")
			return
		}
	}
	s.expr(e, precCall)
}

func (s *state) declaration(n *ast.VariableDeclaration) {
	s.out.WriteString(n.Token.String() + " ")
	for i := range n.List {
		if i > 0 {
			s.out.WriteString(", ")
		}
		gen(s.wrap(&n.List[i]))
	}
}

func (s *state) forInto(into *ast.ForInto) {
	switch n := into.Into.(type) {
	case *ast.VariableDeclaration:
		s.wrap(n).declaration(n)
	case *ast.Expression:
		s.expr(n.Expr, precCall)
	}
}

func (s *state) properties(props ast.Properties, rest *ast.Expression) {
	if len(props) == 0 && rest == nil {
		s.out.WriteString("{}")
		return
	}
	s.out.WriteString("{ ")
	for i := range props {
		if i > 0 {
			s.out.WriteString(", ")
		}
		gen(s.wrap(props[i].Prop))
	}
	if rest != nil {
		if len(props) > 0 {
			s.out.WriteString(", ")
		}
		s.out.WriteString("...")
		s.expr(rest.Expr, precAssign)
	}
	s.out.WriteString(" }")
}

func (s *state) key(key *ast.Expression, computed bool) {
	if computed {
		s.out.WriteString("[")
		s.expr(key.Expr, precAssign)
		s.out.WriteString("]")
		return
	}
	gen(s.wrap(key.Expr))
}

func (s *state) method(kind ast.PropertyKind, key *ast.Expression, computed bool, fn *ast.FunctionLiteral) {
	switch kind {
	case ast.PropertyKindGet, ast.PropertyKindSet:
		s.out.WriteString(string(kind) + " ")
	}
	if fn.Async {
		s.out.WriteString("async ")
	}
	if fn.Generator {
		s.out.WriteString("*")
	}
	s.key(key, computed)
	gen(s.wrap(&fn.ParameterList))
	s.out.WriteString(" ")
	gen(s.wrap(fn.Body))
}

func (s *state) importDeclaration(n *ast.ImportDeclaration) {
	s.out.WriteString("import ")
	var named []*ast.ImportNamedSpecifier
	clause := false
	for _, spec := range n.Specifiers {
		switch sp := spec.ImportSpec.(type) {
		case *ast.ImportDefaultSpecifier:
			s.out.WriteString(sp.Local.Name)
			clause = true
		case *ast.ImportNamespaceSpecifier:
			if clause {
				s.out.WriteString(", ")
			}
			s.out.WriteString("* as " + sp.Local.Name)
			clause = true
		case *ast.ImportNamedSpecifier:
			named = append(named, sp)
		}
	}
	if len(named) > 0 {
		if clause {
			s.out.WriteString(", ")
		}
		s.out.WriteString("{ ")
		for i, sp := range named {
			if i > 0 {
				s.out.WriteString(", ")
			}
			gen(s.wrap(sp.Imported.Expr))
			if id, ok := sp.Imported.Expr.(*ast.Identifier); !ok || id.Name != sp.Local.Name {
				s.out.WriteString(" as " + sp.Local.Name)
			}
		}
		s.out.WriteString(" }")
		clause = true
	}
	if clause {
		s.out.WriteString(" from ")
	}
	gen(s.wrap(n.Source))
	if n.Attributes != nil {
		s.out.WriteString(" with ")
		gen(s.wrap(n.Attributes))
	}
	s.out.WriteString(";")
}

// repeatsSign reports whether a + or - operator needs a space before its
// operand to avoid printing ++, -- or a merged sign.
func repeatsSign(op token.Token, operand ast.Expr) bool {
	if op != token.Plus && op != token.Minus {
		return false
	}
	switch n := operand.(type) {
	case *ast.UnaryExpression:
		return n.Operator == token.Plus || n.Operator == token.Minus
	case *ast.UpdateExpression:
		return !n.Postfix
	case *ast.NumberLiteral:
		return n.Raw == "" && math.Signbit(n.Value)
	}
	return false
}

func numberText(n *ast.NumberLiteral) string {
	if n.Raw != "" {
		return n.Raw
	}
	v := n.Value
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == math.Trunc(v) && math.Abs(v) < 1e21:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// isPlainInteger reports whether a following dot would be read as part of
// the number.
func isPlainInteger(text string) bool {
	return strings.IndexFunc(text, func(r rune) bool {
		return (r < '0' || r > '9') && r != '_'
	}) < 0
}

// quote returns s as a double-quoted string literal.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\v':
			b.WriteString(`\v`)
		case 0:
			if i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '9' {
				b.WriteString(`\x00`)
			} else {
				b.WriteString(`\0`)
			}
		case 0x2028, 0x2029:
			b.WriteString("\\u" + strconv.FormatInt(int64(r), 16))
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
