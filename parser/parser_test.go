package parser_test

import (
	"strings"
	"testing"

	"github.com/t14raptor/replify/ast"
	"github.com/t14raptor/replify/parser"
	"github.com/t14raptor/replify/token"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// mustParse parses code and fails the test if there's an error.
func mustParse(t *testing.T, code string) *ast.Program {
	t.Helper()
	p, err := parser.ParseFile(code)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	return p
}

// mustFail verifies that code produces a parse error.
func mustFail(t *testing.T, code string) error {
	t.Helper()
	_, err := parser.ParseFile(code)
	if err == nil {
		t.Errorf("expected parse error for:\n%s", code)
	}
	return err
}

// firstStmt returns the concrete statement node from the i-th top-level statement.
func firstStmt(p *ast.Program, i int) ast.Stmt {
	return p.Body[i].Stmt
}

// exprOf extracts the inner concrete expression from an ExpressionStatement.
func exprOf(t *testing.T, s ast.Stmt) ast.Expr {
	t.Helper()
	stmt, ok := s.(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement = %T; want *ast.ExpressionStatement", s)
	}
	return stmt.Expression.Expr
}

// initializerExpr extracts the initializer expression from the first
// VariableDeclarator of a VariableDeclaration statement.
func initializerExpr(t *testing.T, s ast.Stmt) ast.Expr {
	t.Helper()
	decl, ok := s.(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("statement = %T; want *ast.VariableDeclaration", s)
	}
	if decl.List[0].Initializer == nil {
		return nil
	}
	return decl.List[0].Initializer.Expr
}

// ===========================================================================
// REPL GRAMMAR
// ===========================================================================

func TestTopLevelAwait(t *testing.T) {
	p := mustParse(t, "await x")
	if _, ok := exprOf(t, firstStmt(p, 0)).(*ast.AwaitExpression); !ok {
		t.Fatalf("expression = %T; want *ast.AwaitExpression", exprOf(t, firstStmt(p, 0)))
	}

	p = mustParse(t, "const { a } = await load()")
	if _, ok := initializerExpr(t, firstStmt(p, 0)).(*ast.AwaitExpression); !ok {
		t.Errorf("initializer = %T; want *ast.AwaitExpression", initializerExpr(t, firstStmt(p, 0)))
	}
}

func TestForAwait(t *testing.T) {
	p := mustParse(t, "for await (const chunk of stream) {}")
	loop, ok := firstStmt(p, 0).(*ast.ForOfStatement)
	if !ok {
		t.Fatalf("statement = %T; want *ast.ForOfStatement", firstStmt(p, 0))
	}
	if !loop.Await {
		t.Error("Await = false; want true")
	}
	decl, ok := loop.Into.Into.(*ast.VariableDeclaration)
	if !ok || decl.Token != token.Const {
		t.Errorf("loop head = %T; want const declaration", loop.Into.Into)
	}

	mustFail(t, "function f() { for await (const x of y) {} }")
	mustFail(t, "for await (const x in y) {}")
}

func TestAwaitInNestedScopes(t *testing.T) {
	// Outside async functions await is an ordinary identifier.
	mustParse(t, "function f() { var await = 1; return await }")
	mustParse(t, "async function f() { await g() }")
	mustParse(t, "const f = async () => await g()")
	mustParse(t, "const o = { async m() { await g() } }")
	mustParse(t, "class A { async m() { await g() } }")

	mustFail(t, "function f() { await g() }")
	mustFail(t, "const f = () => { await g() }")
	mustFail(t, "async function f(a = await g()) {}")
	mustFail(t, "class A { x = await g() }")
}

func TestTopLevelReturn(t *testing.T) {
	p := mustParse(t, "if (done) return 1\nreturn")
	ifStmt := firstStmt(p, 0).(*ast.IfStatement)
	ret, ok := ifStmt.Consequent.Stmt.(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("consequent = %T; want *ast.ReturnStatement", ifStmt.Consequent.Stmt)
	}
	if ret.Argument == nil {
		t.Error("return argument missing")
	}
	if ret, ok := firstStmt(p, 1).(*ast.ReturnStatement); !ok || ret.Argument != nil {
		t.Errorf("second statement = %T; want bare return", firstStmt(p, 1))
	}
}

func TestImportDeclaration(t *testing.T) {
	tests := []struct {
		code    string
		source  string
		want    []string
		attribs bool
	}{
		{`import "m"`, "m", nil, false},
		{`import def from "m"`, "m", []string{"default def"}, false},
		{`import * as ns from "m"`, "m", []string{"namespace ns"}, false},
		{`import { a, b as c } from "m"`, "m", []string{"named a a", "named b c"}, false},
		{`import def, * as ns from "m";`, "m", []string{"default def", "namespace ns"}, false},
		{`import def, { a } from './m.js'`, "./m.js", []string{"default def", "named a a"}, false},
		{`import { default as x, "a b" as y } from "m"`, "m", []string{"named default x", "named a b y"}, false},
		{`import { a, } from "m"`, "m", []string{"named a a"}, false},
		{`import {} from "m"`, "m", nil, false},
		{`import data from "./d.json" with { type: "json" }`, "./d.json", []string{"default data"}, true},
		{`import data from "./d.json" assert { type: "json" }`, "./d.json", []string{"default data"}, true},
		{`import of from "m"`, "m", []string{"default of"}, false},
	}

	for _, tt := range tests {
		p := mustParse(t, tt.code)
		decl, ok := firstStmt(p, 0).(*ast.ImportDeclaration)
		if !ok {
			t.Errorf("%s: statement = %T; want *ast.ImportDeclaration", tt.code, firstStmt(p, 0))
			continue
		}
		if decl.Source.Value != tt.source {
			t.Errorf("%s: source = %q; want %q", tt.code, decl.Source.Value, tt.source)
		}
		if got := decl.Attributes != nil; got != tt.attribs {
			t.Errorf("%s: has attributes = %v; want %v", tt.code, got, tt.attribs)
		}

		var got []string
		for _, spec := range decl.Specifiers {
			switch s := spec.ImportSpec.(type) {
			case *ast.ImportDefaultSpecifier:
				got = append(got, "default "+s.Local.Name)
			case *ast.ImportNamespaceSpecifier:
				got = append(got, "namespace "+s.Local.Name)
			case *ast.ImportNamedSpecifier:
				got = append(got, "named "+s.ImportedName()+" "+s.Local.Name)
			}
		}
		if strings.Join(got, ", ") != strings.Join(tt.want, ", ") {
			t.Errorf("%s: specifiers = %v; want %v", tt.code, got, tt.want)
		}
	}
}

func TestImportErrors(t *testing.T) {
	cases := []string{
		`{ import a from "m" }`,
		`function f() { import a from "m" }`,
		`import { default } from "m"`,
		`import { "a b" } from "m"`,
		`import a from`,
		`import a "m"`,
		`import * from "m"`,
		`import { a as if } from "m"`,
		`import a from "m" with { type: json }`,
		`export const a = 1`,
		`export default 1`,
	}
	for _, code := range cases {
		mustFail(t, code)
	}
}

func TestDynamicImport(t *testing.T) {
	p := mustParse(t, "import('m').then(f)\nconst m = await import(name, { with: { type: 'json' } })")
	call := exprOf(t, firstStmt(p, 0)).(*ast.CallExpression)
	member := call.Callee.Expr.(*ast.MemberExpression)
	imp, ok := member.Object.Expr.(*ast.ImportExpression)
	if !ok {
		t.Fatalf("object = %T; want *ast.ImportExpression", member.Object.Expr)
	}
	if lit := imp.Source.Expr.(*ast.StringLiteral); lit.Value != "m" {
		t.Errorf("source = %q; want m", lit.Value)
	}

	awaited := initializerExpr(t, firstStmt(p, 1)).(*ast.AwaitExpression)
	imp = awaited.Argument.Expr.(*ast.ImportExpression)
	if imp.Options == nil {
		t.Error("import options missing")
	}

	p = mustParse(t, "import.meta.url")
	member = exprOf(t, firstStmt(p, 0)).(*ast.MemberExpression)
	meta, ok := member.Object.Expr.(*ast.MetaProperty)
	if !ok || meta.Meta.Name != "import" || meta.Property.Name != "meta" {
		t.Errorf("object = %T; want import.meta", member.Object.Expr)
	}

	// A nested import call is not a declaration.
	mustParse(t, "{ import('m') }")
}

// ===========================================================================
// AST STRUCTURE
// ===========================================================================

func TestVariableDeclarationKinds(t *testing.T) {
	tests := []struct {
		code string
		kind token.Token
		n    int
	}{
		{"var a = 1, b", token.Var, 2},
		{"let a", token.Let, 1},
		{"let [a, b] = c", token.Let, 1},
		{"let {a} = c", token.Let, 1},
		{"const a = 1, b = 2, c = 3", token.Const, 3},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.code)
		decl, ok := firstStmt(p, 0).(*ast.VariableDeclaration)
		if !ok {
			t.Errorf("%s: statement = %T; want *ast.VariableDeclaration", tt.code, firstStmt(p, 0))
			continue
		}
		if decl.Token != tt.kind {
			t.Errorf("%s: kind = %v; want %v", tt.code, decl.Token, tt.kind)
		}
		if len(decl.List) != tt.n {
			t.Errorf("%s: declarators = %d; want %d", tt.code, len(decl.List), tt.n)
		}
	}

	// let as an identifier.
	p := mustParse(t, "let = 1")
	if _, ok := exprOf(t, firstStmt(p, 0)).(*ast.AssignExpression); !ok {
		t.Errorf("let = 1 parsed as %T", firstStmt(p, 0))
	}
}

func TestBindingPatternAST(t *testing.T) {
	p := mustParse(t, "const { a, b: [c, , d = 1, ...e], f = 2, ...g } = obj")
	decl := firstStmt(p, 0).(*ast.VariableDeclaration)
	obj, ok := decl.List[0].Target.Target.(*ast.ObjectPattern)
	if !ok {
		t.Fatalf("target = %T; want *ast.ObjectPattern", decl.List[0].Target.Target)
	}
	if len(obj.Properties) != 3 {
		t.Fatalf("properties = %d; want 3", len(obj.Properties))
	}
	if obj.Rest == nil || obj.Rest.Expr.(*ast.Identifier).Name != "g" {
		t.Errorf("rest = %v; want g", obj.Rest)
	}

	keyed := obj.Properties[1].Prop.(*ast.PropertyKeyed)
	arr, ok := keyed.Value.Expr.(*ast.ArrayPattern)
	if !ok {
		t.Fatalf("b value = %T; want *ast.ArrayPattern", keyed.Value.Expr)
	}
	if len(arr.Elements) != 3 {
		t.Fatalf("array elements = %d; want 3", len(arr.Elements))
	}
	if !arr.Elements[1].IsNone() {
		t.Errorf("elements[1] = %T; want hole", arr.Elements[1].Expr)
	}
	if _, ok := arr.Elements[2].Expr.(*ast.AssignExpression); !ok {
		t.Errorf("elements[2] = %T; want defaulted target", arr.Elements[2].Expr)
	}
	if arr.Rest == nil {
		t.Error("array rest missing")
	}

	short := obj.Properties[2].Prop.(*ast.PropertyShort)
	if short.Name.Name != "f" || short.Initializer == nil {
		t.Errorf("f = %+v; want shorthand with default", short)
	}
}

func TestAssignmentPatternAST(t *testing.T) {
	p := mustParse(t, "[a, b] = [b, a]")
	assign := exprOf(t, firstStmt(p, 0)).(*ast.AssignExpression)
	if _, ok := assign.Left.Expr.(*ast.ArrayPattern); !ok {
		t.Errorf("left = %T; want *ast.ArrayPattern", assign.Left.Expr)
	}
	if _, ok := assign.Right.Expr.(*ast.ArrayLiteral); !ok {
		t.Errorf("right = %T; want *ast.ArrayLiteral", assign.Right.Expr)
	}

	p = mustParse(t, "({ a, b: { c = 1 }, ...d } = obj)")
	assign = exprOf(t, firstStmt(p, 0)).(*ast.AssignExpression)
	obj, ok := assign.Left.Expr.(*ast.ObjectPattern)
	if !ok {
		t.Fatalf("left = %T; want *ast.ObjectPattern", assign.Left.Expr)
	}
	if obj.Rest == nil {
		t.Error("object rest missing")
	}
	inner := obj.Properties[1].Prop.(*ast.PropertyKeyed)
	if _, ok := inner.Value.Expr.(*ast.ObjectPattern); !ok {
		t.Errorf("nested value = %T; want *ast.ObjectPattern", inner.Value.Expr)
	}

	mustFail(t, "[a + b] = c")
	mustFail(t, "({ a() {} } = c)")
	mustFail(t, "[...a, b] = c")
	mustFail(t, "a + b = c")
	mustFail(t, "a++ = c")
}

func TestFunctionAST(t *testing.T) {
	p := mustParse(t, "async function* f(a, { b } = {}, ...rest) { yield await a }")
	fn := firstStmt(p, 0).(*ast.FunctionDeclaration).Function
	if fn.Name.Name != "f" || !fn.Async || !fn.Generator {
		t.Errorf("function = %s async=%v generator=%v", fn.Name.Name, fn.Async, fn.Generator)
	}
	if len(fn.ParameterList.List) != 2 {
		t.Fatalf("parameters = %d; want 2", len(fn.ParameterList.List))
	}
	if fn.ParameterList.List[1].Initializer == nil {
		t.Error("second parameter default missing")
	}
	if fn.ParameterList.Rest == nil {
		t.Error("rest parameter missing")
	}
}

func TestArrowFunctionAST(t *testing.T) {
	tests := []struct {
		code   string
		params int
		async  bool
		block  bool
	}{
		{"x => x", 1, false, false},
		{"() => {}", 0, false, true},
		{"(a, b = 1, ...c) => a", 2, false, false},
		{"({ a }, [b]) => { return a + b }", 2, false, true},
		{"async x => await x", 1, true, false},
		{"async (a, b) => { await a }", 2, true, true},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.code)
		arrow, ok := exprOf(t, firstStmt(p, 0)).(*ast.ArrowFunctionLiteral)
		if !ok {
			t.Errorf("%s: expression = %T; want *ast.ArrowFunctionLiteral", tt.code, exprOf(t, firstStmt(p, 0)))
			continue
		}
		if len(arrow.ParameterList.List) != tt.params {
			t.Errorf("%s: parameters = %d; want %d", tt.code, len(arrow.ParameterList.List), tt.params)
		}
		if arrow.Async != tt.async {
			t.Errorf("%s: async = %v; want %v", tt.code, arrow.Async, tt.async)
		}
		if _, block := arrow.Body.Body.(*ast.BlockStatement); block != tt.block {
			t.Errorf("%s: block body = %v; want %v", tt.code, block, tt.block)
		}
	}

	// async as a plain call.
	p := mustParse(t, "async(a, b)")
	if _, ok := exprOf(t, firstStmt(p, 0)).(*ast.CallExpression); !ok {
		t.Errorf("async(a, b) parsed as %T", exprOf(t, firstStmt(p, 0)))
	}
}

func TestClassAST(t *testing.T) {
	p := mustParse(t, `class A extends B {
	static #count = 0;
	x = 1
	y
	static { A.ready = true }
	constructor() { super() }
	get value() { return this.#count }
	set value(v) {}
	static async *gen() {}
	[key]() {}
	static() {}
	get = 2
}`)
	class := firstStmt(p, 0).(*ast.ClassDeclaration).Class
	if class.Name.Name != "A" || class.SuperClass == nil {
		t.Fatalf("class = %v extends %v", class.Name, class.SuperClass)
	}

	want := []string{
		"field static", "field", "field", "static block",
		"method method", "method get", "method set", "method method static",
		"method method", "method method", "field",
	}
	if len(class.Body) != len(want) {
		t.Fatalf("class elements = %d; want %d", len(class.Body), len(want))
	}
	for i, elem := range class.Body {
		var got string
		switch e := elem.Element.(type) {
		case *ast.FieldDefinition:
			got = "field"
			if e.Static {
				got += " static"
			}
		case *ast.MethodDefinition:
			got = "method " + string(e.Kind)
			if e.Static {
				got += " static"
			}
		case *ast.ClassStaticBlock:
			got = "static block"
		}
		if got != want[i] {
			t.Errorf("element %d = %q; want %q", i, got, want[i])
		}
	}

	gen := class.Body[7].Element.(*ast.MethodDefinition)
	if !gen.Body.Async || !gen.Body.Generator {
		t.Errorf("gen async=%v generator=%v; want both", gen.Body.Async, gen.Body.Generator)
	}
}

func TestObjectLiteralAST(t *testing.T) {
	p := mustParse(t, "x = { a, b: 1, [c]: 2, 'd': 3, 4: 5, get e() {}, set e(v) {}, async f() {}, *g() {}, get: 6, async: 7, ...h }")
	obj := exprOf(t, firstStmt(p, 0)).(*ast.AssignExpression).Right.Expr.(*ast.ObjectLiteral)
	if len(obj.Value) != 12 {
		t.Fatalf("properties = %d; want 12", len(obj.Value))
	}

	kinds := []ast.PropertyKind{
		"", ast.PropertyKindValue, ast.PropertyKindValue, ast.PropertyKindValue, ast.PropertyKindValue,
		ast.PropertyKindGet, ast.PropertyKindSet, ast.PropertyKindMethod, ast.PropertyKindMethod,
		ast.PropertyKindValue, ast.PropertyKindValue, "",
	}
	for i, prop := range obj.Value {
		keyed, ok := prop.Prop.(*ast.PropertyKeyed)
		if !ok {
			if kinds[i] != "" {
				t.Errorf("property %d = %T; want keyed", i, prop.Prop)
			}
			continue
		}
		if keyed.Kind != kinds[i] {
			t.Errorf("property %d kind = %q; want %q", i, keyed.Kind, kinds[i])
		}
	}
	if !obj.Value[2].Prop.(*ast.PropertyKeyed).Computed {
		t.Error("[c] not computed")
	}
	if _, ok := obj.Value[11].Prop.(*ast.SpreadElement); !ok {
		t.Errorf("last property = %T; want spread", obj.Value[11].Prop)
	}
}

func TestOptionalChainAST(t *testing.T) {
	p := mustParse(t, "a?.b.c")
	chain, ok := exprOf(t, firstStmt(p, 0)).(*ast.OptionalChain)
	if !ok {
		t.Fatalf("expression = %T; want *ast.OptionalChain", exprOf(t, firstStmt(p, 0)))
	}
	outer := chain.Base.Expr.(*ast.MemberExpression)
	inner := outer.Object.Expr.(*ast.MemberExpression)
	if _, ok := inner.Object.Expr.(*ast.Optional); !ok {
		t.Errorf("inner object = %T; want *ast.Optional", inner.Object.Expr)
	}

	p = mustParse(t, "f?.(x)")
	call := exprOf(t, firstStmt(p, 0)).(*ast.OptionalChain).Base.Expr.(*ast.CallExpression)
	if _, ok := call.Callee.Expr.(*ast.Optional); !ok {
		t.Errorf("callee = %T; want *ast.Optional", call.Callee.Expr)
	}

	mustFail(t, "new a?.b()")
	mustFail(t, "a?.b`t`")
}

func TestTemplateLiteralAST(t *testing.T) {
	p := mustParse(t, "`a${b}c${d}e`")
	tpl := exprOf(t, firstStmt(p, 0)).(*ast.TemplateLiteral)
	if len(tpl.Elements) != 3 || len(tpl.Expressions) != 2 {
		t.Fatalf("elements = %d, expressions = %d; want 3, 2", len(tpl.Elements), len(tpl.Expressions))
	}
	for i, want := range []string{"a", "c", "e"} {
		if tpl.Elements[i].Parsed != want {
			t.Errorf("element %d = %q; want %q", i, tpl.Elements[i].Parsed, want)
		}
	}

	p = mustParse(t, "tag`\\unicode`")
	tpl = exprOf(t, firstStmt(p, 0)).(*ast.TemplateLiteral)
	if tpl.Tag == nil || tpl.Elements[0].Valid {
		t.Errorf("tagged template with invalid escape: tag=%v valid=%v", tpl.Tag, tpl.Elements[0].Valid)
	}
	mustFail(t, "`\\unicode`")
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		code string
		want float64
	}{
		{"42", 42},
		{"1_000_000", 1000000},
		{"0x1F", 31},
		{"0o17", 15},
		{"0b101", 5},
		{"017", 15},
		{"019", 19},
		{".5", 0.5},
		{"1e3", 1000},
		{"10n", 10},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.code)
		num, ok := exprOf(t, firstStmt(p, 0)).(*ast.NumberLiteral)
		if !ok {
			t.Errorf("%s: expression = %T; want *ast.NumberLiteral", tt.code, exprOf(t, firstStmt(p, 0)))
			continue
		}
		if num.Value != tt.want {
			t.Errorf("%s = %v; want %v", tt.code, num.Value, tt.want)
		}
		if num.Raw != tt.code {
			t.Errorf("%s raw = %q", tt.code, num.Raw)
		}
	}
}

func TestRegExpAST(t *testing.T) {
	tests := []struct {
		code    string
		pattern string
		flags   string
	}{
		{"/abc/", "abc", ""},
		{"/[/]/g", "[/]", "g"},
		{`/\d+/gu`, `\d+`, "gu"},
		{"/=/", "=", ""},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.code)
		re, ok := exprOf(t, firstStmt(p, 0)).(*ast.RegExpLiteral)
		if !ok {
			t.Errorf("%s: expression = %T; want *ast.RegExpLiteral", tt.code, exprOf(t, firstStmt(p, 0)))
			continue
		}
		if re.Pattern != tt.pattern || re.Flags != tt.flags || re.Literal != tt.code {
			t.Errorf("%s: pattern=%q flags=%q literal=%q", tt.code, re.Pattern, re.Flags, re.Literal)
		}
	}
	mustFail(t, "/a/gg")
	mustFail(t, "/a/x")
}

func TestForHeads(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"for (;;) {}", "for"},
		{"for (var i = 0, j = 1; i < j; i++) {}", "for"},
		{"for (let i = 0; i < n; i++) {}", "for"},
		{"for (i = 0; i < n; i++) {}", "for"},
		{"for (var k in obj) {}", "in"},
		{"for (k in obj) {}", "in"},
		{"for (a.b in obj) {}", "in"},
		{"for (const [k, v] of entries) {}", "of"},
		{"for ([a, b] of pairs) {}", "of"},
		{"for ({ a } of list) {}", "of"},
		{"for (let of of ofs) {}", "of"},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.code)
		var got string
		switch firstStmt(p, 0).(type) {
		case *ast.ForStatement:
			got = "for"
		case *ast.ForInStatement:
			got = "in"
		case *ast.ForOfStatement:
			got = "of"
		}
		if got != tt.want {
			t.Errorf("%s: loop = %q; want %q", tt.code, got, tt.want)
		}
	}

	p := mustParse(t, "for ({ a } of list) {}")
	loop := firstStmt(p, 0).(*ast.ForOfStatement)
	target := loop.Into.Into.(*ast.Expression)
	if _, ok := target.Expr.(*ast.ObjectPattern); !ok {
		t.Errorf("for-of target = %T; want *ast.ObjectPattern", target.Expr)
	}

	mustFail(t, "for (const x = 1 of y) {}")
	mustFail(t, "for (var i = 0 in {}; ;) {}")
	mustFail(t, "for (const x; ;) {}")
}

func TestLabelsAndBranches(t *testing.T) {
	mustParse(t, "outer: for (;;) { inner: for (;;) { continue outer; break inner } }")
	mustParse(t, "a: { break a }")
	mustParse(t, "switch (x) { case 1: break; default: }")
	mustParse(t, "while (x) { break }")

	mustFail(t, "break")
	mustFail(t, "continue")
	mustFail(t, "a: { continue a }")
	mustFail(t, "for (;;) { break nope }")
	mustFail(t, "a: a: ;")
	mustFail(t, "switch (x) { default: default: }")
	mustFail(t, "for (;;) { function f() { break } }")
}

// ===========================================================================
// PRECEDENCE
// ===========================================================================

func TestPrecedence(t *testing.T) {
	tests := []struct {
		code  string
		top   token.Token
		left  token.Token
		right token.Token
	}{
		{"a + b * c", token.Plus, 0, token.Multiply},
		{"a * b + c", token.Plus, token.Multiply, 0},
		{"a - b - c", token.Minus, token.Minus, 0},
		{"a ** b ** c", token.Exponent, 0, token.Exponent},
		{"a || b && c", token.LogicalOr, 0, token.LogicalAnd},
		{"a ?? b ?? c", token.Coalesce, token.Coalesce, 0},
		{"a < b == c", token.Equal, token.Less, 0},
		{"a | b ^ c", token.Or, 0, token.ExclusiveOr},
		{"a in b instanceof c", token.InstanceOf, token.In, 0},
		{"a << b + c", token.ShiftLeft, 0, token.Plus},
		{"(a + b) * c", token.Multiply, token.Plus, 0},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.code)
		bin, ok := exprOf(t, firstStmt(p, 0)).(*ast.BinaryExpression)
		if !ok {
			t.Errorf("%s: expression = %T; want *ast.BinaryExpression", tt.code, exprOf(t, firstStmt(p, 0)))
			continue
		}
		if bin.Operator != tt.top {
			t.Errorf("%s: top = %v; want %v", tt.code, bin.Operator, tt.top)
		}
		check := func(side string, e *ast.Expression, want token.Token) {
			inner, isBinary := e.Expr.(*ast.BinaryExpression)
			switch {
			case want == 0 && isBinary:
				t.Errorf("%s: %s = %v; want operand", tt.code, side, inner.Operator)
			case want != 0 && (!isBinary || inner.Operator != want):
				t.Errorf("%s: %s = %T; want %v", tt.code, side, e.Expr, want)
			}
		}
		check("left", bin.Left, tt.left)
		check("right", bin.Right, tt.right)
	}

	mustFail(t, "a ?? b || c")
	mustFail(t, "a && b ?? c")
	mustFail(t, "-a ** b")
	mustParse(t, "(a ?? b) || c")
	mustParse(t, "a ?? (b && c)")
	mustParse(t, "(-a) ** b")
}

func TestConditionalAndSequence(t *testing.T) {
	p := mustParse(t, "x = a ? b : c, y")
	seq := exprOf(t, firstStmt(p, 0)).(*ast.SequenceExpression)
	if len(seq.Sequence) != 2 {
		t.Fatalf("sequence = %d; want 2", len(seq.Sequence))
	}
	assign := seq.Sequence[0].Expr.(*ast.AssignExpression)
	if _, ok := assign.Right.Expr.(*ast.ConditionalExpression); !ok {
		t.Errorf("rhs = %T; want *ast.ConditionalExpression", assign.Right.Expr)
	}
}

// ===========================================================================
// AUTOMATIC SEMICOLON INSERTION
// ===========================================================================

func TestASI(t *testing.T) {
	tests := []struct {
		code  string
		stmts int
	}{
		{"a\nb", 2},
		{"a = 1\n(b)", 1},
		{"a\n++b", 2},
		{"return\n42", 2},
		{"x\n/foo/g.test(y)", 1},
		{"let x = 1\nlet y = 2", 2},
		{"do x++; while (x < 5) y()", 2},
		{"throw e\nx", 2},
		{"{ a } b", 2},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.code)
		if len(p.Body) != tt.stmts {
			t.Errorf("%q: statements = %d; want %d", tt.code, len(p.Body), tt.stmts)
		}
	}

	mustFail(t, "a b")
	mustFail(t, "throw\ne")
	mustFail(t, "var a = 1 var b")
}

// ===========================================================================
// SYNTAX COVERAGE
// ===========================================================================

func TestSyntax(t *testing.T) {
	cases := []string{
		"var r = /[a-zA-Z_$][a-zA-Z0-9_$]*/",
		`var r = /(?<!\\)\$\{/g`,
		"x = y / z; var r = /abc/",
		"let x = `outer ${`inner ${deep}`} outer`",
		"`${a ? b : c}` + `${{ a: 1 }.a}`",
		"try {} catch (e) {} finally {}",
		"try {} catch {}",
		"try {} catch ({ message }) {}",
		"if (a) {} else if (b) {} else {}",
		"with (obj) { x }",
		"debugger",
		";;;",
		"function* gen() { yield; yield 1; yield* other() }",
		"var g = function* named() { yield 1 }",
		"new Foo",
		"new Foo.Bar(1)",
		"new new A()()",
		"function f() { return new.target }",
		"class A { #x; has(o) { return #x in o } }",
		"class A { static x = this; #m() {} static #s() {} }",
		"a?.[0]?.(1)?.b",
		"delete a[b], void 0, typeof c",
		"x ||= 1; y &&= 2; z ??= 3; w **= 2; v >>>= 1",
		"var { [key]: value } = obj",
		"const o = { __proto__: null, 'quoted key': 1, 1.5: 2 }",
		"label: function f() {}",
		"async\nfunction f() {}",
		"var async = 1; async = 2; async\n(x)",
		"var yield = 1, of = 2, get = 3, set = 4, from = 5, as = 6",
		"arr.map(async (x) => { const r = await f(x); return r })",
		"(function () {})()",
		"(async () => { await 1 })()",
		"'use strict'; x",
		"a = b ? c => d : e => f",
		"for (const x of [1, 2]) for (const y in x) ;",
		"switch (a) { case 1: case 2: f(); break; default: g() }",
		"#!/usr/bin/env node\nconsole.log(1)",
	}
	for _, code := range cases {
		mustParse(t, code)
	}
}

func TestErrorPosition(t *testing.T) {
	err := mustFail(t, "var = 1")
	if err == nil {
		return
	}
	if !strings.Contains(err.Error(), "1:5: Unexpected token =") {
		t.Errorf("error = %q; want it to mention 1:5", err)
	}

	err = mustFail(t, "a\nb c")
	if err != nil && !strings.HasPrefix(err.Error(), "2:3:") {
		t.Errorf("error = %q; want line 2 column 3", err)
	}

	err = mustFail(t, "x = 'unterminated")
	if err != nil && !strings.Contains(err.Error(), "1:5: Unterminated string") {
		t.Errorf("error = %q; want unterminated string at 1:5", err)
	}
}

func TestErrorRecovery(t *testing.T) {
	// Every error is reported, not only the first one.
	err := mustFail(t, "a b\nvar c d\n")
	if err != nil && strings.Count(err.Error(), "\n") < 1 {
		t.Errorf("error = %q; want two errors", err)
	}

	// The parser makes progress on stray tokens.
	cases := []string{")", "}", "]", "a = ", "{", "(", "class {", "function", "import", "@@@"}
	for _, code := range cases {
		mustFail(t, code)
	}
}
