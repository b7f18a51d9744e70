package toplevelawait

import (
	"testing"

	"github.com/t14raptor/replify/ast"
	"github.com/t14raptor/replify/generator"
	"github.com/t14raptor/replify/parser"
	"github.com/t14raptor/replify/token"
	"github.com/t14raptor/replify/transform/utils"
	"golang.org/x/exp/slices"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, err := parser.ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile(%q): %v", src, err)
	}
	return program
}

func TestDetect(t *testing.T) {
	tests := []struct {
		input    string
		expected Detection
	}{
		{"await x", Detection{Await: true}},
		{"return", Detection{Return: true}},
		{"await x; return", Detection{Await: true, Return: true}},
		{"if (a) { await x }", Detection{Await: true}},
		{"try { for await (const a of b) {} } finally {}", Detection{Await: true}},
		{"label: { await x; }", Detection{Await: true}},
		{"switch (a) { case 1: await b; }", Detection{Await: true}},
		{"x = [await a, { b: await c }]", Detection{Await: true}},
		{"async function f() { await x; return 1 }", Detection{}},
		{"const f = async () => { await x }", Detection{}},
		{"const f = async () => await x", Detection{}},
		{"({ async m() { await x } })", Detection{}},
		{"class A { async m() { await x } static { g(); } }", Detection{}},
		{"function f() { return 1 } return 2", Detection{Return: true}},
		{"async function f() { for await (const a of b) {} }", Detection{}},
	}

	for _, tt := range tests {
		if got := Detect(parse(t, tt.input)); got != tt.expected {
			t.Errorf("Detect(%q) = %+v; want %+v", tt.input, got, tt.expected)
		}
	}
}

func TestTransform(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "final expression is returned",
			input: "let x = 1; await f(); x + 1;",
			expected: "let x;\n" +
				"(async () => {\n" +
				"    x = 1;\n" +
				"    await f();\n" +
				"    return x + 1;\n" +
				"})();\n",
		},
		{
			name:  "trailing assignment is not returned",
			input: "let x = await f(); x = 2;",
			expected: "let x;\n" +
				"(async () => {\n" +
				"    x = await f();\n" +
				"    x = 2;\n" +
				"})();\n",
		},
		{
			name:  "function declaration",
			input: "function g() { return 1; } await g();",
			expected: "var g;\n" +
				"(async () => {\n" +
				"    g = function g() {\n" +
				"        return 1;\n" +
				"    };\n" +
				"    return await g();\n" +
				"})();\n",
		},
		{
			name:  "async generator function keeps its flags",
			input: "async function* g(a) { yield a; } await 0;",
			expected: "var g;\n" +
				"(async () => {\n" +
				"    g = async function* g(a) {\n" +
				"        yield a;\n" +
				"    };\n" +
				"    return await 0;\n" +
				"})();\n",
		},
		{
			name:  "class declaration",
			input: "class A {} await 0;",
			expected: "let A;\n" +
				"(async () => {\n" +
				"    A = class A {};\n" +
				"    return await 0;\n" +
				"})();\n",
		},
		{
			name:  "patterns and several declarators",
			input: "const { a, b: [c] } = await f(), d = 1; var e;",
			expected: "let a, c, d;\n" +
				"var e;\n" +
				"(async () => {\n" +
				"    ({ a, b: [c] } = await f(), d = 1);\n" +
				"    e = undefined;\n" +
				"})();\n",
		},
		{
			name:  "for await",
			input: "for await (const x of xs) console.log(x);",
			expected: "(async () => {\n" +
				"    for await (const x of xs) {\n" +
				"        console.log(x);\n" +
				"    }\n" +
				"})();\n",
		},
		{
			name:  "order of statements is kept",
			input: "a(); var x = 1; if (x) { await b(); } function f() {} c();",
			expected: "var x;\n" +
				"var f;\n" +
				"(async () => {\n" +
				"    a();\n" +
				"    x = 1;\n" +
				"    if (x) {\n" +
				"        await b();\n" +
				"    }\n" +
				"    f = function f() {};\n" +
				"    return c();\n" +
				"})();\n",
		},
		{
			name:  "nested var is hoisted",
			input: "if (a) { var x = await f(), y; } x;",
			expected: "var x, y;\n" +
				"(async () => {\n" +
				"    if (a) {\n" +
				"        x = await f();\n" +
				"    }\n" +
				"    return x;\n" +
				"})();\n",
		},
		{
			name:  "loop var is hoisted",
			input: "for (var i = 0; i < 2; i++) await f(i);",
			expected: "var i;\n" +
				"(async () => {\n" +
				"    for (i = 0; i < 2; i++) {\n" +
				"        await f(i);\n" +
				"    }\n" +
				"})();\n",
		},
		{
			name:  "function scoped var stays",
			input: "for (var k in o) { await k; } function g() { var local = 1; }",
			expected: "var k;\n" +
				"var g;\n" +
				"(async () => {\n" +
				"    for (k in o) {\n" +
				"        await k;\n" +
				"    }\n" +
				"    g = function g() {\n" +
				"        var local = 1;\n" +
				"    };\n" +
				"})();\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := parse(t, tt.input)
			if outcome := Transform(program); outcome != Wrapped {
				t.Fatalf("outcome = %v; want wrapped", outcome)
			}
			if got := generator.Generate(program); got != tt.expected {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.expected)
			}
		})
	}
}

func TestUnchanged(t *testing.T) {
	tests := []string{
		"let x = 1; x + 1;",
		"async function f() { await x; }",
		"const f = async () => await x;",
		"class A { async m() { await this.x; } }",
	}

	for _, src := range tests {
		program := parse(t, src)
		before := generator.Generate(program)
		if outcome := Transform(program); outcome != Unchanged {
			t.Errorf("Transform(%q) = %v; want unchanged", src, outcome)
		}
		after := generator.Generate(program)
		if after != before {
			t.Errorf("Transform(%q) changed the program:\n%s", src, after)
		}
		if outcome := Transform(program); outcome != Unchanged || generator.Generate(program) != before {
			t.Errorf("Transform(%q) is not a fixed point", src)
		}
	}
}

func TestDeclined(t *testing.T) {
	tests := []string{
		"await f(); return 1;",
		"if (a) { return; } await b;",
	}

	for _, src := range tests {
		program := parse(t, src)
		before := generator.Generate(program)
		if outcome := Transform(program); outcome != Declined {
			t.Errorf("Transform(%q) = %v; want declined", src, outcome)
		}
		if after := generator.Generate(program); after != before {
			t.Errorf("declined Transform(%q) changed the program:\n%s", src, after)
		}
	}
}

func TestConstCollapsesToLet(t *testing.T) {
	program := parse(t, "const x = await f();")
	Transform(program)

	decl, ok := program.Body[0].Stmt.(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("got %T; want *ast.VariableDeclaration", program.Body[0].Stmt)
	}
	// The wrapper assigns x, so it cannot stay const.
	if decl.Token != token.Let {
		t.Errorf("hoisted kind = %v; want let", decl.Token)
	}
}

// topLevelNames returns the names declared directly in the program body.
func topLevelNames(p *ast.Program) []string {
	var names []string
	for _, stmt := range p.Body {
		switch n := stmt.Stmt.(type) {
		case *ast.VariableDeclaration:
			for _, id := range utils.CollectDeclaratorIds(n) {
				names = append(names, id.Name)
			}
		case *ast.FunctionDeclaration:
			names = append(names, n.Function.Name.Name)
		case *ast.ClassDeclaration:
			names = append(names, n.Class.Name.Name)
		}
	}
	slices.Sort(names)
	return names
}

func TestBindingsPreserved(t *testing.T) {
	tests := []string{
		"var a = 1; let [b, { c }] = await d(); const e = 2; function f() {} class G {}",
		"let x; await 0; var { y = 1, ...z } = {};",
	}

	for _, src := range tests {
		program := parse(t, src)
		before := topLevelNames(program)
		Transform(program)
		if after := topLevelNames(program); !slices.Equal(before, after) {
			t.Errorf("Transform(%q) bindings = %v; want %v", src, after, before)
		}
	}
}

func TestHoistedBeforeInvocation(t *testing.T) {
	program := parse(t, "await a(); let b = 1; class C {} function d() {}")
	Transform(program)

	last := len(program.Body) - 1
	for i, stmt := range program.Body[:last] {
		if _, ok := stmt.Stmt.(*ast.VariableDeclaration); !ok {
			t.Errorf("statement %d = %T; want a hoisted declaration", i, stmt.Stmt)
		}
	}
	call, ok := program.Body[last].Stmt.(*ast.ExpressionStatement).Expression.Expr.(*ast.CallExpression)
	if !ok {
		t.Fatalf("last statement is not a call")
	}
	arrow := call.Callee.Expr.(*ast.ArrowFunctionLiteral)
	if !arrow.Async || len(arrow.ParameterList.List) != 0 {
		t.Errorf("wrapper is not a zero-parameter async arrow function")
	}
	if n := len(arrow.Body.Body.(*ast.BlockStatement).List); n != 4 {
		t.Errorf("wrapper has %d statements; want 4", n)
	}
}
