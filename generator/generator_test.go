package generator

import (
	"strings"
	"testing"

	"github.com/t14raptor/replify/ast"
	"github.com/t14raptor/replify/parser"
	"github.com/t14raptor/replify/token"
)

func parseSource(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, err := parser.ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile(%q): %v", src, err)
	}
	return program
}

func generateASTNoIndent(program ast.Node) string {
	output := Generate(program)
	return strings.ReplaceAll(strings.ReplaceAll(strings.ReplaceAll(output, "\n", ""), "    ", ""), "'", "\"")
}

func TestSequenceExpressionInNewExpression(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sequence as single argument to new",
			input:    "new F6(((a = 1), 2));",
			expected: "new F6((a = 1, 2));",
		},
		{
			name:     "sequence as second argument to new",
			input:    "new F6(x, ((b = 2), 3));",
			expected: "new F6(x, (b = 2, 3));",
		},
		{
			name:     "sequence with function literal in new",
			input:    "new F6(h, ((r = R), function (W) { return r++; }));",
			expected: "new F6(h, (r = R, function(W) {return r++;}));",
		},
		{
			name:     "sequence in regular function call",
			input:    "f(((d = 4), 5));",
			expected: "f((d = 4, 5));",
		},
		{
			name:     "sequence in assignment",
			input:    "x = (1, 2);",
			expected: "x = (1, 2);",
		},
		{
			name:     "sequence as statement",
			input:    "(a, b);",
			expected: "a, b;",
		},
		{
			name:     "sequence in conditional branch",
			input:    "a = b ? (c, d) : e;",
			expected: "a = b ? (c, d) : e;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := generateASTNoIndent(parseSource(t, tt.input)); got != tt.expected {
				t.Errorf("got %q; want %q", got, tt.expected)
			}
		})
	}
}

func TestParentheses(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a = b + c * d", "a = b + c * d;"},
		{"(a + b) * c", "(a + b) * c;"},
		{"a - (b - c)", "a - (b - c);"},
		{"(a - b) - c", "a - b - c;"},
		{"a ** b ** c", "a ** b ** c;"},
		{"(a ** b) ** c", "(a ** b) ** c;"},
		{"(-a) ** b", "(-a) ** b;"},
		{"a ?? (b || c)", "a ?? (b || c);"},
		{"(a && b) ?? c", "(a && b) ?? c;"},
		{"x = a || b && c", "x = a || b && c;"},
		{"(a || b) && c", "(a || b) && c;"},
		{"x = !(a && b)", "x = !(a && b);"},
		{"- -a", "- -a;"},
		{"-(-a)", "- -a;"},
		{"typeof x", "typeof x;"},
		{"a ? b : c ? d : e", "a ? b : c ? d : e;"},
		{"(a ? b : c) ? d : e", "(a ? b : c) ? d : e;"},
		{"x = (await y).z", "x = (await y).z;"},
		{"x = await (a + b)", "x = await (a + b);"},
		{"new (a())()", "new (a())();"},
		{"new a.b()", "new a.b();"},
		{"new A", "new A();"},
		{"a?.b.c", "a?.b.c;"},
		{"a?.[0]", "a?.[0];"},
		{"a?.()", "a?.();"},
		{"(a?.b).c", "(a?.b).c;"},
		{"1..toString()", "1..toString();"},
		{"(a = 1)", "a = 1;"},
	}

	for _, tt := range tests {
		if got := generateASTNoIndent(parseSource(t, tt.input)); got != tt.expected {
			t.Errorf("Generate(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestStatementStart(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"({ a } = b)", "({ a } = b);\n"},
		{"({}).toString()", "({}.toString());\n"},
		{"(function () {})()", "(function() {}());\n"},
		{"(class {})", "(class {});\n"},
		{"(async () => { await x; })()", "(async () => {\n    await x;\n})();\n"},
		{"x => ({ a: 1 })", "(x) => ({ a: 1 });\n"},
	}

	for _, tt := range tests {
		if got := Generate(parseSource(t, tt.input)); got != tt.expected {
			t.Errorf("Generate(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestStatements(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "for",
			input:    "for (let i = 0; i < n; i++) sum += i;",
			expected: "for (let i = 0; i < n; i++) {\n    sum += i;\n}\n",
		},
		{
			name:     "empty for",
			input:    "for (;;) {}",
			expected: "for (;;) {}\n",
		},
		{
			name:     "for in",
			input:    "for (const k in o) {}",
			expected: "for (const k in o) {}\n",
		},
		{
			name:     "for await",
			input:    "for await (const x of xs) f(x);",
			expected: "for await (const x of xs) {\n    f(x);\n}\n",
		},
		{
			name:     "if else chain",
			input:    "if (a) b; else if (c) d; else e;",
			expected: "if (a) {\n    b;\n} else if (c) {\n    d;\n} else {\n    e;\n}\n",
		},
		{
			name:     "switch",
			input:    "switch (x) { case 1: a(); break; default: b(); }",
			expected: "switch (x) {\n    case 1:\n        a();\n        break;\n    default:\n        b();\n}\n",
		},
		{
			name:     "try",
			input:    "try { a(); } catch { b(); } finally { c(); }",
			expected: "try {\n    a();\n} catch {\n    b();\n} finally {\n    c();\n}\n",
		},
		{
			name:     "empty try",
			input:    "try {} catch (e) {}",
			expected: "try {} catch (e) {}\n",
		},
		{
			name:     "labelled",
			input:    "label: while (true) { break label; }",
			expected: "label: while (true) {\n    break label;\n}\n",
		},
		{
			name:     "do while",
			input:    "do x++; while (x < 5)",
			expected: "do {\n    x++;\n} while (x < 5);\n",
		},
		{
			name:     "patterns",
			input:    "let { a, b: [c, , d], ...e } = f; var [g = 1, ...h] = i;",
			expected: "let { a, b: [c, , d], ...e } = f;\nvar [g = 1, ...h] = i;\n",
		},
		{
			name:     "generator function",
			input:    "async function* g(a, b = 1, ...c) { yield* x; }",
			expected: "async function* g(a, b = 1, ...c) {\n    yield* x;\n}\n",
		},
		{
			name:  "class",
			input: "class A extends B { static x = 1; #y; constructor() { super(); } get z() { return this.#y; } static { init(); } }",
			expected: "class A extends B {\n" +
				"    static x = 1;\n" +
				"    #y;\n" +
				"    constructor() {\n" +
				"        super();\n" +
				"    }\n" +
				"    get z() {\n" +
				"        return this.#y;\n" +
				"    }\n" +
				"    static {\n" +
				"        init();\n" +
				"    }\n" +
				"}\n",
		},
		{
			name:     "object literal",
			input:    "x = { a, b: 1, [c]: 2, 'd-e': 3, get f() {}, async *g() {}, ...h };",
			expected: "x = { a, b: 1, [c]: 2, 'd-e': 3, get f() {}, async *g() {}, ...h };\n",
		},
		{
			name:     "literals",
			input:    "x = [/a+/g, 0x1F, 1_000, 'single', `t${a + b}u`, tag`v`, null, true, , ];",
			expected: "x = [/a+/g, 0x1F, 1_000, 'single', `t${a + b}u`, tag`v`, null, true, ,];\n",
		},
		{
			name:     "imports",
			input:    "import def, * as ns from \"m\"; import { a, b as c, \"d e\" as f } from 'm' with { type: 'json' }; import \"n\"",
			expected: "import def, * as ns from \"m\";\nimport { a, b as c, \"d e\" as f } from 'm' with { type: 'json' };\nimport \"n\";\n",
		},
		{
			name:     "meta properties",
			input:    "x = import.meta.url; y = import('m')",
			expected: "x = import.meta.url;\ny = import('m');\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(parseSource(t, tt.input))
			if got != tt.expected {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.expected)
			}
			if again := Generate(parseSource(t, got)); again != got {
				t.Errorf("output is not a fixed point:\n%s", again)
			}
		})
	}
}

func TestSynthesizedLiterals(t *testing.T) {
	tests := []struct {
		name     string
		node     ast.Node
		expected string
	}{
		{
			name:     "quoted string",
			node:     &ast.StringLiteral{Value: "a\"b\n\\c"},
			expected: `"a\"b\n\\c"`,
		},
		{
			name:     "nul before digit",
			node:     &ast.StringLiteral{Value: "\x001"},
			expected: `"\x001"`,
		},
		{
			name:     "integer",
			node:     &ast.NumberLiteral{Value: 42},
			expected: "42",
		},
		{
			name:     "fraction",
			node:     &ast.NumberLiteral{Value: 1.5},
			expected: "1.5",
		},
		{
			name:     "large",
			node:     &ast.NumberLiteral{Value: 1e21},
			expected: "1e+21",
		},
		{
			name: "negative operand",
			node: &ast.UnaryExpression{
				Operator: token.Minus,
				Operand:  &ast.Expression{Expr: &ast.NumberLiteral{Value: -1}},
			},
			expected: "- -1",
		},
		{
			name: "integer member object",
			node: &ast.MemberExpression{
				Object:   &ast.Expression{Expr: &ast.NumberLiteral{Value: 1}},
				Property: &ast.MemberProperty{Prop: &ast.Identifier{Name: "toString"}},
			},
			expected: "(1).toString",
		},
		{
			name: "string key access",
			node: &ast.MemberExpression{
				Object: &ast.Expression{Expr: &ast.Identifier{Name: "ns"}},
				Property: &ast.MemberProperty{Prop: &ast.ComputedProperty{
					Expr: &ast.Expression{Expr: &ast.StringLiteral{Value: "a-b"}},
				}},
			},
			expected: `ns["a-b"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.node); got != tt.expected {
				t.Errorf("got %s; want %s", got, tt.expected)
			}
		})
	}
}
