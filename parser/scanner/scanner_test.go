package scanner_test

import (
	"testing"

	"github.com/t14raptor/replify/parser/scanner"
	"github.com/t14raptor/replify/token"
)

func scanAll(src string) ([]scanner.Token, *scanner.Scanner) {
	s := scanner.NewScanner(src)
	var tokens []scanner.Token
	for {
		s.Next()
		if s.Token.Kind == token.Eof {
			return tokens, s
		}
		tokens = append(tokens, s.Token)
	}
}

func TestTokenKinds(t *testing.T) {
	tests := []struct {
		src  string
		want []token.Token
	}{
		{"a?.b", []token.Token{token.Identifier, token.QuestionDot, token.Identifier}},
		{"a?.5:b", []token.Token{token.Identifier, token.QuestionMark, token.Number, token.Colon, token.Identifier}},
		{"a ?? b ??= c", []token.Token{token.Identifier, token.Coalesce, token.Identifier, token.CoalesceAssign, token.Identifier}},
		{"x **= 2 ** 3", []token.Token{token.Identifier, token.ExponentAssign, token.Number, token.Exponent, token.Number}},
		{"a >>>= b >>> c", []token.Token{token.Identifier, token.UnsignedShiftRightAssign, token.Identifier, token.UnsignedShiftRight, token.Identifier}},
		{"a &&= b ||= c", []token.Token{token.Identifier, token.LogicalAndAssign, token.Identifier, token.LogicalOrAssign, token.Identifier}},
		{"...rest", []token.Token{token.Ellipsis, token.Identifier}},
		{"() => {}", []token.Token{token.LeftParenthesis, token.RightParenthesis, token.Arrow, token.LeftBrace, token.RightBrace}},
		{"this.#x", []token.Token{token.This, token.Period, token.PrivateIdentifier}},
		{"await import('m')", []token.Token{token.Await, token.Import, token.LeftParenthesis, token.String, token.RightParenthesis}},
		{"let async yield static", []token.Token{token.Let, token.Async, token.Yield, token.Static}},
		{"of from as get set", []token.Token{token.Identifier, token.Identifier, token.Identifier, token.Identifier, token.Identifier}},
		{"true false null", []token.Token{token.Boolean, token.Boolean, token.Null}},
		{"a // comment\nb /* block */ c", []token.Token{token.Identifier, token.Identifier, token.Identifier}},
		{"#!/usr/bin/env node\nx", []token.Token{token.Identifier}},
		{".5 + 1e3 + 0x1F + 0b101 + 0o17 + 10n + 1_000", []token.Token{
			token.Number, token.Plus, token.Number, token.Plus, token.Number, token.Plus,
			token.Number, token.Plus, token.Number, token.Plus, token.Number, token.Plus, token.Number,
		}},
	}

	for _, tt := range tests {
		tokens, s := scanAll(tt.src)
		if len(s.Errors()) != 0 {
			t.Errorf("scan(%q) errors = %v", tt.src, s.Errors())
			continue
		}
		if len(tokens) != len(tt.want) {
			t.Errorf("scan(%q) = %d tokens; want %d", tt.src, len(tokens), len(tt.want))
			continue
		}
		for i, tok := range tokens {
			if tok.Kind != tt.want[i] {
				t.Errorf("scan(%q)[%d] = %v; want %v", tt.src, i, tok.Kind, tt.want[i])
			}
		}
	}
}

func TestTokenValues(t *testing.T) {
	tests := []struct {
		src  string
		raw  string
		want string
	}{
		{`"abc"`, `"abc"`, "abc"},
		{`'a\nb'`, `'a\nb'`, "a\nb"},
		{`"A\x42\u{43}"`, `"A\x42\u{43}"`, "ABC"},
		{`"\101"`, `"\101"`, "A"},
		{`café`, `café`, "café"},
		{"#priv", "#priv", "priv"},
		{"`plain`", "`plain`", "plain"},
		{"`a\\tb`", "`a\\tb`", "a\tb"},
	}

	for _, tt := range tests {
		s := scanner.NewScanner(tt.src)
		s.Next()
		if got := s.Token.Raw(s); got != tt.raw {
			t.Errorf("Raw(%q) = %q; want %q", tt.src, got, tt.raw)
		}
		if got := s.Token.String(s); got != tt.want {
			t.Errorf("String(%q) = %q; want %q", tt.src, got, tt.want)
		}
	}
}

func TestOnNewLine(t *testing.T) {
	tokens, _ := scanAll("a\nb /*\n*/ c d")
	want := []bool{false, true, true, false}
	for i, tok := range tokens {
		if tok.OnNewLine != want[i] {
			t.Errorf("token %d OnNewLine = %v; want %v", i, tok.OnNewLine, want[i])
		}
	}
}

func TestEscapedKeyword(t *testing.T) {
	s := scanner.NewScanner(`\u0069f`)
	s.Next()
	if s.Token.Kind != token.EscapedReservedWord {
		t.Errorf("kind = %v; want EscapedReservedWord", s.Token.Kind)
	}

	s = scanner.NewScanner(`l\u0065t`)
	s.Next()
	if s.Token.Kind != token.Identifier || s.Token.String(s) != "let" {
		t.Errorf("kind = %v, value = %q; want Identifier let", s.Token.Kind, s.Token.String(s))
	}
}

func TestParseRegExp(t *testing.T) {
	tests := []struct {
		src     string
		pattern string
		flags   string
	}{
		{"/abc/", "abc", ""},
		{"/a[/]b/gi", "a[/]b", "gi"},
		{`/\//`, `\/`, ""},
		{"/=x/y", "=x", "y"},
	}

	for _, tt := range tests {
		s := scanner.NewScanner(tt.src)
		s.Next()
		pattern, flags, literal := s.ParseRegExp()
		if pattern != tt.pattern || flags != tt.flags || literal != tt.src {
			t.Errorf("ParseRegExp(%q) = %q, %q, %q; want %q, %q", tt.src, pattern, flags, literal, tt.pattern, tt.flags)
		}
		if len(s.Errors()) != 0 {
			t.Errorf("ParseRegExp(%q) errors = %v", tt.src, s.Errors())
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []string{
		`"unterminated`,
		"`unterminated",
		"/* unterminated",
		"1abc",
		"@",
		`"\u{110000}"`,
	}

	for _, src := range tests {
		_, s := scanAll(src)
		if len(s.Errors()) == 0 {
			t.Errorf("scan(%q) produced no errors", src)
		}
	}
}

func TestCheckpointRewind(t *testing.T) {
	s := scanner.NewScanner("a b c")
	s.Next()
	c := s.Checkpoint()
	s.Next()
	s.Next()
	s.Rewind(c)
	if got := s.Token.String(s); got != "a" {
		t.Fatalf("after rewind token = %q; want a", got)
	}
	s.Next()
	if got := s.Token.String(s); got != "b" {
		t.Errorf("next after rewind = %q; want b", got)
	}
}
