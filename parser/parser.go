// Package parser implements a parser for JavaScript units as a REPL host
// evaluates them: script code that may also use await at the top level,
// contain static import declarations and return from the top level.
package parser

import (
	"github.com/t14raptor/replify/ast"
	"github.com/t14raptor/replify/parser/scanner"
	"github.com/t14raptor/replify/token"
)

type parser struct {
	str string

	token   scanner.Token
	scanner *scanner.Scanner

	scope *scope

	errors error
}

func newParser(src string) *parser {
	return &parser{
		str:     src,
		scanner: scanner.NewScanner(src),
	}
}

// ParseFile parses the source code of a single REPL unit and returns the
// corresponding ast.Program node. The returned error joins every syntax
// error found, each prefixed with its line:column position.
func ParseFile(src string) (*ast.Program, error) {
	return newParser(src).parse()
}

func (p *parser) parse() (*ast.Program, error) {
	p.openScope()
	p.scope.allowAwait = true
	p.next()
	program := p.parseProgram()
	p.closeScope()
	p.collectScannerErrors()
	return program, p.errors
}

func (p *parser) next() {
	p.scanner.Next()
	p.token = p.scanner.Token
}

type parserState struct {
	c scanner.Checkpoint

	tok scanner.Token

	errors error
}

func (p *parser) mark() parserState {
	return parserState{
		c:      p.scanner.Checkpoint(),
		tok:    p.token,
		errors: p.errors,
	}
}

func (p *parser) restore(state parserState) {
	p.scanner.Rewind(state.c)
	p.token = state.tok
	// Truncate parser errors back to checkpoint state
	p.errors = state.errors
}

func (p *parser) peek() scanner.Token {
	st := p.mark()
	p.next()
	tok := p.token
	p.restore(st)
	return tok
}

func (p *parser) currentString() string {
	return p.token.String(p.scanner)
}

func (p *parser) currentKind() token.Token {
	return p.token.Kind
}

func (p *parser) currentOffset() ast.Idx {
	return p.token.Idx0
}

// isIdentifierNamed reports whether the current token is the unescaped
// identifier name, as used for contextual words like of, from and as.
func (p *parser) isIdentifierNamed(name string) bool {
	return p.token.Kind == token.Identifier && !p.token.HasEscape && p.currentString() == name
}

func (p *parser) canInsertSemicolon() bool {
	kind := p.currentKind()
	return kind == token.Semicolon || kind == token.RightBrace || kind == token.Eof || p.token.OnNewLine
}

func (p *parser) semicolon() {
	if p.currentKind() == token.Semicolon {
		p.next()
		return
	}
	if !p.canInsertSemicolon() {
		p.errorUnexpectedToken(p.currentKind())
		p.nextStatement()
	}
}

func (p *parser) expect(value token.Token) ast.Idx {
	idx := p.currentOffset()
	if p.token.Kind != value {
		p.errorUnexpectedToken(p.token.Kind)
	}
	p.next()
	return idx
}

// nextStatement skips tokens until something that can start or end a
// statement, so one syntax error does not cascade.
func (p *parser) nextStatement() {
	for {
		switch p.currentKind() {
		case token.Eof, token.RightBrace:
			return
		case token.Semicolon:
			p.next()
			return
		case token.Break, token.Continue, token.For, token.If, token.Return, token.Switch,
			token.Var, token.Const, token.Do, token.Try, token.With, token.While,
			token.Throw, token.Function, token.Class, token.Import, token.Debugger:
			if p.token.OnNewLine {
				return
			}
		}
		p.next()
	}
}
