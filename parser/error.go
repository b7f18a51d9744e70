package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/t14raptor/replify/ast"
	"github.com/t14raptor/replify/token"
)

const (
	errUnexpectedToken      = "Unexpected token %v"
	errUnexpectedEndOfInput = "Unexpected end of input"
)

// errorf records a syntax error at the current token.
func (p *parser) errorf(msg string, msgValues ...any) error {
	return p.errorAt(p.currentOffset(), msg, msgValues...)
}

func (p *parser) errorAt(idx ast.Idx, msg string, msgValues ...any) error {
	err := fmt.Errorf("%s: %s", p.position(idx), fmt.Sprintf(msg, msgValues...))
	p.errors = errors.Join(p.errors, err)
	return err
}

func (p *parser) errorUnexpectedToken(tkn token.Token) error {
	switch tkn {
	case token.Eof:
		return p.errorf(errUnexpectedEndOfInput)
	case token.Identifier:
		return p.errorf("Unexpected identifier")
	case token.Keyword:
		return p.errorf("Unexpected reserved word")
	case token.EscapedReservedWord:
		return p.errorf("Keyword must not contain escaped characters")
	case token.Number:
		return p.errorf("Unexpected number")
	case token.String:
		return p.errorf("Unexpected string")
	case token.Illegal:
		// Already reported by the scanner.
		return nil
	}
	return p.errorf(errUnexpectedToken, tkn.String())
}

func (p *parser) collectScannerErrors() {
	for _, err := range p.scanner.Errors() {
		p.errorAt(err.Start, "%s", err.Message)
	}
}

// position renders idx as a 1-based line:column pair.
func (p *parser) position(idx ast.Idx) string {
	offset := int(idx) - 1
	if offset < 0 {
		offset = 0
	}
	if offset > len(p.str) {
		offset = len(p.str)
	}
	before := p.str[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset - strings.LastIndexByte(before, '\n')
	return fmt.Sprintf("%d:%d", line, col)
}
