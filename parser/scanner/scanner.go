// Package scanner implements a lexer for JavaScript source text.
//
// The parser drives the scanner one token at a time. Tokens whose shape
// depends on the parse context (regular expressions and the continuation of
// a template literal after a substitution) are rescanned on request.
package scanner

import (
	"github.com/t14raptor/replify/ast"
)

type Scanner struct {
	Token Token

	// EscapedStr is the decoded value of the current token when
	// Token.HasEscape is set.
	EscapedStr string

	// TemplateInvalid reports that the current template part contains a
	// malformed escape sequence. Only tagged templates may carry one.
	TemplateInvalid bool

	src    Source
	errors []Error
}

func NewScanner(src string) *Scanner {
	return &Scanner{
		src: NewSource(src),
	}
}

// Errors returns the lexical errors found so far.
func (s *Scanner) Errors() []Error {
	return s.errors
}

func (s *Scanner) error(err Error) {
	s.errors = append(s.errors, err)
}

type Checkpoint struct {
	pos     int
	tok     Token
	escaped string
	invalid bool
	errors  int
}

func (s *Scanner) Checkpoint() Checkpoint {
	return Checkpoint{
		pos:     s.src.pos,
		tok:     s.Token,
		escaped: s.EscapedStr,
		invalid: s.TemplateInvalid,
		errors:  len(s.errors),
	}
}

func (s *Scanner) Rewind(c Checkpoint) {
	s.src.pos = c.pos
	s.Token = c.tok
	s.EscapedStr = c.escaped
	s.TemplateInvalid = c.invalid
	s.errors = s.errors[:c.errors]
}

// Offset returns the index of the next unread byte.
func (s *Scanner) Offset() ast.Idx {
	return s.src.Idx()
}

// Slice returns the source text between two indices.
func (s *Scanner) Slice(from, to ast.Idx) string {
	return s.src.Slice(int(from)-1, int(to)-1)
}

func (s *Scanner) ConsumeByte() byte {
	return s.src.NextByteUnchecked()
}

func (s *Scanner) ConsumeRune() rune {
	r, _ := s.src.NextRune()
	return r
}

func (s *Scanner) PeekByte() (byte, bool) {
	return s.src.PeekByte()
}

func (s *Scanner) AdvanceIfByteEquals(b byte) bool {
	return s.src.AdvanceIfByteEquals(b)
}
