package scanner

import (
	"github.com/t14raptor/replify/ast"
	"github.com/t14raptor/replify/token"
)

type Token struct {
	Kind token.Token

	OnNewLine bool
	HasEscape bool

	Idx0, Idx1 ast.Idx
}

// Raw returns the source text of the token.
func (t Token) Raw(s *Scanner) string {
	return s.Slice(t.Idx0, t.Idx1)
}

// String returns the value of the token: identifiers and strings decoded,
// private names without the leading #.
func (t Token) String(s *Scanner) string {
	if t.HasEscape {
		return s.EscapedStr
	}
	raw := t.Raw(s)
	switch t.Kind {
	case token.String:
		return raw[1 : len(raw)-1]
	case token.PrivateIdentifier:
		return raw[1:]
	case token.NoSubstitutionTemplate, token.TemplateHead, token.TemplateMiddle, token.TemplateTail:
		return t.TemplateLiteral(s)
	}
	return raw
}

// TemplateLiteral returns the raw text of a template part without its
// delimiters.
func (t Token) TemplateLiteral(s *Scanner) string {
	raw := t.Raw(s)
	switch t.Kind {
	case token.NoSubstitutionTemplate, token.TemplateTail:
		return raw[1 : len(raw)-1]
	case token.TemplateHead, token.TemplateMiddle:
		return raw[1 : len(raw)-2]
	}
	return raw
}
