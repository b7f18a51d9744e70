package scanner

import (
	"strings"

	"github.com/t14raptor/replify/token"
)

// scanIdentifier scans an identifier name, decoding \u escapes. The result
// is a keyword token when the name is a keyword written without escapes.
func (s *Scanner) scanIdentifier() token.Token {
	start := s.src.Offset()
	var str *strings.Builder

	for {
		r, ok := s.src.PeekRune()
		if !ok {
			break
		}
		if r == '\\' {
			if str == nil {
				str = &strings.Builder{}
				str.WriteString(s.src.FromPositionToCurrent(start))
			}
			escStart := s.src.Idx()
			s.ConsumeByte()
			first := str.Len() == 0
			chr, valid := s.identifierUnicodeEscapeSequence()
			if !valid || (first && !token.IsIdentifierStart(chr)) || (!first && !token.IsIdentifierPart(chr)) {
				s.error(invalidUnicodeEscapeSequence(escStart, s.src.Idx()))
			}
			str.WriteRune(chr)
			continue
		}
		if !token.IsIdentifierPart(r) {
			break
		}
		s.ConsumeRune()
		if str != nil {
			str.WriteRune(r)
		}
	}

	if str == nil {
		if kw := token.LiteralKeyword(s.src.FromPositionToCurrent(start)); kw != 0 {
			return kw
		}
		return token.Identifier
	}

	s.Token.HasEscape = true
	s.EscapedStr = str.String()
	if kw := token.LiteralKeyword(s.EscapedStr); kw != 0 && !token.UnreservedWord(kw) {
		return token.EscapedReservedWord
	}
	return token.Identifier
}

// identifierUnicodeEscapeSequence reads the part of a \u escape after the
// backslash.
func (s *Scanner) identifierUnicodeEscapeSequence() (rune, bool) {
	if !s.AdvanceIfByteEquals('u') {
		return 0, false
	}
	return s.unicodeCodePoint()
}
