package scanner

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/t14raptor/replify/ast"
	"github.com/t14raptor/replify/token"
)

func (s *Scanner) scanStringLiteral(delim byte) token.Token {
	start := s.src.Idx()
	s.ConsumeByte()
	afterOpen := s.src.Offset()

	for {
		b, ok := s.PeekByte()
		if !ok {
			s.error(unterminatedString(start, s.src.Idx()))
			return token.String
		}
		switch b {
		case delim:
			s.ConsumeByte()
			return token.String
		case '\\':
			return s.scanStringLiteralEscaped(delim, start, afterOpen)
		case '\r', '\n':
			s.error(unterminatedString(start, s.src.Idx()))
			return token.String
		}
		s.ConsumeByte()
	}
}

func (s *Scanner) scanStringLiteralEscaped(delim byte, start ast.Idx, afterOpen int) token.Token {
	soFar := s.src.FromPositionToCurrent(afterOpen)
	str := &strings.Builder{}
	str.Grow(max(len(soFar)*2, 16))
	str.WriteString(soFar)

	for {
		b, ok := s.PeekByte()
		if !ok {
			s.error(unterminatedString(start, s.src.Idx()))
			break
		}
		if b == delim {
			s.ConsumeByte()
			break
		}
		if b == '\r' || b == '\n' {
			s.error(unterminatedString(start, s.src.Idx()))
			break
		}
		if b == '\\' {
			escStart := s.src.Idx()
			s.ConsumeByte()
			if !s.readStringEscapeSequence(str, false) {
				s.error(invalidEscapeSequence(escStart, s.src.Idx()))
			}
			continue
		}
		str.WriteRune(s.ConsumeRune())
	}

	s.Token.HasEscape = true
	s.EscapedStr = str.String()
	return token.String
}

// readStringEscapeSequence decodes the escape sequence following a
// backslash. Legacy octal escapes are invalid inside templates.
func (s *Scanner) readStringEscapeSequence(str *strings.Builder, inTemplate bool) bool {
	chr, ok := s.src.NextRune()
	if !ok {
		return false
	}

	switch chr {
	case '\n', '\u2028', '\u2029':
	case '\r':
		s.AdvanceIfByteEquals('\n')
	case 'b':
		str.WriteByte('\b')
	case 'f':
		str.WriteByte('\f')
	case 'n':
		str.WriteByte('\n')
	case 'r':
		str.WriteByte('\r')
	case 't':
		str.WriteByte('\t')
	case 'v':
		str.WriteByte('\v')
	case 'x':
		hi, ok1 := s.hexDigit()
		if !ok1 {
			return false
		}
		lo, ok2 := s.hexDigit()
		if !ok2 {
			return false
		}
		str.WriteRune(hi<<4 | lo)
	case 'u':
		r, valid := s.unicodeCodePoint()
		if !valid {
			return false
		}
		if utf16.IsSurrogate(r) {
			r = s.surrogatePair(r)
		}
		str.WriteRune(r)
	case '0', '1', '2', '3', '4', '5', '6', '7':
		next, _ := s.PeekByte()
		if chr == '0' && !isDecimalDigit(next) {
			str.WriteByte(0)
			return true
		}
		if inTemplate {
			return false
		}
		value := chr - '0'
		limit := 2
		if chr > '3' {
			limit = 1
		}
		for i := 0; i < limit; i++ {
			b, ok := s.PeekByte()
			if !ok || b < '0' || b > '7' {
				break
			}
			s.ConsumeByte()
			value = value*8 + rune(b-'0')
		}
		str.WriteRune(value)
	case '8', '9':
		if inTemplate {
			return false
		}
		str.WriteRune(chr)
	default:
		str.WriteRune(chr)
	}
	return true
}

// unicodeCodePoint reads XXXX or {X...} after \u.
func (s *Scanner) unicodeCodePoint() (rune, bool) {
	if s.AdvanceIfByteEquals('{') {
		var value rune
		digits := 0
		for {
			if s.AdvanceIfByteEquals('}') {
				break
			}
			d, ok := s.hexDigit()
			if !ok {
				return utf8.RuneError, false
			}
			value = value<<4 | d
			digits++
			if value > utf8.MaxRune {
				return utf8.RuneError, false
			}
		}
		return value, digits > 0
	}

	var value rune
	for i := 0; i < 4; i++ {
		d, ok := s.hexDigit()
		if !ok {
			return utf8.RuneError, false
		}
		value = value<<4 | d
	}
	return value, true
}

// surrogatePair joins a high surrogate with an immediately following \u
// escaped low surrogate. A lone surrogate decodes to U+FFFD.
func (s *Scanner) surrogatePair(high rune) rune {
	if high >= 0xdc00 {
		return utf8.RuneError
	}
	pos := s.src.pos
	if s.AdvanceIfByteEquals('\\') && s.AdvanceIfByteEquals('u') {
		if low, ok := s.unicodeCodePoint(); ok && 0xdc00 <= low && low < 0xe000 {
			return utf16.DecodeRune(high, low)
		}
	}
	s.src.pos = pos
	return utf8.RuneError
}

func (s *Scanner) hexDigit() (rune, bool) {
	b, ok := s.PeekByte()
	if !ok || digitValue(b) >= 16 {
		return 0, false
	}
	s.ConsumeByte()
	return rune(digitValue(b)), true
}
