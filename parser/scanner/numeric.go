package scanner

import (
	"github.com/t14raptor/replify/ast"
	"github.com/t14raptor/replify/token"
)

// scanNumericLiteral scans a numeric literal starting at a digit or at a
// '.' followed by a digit. The value is computed by the parser from the
// raw text.
func (s *Scanner) scanNumericLiteral() token.Token {
	start := s.src.Idx()
	first := s.ConsumeByte()

	if first == '0' {
		if b, ok := s.PeekByte(); ok {
			switch b {
			case 'x', 'X':
				return s.readNonDecimal(16, start)
			case 'o', 'O':
				return s.readNonDecimal(8, start)
			case 'b', 'B':
				return s.readNonDecimal(2, start)
			}
		}
	}

	if first != '.' {
		s.readDecimalDigits(start)
		if s.AdvanceIfByteEquals('n') {
			return s.checkAfterNumericLiteral(start)
		}
		if !s.AdvanceIfByteEquals('.') {
			s.optionalExp(start)
			return s.checkAfterNumericLiteral(start)
		}
	}

	s.readDecimalDigits(start)
	s.optionalExp(start)
	return s.checkAfterNumericLiteral(start)
}

func (s *Scanner) readNonDecimal(base int, start ast.Idx) token.Token {
	s.ConsumeByte()
	if b, ok := s.PeekByte(); !ok || digitValue(b) >= base {
		s.error(invalidNumber(start, s.src.Idx()))
		return token.Number
	}
	for {
		b, ok := s.PeekByte()
		if !ok {
			break
		}
		if b == '_' {
			s.ConsumeByte()
			if next, ok := s.PeekByte(); !ok || digitValue(next) >= base {
				s.error(invalidNumber(start, s.src.Idx()))
				return token.Number
			}
			continue
		}
		if digitValue(b) >= base {
			break
		}
		s.ConsumeByte()
	}
	s.AdvanceIfByteEquals('n')
	return s.checkAfterNumericLiteral(start)
}

// readDecimalDigits consumes digits with optional single '_' separators.
func (s *Scanner) readDecimalDigits(start ast.Idx) {
	for {
		b, ok := s.PeekByte()
		if !ok {
			return
		}
		if b == '_' {
			s.ConsumeByte()
			if next, ok := s.PeekByte(); !ok || !isDecimalDigit(next) {
				s.error(invalidNumber(start, s.src.Idx()))
				return
			}
			continue
		}
		if !isDecimalDigit(b) {
			return
		}
		s.ConsumeByte()
	}
}

func (s *Scanner) optionalExp(start ast.Idx) {
	b, ok := s.PeekByte()
	if !ok || (b != 'e' && b != 'E') {
		return
	}
	s.ConsumeByte()
	if !s.AdvanceIfByteEquals('+') {
		s.AdvanceIfByteEquals('-')
	}
	if b, ok := s.PeekByte(); !ok || !isDecimalDigit(b) {
		s.error(invalidNumber(start, s.src.Idx()))
		return
	}
	s.readDecimalDigits(start)
}

func (s *Scanner) checkAfterNumericLiteral(start ast.Idx) token.Token {
	if r, ok := s.src.PeekRune(); ok && (token.IsIdentifierStart(r) || r < 0x80 && isDecimalDigit(byte(r)) || r == '\\') {
		for {
			r, ok := s.src.PeekRune()
			if !ok || !(token.IsIdentifierPart(r) || r == '\\') {
				break
			}
			s.ConsumeRune()
		}
		s.error(invalidNumberEnd(start, s.src.Idx()))
	}
	return token.Number
}

func isDecimalDigit(chr byte) bool {
	return '0' <= chr && chr <= '9'
}

func digitValue(chr byte) int {
	switch {
	case '0' <= chr && chr <= '9':
		return int(chr - '0')
	case 'a' <= chr && chr <= 'f':
		return int(chr - 'a' + 10)
	case 'A' <= chr && chr <= 'F':
		return int(chr - 'A' + 10)
	}
	return 16
}
