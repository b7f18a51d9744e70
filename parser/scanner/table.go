package scanner

import (
	"github.com/t14raptor/replify/token"
)

// Next scans the next token into s.Token. A '/' is always scanned as a
// division operator; the parser calls ParseRegExp when a regular
// expression is expected instead.
func (s *Scanner) Next() {
	s.Token.HasEscape = false
	s.Token.OnNewLine = false
	s.EscapedStr = ""
	s.TemplateInvalid = false

	for {
		s.Token.Idx0 = s.src.Idx()

		b, ok := s.src.PeekByte()
		if !ok {
			s.Token.Kind = token.Eof
			break
		}

		switch b {
		// ---- Whitespace ----
		case '\t', ' ', 0x0B, 0x0C:
			s.ConsumeByte()
			continue

		case '\n', '\r':
			s.ConsumeByte()
			s.Token.OnNewLine = true
			continue

		// ---- Single-character punctuation ----
		case '(':
			s.ConsumeByte()
			s.Token.Kind = token.LeftParenthesis
		case ')':
			s.ConsumeByte()
			s.Token.Kind = token.RightParenthesis
		case ',':
			s.ConsumeByte()
			s.Token.Kind = token.Comma
		case ':':
			s.ConsumeByte()
			s.Token.Kind = token.Colon
		case ';':
			s.ConsumeByte()
			s.Token.Kind = token.Semicolon
		case '[':
			s.ConsumeByte()
			s.Token.Kind = token.LeftBracket
		case ']':
			s.ConsumeByte()
			s.Token.Kind = token.RightBracket
		case '{':
			s.ConsumeByte()
			s.Token.Kind = token.LeftBrace
		case '}':
			s.ConsumeByte()
			s.Token.Kind = token.RightBrace
		case '~':
			s.ConsumeByte()
			s.Token.Kind = token.BitwiseNot

		// ---- Operators ----
		case '!':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('=') {
				if s.AdvanceIfByteEquals('=') {
					s.Token.Kind = token.StrictNotEqual
				} else {
					s.Token.Kind = token.NotEqual
				}
			} else {
				s.Token.Kind = token.Not
			}

		case '%':
			s.ConsumeByte()
			s.Token.Kind = s.assignVariant(token.Remainder, token.RemainderAssign)

		case '^':
			s.ConsumeByte()
			s.Token.Kind = s.assignVariant(token.ExclusiveOr, token.ExclusiveOrAssign)

		case '&':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('&') {
				s.Token.Kind = s.assignVariant(token.LogicalAnd, token.LogicalAndAssign)
			} else {
				s.Token.Kind = s.assignVariant(token.And, token.AndAssign)
			}

		case '|':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('|') {
				s.Token.Kind = s.assignVariant(token.LogicalOr, token.LogicalOrAssign)
			} else {
				s.Token.Kind = s.assignVariant(token.Or, token.OrAssign)
			}

		case '*':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('*') {
				s.Token.Kind = s.assignVariant(token.Exponent, token.ExponentAssign)
			} else {
				s.Token.Kind = s.assignVariant(token.Multiply, token.MultiplyAssign)
			}

		case '+':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('+') {
				s.Token.Kind = token.Increment
			} else {
				s.Token.Kind = s.assignVariant(token.Plus, token.AddAssign)
			}

		case '-':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('-') {
				s.Token.Kind = token.Decrement
			} else {
				s.Token.Kind = s.assignVariant(token.Minus, token.SubtractAssign)
			}

		case '=':
			s.ConsumeByte()
			switch {
			case s.AdvanceIfByteEquals('>'):
				s.Token.Kind = token.Arrow
			case s.AdvanceIfByteEquals('='):
				s.Token.Kind = s.assignVariant(token.Equal, token.StrictEqual)
			default:
				s.Token.Kind = token.Assign
			}

		case '<':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('<') {
				s.Token.Kind = s.assignVariant(token.ShiftLeft, token.ShiftLeftAssign)
			} else {
				s.Token.Kind = s.assignVariant(token.Less, token.LessOrEqual)
			}

		case '>':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('>') {
				if s.AdvanceIfByteEquals('>') {
					s.Token.Kind = s.assignVariant(token.UnsignedShiftRight, token.UnsignedShiftRightAssign)
				} else {
					s.Token.Kind = s.assignVariant(token.ShiftRight, token.ShiftRightAssign)
				}
			} else {
				s.Token.Kind = s.assignVariant(token.Greater, token.GreaterOrEqual)
			}

		case '?':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('?') {
				s.Token.Kind = s.assignVariant(token.Coalesce, token.CoalesceAssign)
			} else if next, ok := s.src.PeekByte(); ok && next == '.' {
				// a?.5:b is a conditional, not an optional chain.
				if after, ok := s.src.PeekByteAt(1); !ok || !isDecimalDigit(after) {
					s.ConsumeByte()
					s.Token.Kind = token.QuestionDot
				} else {
					s.Token.Kind = token.QuestionMark
				}
			} else {
				s.Token.Kind = token.QuestionMark
			}

		case '.':
			s.Token.Kind = s.readDot()

		case '/':
			switch next, _ := s.src.PeekByteAt(1); next {
			case '/':
				s.skipSingleLineComment()
				continue
			case '*':
				s.skipMultiLineComment()
				continue
			}
			s.ConsumeByte()
			s.Token.Kind = s.assignVariant(token.Slash, token.QuotientAssign)

		// ---- Literals ----
		case '"', '\'':
			s.Token.Kind = s.scanStringLiteral(b)

		case '`':
			s.ConsumeByte()
			s.Token.Kind = s.readTemplateLiteral(token.TemplateHead, token.NoSubstitutionTemplate)

		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			s.Token.Kind = s.scanNumericLiteral()

		case '#':
			if s.src.Offset() == 0 {
				if next, _ := s.src.PeekByteAt(1); next == '!' {
					s.skipSingleLineComment()
					continue
				}
			}
			s.ConsumeByte()
			s.scanIdentifier()
			s.Token.Kind = token.PrivateIdentifier

		case '\\':
			s.Token.Kind = s.scanIdentifier()

		default:
			r, _ := s.src.PeekRune()
			switch {
			case isLineTerminator(r):
				s.ConsumeRune()
				s.Token.OnNewLine = true
				continue
			case isLineWhiteSpace(r):
				s.ConsumeRune()
				continue
			case token.IsIdentifierStart(r):
				s.Token.Kind = s.scanIdentifier()
			default:
				start := s.src.Idx()
				s.ConsumeRune()
				s.error(invalidCharacter(r, start, s.src.Idx()))
				s.Token.Kind = token.Illegal
			}
		}
		break
	}
	s.Token.Idx1 = s.src.Idx()
}

// assignVariant returns assign if the next byte is '=' (and consumes it),
// plain otherwise.
func (s *Scanner) assignVariant(plain, assign token.Token) token.Token {
	if s.AdvanceIfByteEquals('=') {
		return assign
	}
	return plain
}

func (s *Scanner) readDot() token.Token {
	if next, ok := s.src.PeekByteAt(1); ok && isDecimalDigit(next) {
		return s.scanNumericLiteral()
	}
	s.ConsumeByte()
	if next, _ := s.src.PeekByte(); next == '.' {
		if after, _ := s.src.PeekByteAt(1); after == '.' {
			s.ConsumeByte()
			s.ConsumeByte()
			return token.Ellipsis
		}
	}
	return token.Period
}
