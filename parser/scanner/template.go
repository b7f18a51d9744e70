package scanner

import (
	"strings"

	"github.com/t14raptor/replify/token"
)

// readTemplateLiteral scans the body of a template part. The opening
// delimiter (` or }) must already have been consumed. sub is returned when
// the part ends with ${, tail when it ends with `.
func (s *Scanner) readTemplateLiteral(sub, tail token.Token) token.Token {
	start := s.Token.Idx0
	contentStart := s.src.Offset()
	var str *strings.Builder

	flush := func(to int) {
		if str == nil {
			str = &strings.Builder{}
			str.WriteString(s.src.Slice(contentStart, to))
		}
	}

	for {
		b, ok := s.PeekByte()
		if !ok {
			s.error(unterminatedTemplateLiteral(start, s.src.Idx()))
			flush(s.src.Offset())
			s.Token.HasEscape = true
			s.EscapedStr = str.String()
			return tail
		}

		switch b {
		case '`':
			s.ConsumeByte()
			s.finishTemplatePart(str)
			return tail
		case '$':
			if next, _ := s.src.PeekByteAt(1); next == '{' {
				s.ConsumeByte()
				s.ConsumeByte()
				s.finishTemplatePart(str)
				return sub
			}
			s.ConsumeByte()
			if str != nil {
				str.WriteByte('$')
			}
		case '\r':
			// CR and CRLF are normalized to LF in the cooked value.
			flush(s.src.Offset())
			s.ConsumeByte()
			s.AdvanceIfByteEquals('\n')
			str.WriteByte('\n')
		case '\\':
			flush(s.src.Offset())
			s.ConsumeByte()
			if !s.readStringEscapeSequence(str, true) {
				s.TemplateInvalid = true
			}
		default:
			r := s.ConsumeRune()
			if str != nil {
				str.WriteRune(r)
			}
		}
	}
}

func (s *Scanner) finishTemplatePart(str *strings.Builder) {
	if str != nil {
		s.Token.HasEscape = true
		s.EscapedStr = str.String()
	}
}

// ReadTemplateContinuation rescans the current '}' token as the start of
// a TemplateMiddle or TemplateTail part.
func (s *Scanner) ReadTemplateContinuation() {
	s.src.SetPosition(int(s.Token.Idx0))
	s.Token.HasEscape = false
	s.EscapedStr = ""
	s.TemplateInvalid = false
	s.Token.Kind = s.readTemplateLiteral(token.TemplateMiddle, token.TemplateTail)
	s.Token.Idx1 = s.src.Idx()
}
