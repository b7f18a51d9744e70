package scanner

import (
	"strings"

	"github.com/t14raptor/replify/token"
)

// ParseRegExp rescans the current '/' or '/=' token as a regular
// expression literal and returns its pattern, flags and full source text.
func (s *Scanner) ParseRegExp() (pattern, flags, literal string) {
	start := int(s.Token.Idx0) - 1
	s.src.SetPosition(start + 1)

	var inEscape, inCharClass bool
	for {
		chr, ok := s.src.NextRune()
		if !ok || isLineTerminator(chr) {
			s.error(unterminatedRegExp(s.Token.Idx0, s.src.Idx()))
			break
		}
		if inEscape {
			inEscape = false
		} else if chr == '/' && !inCharClass {
			pattern = s.src.Slice(start+1, s.src.Offset()-1)
			break
		} else if chr == '[' {
			inCharClass = true
		} else if chr == '\\' {
			inEscape = true
		} else if chr == ']' {
			inCharClass = false
		}
	}

	flagsStart := s.src.Offset()
	for {
		r, ok := s.src.PeekRune()
		if !ok || !token.IsIdentifierPart(r) {
			break
		}
		at := s.src.Idx()
		s.ConsumeRune()
		if !strings.ContainsRune("dgimsuvy", r) {
			s.error(regExpFlag(r, at, s.src.Idx()))
		} else if strings.ContainsRune(s.src.Slice(flagsStart, int(at)-1), r) {
			s.error(regExpFlagTwice(r, at, s.src.Idx()))
		}
	}
	flags = s.src.FromPositionToCurrent(flagsStart)
	literal = s.src.FromPositionToCurrent(start)

	s.Token.Idx1 = s.src.Idx()
	return pattern, flags, literal
}
