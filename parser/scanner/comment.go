package scanner

import "unicode"

func isLineTerminator(chr rune) bool {
	switch chr {
	case '\u000a', '\u000d', '\u2028', '\u2029':
		return true
	}
	return false
}

func isLineWhiteSpace(chr rune) bool {
	switch chr {
	case '\u0009', '\u000b', '\u000c', '\u0020', '\u00a0', '\ufeff':
		return true
	case '\u000a', '\u000d', '\u2028', '\u2029', '\u0085':
		return false
	}
	return unicode.Is(unicode.Zs, chr)
}

// skipSingleLineComment skips a // comment (or a #! line) up to, but not
// including, the line terminator.
func (s *Scanner) skipSingleLineComment() {
	for {
		r, ok := s.src.PeekRune()
		if !ok || isLineTerminator(r) {
			return
		}
		s.ConsumeRune()
	}
}

// skipMultiLineComment skips a /* */ comment. A comment spanning lines
// counts as a line terminator for automatic semicolon insertion.
func (s *Scanner) skipMultiLineComment() {
	start := s.src.Idx()
	s.ConsumeByte()
	s.ConsumeByte()
	for {
		r, ok := s.src.NextRune()
		if !ok {
			s.error(unterminatedMultiLineComment(start, s.src.Idx()))
			return
		}
		if isLineTerminator(r) {
			s.Token.OnNewLine = true
		}
		if r == '*' && s.AdvanceIfByteEquals('/') {
			return
		}
	}
}
