package scanner

import (
	"unicode/utf8"

	"github.com/t14raptor/replify/ast"
)

// Source is a read cursor over the source text. Offsets are byte offsets
// from the start of the text.
type Source struct {
	str string
	pos int
}

func NewSource(src string) Source {
	return Source{str: src}
}

func (s *Source) EOF() bool {
	return s.pos >= len(s.str)
}

func (s *Source) Offset() int {
	return s.pos
}

// Idx returns the ast index of the current position.
func (s *Source) Idx() ast.Idx {
	return ast.Idx(s.pos + 1)
}

func (s *Source) EndOffset() int {
	return len(s.str)
}

func (s *Source) SetPosition(pos int) {
	s.pos = pos
}

func (s *Source) ReadPosition(pos int) byte {
	return s.str[pos]
}

func (s *Source) NextRune() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	if b := s.str[s.pos]; b < utf8.RuneSelf {
		s.pos++
		return rune(b), true
	}
	r, size := utf8.DecodeRuneInString(s.str[s.pos:])
	s.pos += size
	return r, true
}

func (s *Source) PeekRune() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	if b := s.str[s.pos]; b < utf8.RuneSelf {
		return rune(b), true
	}
	r, _ := utf8.DecodeRuneInString(s.str[s.pos:])
	return r, true
}

func (s *Source) NextByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.NextByteUnchecked(), true
}

func (s *Source) NextByteUnchecked() byte {
	b := s.str[s.pos]
	s.pos++
	return b
}

func (s *Source) PeekByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.str[s.pos], true
}

// PeekByteAt returns the byte n positions ahead of the cursor.
func (s *Source) PeekByteAt(n int) (byte, bool) {
	if s.pos+n >= len(s.str) {
		return 0, false
	}
	return s.str[s.pos+n], true
}

func (s *Source) AdvanceIfByteEquals(b byte) bool {
	if next, ok := s.PeekByte(); ok && next == b {
		s.pos++
		return true
	}
	return false
}

func (s *Source) FromPositionToCurrent(pos int) string {
	return s.str[pos:s.pos]
}

func (s *Source) Slice(from, to int) string {
	return s.str[from:to]
}
