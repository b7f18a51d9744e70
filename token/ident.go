package token

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// Unicode ID_Start and ID_Continue, as used by ECMAScript IdentifierName.
var (
	idStart = rangetable.Merge(
		unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl,
		unicode.Other_ID_Start,
	)
	idContinue = rangetable.Merge(
		idStart,
		unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc,
		unicode.Other_ID_Continue,
	)
)

// IsIdentifierStart reports whether r may begin an identifier name.
func IsIdentifierStart(r rune) bool {
	if r < utf8.RuneSelf {
		return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '$' || r == '_'
	}
	return unicode.Is(idStart, r)
}

// IsIdentifierPart reports whether r may continue an identifier name.
func IsIdentifierPart(r rune) bool {
	if r < utf8.RuneSelf {
		return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9' || r == '$' || r == '_'
	}
	// ZWNJ and ZWJ.
	return r == '\u200c' || r == '\u200d' || unicode.Is(idContinue, r)
}

// IsIdentifierName reports whether s can be written as an unquoted
// identifier name, e.g. after a dot or as an object key.
func IsIdentifierName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !IsIdentifierStart(r) {
				return false
			}
		} else if !IsIdentifierPart(r) {
			return false
		}
	}
	return true
}

// IsBindingName reports whether s can be used as a binding identifier in
// sloppy-mode code: an identifier name that is not a reserved word.
func IsBindingName(s string) bool {
	if !IsIdentifierName(s) {
		return false
	}
	tok := LiteralKeyword(s)
	return tok == 0 || UnreservedWord(tok)
}
