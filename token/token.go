package token

import (
	"strconv"
)

// Token is the set of lexical tokens in JavaScript.
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) && token2string[t] != "" {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Precedence returns the binding power of a binary operator, higher binds
// tighter. Zero means t is not a binary operator. When in is false the in
// operator is not considered binary (for-in initializers).
func (t Token) Precedence(in bool) int {
	switch t {
	case Coalesce:
		return 1
	case LogicalOr:
		return 2
	case LogicalAnd:
		return 3
	case Or:
		return 4
	case ExclusiveOr:
		return 5
	case And:
		return 6
	case Equal, NotEqual, StrictEqual, StrictNotEqual:
		return 7
	case Less, Greater, LessOrEqual, GreaterOrEqual, InstanceOf:
		return 8
	case In:
		if in {
			return 8
		}
		return 0
	case ShiftLeft, ShiftRight, UnsignedShiftRight:
		return 9
	case Plus, Minus:
		return 10
	case Multiply, Slash, Remainder:
		return 11
	case Exponent:
		return 12
	}
	return 0
}

// IsAssign reports whether t is one of the assignment operators.
func (t Token) IsAssign() bool {
	switch t {
	case Assign, AddAssign, SubtractAssign, MultiplyAssign, ExponentAssign,
		QuotientAssign, RemainderAssign, AndAssign, OrAssign, ExclusiveOrAssign,
		ShiftLeftAssign, ShiftRightAssign, UnsignedShiftRightAssign,
		LogicalAndAssign, LogicalOrAssign, CoalesceAssign:
		return true
	}
	return false
}

// IsLogical reports whether t is &&, || or ??.
func (t Token) IsLogical() bool {
	return t == LogicalAnd || t == LogicalOr || t == Coalesce
}

// keyword ...
type keyword struct {
	token         Token
	futureKeyword bool
}

// LiteralKeyword returns the keyword token if literal is a keyword, a Keyword
// token if the literal is a future reserved word, or 0 if the literal is not
// a keyword.
func LiteralKeyword(literal string) Token {
	if k, exists := keywordTable[literal]; exists {
		if k.futureKeyword {
			return Keyword
		}
		return k.token
	}
	return 0
}

// ID reports whether the token is an identifier name: an identifier or any
// keyword, usable as a property name.
func ID(token Token) bool {
	return token >= Identifier
}

// UnreservedWord reports whether the token is a keyword that can still be
// used as a binding identifier outside of the contexts that reserve it.
func UnreservedWord(token Token) bool {
	return token > EscapedReservedWord
}
