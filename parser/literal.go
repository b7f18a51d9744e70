package parser

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// parseNumberLiteral computes the value of a numeric literal from its raw
// text. BigInt literals yield their nearest float64 value.
func parseNumberLiteral(literal string) (float64, error) {
	s := strings.ReplaceAll(literal, "_", "")
	s = strings.TrimSuffix(s, "n")

	if len(s) > 1 && s[0] == '0' {
		base, digits := 0, s[2:]
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		default:
			if strings.Trim(s, "01234567") == "" {
				// Legacy octal, 0755.
				base, digits = 8, s[1:]
			}
		}
		if base != 0 {
			n, ok := new(big.Int).SetString(digits, base)
			if !ok {
				return 0, fmt.Errorf("Invalid number literal %s", literal)
			}
			value, _ := new(big.Float).SetInt(n).Float64()
			return value, nil
		}
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return value, nil
		}
		return 0, fmt.Errorf("Invalid number literal %s", literal)
	}
	return value, nil
}
