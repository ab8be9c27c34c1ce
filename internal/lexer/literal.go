// Package lexer holds the token-level helpers shared by the header scanners.
package lexer

// LiteralEnd reports whether a string or character literal opens at src[i]
// and returns the index just past it. A `'` inside a numeric token (`1'024`,
// `0xFF'FF`) is a digit separator and opens nothing. Literals do not span
// lines; an unterminated one ends at the newline.
func LiteralEnd(src string, i int) (int, bool) {
	quote := src[i]
	switch {
	case quote == '"':
	case quote == '\'' && !inNumber(src, i):
	default:
		return i, false
	}
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case quote:
			return j + 1, true
		case '\n':
			return j, true
		}
	}
	return len(src), true
}

// inNumber reports whether the token ending right before i starts with a
// digit. Separators already passed count as part of the token.
func inNumber(src string, i int) bool {
	j := i
	for j > 0 && (IsIdentChar(src[j-1]) || src[j-1] == '\'') {
		j--
	}
	return j < i && src[j] >= '0' && src[j] <= '9'
}

// IsIdentStart reports whether c can begin an identifier.
func IsIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsIdentChar reports whether c can continue an identifier.
func IsIdentChar(c byte) bool {
	return IsIdentStart(c) || (c >= '0' && c <= '9')
}
