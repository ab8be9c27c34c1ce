package parser

import (
	"regexp"

	"github.com/seitarof/gen-reflect/internal/lexer"
)

// FindNamespace returns the body of the first `namespace <name> { ... }`
// block in src, located by brace-depth counting from the opening brace.
// Braces inside string and character literals are not counted. src should
// already be comment-free. An unterminated block yields the rest
// of src.
func FindNamespace(src, name string) (string, bool) {
	re, err := regexp.Compile(`\bnamespace\s+` + regexp.QuoteMeta(name) + `\s*\{`)
	if err != nil {
		return "", false
	}
	loc := re.FindStringIndex(src)
	if loc == nil {
		return "", false
	}

	start := loc[1]
	depth := 0
	for i := start; i < len(src); i++ {
		if end, ok := lexer.LiteralEnd(src, i); ok {
			i = end - 1
			continue
		}
		switch src[i] {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return src[start:i], true
			}
			depth--
		}
	}
	return src[start:], true
}
