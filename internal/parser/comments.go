package parser

import (
	"strings"

	"github.com/seitarof/gen-reflect/internal/lexer"
)

// StripComments removes `//` and `/* */` comments from C++ source.
//
// A line comment is dropped up to (not including) its newline. A block
// comment becomes a single space followed by the newlines it spanned, so
// tokens on either side stay separate and line numbers do not shift. An
// unterminated block comment runs to end of input. Comment markers inside
// string and character literals are left alone; a digit separator (`1'024`)
// does not open a literal.
func StripComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	for i := 0; i < len(src); {
		if end, ok := lexer.LiteralEnd(src, i); ok {
			b.WriteString(src[i:end])
			i = end
			continue
		}
		c := src[i]
		switch {
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			nl := strings.IndexByte(src[i:], '\n')
			if nl < 0 {
				return b.String()
			}
			i += nl
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			body := src[i+2:]
			end := strings.Index(body, "*/")
			if end < 0 {
				end = len(body)
			}
			b.WriteByte(' ')
			b.WriteString(strings.Repeat("\n", strings.Count(body[:end], "\n")))
			i += 2 + end + 2
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}
