package matcher

import (
	"regexp"
	"strings"

	"github.com/seitarof/gen-reflect/internal/lexer"
)

// StructDecl is one `struct Name { ... };` found in a namespace body.
type StructDecl struct {
	Name string
	Body string
}

// FieldDecl is one field statement of a struct body.
type FieldDecl struct {
	Type        string
	Name        string
	ArraySuffix string
}

// SkippedStatement is a statement the field grammar did not accept.
type SkippedStatement struct {
	Statement string
	Reason    string
}

// StructMatcher finds struct declarations in a namespace body.
type StructMatcher interface {
	MatchStructs(body string) []StructDecl
}

// FieldMatcher extracts field declarations from a struct body.
type FieldMatcher interface {
	Match(body string) ([]FieldDecl, []SkippedStatement)
}

type structMatcherImpl struct{}

type fieldMatcherImpl struct{}

// NewStructMatcher returns default struct matcher.
func NewStructMatcher() StructMatcher {
	return &structMatcherImpl{}
}

// NewFieldMatcher returns default field matcher.
func NewFieldMatcher() FieldMatcher {
	return &fieldMatcherImpl{}
}

var (
	fieldRe      = regexp.MustCompile(`^([^;{}/=]+?)\s+([A-Za-z_][A-Za-z0-9_]*)((?:\s*\[[^\]]+\])*)\s*;\s*(?://.*|/\*.*\*/\s*)?$`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	accessRe     = regexp.MustCompile(`^(?:(?:public|private|protected) ?: ?)+`)
)

var nonFieldKeywords = []string{"static", "static_assert", "typedef", "using", "friend"}

func (m *structMatcherImpl) MatchStructs(body string) []StructDecl {
	var decls []StructDecl
	templated := false
	i := 0
	for i < len(body) {
		if end, ok := lexer.LiteralEnd(body, i); ok {
			i = end
			continue
		}
		c := body[i]
		switch {
		case c == '{':
			i = skipBlock(body, i)
			templated = false
		case c == ';':
			templated = false
			i++
		case lexer.IsIdentStart(c):
			word, next := readIdent(body, i)
			switch word {
			case "template":
				templated = true
				i = next
			case "struct":
				decl, end, ok := scanStruct(body, next)
				if ok && !templated {
					decls = append(decls, decl)
				}
				if end > next {
					templated = false
				}
				i = max(end, next)
			default:
				i = next
			}
		case lexer.IsIdentChar(c):
			// numeric literal or identifier tail; consume as one token
			_, i = readIdent(body, i)
		default:
			i++
		}
	}
	return decls
}

// scanStruct expects pos to sit right after the `struct` keyword. It returns
// the position scanning should resume from; when no body follows the name the
// returned position equals pos.
func scanStruct(body string, pos int) (StructDecl, int, bool) {
	i := skipSpace(body, pos)
	if i >= len(body) || !lexer.IsIdentStart(body[i]) {
		return StructDecl{}, pos, false
	}
	name, i := readIdent(body, i)
	i = skipSpace(body, i)
	if i >= len(body) || body[i] != '{' {
		return StructDecl{}, pos, false
	}
	open := i
	closeAt := matchBrace(body, open)
	if closeAt < 0 {
		return StructDecl{}, len(body), false
	}
	after := skipSpace(body, closeAt+1)
	if after >= len(body) || body[after] != ';' {
		// declarator or attribute after the body; not the supported shape
		return StructDecl{}, closeAt + 1, false
	}
	return StructDecl{Name: name, Body: body[open+1 : closeAt]}, after + 1, true
}

func (m *fieldMatcherImpl) Match(body string) ([]FieldDecl, []SkippedStatement) {
	var (
		fields  []FieldDecl
		skipped []SkippedStatement
	)
	for _, stmt := range splitStatements(body) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if strings.ContainsAny(stmt, "{}") {
			skipped = append(skipped, SkippedStatement{Statement: collapse(stmt), Reason: "contains braces"})
			continue
		}
		line := stripAccessLabels(collapse(stmt)) + ";"
		if f, reason, ok := parseField(line); ok {
			fields = append(fields, f)
		} else {
			skipped = append(skipped, SkippedStatement{Statement: line, Reason: reason})
		}
	}
	return fields, skipped
}

func parseField(line string) (FieldDecl, string, bool) {
	m := fieldRe.FindStringSubmatch(line)
	if m == nil {
		return FieldDecl{}, "not a field declaration", false
	}
	typ := strings.TrimSpace(m[1])
	first, _, _ := strings.Cut(typ, " ")
	first, _, _ = strings.Cut(first, "(")
	for _, kw := range nonFieldKeywords {
		if first == kw {
			return FieldDecl{}, "not an instance field: " + kw, false
		}
	}
	if strings.HasSuffix(typ, ")") {
		return FieldDecl{}, "function declaration", false
	}
	if strings.HasSuffix(typ, ":") && !strings.HasSuffix(typ, "::") {
		return FieldDecl{}, "bit-field or base clause", false
	}
	if hasTopLevelComma(typ) {
		return FieldDecl{}, "multiple declarators", false
	}
	return FieldDecl{
		Type:        typ,
		Name:        m[2],
		ArraySuffix: strings.ReplaceAll(m[3], " ", ""),
	}, "", true
}

// splitStatements splits on semicolons at brace depth zero so a nested
// block stays in one statement. Literals are opaque.
func splitStatements(body string) []string {
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(body); i++ {
		if end, ok := lexer.LiteralEnd(body, i); ok {
			i = end - 1
			continue
		}
		switch body[i] {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case ';':
			if depth == 0 {
				out = append(out, body[start:i])
				start = i + 1
			}
		}
	}
	if start < len(body) {
		out = append(out, body[start:])
	}
	return out
}

// stripAccessLabels drops leading `public:` style labels so the field that
// follows them is still matched. s must already be collapsed.
func stripAccessLabels(s string) string {
	return accessRe.ReplaceAllString(s, "")
}

func collapse(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

func hasTopLevelComma(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				return true
			}
		}
	}
	return false
}

// matchBrace returns the index of the `}` closing the `{` at open, or -1.
// Braces inside literals do not count.
func matchBrace(s string, open int) int {
	depth := 0
	for i := open + 1; i < len(s); i++ {
		if end, ok := lexer.LiteralEnd(s, i); ok {
			i = end - 1
			continue
		}
		switch s[i] {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

func skipBlock(s string, open int) int {
	if end := matchBrace(s, open); end >= 0 {
		return end + 1
	}
	return len(s)
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r' || s[i] == '\f' || s[i] == '\v') {
		i++
	}
	return i
}

func readIdent(s string, i int) (string, int) {
	start := i
	for i < len(s) && lexer.IsIdentChar(s[i]) {
		i++
	}
	return s[start:i], i
}
