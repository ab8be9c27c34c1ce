package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiteralEnd(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		at     int
		want   int
		wantOK bool
	}{
		{name: "string literal", src: `x "a;b" y`, at: 2, want: 7, wantOK: true},
		{name: "escaped quote", src: `"a\"b" c`, at: 0, want: 6, wantOK: true},
		{name: "char literal", src: `c = '{';`, at: 4, want: 7, wantOK: true},
		{name: "escaped char literal", src: `'\''`, at: 0, want: 4, wantOK: true},
		{name: "prefixed char literal", src: `u8'a'`, at: 2, want: 5, wantOK: true},
		{name: "unterminated ends at newline", src: "\"abc\nnext", at: 0, want: 4, wantOK: true},
		{name: "unterminated ends at input end", src: `"abc`, at: 0, want: 4, wantOK: true},
		{name: "digit separator", src: `pad[1'024];`, at: 5, want: 5, wantOK: false},
		{name: "hex digit separator", src: `0xFF'FF`, at: 4, want: 4, wantOK: false},
		{name: "second digit separator", src: `0xAB'CD'EF`, at: 7, want: 7, wantOK: false},
		{name: "not a quote", src: `int a;`, at: 0, want: 0, wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := LiteralEnd(tc.src, tc.at)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
