package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindNamespace(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		ns     string
		want   string
		wantOK bool
	}{
		{
			name:   "nested braces inside body",
			src:    "namespace soa { struct A { int a; }; } int tail;",
			ns:     "soa",
			want:   " struct A { int a; }; ",
			wantOK: true,
		},
		{
			name:   "whitespace before brace",
			src:    "namespace   soa\n{\nstruct A {};\n}",
			ns:     "soa",
			want:   "\nstruct A {};\n",
			wantOK: true,
		},
		{
			name:   "similar name is not a match",
			src:    "namespace soa_reflect { int a; }",
			ns:     "soa",
			wantOK: false,
		},
		{
			name:   "first of several blocks",
			src:    "namespace soa { int first; } namespace soa { int second; }",
			ns:     "soa",
			want:   " int first; ",
			wantOK: true,
		},
		{
			name:   "empty namespace",
			src:    "namespace soa {}",
			ns:     "soa",
			want:   "",
			wantOK: true,
		},
		{
			name:   "unterminated namespace",
			src:    "namespace soa { struct A { int a; };",
			ns:     "soa",
			want:   " struct A { int a; };",
			wantOK: true,
		},
		{
			name:   "nested namespace definition",
			src:    "namespace game::soa { struct A {}; }",
			ns:     "game::soa",
			want:   " struct A {}; ",
			wantOK: true,
		},
		{
			name:   "brace inside string literal",
			src:    `namespace soa { static_assert(true, "}"); struct A { int a; }; } int tail;`,
			ns:     "soa",
			want:   ` static_assert(true, "}"); struct A { int a; }; `,
			wantOK: true,
		},
		{
			name:   "brace inside char literal",
			src:    "namespace soa { constexpr char open = '{'; } int tail;",
			ns:     "soa",
			want:   " constexpr char open = '{'; ",
			wantOK: true,
		},
		{
			name:   "missing",
			src:    "struct A { int a; };",
			ns:     "soa",
			wantOK: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FindNamespace(tc.src, tc.ns)
			require.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
