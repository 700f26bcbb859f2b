package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func FuzzLexer(f *testing.F) {
	seeds := []string{
		"",
		"fun main() { var x: i32 = 42; }",
		"a+=b==c!=d<=e>=f++g--h||i&&j<<k>>l%=m^=n",
		"#b1010 #o755u #xDEAD_BEEFu #q #",
		`"unterminated` + "\n" + `"ok\"" 'c' '\n' 'é'`,
		"1.5e-3f64 123.toString 1e 7U 8i8",
		"/* block */ // line\n/* open",
		"café 日本語 विकास",
		"\xff\xe6ab\xc3",
		"#\n'\n",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, source string) {
		l, err := New(source, "fuzz.jsav")
		require.NoError(t, err)
		checkInvariants(t, source, l.Tokenize())
	})
}
