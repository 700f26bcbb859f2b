package plex

import (
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2"
	plexer "github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hassan/jsav/internal/lexer"
)

type program struct {
	Decls []*varDecl `parser:"@@*"`
}

type varDecl struct {
	Name  string `parser:"'var' @IDENTIFIER"`
	Type  string `parser:"(':' @(I32 | U8 | STRING | BOOL))?"`
	Value string `parser:"'=' @(NUMERIC | HEX | STRING | IDENTIFIER) ';'"`
}

func TestDefinition_Symbols(t *testing.T) {
	d := New()
	symbols := d.Symbols()

	assert.Equal(t, plexer.EOF, symbols["EOF"])
	assert.Equal(t, d.TokenType(lexer.TokenIdentifierASCII), d.TokenType(lexer.TokenIdentifierUnicode))
	assert.Equal(t, d.TokenType(lexer.TokenStringLiteral), d.TokenType(lexer.TokenTypeString))
	assert.Equal(t, d.TokenType(lexer.TokenKeywordBool), d.TokenType(lexer.TokenTypeBool))
	assert.NotEqual(t, d.TokenType(lexer.TokenNumeric), d.TokenType(lexer.TokenHexadecimal))

	seen := map[plexer.TokenType]string{}
	for name, tt := range symbols {
		other, dup := seen[tt]
		assert.False(t, dup, "%s and %s share a token type", name, other)
		seen[tt] = name
	}
	for _, k := range lexer.AllKinds() {
		assert.Equal(t, symbols[k.String()], d.TokenType(k), k.String())
	}
}

func TestDefinition_LexString(t *testing.T) {
	d := New()
	lx, err := d.LexString("test.jsav", "var x = 1;")
	require.NoError(t, err)

	var got []string
	for {
		tok, err := lx.Next()
		require.NoError(t, err)
		if tok.EOF() {
			assert.Equal(t, 10, tok.Pos.Offset)
			break
		}
		got = append(got, tok.Value)
	}
	assert.Equal(t, []string{"var", "x", "=", "1", ";"}, got)
}

func TestDefinition_Lex(t *testing.T) {
	lx, err := New().Lex("test.jsav", strings.NewReader("a\n  b"))
	require.NoError(t, err)

	first, err := lx.Next()
	require.NoError(t, err)
	second, err := lx.Next()
	require.NoError(t, err)

	assert.Equal(t, plexer.Position{Filename: "test.jsav", Offset: 0, Line: 1, Column: 1}, first.Pos)
	assert.Equal(t, plexer.Position{Filename: "test.jsav", Offset: 4, Line: 2, Column: 3}, second.Pos)
}

func TestParticipleGrammar(t *testing.T) {
	parser := participle.MustBuild[program](participle.Lexer(New()))

	source := `var count: i32 = 42;
var mask = #xFFu;
var name: string = "jsav";
var flag: bool = yes;
var café = 1_000;`
	prog, err := parser.ParseString("test.jsav", source)
	require.NoError(t, err)

	require.Len(t, prog.Decls, 5)
	assert.Equal(t, &varDecl{Name: "count", Type: "i32", Value: "42"}, prog.Decls[0])
	assert.Equal(t, &varDecl{Name: "mask", Value: "#xFFu"}, prog.Decls[1])
	assert.Equal(t, &varDecl{Name: "name", Type: "string", Value: `"jsav"`}, prog.Decls[2])
	assert.Equal(t, &varDecl{Name: "flag", Type: "bool", Value: "yes"}, prog.Decls[3])
	assert.Equal(t, &varDecl{Name: "café", Value: "1_000"}, prog.Decls[4])
}

func TestParticipleGrammar_LexicalError(t *testing.T) {
	lenient := participle.MustBuild[program](participle.Lexer(New()))
	_, err := lenient.ParseString("test.jsav", "var x = $;")
	require.Error(t, err)

	strict := participle.MustBuild[program](participle.Lexer(New(Strict())))
	_, err = strict.ParseString("test.jsav", "var x = $;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unexpected character "$"`)
	assert.Contains(t, err.Error(), "test.jsav:1:9")
}
