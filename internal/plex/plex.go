// Package plex exposes the jsav lexer as a participle lexer definition, so
// grammars written with github.com/alecthomas/participle/v2 can consume the
// exact token stream the hand-written lexer produces.
//
// Grammar symbols are the canonical kind names: IDENTIFIER, NUMERIC, HEX,
// STRING, SEMICOLON and so on. Kinds that share a name share a token type.
//
// The package is a library entry point for downstream parsers; nothing in
// this module's command uses it. A parser plugs it in with
//
//	parser := participle.MustBuild[File](participle.Lexer(plex.New()))
package plex

import (
	"fmt"
	"io"

	plexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/hassan/jsav/internal/diag"
	"github.com/hassan/jsav/internal/lexer"
)

// Definition implements lexer.Definition and lexer.StringDefinition.
type Definition struct {
	symbols map[string]plexer.TokenType
	types   []plexer.TokenType // indexed by lexer.TokenKind
	strict  bool
	opts    []lexer.Option
}

var (
	_ plexer.Definition       = (*Definition)(nil)
	_ plexer.StringDefinition = (*Definition)(nil)
)

// Option configures a Definition.
type Option func(*Definition)

// Strict makes the token stream fail on the first lexical error instead of
// passing ERROR tokens on to the grammar.
func Strict() Option {
	return func(d *Definition) { d.strict = true }
}

// WithLexerOptions forwards opts to every lexer the definition creates.
func WithLexerOptions(opts ...lexer.Option) Option {
	return func(d *Definition) { d.opts = append(d.opts, opts...) }
}

// New returns a Definition.
func New(opts ...Option) *Definition {
	kinds := lexer.AllKinds()
	d := &Definition{
		symbols: map[string]plexer.TokenType{"EOF": plexer.EOF},
		types:   make([]plexer.TokenType, len(kinds)),
	}
	next := plexer.TokenType(1)
	for _, k := range kinds {
		name := k.String()
		tt, ok := d.symbols[name]
		if !ok {
			tt = next
			next++
			d.symbols[name] = tt
		}
		d.types[k] = tt
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Symbols returns the grammar symbol table.
func (d *Definition) Symbols() map[string]plexer.TokenType {
	return d.symbols
}

// TokenType returns the participle token type of kind k.
func (d *Definition) TokenType(k lexer.TokenKind) plexer.TokenType {
	if int(k) < len(d.types) {
		return d.types[k]
	}
	return plexer.EOF
}

// Lex reads r fully and lexes it.
func (d *Definition) Lex(filename string, r io.Reader) (plexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	return d.LexString(filename, string(data))
}

// LexString lexes input.
func (d *Definition) LexString(filename, input string) (plexer.Lexer, error) {
	lx, err := lexer.New(input, filename, d.opts...)
	if err != nil {
		return nil, err
	}
	return &stream{def: d, lx: lx}, nil
}

type stream struct {
	def *Definition
	lx  *lexer.Lexer
}

func (s *stream) Next() (plexer.Token, error) {
	tok := s.lx.NextToken()
	out := plexer.Token{
		Type:  s.def.TokenType(tok.Kind()),
		Value: tok.Text(),
		Pos:   Position(tok.Span()),
	}
	if s.def.strict && tok.Is(lexer.TokenError) {
		return out, plexer.Errorf(out.Pos, "%s", diag.Describe(tok))
	}
	return out, nil
}

// Position converts the start of span into a participle position.
func Position(span lexer.SourceSpan) plexer.Position {
	return plexer.Position{
		Filename: span.File.String(),
		Offset:   int(span.Start.Offset),
		Line:     int(span.Start.Line),
		Column:   int(span.Start.Column),
	}
}
