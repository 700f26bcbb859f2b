package lexer

import (
	"cmp"
	"strconv"
)

// Token is a single lexeme produced by the Lexer. Tokens are immutable
// values; the fields are exposed through accessors.
//
// DESIGN CHOICE: Unexported fields with Kind/Text/Span accessors because:
// - Span() satisfies Spanned, which a field named Span could not
// - Callers cannot build a token whose text disagrees with its span
//   except through NewToken, where it is explicit
// - The struct stays a plain value: cheap to copy and comparable with ==
//
// The text is a substring of the source handed to New, never a copy, so the
// source string stays reachable for as long as any token is. It covers
// exactly the bytes of Span, including the quotes of string and character
// literals and the '#' of hash-prefixed numerics. EOF tokens carry empty
// text and a zero-width span.
type Token struct {
	kind TokenKind
	text string
	span SourceSpan
}

// NewToken returns the token (kind, text, span).
func NewToken(kind TokenKind, text string, span SourceSpan) Token {
	return Token{kind: kind, text: text, span: span}
}

// Kind returns the lexeme category.
func (t Token) Kind() TokenKind { return t.kind }

// Text returns the lexeme as it appears in the source.
func (t Token) Text() string { return t.text }

// Span returns the source range the token covers.
func (t Token) Span() SourceSpan { return t.span }

// String returns the canonical diagnostic form; the text is Go-quoted.
// Format: "KIND(\"text\") span"
// Example: `IDENTIFIER("foo") main.jsav:line 1:column 1 - line 1:column 4`
//
// Quoting follows strconv.Quote: quotes and backslashes are escaped, control
// characters and non-printable runes render as \n, \t or \u escapes, and
// invalid UTF-8 bytes render as \x escapes (ERROR("\xff")).
func (t Token) String() string {
	buf := make([]byte, 0, len(t.text)+64)
	buf = append(buf, t.kind.String()...)
	buf = append(buf, '(')
	buf = strconv.AppendQuote(buf, t.text)
	buf = append(buf, ") "...)
	buf = append(buf, t.span.String()...)
	return string(buf)
}

// Is reports whether the token has kind k.
func (t Token) Is(k TokenKind) bool {
	return t.kind == k
}

// Location returns the start of the token.
func (t Token) Location() SourceLocation {
	return t.span.Start
}

// Compare orders tokens by kind, then text, then span.
func (t Token) Compare(other Token) int {
	if c := cmp.Compare(t.kind, other.kind); c != 0 {
		return c
	}
	if c := cmp.Compare(t.text, other.text); c != 0 {
		return c
	}
	return t.span.Compare(other.span)
}

// Equal reports whether t and other agree on all three fields.
func (t Token) Equal(other Token) bool {
	return t.Compare(other) == 0
}

// Less reports whether t sorts before other.
func (t Token) Less(other Token) bool {
	return t.Compare(other) < 0
}
