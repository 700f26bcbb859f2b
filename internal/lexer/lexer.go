package lexer

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"unicode/utf8"

	"fortio.org/safecast"
)

// ErrSourceTooLarge is returned by New when the source length does not fit
// the 32-bit offsets carried by SourceLocation.
var ErrSourceTooLarge = errors.New("source too large")

// Lexer converts a source buffer into a stream of tokens.
//
// The lexer is a hand-written state machine over bytes. It never fails:
// malformed input produces TokenError tokens, and every call to NextToken
// advances by at least one byte until EOF is reached. After that, NextToken
// keeps returning an EOF token at the same location.
//
// A Lexer is not safe for concurrent use. Distinct Lexers may share a source
// string freely because nothing ever writes to it.
//
// DESIGN CHOICE: The cursor works on bytes and decodes UTF-8 only when the
// current byte is >= 0x80 because:
// - Every delimiter, operator and digit in the language is ASCII
// - The common path (ASCII identifiers, whitespace) never calls the decoder
// - Multi-byte runes only matter for identifiers and error recovery
type Lexer struct {
	// source is the complete source code being lexed.
	// Token text is sliced directly out of it rather than copied, so a
	// token stream of any length allocates no text of its own.
	source string

	// file is the interned path shared by the span of every token.
	file FilePath

	// pos is the byte offset of the next unread byte.
	pos int

	// line and column describe pos. Both are 1-based.
	//
	// DESIGN CHOICE: column counts bytes, not runes, because:
	// - It stays consistent with Offset (column = offset - lineStart + 1)
	// - Editors and LSP clients disagree on rune vs UTF-16 units anyway;
	//   a byte column converts to either given the line text
	// - No decoding is needed to advance over multi-byte characters
	line   uint32
	column uint32

	// start is the location of the first byte of the token being scanned.
	start SourceLocation

	logger *slog.Logger
}

// Option configures a Lexer.
//
// DESIGN CHOICE: Functional options rather than a Config struct because:
// - New keeps a two-argument call for the common case
// - New settings (a logger today) do not break existing callers
// - Zero-value defaults never need to be distinguished from "unset"
type Option func(*Lexer)

// WithLogger makes the lexer report every error token at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Lexer) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a Lexer over source. filePath is interned once and shared by
// the spans of all produced tokens.
//
// New fails only when source is longer than math.MaxUint32 bytes, since
// offsets are stored as uint32.
func New(source, filePath string, opts ...Option) (*Lexer, error) {
	if _, err := safecast.Convert[uint32](len(source)); err != nil {
		return nil, fmt.Errorf("%w: %d bytes in %s", ErrSourceTooLarge, len(source), filePath)
	}
	l := &Lexer{
		source: source,
		file:   NewFilePath(filePath),
		line:   1, // Lines are 1-based
		column: 1,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Source returns the buffer being lexed.
func (l *Lexer) Source() string {
	return l.source
}

// FilePath returns the path handle shared by every token's span.
func (l *Lexer) FilePath() FilePath {
	return l.file
}

// NextToken skips whitespace and comments and returns the next token.
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	// Mark the start of this token
	l.start = l.location()

	if l.isAtEnd() {
		return l.makeToken(TokenEOF)
	}

	// Dispatch on the first byte. Only non-ASCII bytes need decoding.
	b := l.source[l.pos]
	switch {
	case isDigit(b):
		return l.scanNumber()
	case b == '#':
		return l.scanHashNumber()
	case b == '"':
		return l.scanString()
	case b == '\'':
		return l.scanChar()
	case isASCIILetter(b) || b == '_':
		return l.scanIdentifier(false)
	case b >= utf8.RuneSelf:
		if r, _ := l.peekRune(); IsXIDStart(r) {
			return l.scanIdentifier(true)
		}
	}
	return l.scanOperator()
}

// Tokenize lexes the whole source and returns every token, including the
// terminating EOF.
func (l *Lexer) Tokenize() []Token {
	tokens := make([]Token, 0, len(l.source)/4+1) // rough estimate
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.kind == TokenEOF {
			return tokens
		}
	}
}

// All returns an iterator over the remaining tokens. The final token yielded
// is EOF.
func (l *Lexer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok := l.NextToken()
			if !yield(tok) || tok.kind == TokenEOF {
				return
			}
		}
	}
}

// skipWhitespaceAndComments consumes spaces, tabs, carriage returns,
// newlines, line comments and block comments.
//
// Block comments do not nest, and an unterminated one silently runs to the
// end of the source. A line comment stops before its newline, which the
// next iteration consumes.
func (l *Lexer) skipWhitespaceAndComments() {
	for !l.isAtEnd() {
		switch c := l.peekByte(0); {
		case c == ' ' || c == '\t' || c == '\r':
			l.advanceByte()
		case c == '\n':
			l.advanceRune()
		case c == '/' && l.peekByte(1) == '/':
			l.advanceByte()
			l.advanceByte()
			for !l.isAtEnd() && l.peekByte(0) != '\n' {
				l.advanceByte()
			}
		case c == '/' && l.peekByte(1) == '*':
			l.advanceByte()
			l.advanceByte()
			for !l.isAtEnd() {
				if l.peekByte(0) == '*' && l.peekByte(1) == '/' {
					l.advanceByte()
					l.advanceByte()
					break
				}
				l.advanceRune()
			}
		default:
			return
		}
	}
}

// isAtEnd reports whether all of the source has been consumed.
func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

// peekByte returns the byte offset bytes ahead of the cursor, or 0 past the
// end of the source.
func (l *Lexer) peekByte(offset int) byte {
	if i := l.pos + offset; i < len(l.source) {
		return l.source[i]
	}
	return 0
}

// advanceByte consumes one byte that is known not to be a newline.
func (l *Lexer) advanceByte() byte {
	c := l.source[l.pos]
	l.pos++
	l.column++
	return c
}

// peekRune decodes the codepoint at the cursor without consuming it.
//
// The returned width is the lead byte plus however many continuation bytes
// actually follow it, up to the length the lead byte announces. Malformed
// or truncated sequences decode as utf8.RuneError but still report the
// width they occupy, so callers always make progress.
func (l *Lexer) peekRune() (rune, int) {
	b := l.source[l.pos]
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	n, want := 1, sequenceLen(b)
	for n < want && l.pos+n < len(l.source) && isContinuation(l.source[l.pos+n]) {
		n++
	}
	r, size := utf8.DecodeRuneInString(l.source[l.pos : l.pos+n])
	if size != n {
		r = utf8.RuneError
	}
	return r, n
}

// advanceRune consumes one codepoint, updating line and column.
func (l *Lexer) advanceRune() rune {
	r, n := l.peekRune()
	l.pos += n
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column += uint32(n)
	}
	return r
}

// consumeWhile consumes ASCII bytes for which accept returns true.
// accept must reject '\n'.
func (l *Lexer) consumeWhile(accept func(byte) bool) {
	for !l.isAtEnd() && accept(l.source[l.pos]) {
		l.advanceByte()
	}
}

// location returns the cursor position. New guarantees pos fits in uint32.
func (l *Lexer) location() SourceLocation {
	return SourceLocation{Line: l.line, Column: l.column, Offset: uint32(l.pos)}
}

// makeToken creates a token of the given kind covering [l.start, cursor).
func (l *Lexer) makeToken(kind TokenKind) Token {
	return Token{
		kind: kind,
		text: l.source[l.start.Offset:l.pos],
		span: SourceSpan{File: l.file, Start: l.start, End: l.location()},
	}
}

// errorToken creates a TokenError covering the bytes consumed so far.
func (l *Lexer) errorToken() Token {
	tok := l.makeToken(TokenError)
	l.logger.Debug("lexical error",
		slog.String("text", tok.text),
		slog.Any("span", tok.span))
	return tok
}

// sequenceLen returns the length of the UTF-8 sequence announced by lead
// byte b. Stray continuation bytes and invalid leads report 1.
func sequenceLen(b byte) int {
	switch {
	case b&0x80 == 0x00:
		return 1
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	default:
		return 1
	}
}

func isContinuation(b byte) bool {
	return b&0xc0 == 0x80
}

// Helper functions for byte classification. All of them are ASCII-only.

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isDigitOrUnderscore(c byte) bool {
	return isDigit(c) || c == '_'
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIAlnum(c byte) bool {
	return isASCIILetter(c) || isDigit(c)
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isOctalDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

func isBinaryDigit(c byte) bool {
	return c == '0' || c == '1'
}
