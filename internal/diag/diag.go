// Package diag turns lexical error tokens into readable diagnostics with
// source context.
package diag

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hassan/jsav/internal/lexer"
)

// SourceError is a diagnostic attached to a range of source.
type SourceError struct {
	Message string
	Range   lexer.SourceSpan
	Source  string // full source text, used for the context excerpt
}

// New returns a SourceError for span.
func New(message string, span lexer.SourceSpan, source string) *SourceError {
	return &SourceError{Message: message, Range: span, Source: source}
}

// Newf is like New with a formatted message.
func Newf(span lexer.SourceSpan, source, format string, args ...any) *SourceError {
	return New(fmt.Sprintf(format, args...), span, source)
}

// Span implements lexer.Spanned.
func (e *SourceError) Span() lexer.SourceSpan {
	return e.Range
}

// Error implements the error interface. Errors without a position render as
// the bare message.
func (e *SourceError) Error() string {
	if !e.Range.Start.IsValid() {
		return e.Message
	}
	return e.Range.String() + ": " + e.Message
}

// FormatWithContext renders the message followed by the offending line and
// a marker under the bytes the error covers:
//
//	error: unexpected character "$"
//	  --> main.jsav:2:9
//	   |
//	  2|     var $x = 1;
//	   |         ^
func (e *SourceError) FormatWithContext() string {
	start := e.Range.Start
	if e.Source == "" || !start.IsValid() || int(start.Offset) > len(e.Source) {
		return e.Error()
	}

	lineStart := strings.LastIndexByte(e.Source[:start.Offset], '\n') + 1
	lineEnd := len(e.Source)
	if i := strings.IndexByte(e.Source[lineStart:], '\n'); i >= 0 {
		lineEnd = lineStart + i
	}
	line := strings.TrimSuffix(e.Source[lineStart:lineEnd], "\r")

	col := int(start.Offset) - lineStart
	width := 1
	if end := int(e.Range.End.Offset); end > int(start.Offset) {
		width = min(end, lineStart+len(line)) - int(start.Offset)
	}
	width = max(width, 1)

	var sb strings.Builder
	fmt.Fprintf(&sb, "error: %s\n", e.Message)
	fmt.Fprintf(&sb, "  --> %s:%d:%d\n", lexer.TruncatePath(e.Range.File.String(), 2), start.Line, start.Column)
	sb.WriteString("   |\n")
	fmt.Fprintf(&sb, "%3d| %s\n", start.Line, line)
	fmt.Fprintf(&sb, "   | %s%s\n", padding(line[:min(col, len(line))]), strings.Repeat("^", width))
	return sb.String()
}

// padding returns whitespace as wide as prefix, keeping tabs so the marker
// lines up with the excerpt.
func padding(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// SourceErrors collects the diagnostics of one file in source order.
type SourceErrors []*SourceError

// Error implements the error interface.
func (el SourceErrors) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", el[0].Error(), len(el)-1)
}

// Err returns el as an error, or nil when it is empty.
func (el SourceErrors) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}

// FormatAll renders every diagnostic with context, separated by blank lines.
func (el SourceErrors) FormatAll() string {
	parts := make([]string, len(el))
	for i, e := range el {
		parts[i] = e.FormatWithContext()
	}
	return strings.Join(parts, "\n")
}

// Add appends err.
func (el *SourceErrors) Add(err *SourceError) {
	*el = append(*el, err)
}

// Len returns the number of diagnostics.
func (el SourceErrors) Len() int {
	return len(el)
}

// HasErrors reports whether any diagnostic was collected.
func (el SourceErrors) HasErrors() bool {
	return len(el) > 0
}

// FromTokens returns one diagnostic per TokenError in tokens.
func FromTokens(tokens []lexer.Token, source string) SourceErrors {
	var errs SourceErrors
	for _, tok := range tokens {
		if tok.Is(lexer.TokenError) {
			errs.Add(New(Describe(tok), tok.Span(), source))
		}
	}
	return errs
}

// Describe explains why the lexer rejected an error token.
func Describe(tok lexer.Token) string {
	text := tok.Text()
	switch {
	case text == "#":
		return "expected b, o or x after '#'"
	case text == "#b", text == "#o", text == "#x":
		return fmt.Sprintf("missing digits after %q", text)
	case strings.HasPrefix(text, "#"):
		return fmt.Sprintf("invalid numeric prefix %q", text)
	case !utf8.ValidString(text):
		return fmt.Sprintf("invalid UTF-8 sequence %q", text)
	}
	return fmt.Sprintf("unexpected character %q", text)
}
