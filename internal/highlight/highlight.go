// Package highlight renders lexed source with terminal colors.
package highlight

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/hassan/jsav/internal/lexer"
)

// Theme holds one style per token category.
type Theme struct {
	Keyword    lipgloss.Style
	Type       lipgloss.Style
	Identifier lipgloss.Style
	Number     lipgloss.Style
	String     lipgloss.Style
	Operator   lipgloss.Style
	Delimiter  lipgloss.Style
	Error      lipgloss.Style
}

// NewTheme returns the default palette bound to r. Colors are downsampled to
// whatever r's color profile supports, and dropped entirely when r writes to
// something that is not a terminal.
func NewTheme(r *lipgloss.Renderer) Theme {
	style := func() lipgloss.Style {
		return r.NewStyle().Inline(true).TabWidth(lipgloss.NoTabConversion)
	}
	return Theme{
		Keyword:    style().Foreground(lipgloss.Color("5")).Bold(true),
		Type:       style().Foreground(lipgloss.Color("6")),
		Identifier: style(),
		Number:     style().Foreground(lipgloss.Color("3")),
		String:     style().Foreground(lipgloss.Color("2")),
		Operator:   style().Foreground(lipgloss.Color("4")),
		Delimiter:  style().Faint(true),
		Error:      style().Foreground(lipgloss.Color("1")).Bold(true).Underline(true),
	}
}

// DefaultTheme is NewTheme on the renderer for standard output.
func DefaultTheme() Theme {
	return NewTheme(lipgloss.DefaultRenderer())
}

// StyleFor returns the style of tokens of kind k.
func (th Theme) StyleFor(k lexer.TokenKind) lipgloss.Style {
	switch {
	case k.IsKeyword():
		return th.Keyword
	case k.IsType():
		return th.Type
	case k.IsIdentifier():
		return th.Identifier
	case k == lexer.TokenStringLiteral || k == lexer.TokenCharLiteral:
		return th.String
	case k.IsLiteral():
		return th.Number
	case k.IsOperator():
		return th.Operator
	case k.IsDelimiter() || k == lexer.TokenSemicolon:
		return th.Delimiter
	case k == lexer.TokenError:
		return th.Error
	}
	return th.Identifier
}

// Region is a styled byte range of the source.
//
// Regions are non-overlapping and sorted by Start. Gaps between them
// (whitespace and comments) render as plain text.
type Region struct {
	Start int // byte offset, inclusive
	End   int // byte offset, exclusive
	Style lipgloss.Style
}

// Regions maps every non-EOF token to a styled region.
func (th Theme) Regions(tokens []lexer.Token) []Region {
	regions := make([]Region, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Is(lexer.TokenEOF) {
			continue
		}
		span := tok.Span()
		regions = append(regions, Region{
			Start: int(span.Start.Offset),
			End:   int(span.End.Offset),
			Style: th.StyleFor(tok.Kind()),
		})
	}
	return regions
}

// Render returns source with every token styled. Stripping the escape
// sequences from the result gives back source byte for byte.
func (th Theme) Render(source string, tokens []lexer.Token) string {
	var sb strings.Builder
	sb.Grow(len(source) * 2)

	pos := 0
	for _, r := range th.Regions(tokens) {
		if r.Start < pos || r.End > len(source) {
			continue
		}
		sb.WriteString(source[pos:r.Start])
		writeStyled(&sb, r.Style, source[r.Start:r.End])
		pos = r.End
	}
	sb.WriteString(source[pos:])
	return sb.String()
}

// writeStyled styles text one line at a time so that newlines inside a
// token survive. Invalid UTF-8 is written untouched.
func writeStyled(sb *strings.Builder, style lipgloss.Style, text string) {
	if !utf8.ValidString(text) {
		sb.WriteString(text)
		return
	}
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if line != "" {
			sb.WriteString(style.Render(line))
		}
	}
}
