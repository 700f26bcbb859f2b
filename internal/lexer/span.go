package lexer

import (
	"cmp"
	"hash/fnv"
	"path/filepath"
	"strconv"
	"strings"
	"unique"
)

// FilePath is an interned, immutable file path shared by every span produced
// from one lex run. Copying a FilePath copies a single pointer.
//
// The zero value is the empty path. Two FilePaths are compared by the string
// they hold, so independently created handles for the same path are equal.
//
// DESIGN CHOICE: An interned handle rather than a string in every span
// because:
// - A span holds one word for its file instead of two
// - A file with a million tokens still stores its path exactly once
// - Equality on handles from the same lexer is a pointer comparison
type FilePath struct {
	h unique.Handle[string]
}

// NewFilePath interns path and returns its handle.
func NewFilePath(path string) FilePath {
	return FilePath{h: unique.Make(path)}
}

// String returns the path the handle refers to.
func (f FilePath) String() string {
	if f == (FilePath{}) {
		return ""
	}
	return f.h.Value()
}

// Equal reports whether f and other hold the same path string.
func (f FilePath) Equal(other FilePath) bool {
	return f == other || f.String() == other.String()
}

// SourceSpan is a half-open range [Start, End) within one file.
//
// The zero value is an empty-path span at (0,0,0)-(0,0,0). Spans produced by
// the lexer always satisfy Start <= End; EOF tokens carry a zero-width span.
//
// DESIGN CHOICE: Half-open [Start, End) because:
// - End.Offset - Start.Offset is the byte length with no +1 adjustments
// - source[Start.Offset:End.Offset] slices the token text directly
// - Adjacent tokens share a boundary instead of overlapping by one byte
type SourceSpan struct {
	File  FilePath
	Start SourceLocation
	End   SourceLocation
}

// NewSourceSpan returns the span [start, end) in file.
func NewSourceSpan(file FilePath, start, end SourceLocation) SourceSpan {
	return SourceSpan{File: file, Start: start, End: end}
}

// Spanned is implemented by anything that occupies a range of source:
// tokens, diagnostics, and downstream syntax nodes.
type Spanned interface {
	Span() SourceSpan
}

// Merged returns the smallest span covering both s and other.
// The second result is false when the spans belong to different files, in
// which case the returned span is the zero value.
func (s SourceSpan) Merged(other SourceSpan) (SourceSpan, bool) {
	if !s.File.Equal(other.File) {
		return SourceSpan{}, false
	}
	merged := s
	merged.Merge(other)
	return merged, true
}

// Merge widens s in place to cover other. It is a no-op when the spans
// belong to different files.
func (s *SourceSpan) Merge(other SourceSpan) {
	if !s.File.Equal(other.File) {
		return
	}
	if other.Start.Less(s.Start) {
		s.Start = other.Start
	}
	if s.End.Less(other.End) {
		s.End = other.End
	}
}

// Compare orders spans by (file path, start, end).
func (s SourceSpan) Compare(other SourceSpan) int {
	if c := cmp.Compare(s.File.String(), other.File.String()); c != 0 {
		return c
	}
	if c := s.Start.Compare(other.Start); c != 0 {
		return c
	}
	return s.End.Compare(other.End)
}

// Equal reports whether s and other cover the same range of the same file.
func (s SourceSpan) Equal(other SourceSpan) bool {
	return s.Compare(other) == 0
}

// Less reports whether s sorts before other.
func (s SourceSpan) Less(other SourceSpan) bool {
	return s.Compare(other) < 0
}

// Hash combines the path string with both locations.
func (s SourceSpan) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(s.File.String()))

	var seed uint64
	seed = hashCombine(seed, h.Sum64())
	seed = hashCombine(seed, s.Start.Hash())
	seed = hashCombine(seed, s.End.Hash())
	return seed
}

// Len returns the number of bytes covered by the span.
func (s SourceSpan) Len() int {
	if s.End.Offset < s.Start.Offset {
		return 0
	}
	return int(s.End.Offset - s.Start.Offset)
}

// Contains reports whether loc lies inside [Start, End).
func (s SourceSpan) Contains(loc SourceLocation) bool {
	return !loc.Less(s.Start) && loc.Less(s.End)
}

// String returns the canonical diagnostic form.
// Format: "{path}:line {sl}:column {sc} - line {el}:column {ec}"
// Example: "../src/main.jsav:line 1:column 5 - line 1:column 9"
//
// The path keeps at most its last two components (see TruncatePath).
func (s SourceSpan) String() string {
	buf := make([]byte, 0, 64)
	buf = append(buf, TruncatePath(s.File.String(), 2)...)
	buf = append(buf, ":line "...)
	buf = strconv.AppendUint(buf, uint64(s.Start.Line), 10)
	buf = append(buf, ":column "...)
	buf = strconv.AppendUint(buf, uint64(s.Start.Column), 10)
	buf = append(buf, " - line "...)
	buf = strconv.AppendUint(buf, uint64(s.End.Line), 10)
	buf = append(buf, ":column "...)
	buf = strconv.AppendUint(buf, uint64(s.End.Column), 10)
	return string(buf)
}

// TruncatePath shortens path to its last depth non-empty components.
//
// Paths with at most depth components are returned verbatim. Longer paths
// become ".." followed by the last depth components joined with the
// platform separator.
//
// EXAMPLES (depth 2, on a slash-separated platform):
//
//	"main.jsav"              -> "main.jsav"
//	"src/main.jsav"          -> "src/main.jsav"
//	"/home/me/src/main.jsav" -> "../src/main.jsav"
func TruncatePath(path string, depth int) string {
	components := strings.FieldsFunc(path, isPathSeparator)
	if len(components) <= depth {
		return path
	}
	tail := components[len(components)-depth:]
	return ".." + string(filepath.Separator) + strings.Join(tail, string(filepath.Separator))
}

func isPathSeparator(r rune) bool {
	return r == '/' || r == '\\' || r == filepath.Separator
}
