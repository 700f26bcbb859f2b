// Package lexer provides lexical analysis (tokenization) for jsav source code.
// It transforms a UTF-8 source buffer into a flat stream of tokens, each of
// which carries a byte-precise SourceSpan.
package lexer

import (
	"cmp"
	"strconv"
)

// goldenRatio is the 32-bit fractional golden ratio used by hashCombine.
const goldenRatio = 0x9e3779b9

// SourceLocation is a position in source code.
//
// Line and Column are 1-based for any byte the lexer has seen; the zero value
// (0, 0, 0) is the "no position" sentinel. Column counts bytes, not runes, so
// "é" advances it by two. Offset is the 0-based byte offset from the start of
// the source and is what callers use to slice the buffer.
//
// Locations are ordered lexicographically on (Line, Column, Offset).
//
// DESIGN CHOICE: The three fields are uint32 rather than int because:
// - A location is copied into every token twice (start and end); with
//   uint32 fields a SourceSpan is 32 bytes instead of 56
// - Sources over 4 GiB are rejected up front by New
// - Negative positions are meaningless and cannot be represented
type SourceLocation struct {
	Line   uint32
	Column uint32
	Offset uint32
}

// NewSourceLocation returns the location (line, column, offset).
func NewSourceLocation(line, column, offset uint32) SourceLocation {
	return SourceLocation{Line: line, Column: column, Offset: offset}
}

// String returns the canonical diagnostic form.
// Format: "line {L}:column {C} (offset: {P})"
// Example: "line 3:column 5 (offset: 20)"
func (l SourceLocation) String() string {
	buf := make([]byte, 0, 40)
	buf = append(buf, "line "...)
	buf = strconv.AppendUint(buf, uint64(l.Line), 10)
	buf = append(buf, ":column "...)
	buf = strconv.AppendUint(buf, uint64(l.Column), 10)
	buf = append(buf, " (offset: "...)
	buf = strconv.AppendUint(buf, uint64(l.Offset), 10)
	buf = append(buf, ')')
	return string(buf)
}

// IsValid reports whether the location refers to real source (line > 0).
func (l SourceLocation) IsValid() bool {
	return l.Line > 0
}

// Compare returns -1, 0 or +1 depending on whether l sorts before, equal to,
// or after other.
func (l SourceLocation) Compare(other SourceLocation) int {
	if c := cmp.Compare(l.Line, other.Line); c != 0 {
		return c
	}
	if c := cmp.Compare(l.Column, other.Column); c != 0 {
		return c
	}
	return cmp.Compare(l.Offset, other.Offset)
}

// Less reports whether l sorts before other.
func (l SourceLocation) Less(other SourceLocation) bool {
	return l.Compare(other) < 0
}

// Hash combines the three fields into a stable hash value.
func (l SourceLocation) Hash() uint64 {
	var seed uint64
	seed = hashCombine(seed, uint64(l.Line))
	seed = hashCombine(seed, uint64(l.Column))
	seed = hashCombine(seed, uint64(l.Offset))
	return seed
}

// hashCombine mixes v into seed with the golden-ratio mixer.
func hashCombine(seed, v uint64) uint64 {
	return seed ^ (v + goldenRatio + (seed << 6) + (seed >> 2))
}
