package lexer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func span(path string, sl, sc, so, el, ec, eo uint32) SourceSpan {
	return NewSourceSpan(NewFilePath(path),
		NewSourceLocation(sl, sc, so),
		NewSourceLocation(el, ec, eo))
}

func TestFilePath(t *testing.T) {
	var zero FilePath
	assert.Equal(t, "", zero.String())
	assert.True(t, zero.Equal(NewFilePath("")))
	assert.True(t, NewFilePath("a.jsav").Equal(NewFilePath("a.jsav")))
	assert.Equal(t, NewFilePath("a.jsav"), NewFilePath("a.jsav"))
	assert.False(t, NewFilePath("a.jsav").Equal(NewFilePath("b.jsav")))
}

func TestSourceSpan_Zero(t *testing.T) {
	var s SourceSpan
	assert.Equal(t, "", s.File.String())
	assert.Equal(t, SourceLocation{}, s.Start)
	assert.Equal(t, SourceLocation{}, s.End)
	assert.Equal(t, ":line 0:column 0 - line 0:column 0", s.String())
	assert.Equal(t, 0, s.Len())
}

func TestSourceSpan_Merged(t *testing.T) {
	a := span("main.jsav", 1, 5, 4, 1, 9, 8)
	b := span("main.jsav", 2, 1, 12, 2, 4, 15)

	merged, ok := a.Merged(b)
	require.True(t, ok)
	assert.Equal(t, span("main.jsav", 1, 5, 4, 2, 4, 15), merged)

	// Inputs are untouched.
	assert.Equal(t, span("main.jsav", 1, 5, 4, 1, 9, 8), a)

	other := span("other.jsav", 1, 1, 0, 1, 2, 1)
	_, ok = a.Merged(other)
	assert.False(t, ok)
}

func TestSourceSpan_MergedContainedSpan(t *testing.T) {
	outer := span("f", 1, 1, 0, 5, 1, 40)
	inner := span("f", 2, 1, 10, 2, 5, 14)

	merged, ok := outer.Merged(inner)
	require.True(t, ok)
	assert.Equal(t, outer, merged)
}

func TestSourceSpan_MergeLaws(t *testing.T) {
	spans := []SourceSpan{
		span("f", 1, 1, 0, 1, 4, 3),
		span("f", 1, 6, 5, 2, 2, 12),
		span("f", 3, 1, 20, 3, 1, 20),
		span("f", 1, 2, 1, 1, 3, 2),
	}

	for _, a := range spans {
		self, ok := a.Merged(a)
		require.True(t, ok)
		assert.Equal(t, a, self, "idempotence")

		for _, b := range spans {
			ab, ok := a.Merged(b)
			require.True(t, ok)
			ba, ok := b.Merged(a)
			require.True(t, ok)
			assert.Equal(t, ab, ba, "commutativity")

			assert.False(t, a.Start.Less(ab.Start) || b.Start.Less(ab.Start), "start is a lower bound")
			assert.False(t, ab.End.Less(a.End) || ab.End.Less(b.End), "end is an upper bound")
		}
	}
}

func TestSourceSpan_MergeInPlace(t *testing.T) {
	s := span("f", 2, 1, 10, 2, 5, 14)
	s.Merge(span("f", 1, 1, 0, 1, 3, 2))
	assert.Equal(t, span("f", 1, 1, 0, 2, 5, 14), s)

	s.Merge(span("f", 4, 1, 30, 4, 9, 38))
	assert.Equal(t, span("f", 1, 1, 0, 4, 9, 38), s)

	before := s
	s.Merge(span("g", 9, 9, 99, 9, 10, 100))
	assert.Equal(t, before, s, "merge across files is a no-op")
}

func TestSourceSpan_MergeComparesPathByValue(t *testing.T) {
	a := NewSourceSpan(NewFilePath("same.jsav"), NewSourceLocation(1, 1, 0), NewSourceLocation(1, 2, 1))
	b := NewSourceSpan(NewFilePath("same.jsav"), NewSourceLocation(1, 3, 2), NewSourceLocation(1, 4, 3))
	_, ok := a.Merged(b)
	assert.True(t, ok)

	// The zero path and an interned empty path are the same file.
	var zero SourceSpan
	_, ok = zero.Merged(NewSourceSpan(NewFilePath(""), SourceLocation{}, SourceLocation{}))
	assert.True(t, ok)
}

func TestSourceSpan_Compare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     SourceSpan
		expected int
	}{
		{"equal", span("f", 1, 1, 0, 1, 2, 1), span("f", 1, 1, 0, 1, 2, 1), 0},
		{"path first", span("a", 9, 9, 99, 9, 9, 99), span("b", 1, 1, 0, 1, 1, 0), -1},
		{"start second", span("f", 1, 2, 1, 1, 3, 2), span("f", 1, 1, 0, 1, 9, 8), 1},
		{"end last", span("f", 1, 1, 0, 1, 2, 1), span("f", 1, 1, 0, 1, 3, 2), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.expected, tt.b.Compare(tt.a))
			assert.Equal(t, tt.expected == 0, tt.a.Equal(tt.b))
			assert.Equal(t, tt.expected < 0, tt.a.Less(tt.b))
		})
	}
}

func TestSourceSpan_Hash(t *testing.T) {
	a := span("f.jsav", 1, 1, 0, 1, 4, 3)
	assert.Equal(t, a.Hash(), span("f.jsav", 1, 1, 0, 1, 4, 3).Hash())
	assert.NotEqual(t, a.Hash(), span("g.jsav", 1, 1, 0, 1, 4, 3).Hash())
	assert.NotEqual(t, a.Hash(), span("f.jsav", 1, 1, 0, 1, 5, 4).Hash())
}

func TestSourceSpan_LenAndContains(t *testing.T) {
	s := span("f", 1, 3, 2, 1, 7, 6)
	assert.Equal(t, 4, s.Len())
	assert.True(t, s.Contains(NewSourceLocation(1, 3, 2)))
	assert.True(t, s.Contains(NewSourceLocation(1, 6, 5)))
	assert.False(t, s.Contains(NewSourceLocation(1, 7, 6)), "end is exclusive")
	assert.False(t, s.Contains(NewSourceLocation(1, 2, 1)))
}

func TestSourceSpan_String(t *testing.T) {
	deep := filepath.Join("home", "user", "project", "src", "main.jsav")
	tests := []struct {
		name     string
		span     SourceSpan
		expected string
	}{
		{
			name:     "bare file",
			span:     span("main.jsav", 1, 1, 0, 1, 4, 3),
			expected: "main.jsav:line 1:column 1 - line 1:column 4",
		},
		{
			name:     "two components",
			span:     span(filepath.Join("src", "main.jsav"), 2, 3, 10, 4, 1, 30),
			expected: filepath.Join("src", "main.jsav") + ":line 2:column 3 - line 4:column 1",
		},
		{
			name:     "largest positions",
			span:     span("f", 4294967295, 4294967295, 0, 4294967295, 4294967295, 0),
			expected: "f:line 4294967295:column 4294967295 - line 4294967295:column 4294967295",
		},
		{
			name:     "single digits",
			span:     span("f", 0, 9, 0, 1, 0, 0),
			expected: "f:line 0:column 9 - line 1:column 0",
		},
		{
			name:     "truncated",
			span:     span(deep, 10, 2, 100, 10, 8, 106),
			expected: filepath.Join("..", "src", "main.jsav") + ":line 10:column 2 - line 10:column 8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.span.String())
		})
	}
}

func TestTruncatePath(t *testing.T) {
	sep := string(filepath.Separator)
	tests := []struct {
		path     string
		depth    int
		expected string
	}{
		{"", 2, ""},
		{"main.jsav", 2, "main.jsav"},
		{"src/main.jsav", 2, "src/main.jsav"},
		{"/src/main.jsav", 2, "/src/main.jsav"},
		{"a/b/c", 2, ".." + sep + "b" + sep + "c"},
		{"/home/me/src/main.jsav", 2, ".." + sep + "src" + sep + "main.jsav"},
		{"a//b///c", 2, ".." + sep + "b" + sep + "c"},
		{`C:\work\src\main.jsav`, 2, ".." + sep + "src" + sep + "main.jsav"},
		{"a/b/c", 1, ".." + sep + "c"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncatePath(tt.path, tt.depth))
		})
	}
}

func TestToken_ImplementsSpanned(t *testing.T) {
	var s Spanned = NewToken(TokenDot, ".", span("f", 1, 1, 0, 1, 2, 1))
	assert.Equal(t, span("f", 1, 1, 0, 1, 2, 1), s.Span())
}
