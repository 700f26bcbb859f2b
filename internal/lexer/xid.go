package lexer

import "unicode"

// Unicode identifier classification.
//
// The tables cover the scripts most commonly found in source identifiers.
// They are a subset of the XID_Start / XID_Continue properties from
// DerivedCoreProperties.txt; codepoints outside them are not identifiers.

// xidStart lists the codepoints that may begin an identifier.
var xidStart = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0041, Hi: 0x005a, Stride: 1}, // A-Z
		{Lo: 0x005f, Hi: 0x005f, Stride: 1}, // _
		{Lo: 0x0061, Hi: 0x007a, Stride: 1}, // a-z
		{Lo: 0x00c0, Hi: 0x00d6, Stride: 1}, // Latin-1 Supplement
		{Lo: 0x00d8, Hi: 0x00f6, Stride: 1},
		{Lo: 0x00f8, Hi: 0x01f5, Stride: 1}, // Latin Extended
		{Lo: 0x01fa, Hi: 0x0217, Stride: 1},
		{Lo: 0x0250, Hi: 0x02a8, Stride: 1}, // IPA Extensions
		{Lo: 0x0370, Hi: 0x0373, Stride: 1}, // Greek
		{Lo: 0x0376, Hi: 0x0377, Stride: 1},
		{Lo: 0x037b, Hi: 0x037d, Stride: 1},
		{Lo: 0x037f, Hi: 0x037f, Stride: 1},
		{Lo: 0x0386, Hi: 0x0386, Stride: 1},
		{Lo: 0x0388, Hi: 0x038a, Stride: 1},
		{Lo: 0x038c, Hi: 0x038c, Stride: 1},
		{Lo: 0x038e, Hi: 0x03a1, Stride: 1},
		{Lo: 0x03a3, Hi: 0x03f5, Stride: 1},
		{Lo: 0x0400, Hi: 0x0481, Stride: 1}, // Cyrillic
		{Lo: 0x048a, Hi: 0x052f, Stride: 1},
		{Lo: 0x0531, Hi: 0x0556, Stride: 1}, // Armenian
		{Lo: 0x0561, Hi: 0x0587, Stride: 1},
		{Lo: 0x05d0, Hi: 0x05ea, Stride: 1}, // Hebrew
		{Lo: 0x0620, Hi: 0x064a, Stride: 1}, // Arabic
		{Lo: 0x0671, Hi: 0x06b7, Stride: 1},
		{Lo: 0x0905, Hi: 0x0939, Stride: 1}, // Devanagari
		{Lo: 0x093d, Hi: 0x093d, Stride: 1},
		{Lo: 0x0e01, Hi: 0x0e2e, Stride: 1}, // Thai
		{Lo: 0x1100, Hi: 0x1159, Stride: 1}, // Hangul Jamo
		{Lo: 0x3041, Hi: 0x3094, Stride: 1}, // Hiragana
		{Lo: 0x30a1, Hi: 0x30fa, Stride: 1}, // Katakana
		{Lo: 0x3400, Hi: 0x4dbf, Stride: 1}, // CJK Extension A
		{Lo: 0x4e00, Hi: 0x9fff, Stride: 1}, // CJK Unified Ideographs
		{Lo: 0xac00, Hi: 0xd7a3, Stride: 1}, // Hangul Syllables
	},
	R32: []unicode.Range32{
		{Lo: 0x1d400, Hi: 0x1d7cb, Stride: 1}, // Mathematical Alphanumeric Symbols
		{Lo: 0x20000, Hi: 0x2a6df, Stride: 1}, // CJK Extension B
	},
	LatinOffset: 5,
}

// xidContinueOnly lists the codepoints that may continue, but not begin, an
// identifier.
var xidContinueOnly = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0030, Hi: 0x0039, Stride: 1}, // 0-9
		{Lo: 0x0300, Hi: 0x036f, Stride: 1}, // Combining Diacritical Marks
		{Lo: 0x0660, Hi: 0x0669, Stride: 1}, // Arabic-Indic digits
		{Lo: 0x06f0, Hi: 0x06f9, Stride: 1}, // Extended Arabic-Indic digits
		{Lo: 0x093e, Hi: 0x094c, Stride: 1}, // Devanagari vowel signs
		{Lo: 0x0951, Hi: 0x0954, Stride: 1},
		{Lo: 0x0966, Hi: 0x096f, Stride: 1}, // Devanagari digits
		{Lo: 0x0e50, Hi: 0x0e59, Stride: 1}, // Thai digits
		{Lo: 0x24b6, Hi: 0x24e9, Stride: 1}, // Enclosed Alphanumerics
	},
	LatinOffset: 1,
}

// IsXIDStart reports whether r may begin an identifier.
func IsXIDStart(r rune) bool {
	return unicode.Is(xidStart, r)
}

// IsXIDContinue reports whether r may appear after the first rune of an
// identifier. Every XID_Start rune also continues.
func IsXIDContinue(r rune) bool {
	return unicode.Is(xidContinueOnly, r) || unicode.Is(xidStart, r)
}
