package lexer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsXIDStart(t *testing.T) {
	tests := []struct {
		r        rune
		expected bool
	}{
		{'a', true},
		{'Z', true},
		{'_', true},
		{'0', false},
		{'$', false},
		{'\u00e9', true},  // é
		{'\u00d7', false}, // multiplication sign
		{'\u03b1', true},  // α
		{'\u041f', true},  // П
		{'\u0915', true},  // क
		{'\u093e', false}, // Devanagari vowel sign AA
		{'\u65e5', true},  // 日
		{'\uac00', true},  // 가
		{'\U0001d400', true},
		{'\u0301', false},     // combining acute
		{'\u2603', false},     // snowman
		{'\U0001f600', false},
		{'\ufffd', false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("U+%04X", tt.r), func(t *testing.T) {
			assert.Equal(t, tt.expected, IsXIDStart(tt.r))
		})
	}
}

func TestIsXIDContinue(t *testing.T) {
	tests := []struct {
		r        rune
		expected bool
	}{
		{'a', true},
		{'9', true},
		{'_', true},
		{'-', false},
		{'\u0301', true},  // combining acute
		{'\u093e', true},  // Devanagari vowel sign AA
		{'\u0966', true},  // Devanagari zero
		{'\u0661', true},  // Arabic-Indic one
		{'\u2603', false},
		{'\ufffd', false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("U+%04X", tt.r), func(t *testing.T) {
			assert.Equal(t, tt.expected, IsXIDContinue(tt.r))
		})
	}
}

func TestXIDStartImpliesContinue(t *testing.T) {
	for r := rune(0); r < 0x3000; r++ {
		if IsXIDStart(r) {
			assert.True(t, IsXIDContinue(r), "U+%04X", r)
		}
	}
}
