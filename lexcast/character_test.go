package lexcast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/forge/lexcast"
	"github.com/viant/forge/source"
)

func parseFragment(t *testing.T, text string) rune {
	t.Helper()
	src := source.NewBuffer("t.fg", text)
	r := source.NewReader(src)
	ch, err := lexcast.ParseCharacterFragment(r)
	assert.NoError(t, err)
	return ch
}

func TestParseCharacterFragmentEscapes(t *testing.T) {
	cases := map[string]rune{
		`\n`: '\n', `\r`: '\r', `\t`: '\t', `\0`: 0, `\\`: '\\', `\"`: '"', `\'`: '\'',
	}
	for text, want := range cases {
		assert.Equal(t, want, parseFragment(t, text), "text=%q", text)
	}
}

func TestParseCharacterFragmentNumericEscapes(t *testing.T) {
	assert.Equal(t, rune(0x41), parseFragment(t, `\x41`))
	assert.Equal(t, rune(0x1F600), parseFragment(t, `\U0001F600`))
	assert.Equal(t, rune(0x00E9), parseFragment(t, "\\u00E9"))
}

func TestParseCharacterFragmentUTF8(t *testing.T) {
	assert.Equal(t, 'é', parseFragment(t, "é"))
	assert.Equal(t, '日', parseFragment(t, "日"))
}

func TestParseCharacterFragmentUnrecognizedEscape(t *testing.T) {
	src := source.NewBuffer("t.fg", `\q`)
	r := source.NewReader(src)
	_, err := lexcast.ParseCharacterFragment(r)
	assert.Error(t, err)
	var lexErr *lexcast.Error
	assert.ErrorAs(t, err, &lexErr)
	assert.Equal(t, "is-5", lexErr.Code)
}

func TestParseCharacterLiteral(t *testing.T) {
	src := source.NewBuffer("t.fg", `'a'`)
	r := source.NewReader(src)
	ch, err := lexcast.ParseCharacterLiteral(r, '\'')
	assert.NoError(t, err)
	assert.Equal(t, 'a', ch)
}

func TestParseCharacterLiteralEmptyErrors(t *testing.T) {
	src := source.NewBuffer("t.fg", `''`)
	r := source.NewReader(src)
	_, err := lexcast.ParseCharacterLiteral(r, '\'')
	assert.Error(t, err)
	var lexErr *lexcast.Error
	assert.ErrorAs(t, err, &lexErr)
	assert.Equal(t, "is-2", lexErr.Code)
}

func TestParseCharacterLiteralMissingOpeningQuote(t *testing.T) {
	src := source.NewBuffer("t.fg", `a'`)
	r := source.NewReader(src)
	_, err := lexcast.ParseCharacterLiteral(r, '\'')
	assert.Error(t, err)
	var lexErr *lexcast.Error
	assert.ErrorAs(t, err, &lexErr)
	assert.Equal(t, "is-3", lexErr.Code)
}

func TestParseCharacterLiteralMissingClosingQuote(t *testing.T) {
	src := source.NewBuffer("t.fg", `'a`)
	r := source.NewReader(src)
	_, err := lexcast.ParseCharacterLiteral(r, '\'')
	assert.Error(t, err)
	var lexErr *lexcast.Error
	assert.ErrorAs(t, err, &lexErr)
	assert.Equal(t, "es-8", lexErr.Code)
}

// TestIsCharPrintable covers spec.md §8: is_char_printable is false
// exactly for code points in Cc, Cf, Cn, Co, Cs.
func TestIsCharPrintable(t *testing.T) {
	assert.True(t, lexcast.IsCharPrintable('a'))
	assert.True(t, lexcast.IsCharPrintable('日'))
	assert.False(t, lexcast.IsCharPrintable(0))       // Cc
	assert.False(t, lexcast.IsCharPrintable(0x7F))    // Cc (DEL)
	assert.False(t, lexcast.IsCharPrintable(0xAD))    // Cf (soft hyphen)
	assert.False(t, lexcast.IsCharPrintable(0xE000))  // Co (private use)
	assert.False(t, lexcast.IsCharPrintable(0xD800))  // Cs (surrogate)
	assert.False(t, lexcast.IsCharPrintable(0x0378))  // Cn (unassigned)
}

// TestIsCharPrintableSeparatorsNotExcluded covers the regression where
// approximating Cn via unicode.IsGraphic's complement also rejected
// Zl/Zp, which are not in the forbidden {Cc, Cf, Cn, Co, Cs} set.
func TestIsCharPrintableSeparatorsNotExcluded(t *testing.T) {
	assert.True(t, lexcast.IsCharPrintable(0x2028)) // Zl, line separator
	assert.True(t, lexcast.IsCharPrintable(0x2029)) // Zp, paragraph separator
	assert.True(t, lexcast.IsCharPrintable(' '))    // Zs, space
}

func TestPrintCharacterFragmentRoundTrip(t *testing.T) {
	runes := []rune{'a', '\n', '\t', 0, '\\', '\'', '"', 'é', 0x1F600}
	for _, r := range runes {
		text := lexcast.PrintCharacterFragment(r, '\'')
		got := parseFragment(t, text)
		assert.Equal(t, r, got, "rune=%U", r)
	}
}

func TestPrintCharacterLiteral(t *testing.T) {
	assert.Equal(t, `'a'`, lexcast.PrintCharacterLiteral('a', '\''))
	assert.Equal(t, `'\n'`, lexcast.PrintCharacterLiteral('\n', '\''))
}
