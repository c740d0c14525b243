package lexcast

import (
	"strings"

	"github.com/viant/forge/source"
)

// ParseStringLiteral decodes a sequence of character fragments between
// matching quotes. Non-UTF-8 bytes are
// consumed one at a time, matching ParseCharacterFragment's decoding
// behavior.
func ParseStringLiteral(r *source.Reader, quote byte) (string, error) {
	if r.Peek() != quote {
		return "", errf("is-3", "expected opening quote %q", string(quote))
	}
	r.Step()

	var b strings.Builder
	for {
		if r.Peek() == 0 {
			return "", errf("is-7", "unterminated string literal")
		}
		if r.Peek() == quote {
			r.Step()
			return b.String(), nil
		}
		ch, err := ParseCharacterFragment(r)
		if err != nil {
			return "", err
		}
		b.WriteRune(ch)
	}
}

// PrintStringLiteral encodes s as a complete quote-bracketed string
// literal, escaping each rune the way PrintCharacterFragment would.
//
// Property under test: for all
// byte strings s, ParseStringLiteral(PrintStringLiteral(s)) == s.
func PrintStringLiteral(s string, quote byte) string {
	var b strings.Builder
	b.WriteByte(quote)
	for _, r := range s {
		b.WriteString(PrintCharacterFragment(r, quote))
	}
	b.WriteByte(quote)
	return b.String()
}
