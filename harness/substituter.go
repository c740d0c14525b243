package harness

import "strings"

// Substituter expands a small template language over a fixed key/value
// mapping, used to parameterize expected harness outputs (e.g. "what
// integer literal corresponds to type X") without hard-coding them.
//
// Template grammar: "%(key)" expands to the bound value, or to the
// empty string if key is not bound; "%%" escapes to a literal "%";
// "%X" for any other single character X expands to X; an unterminated
// "%(" (no closing ")") ends the expansion at that point, dropping the
// rest of the input.
type Substituter struct {
	bindings map[string]string
}

// maxKeyLength is the longest key a Substituter accepts via Bind.
const maxKeyLength = 255

// NewSubstituter returns an empty Substituter.
func NewSubstituter() *Substituter {
	return &Substituter{bindings: map[string]string{}}
}

// Bind records key → value. It panics if key is longer than 255
// bytes — a broken-invariant condition a caller should never hit with
// real test-case keys.
func (s *Substituter) Bind(key, value string) {
	if len(key) > maxKeyLength {
		panic("forge/harness: substituter key exceeds 255 bytes")
	}
	s.bindings[key] = value
}

// Expand applies s's template grammar to input.
func (s *Substituter) Expand(input string) string {
	var b strings.Builder
	i := 0
	for i < len(input) {
		c := input[i]
		if c != '%' {
			b.WriteByte(c)
			i++
			continue
		}
		// c == '%'
		if i+1 >= len(input) {
			// trailing lone '%': nothing follows, stop.
			break
		}
		switch input[i+1] {
		case '%':
			b.WriteByte('%')
			i += 2
		case '(':
			end := strings.IndexByte(input[i+2:], ')')
			if end == -1 {
				// unterminated "%(": ends the input here.
				return b.String()
			}
			key := input[i+2 : i+2+end]
			b.WriteString(s.bindings[key])
			i = i + 2 + end + 1
		default:
			b.WriteByte(input[i+1])
			i += 2
		}
	}
	return b.String()
}
