package lexcast

import (
	"strconv"
	"strings"

	"github.com/viant/forge/source"
)

// FloatValue is the result of parsing a float literal: the numeric
// value and the bit width carried by its optional suffix.
type FloatValue struct {
	Value    float64
	BitWidth int // 32 or 64
}

// ParseFloat decodes a mantissa with an optional fractional part, an
// optional exponent, and an optional f32/f64 suffix. Base prefixes are
// supported consistently with ParseUint.
func ParseFloat(r *source.Reader) (FloatValue, error) {
	base := 10
	switch {
	case r.Peek() == '0' && (r.PeekAt(1) == 'b' || r.PeekAt(1) == 'B'):
		base = 2
		r.StepN(2)
	case r.Peek() == '0' && (r.PeekAt(1) == 'o' || r.PeekAt(1) == 'O'):
		base = 8
		r.StepN(2)
	case r.Peek() == '0' && (r.PeekAt(1) == 'x' || r.PeekAt(1) == 'X'):
		base = 16
		r.StepN(2)
	}

	var lit strings.Builder
	digitsRead := 0
	for isDigitInBase(r.Peek(), base) || r.Peek() == '_' {
		if r.Peek() != '_' {
			lit.WriteByte(r.Peek())
			digitsRead++
		}
		r.Step()
	}

	hasFraction := false
	if r.Peek() == '.' && isDigitInBase(r.PeekAt(1), base) {
		hasFraction = true
		lit.WriteByte('.')
		r.Step()
		for isDigitInBase(r.Peek(), base) || r.Peek() == '_' {
			if r.Peek() != '_' {
				lit.WriteByte(r.Peek())
				digitsRead++
			}
			r.Step()
		}
	}

	if digitsRead == 0 {
		return FloatValue{}, errf("is-11", "expected at least one digit in float literal")
	}

	hasExponent := false
	expMarker := byte('e')
	if base == 16 {
		expMarker = 'p'
	}
	if lower(r.Peek()) == expMarker {
		hasExponent = true
		lit.WriteByte('e')
		r.Step()
		if r.Peek() == '+' || r.Peek() == '-' {
			lit.WriteByte(r.Peek())
			r.Step()
		}
		expDigits := 0
		for r.Peek() >= '0' && r.Peek() <= '9' {
			lit.WriteByte(r.Peek())
			r.Step()
			expDigits++
		}
		if expDigits == 0 {
			return FloatValue{}, errf("is-12", "expected digits in float exponent")
		}
	}

	var value float64
	var err error
	if base == 16 {
		text := "0x" + lit.String()
		if !hasExponent {
			text += "p0"
		}
		value, err = strconv.ParseFloat(text, 64)
	} else if base == 10 {
		value, err = strconv.ParseFloat(lit.String(), 64)
	} else {
		// base 2/8 floats have no direct strconv support; reconstruct
		// from mantissa and fraction manually.
		value, err = parseNonDecimalFloat(lit.String(), base, hasFraction)
	}
	if err != nil {
		return FloatValue{}, errf("is-13", "malformed float literal: %s", lit.String())
	}

	bitWidth := 64
	if w, ok := parseFloatSuffix(r); ok {
		bitWidth = w
	}
	if bitWidth == 32 {
		value = float64(float32(value))
	}

	return FloatValue{Value: value, BitWidth: bitWidth}, nil
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func parseNonDecimalFloat(lit string, base int, hasFraction bool) (float64, error) {
	intPart, fracPart, _ := strings.Cut(lit, ".")
	var value float64
	for i := 0; i < len(intPart); i++ {
		d, _ := hexDigit(intPart[i])
		value = value*float64(base) + float64(d)
	}
	if hasFraction {
		frac := float64(0)
		scale := float64(1)
		for i := 0; i < len(fracPart); i++ {
			d, _ := hexDigit(fracPart[i])
			scale /= float64(base)
			frac += float64(d) * scale
		}
		value += frac
	}
	return value, nil
}

func parseFloatSuffix(r *source.Reader) (bitWidth int, ok bool) {
	if r.Peek() != 'f' {
		return 0, false
	}
	save := r.Save()
	r.Step()
	var digits strings.Builder
	for r.Peek() >= '0' && r.Peek() <= '9' {
		digits.WriteByte(r.Peek())
		r.Step()
	}
	switch digits.String() {
	case "32":
		return 32, true
	case "64":
		return 64, true
	default:
		r.Restore(save)
		return 0, false
	}
}

// PrintFloat encodes v back into its shortest round-tripping decimal
// text representation plus its bit-width suffix.
//
// Property under test: for normal
// finite v, ParseFloat(PrintFloat(v)) == v bit-for-bit. NaN round-trip
// is not required.
func PrintFloat(v FloatValue) string {
	bitSize := 64
	if v.BitWidth == 32 {
		bitSize = 32
	}
	digits := strconv.FormatFloat(v.Value, 'g', -1, bitSize)
	suffix := "f64"
	if v.BitWidth == 32 {
		suffix = "f32"
	}
	return digits + suffix
}
