package lexcast_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/forge/lexcast"
	"github.com/viant/forge/source"
)

func parseUint(t *testing.T, text string) lexcast.UintValue {
	t.Helper()
	src := source.NewBuffer("t.fg", text)
	r := source.NewReader(src)
	v, err := lexcast.ParseUint(r)
	assert.NoError(t, err)
	return v
}

func TestParseUintDecimal(t *testing.T) {
	v := parseUint(t, "123")
	assert.Equal(t, uint64(123), v.Value)
	assert.Equal(t, 32, v.BitWidth)
	assert.False(t, v.Unsigned)
}

func TestParseUintBases(t *testing.T) {
	assert.Equal(t, uint64(5), parseUint(t, "0b101").Value)
	assert.Equal(t, uint64(8), parseUint(t, "0o10").Value)
	assert.Equal(t, uint64(255), parseUint(t, "0xFF").Value)
}

func TestParseUintSeparatorsAndSuffix(t *testing.T) {
	v := parseUint(t, "1_000_000u64")
	assert.Equal(t, uint64(1000000), v.Value)
	assert.Equal(t, 64, v.BitWidth)
	assert.True(t, v.Unsigned)
}

func TestParseUintNoDigitsErrors(t *testing.T) {
	src := source.NewBuffer("t.fg", "")
	r := source.NewReader(src)
	_, err := lexcast.ParseUint(r)
	assert.Error(t, err)
	var lexErr *lexcast.Error
	assert.ErrorAs(t, err, &lexErr)
	assert.Equal(t, "is-8", lexErr.Code)
}

func TestParseUintOutOfRangeForBitWidth(t *testing.T) {
	src := source.NewBuffer("t.fg", "256u8")
	r := source.NewReader(src)
	_, err := lexcast.ParseUint(r)
	assert.Error(t, err)
	var lexErr *lexcast.Error
	assert.ErrorAs(t, err, &lexErr)
	assert.Equal(t, "is-10", lexErr.Code)
}

// TestUintRoundTrip covers spec.md §8: for all representable integer
// values v and bases in {2,8,10,16}, parse_uint(print_uint(v,b)) == v.
func TestUintRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	bases := []int{2, 8, 10, 16}
	for i := 0; i < 200; i++ {
		v := lexcast.UintValue{Value: rnd.Uint64(), BitWidth: 64, Unsigned: true}
		for _, base := range bases {
			text := lexcast.PrintUint(v, base, 0)
			src := source.NewBuffer("t.fg", text)
			r := source.NewReader(src)
			got, err := lexcast.ParseUint(r)
			assert.NoError(t, err)
			assert.Equal(t, v.Value, got.Value, "base=%d text=%q", base, text)
		}
	}
}

func TestPrintUintGrouping(t *testing.T) {
	v := lexcast.UintValue{Value: 1234567, BitWidth: 32}
	assert.Equal(t, "1_234_567i32", lexcast.PrintUint(v, 10, 3))
}
