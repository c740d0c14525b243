package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/forge/source"
)

func TestLocationString(t *testing.T) {
	loc := source.Location{Path: "a.fg", Line: 3, Column: 5}
	assert.Equal(t, "a.fg:3:5", loc.String())
}

func TestLocationLess(t *testing.T) {
	a := source.Location{Path: "a.fg", Offset: 1}
	b := source.Location{Path: "a.fg", Offset: 2}
	c := source.Location{Path: "b.fg", Offset: 0}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, a.Less(c))
}

func TestRangeNull(t *testing.T) {
	assert.True(t, source.Null.IsNull())
	r := source.Range{Start: source.Location{Path: "a.fg", Line: 1, Column: 1}, LengthInColumns: 1}
	assert.False(t, r.IsNull())
}

func TestRangeEnd(t *testing.T) {
	r := source.Range{Start: source.Location{Path: "a.fg", Offset: 4, Line: 1, Column: 5}, LengthInColumns: 3}
	end := r.End()
	assert.Equal(t, 8, end.Column)
	assert.Equal(t, 7, end.Offset)
}

func loc(path string, offset, col int) source.Location {
	return source.Location{Path: path, Offset: offset, Line: 1, Column: col}
}

// TestSpanLinearity verifies the property from spec.md §8: for any
// three ranges a, b, c in the same source with a.Start <= b.Start <=
// c.Start, Span(Span(a, b), c) == Span(a, c).
func TestSpanLinearity(t *testing.T) {
	a := source.Range{Start: loc("f", 0, 1), LengthInColumns: 1}
	b := source.Range{Start: loc("f", 5, 6), LengthInColumns: 1}
	c := source.Range{Start: loc("f", 10, 11), LengthInColumns: 1}

	left := source.Span(source.Span(a, b), c)
	right := source.Span(a, c)
	assert.Equal(t, right, left)
}

func TestSpanWithNull(t *testing.T) {
	a := source.Range{Start: loc("f", 0, 1), LengthInColumns: 1}
	assert.Equal(t, a, source.Span(source.Null, a))
	assert.Equal(t, a, source.Span(a, source.Null))
}

func TestSpanDifferentPathsPanics(t *testing.T) {
	a := source.Range{Start: loc("f", 0, 1), LengthInColumns: 1}
	b := source.Range{Start: loc("g", 0, 1), LengthInColumns: 1}
	assert.Panics(t, func() { source.Span(a, b) })
}
