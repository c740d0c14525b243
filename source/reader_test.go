package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/forge/source"
)

func TestReaderStepCounting(t *testing.T) {
	src := source.NewBuffer("t.fg", "ab\ncd")
	r := source.NewReader(src)

	newlines := 0
	for i := 0; i < 5; i++ {
		before := r.Location()
		wasNewline := r.Peek() == '\n'
		r.Step()
		after := r.Location()
		assert.Equal(t, before.Offset+1, after.Offset)
		if wasNewline {
			newlines++
			assert.Equal(t, 1, after.Column)
			assert.Equal(t, before.Line+1, after.Line)
		} else {
			assert.Equal(t, before.Column+1, after.Column)
		}
	}
	assert.Equal(t, 1, newlines)
}

func TestReaderAtEndAndPeekAtTerminator(t *testing.T) {
	src := source.NewBuffer("t.fg", "ab")
	r := source.NewReader(src)
	r.StepN(2)
	assert.True(t, r.AtEnd())
	assert.Equal(t, byte(0), r.Peek())
	// stepping past end is a no-op
	before := r.Location()
	r.Step()
	assert.Equal(t, before, r.Location())
}

func TestReaderSaveRestore(t *testing.T) {
	src := source.NewBuffer("t.fg", "abcdef")
	r := source.NewReader(src)
	r.StepN(2)
	snap := r.Save()
	before := r.Location()
	r.StepN(3)
	r.Restore(snap)
	assert.Equal(t, before, r.Location())
}

func TestReaderPeekAt(t *testing.T) {
	src := source.NewBuffer("t.fg", "xyz")
	r := source.NewReader(src)
	assert.Equal(t, byte('x'), r.Peek())
	assert.Equal(t, byte('y'), r.PeekAt(1))
	assert.Equal(t, byte('z'), r.PeekAt(2))
	assert.Equal(t, byte(0), r.PeekAt(100))
	assert.Equal(t, byte(0), r.PeekAt(-100))
}

func TestReaderRangeFrom(t *testing.T) {
	src := source.NewBuffer("t.fg", "hello")
	r := source.NewReader(src)
	start := r.Location()
	r.StepN(3)
	rng := r.RangeFrom(start)
	assert.Equal(t, start, rng.Start)
	assert.Equal(t, 3, rng.LengthInColumns)
}
