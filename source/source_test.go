package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/forge/source"
)

func TestNewBufferTrailingNULs(t *testing.T) {
	src := source.NewBuffer("t.fg", "hi")
	b := src.Bytes()
	assert.Equal(t, "hi\x00\x00", string(b))
	assert.Equal(t, "hi", src.Text())
}

func TestNewBufferSyntheticPath(t *testing.T) {
	src := source.NewBuffer("", "x")
	assert.NotEmpty(t, src.Path())
	other := source.NewBuffer("", "x")
	assert.NotEqual(t, src.Path(), other.Path())
}

func TestContentHashStable(t *testing.T) {
	a := source.NewBuffer("p", "same text")
	b := source.NewBuffer("p", "same text")
	c := source.NewBuffer("p", "different text")

	ha, err := a.ContentHash()
	assert.NoError(t, err)
	hb, err := b.ContentHash()
	assert.NoError(t, err)
	hc, err := c.ContentHash()
	assert.NoError(t, err)

	assert.Equal(t, ha, hb)
	assert.NotEqual(t, ha, hc)
}

func TestContextAddLookupAndExcerpt(t *testing.T) {
	src := source.NewBuffer("a.fg", "line one\nline two\nline three")
	ctx := source.NewContext()
	ctx.Add(src)

	assert.Same(t, src, ctx.Lookup("a.fg"))
	assert.Nil(t, ctx.Lookup("missing"))

	text, ok := ctx.LineText("a.fg", 2)
	assert.True(t, ok)
	assert.Equal(t, "line two", text)

	_, ok = ctx.LineText("a.fg", 99)
	assert.False(t, ok)
}

func TestContextExcerptNullRangeErrors(t *testing.T) {
	ctx := source.NewContext()
	_, err := ctx.Excerpt(source.Null)
	assert.Error(t, err)
}

func TestContextAddDuplicatePathPanics(t *testing.T) {
	ctx := source.NewContext()
	ctx.Add(source.NewBuffer("dup", "one"))
	assert.Panics(t, func() {
		ctx.Add(source.NewBuffer("dup", "two"))
	})
}
