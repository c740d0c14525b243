package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/forge/diag"
)

func TestBufferCounting(t *testing.T) {
	b := diag.NewBuffer()
	b.Emit(diag.New(diag.Debug, "", "debug one"))
	b.Emit(diag.New(diag.Note, "", "note one"))
	b.Emit(diag.New(diag.Warning, "", "warn one"))
	b.Emit(diag.New(diag.Error, "et-1", "err one"))
	b.Emit(diag.New(diag.Fatal, "", "fatal one"))
	b.Emit(diag.New(diag.Internal, "", "internal one"))

	counts := b.Counts()
	assert.Equal(t, 4, counts.Total)
	assert.Equal(t, 1, counts.Warnings)
	assert.Equal(t, 3, counts.Errors)
	assert.True(t, b.HadErrors())
	assert.Len(t, b.Messages(), 6)
}

func TestBufferHadErrorsFalseWithoutErrors(t *testing.T) {
	b := diag.NewBuffer()
	b.Emit(diag.New(diag.Warning, "", "warn"))
	assert.False(t, b.HadErrors())
}

func TestMessageChildren(t *testing.T) {
	parent := diag.New(diag.Error, "et-1", "parent")
	parent.AddChild(diag.New(diag.Note, "", "child one"))
	parent.AddChild(diag.New(diag.Note, "", "child two"))
	assert.Len(t, parent.Children, 2)
	assert.Equal(t, "child one", parent.Children[0].Text)
}

func TestMessagesReturnsCopy(t *testing.T) {
	b := diag.NewBuffer()
	b.Emit(diag.New(diag.Error, "", "one"))
	msgs := b.Messages()
	msgs[0] = diag.New(diag.Error, "", "mutated")
	assert.Equal(t, "one", b.Messages()[0].Text)
}
