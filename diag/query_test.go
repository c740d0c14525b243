package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/forge/diag"
)

// TestQueryExactness covers spec.md §8 end-to-end scenario 5: emit
// {error "Hi", error "Bye"}; query {severity=error, text="Hi"} returns
// exactly one; query {severity=error} returns two; empty query
// returns zero.
func TestQueryExactness(t *testing.T) {
	b := diag.NewBuffer()
	b.Emit(diag.New(diag.Error, "", "Hi"))
	b.Emit(diag.New(diag.Error, "", "Bye"))

	narrow := b.Query(diag.Query{Severity: diag.Error, HasSeverity: true, TextContains: "Hi", HasTextContains: true})
	assert.Len(t, narrow, 1)
	assert.Equal(t, "Hi", narrow[0].Text)

	broad := b.Query(diag.BySeverity(diag.Error))
	assert.Len(t, broad, 2)

	empty := b.Query(diag.Query{})
	assert.Empty(t, empty)
}

func TestQuerySingleOutcomes(t *testing.T) {
	b := diag.NewBuffer()

	result, msg := b.QuerySingle(diag.ByCode("et-5"))
	assert.Equal(t, diag.SingleNone, result)
	assert.Nil(t, msg)

	b.Emit(diag.New(diag.Error, "et-5", "mismatched return type"))
	result, msg = b.QuerySingle(diag.ByCode("et-5"))
	assert.Equal(t, diag.SingleOne, result)
	assert.Equal(t, "mismatched return type", msg.Text)

	b.Emit(diag.New(diag.Error, "et-5", "another"))
	result, msg = b.QuerySingle(diag.ByCode("et-5"))
	assert.Equal(t, diag.SingleMultiple, result)
	assert.Nil(t, msg)
}

func TestQueryByLineAndPathRequireRange(t *testing.T) {
	b := diag.NewBuffer()
	b.Emit(diag.New(diag.Error, "", "no range"))
	results := b.Query(diag.Query{Line: 3, HasLine: true})
	assert.Empty(t, results)

	results = b.Query(diag.Query{Path: "a.fg", HasPath: true})
	assert.Empty(t, results)
}
