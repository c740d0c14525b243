package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/forge/diag"
)

func TestSeverityOrdering(t *testing.T) {
	assert.True(t, diag.Debug < diag.Note)
	assert.True(t, diag.Note < diag.Warning)
	assert.True(t, diag.Warning < diag.Error)
	assert.True(t, diag.Error < diag.Fatal)
	assert.True(t, diag.Fatal < diag.Internal)
}

func TestSeverityCountsAsProblem(t *testing.T) {
	assert.False(t, diag.Debug.CountsAsProblem())
	assert.False(t, diag.Note.CountsAsProblem())
	assert.True(t, diag.Warning.CountsAsProblem())
	assert.True(t, diag.Error.CountsAsProblem())
}

func TestSeverityIsError(t *testing.T) {
	assert.False(t, diag.Warning.IsError())
	assert.True(t, diag.Error.IsError())
	assert.True(t, diag.Fatal.IsError())
	assert.True(t, diag.Internal.IsError())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", diag.Error.String())
	assert.Equal(t, "warning", diag.Warning.String())
	assert.Equal(t, "unknown-severity", diag.Severity(99).String())
}
