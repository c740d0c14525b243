package harness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/forge/harness"
)

func TestLoadFixtureRoundTrip(t *testing.T) {
	data := []byte("comment ignored\n-- source_text --\nfn f() -> bool { return true; }\n-- ast_debug --\n[declaration-block]\n")
	tc, err := harness.LoadFixture("bool-return", data)
	assert.NoError(t, err)
	assert.Equal(t, "bool-return", tc.Name)
	assert.Contains(t, tc.SourceText, "fn f()")
	assert.Contains(t, tc.ASTDebug, "[declaration-block]")

	out := harness.WriteFixture(tc)
	tc2, err := harness.LoadFixture("bool-return", out)
	assert.NoError(t, err)
	assert.Equal(t, tc.SourceText, tc2.SourceText)
	assert.Equal(t, tc.ASTDebug, tc2.ASTDebug)
}

func TestLoadFixtureMissingSourceTextErrors(t *testing.T) {
	_, err := harness.LoadFixture("empty", []byte("-- ast_debug --\nsomething\n"))
	assert.Error(t, err)
}
