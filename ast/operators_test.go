package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/forge/ast"
)

func TestOperatorStringAndFamily(t *testing.T) {
	family, ok := ast.OpAdd.Family()
	assert.True(t, ok)
	assert.Equal(t, ast.FamilyArithmetic, family)
	assert.Equal(t, "+", ast.OpAdd.String())

	family, ok = ast.OpEqual.Family()
	assert.True(t, ok)
	assert.Equal(t, ast.FamilyComparison, family)

	family, ok = ast.OpLogicalAnd.Family()
	assert.True(t, ok)
	assert.Equal(t, ast.FamilyLogical, family)

	family, ok = ast.OpBitAnd.Family()
	assert.True(t, ok)
	assert.Equal(t, ast.FamilyBitwise, family)
}

func TestOperatorIsUnary(t *testing.T) {
	assert.True(t, ast.OpLogicalNot.IsUnary())
	assert.True(t, ast.OpBitNot.IsUnary())
	assert.False(t, ast.OpAdd.IsUnary())
}

func TestOperatorStringInvalid(t *testing.T) {
	assert.Equal(t, "<invalid>", ast.Operator(9999).String())
}
