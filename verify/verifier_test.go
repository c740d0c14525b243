package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/forge/ast"
	"github.com/viant/forge/diag"
	"github.com/viant/forge/verify"
)

func i32(b *ast.Builder) ast.Node { return b.Int(32, false) }

// TestReturnTypeMismatch covers spec.md §8 end-to-end scenario 6: a
// function declared to return i32 whose body is `return 1.0;` emits
// et-5 at the return's value range.
func TestReturnTypeMismatch(t *testing.T) {
	b := ast.NewBuilder()
	fn := b.Function(0, "f", nil, i32(b), b.StmtBlock(
		b.Return(b.FloatValue(1.0, b.Float(64))),
	))
	root := b.DeclBlock(fn)

	messages := verify.Verify(root, verify.DefaultOptions)
	result, msg := messages.QuerySingle(diag.ByCode("et-5"))
	assert.Equal(t, diag.SingleOne, result)
	assert.Contains(t, msg.Text, "mismatched return type")
}

func TestReturnTypeMatchPasses(t *testing.T) {
	b := ast.NewBuilder()
	fn := b.Function(0, "f", nil, i32(b), b.StmtBlock(
		b.Return(b.IntValue(1, i32(b))),
	))
	root := b.DeclBlock(fn)

	messages := verify.Verify(root, verify.DefaultOptions)
	assert.False(t, messages.HadErrors())
}

func TestVoidFunctionReturnWithValueErrors(t *testing.T) {
	b := ast.NewBuilder()
	fn := b.Function(0, "f", nil, nil, b.StmtBlock(
		b.Return(b.IntValue(1, i32(b))),
	))
	root := b.DeclBlock(fn)

	messages := verify.Verify(root, verify.DefaultOptions)
	assert.True(t, messages.HadErrors())
}

func TestMissingReturnValueForNonVoidErrors(t *testing.T) {
	b := ast.NewBuilder()
	fn := b.Function(0, "f", nil, i32(b), b.StmtBlock(b.Return(nil)))
	root := b.DeclBlock(fn)

	messages := verify.Verify(root, verify.DefaultOptions)
	assert.True(t, messages.HadErrors())
}

func TestDuplicateDeclarationInFrameErrors(t *testing.T) {
	b := ast.NewBuilder()
	p1 := b.Property(0, "x", i32(b))
	p2 := b.Property(0, "x", i32(b))
	root := b.DeclBlock(p1, p2)

	messages := verify.Verify(root, verify.DefaultOptions)
	assert.True(t, messages.HadErrors())
}

func TestUnboundSymbolErrors(t *testing.T) {
	b := ast.NewBuilder()
	fn := b.Function(0, "f", nil, i32(b), b.StmtBlock(
		b.Return(b.SymbolValue("missing")),
	))
	root := b.DeclBlock(fn)

	messages := verify.Verify(root, verify.DefaultOptions)
	assert.True(t, messages.HadErrors())
}

func TestFeatureGateRejectsUnion(t *testing.T) {
	b := ast.NewBuilder()
	root := b.DeclBlock(b.Union("U", []ast.Node{b.Property(0, "a", i32(b))}))
	messages := verify.Verify(root, verify.DefaultOptions)
	result, msg := messages.QuerySingle(diag.ByCode("es-1"))
	assert.Equal(t, diag.SingleOne, result)
	assert.NotEmpty(t, msg.Text)
}

func TestFeatureGateAllowsUnionWhenOptedIn(t *testing.T) {
	b := ast.NewBuilder()
	root := b.DeclBlock(b.Union("U", []ast.Node{b.Property(0, "a", i32(b))}))
	opts := verify.DefaultOptions
	opts.AllowUnions = true
	messages := verify.Verify(root, opts)
	assert.False(t, messages.HadErrors())
}

func TestVerifyNilRootIsEmpty(t *testing.T) {
	messages := verify.Verify(nil, verify.DefaultOptions)
	assert.False(t, messages.HadErrors())
	assert.Empty(t, messages.Messages())
}

func TestContainingNumericTypeOnBinaryArithmetic(t *testing.T) {
	b := ast.NewBuilder()
	fn := b.Function(0, "f", nil, b.Float(64), b.StmtBlock(
		b.Return(b.Binary(ast.OpAdd, b.IntValue(1, i32(b)), b.FloatValue(2, b.Float(64)))),
	))
	root := b.DeclBlock(fn)

	messages := verify.Verify(root, verify.DefaultOptions)
	assert.False(t, messages.HadErrors())
}
