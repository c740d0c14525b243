package ast_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/viant/forge/ast"
)

// TestBooleanLiteralDebugPrint covers spec.md §8 scenario 2.
func TestBooleanLiteralDebugPrint(t *testing.T) {
	b := ast.NewBuilder()
	v := b.BoolValue(true)
	got := ast.Print(v, ast.PrintOptions{})
	assert.Equal(t, "[value-bool]\n  value = true\n", got)
}

// TestCloneEqualityAndPrint covers spec.md §8: for every AST node x,
// compare(clone(x), x) == true and debug_print(clone(x)) ==
// debug_print(x).
func TestCloneEqualityAndPrint(t *testing.T) {
	b := ast.NewBuilder()
	v := b.BoolValue(true)
	clone := v.Clone()
	assert.True(t, ast.Equal(clone, v))
	assert.Equal(t, ast.Print(v, ast.PrintOptions{}), ast.Print(clone, ast.PrintOptions{}))
}

// TestCloneStructuralDiff uses go-test/deep instead of
// reflect.DeepEqual so a future regression reports which field of a
// cloned structure literal diverged rather than a bare boolean.
func TestCloneStructuralDiff(t *testing.T) {
	b := ast.NewBuilder()
	original := b.StructureValue("Point",
		b.Assignment(b.Property(0, "x", b.Int(32, false)), b.IntValue(1, b.Int(32, false))),
		b.Assignment(b.Property(0, "y", b.Int(32, false)), b.IntValue(2, b.Int(32, false))),
	)
	clone := original.Clone()
	if diff := deep.Equal(original, clone); diff != nil {
		t.Fatalf("clone diverged from original: %v", diff)
	}
}

func TestEmptyProgramDebugPrint(t *testing.T) {
	b := ast.NewBuilder()
	block := b.DeclBlock()
	got := ast.Print(block, ast.PrintOptions{})
	assert.Equal(t, "[declaration-block]\n", got)
}

func TestDebugPrintNullChild(t *testing.T) {
	b := ast.NewBuilder()
	ret := b.Return(nil)
	got := ast.Print(ret, ast.PrintOptions{})
	assert.Contains(t, got, "value = null")
}

func TestDebugPrintMaxDepthTruncates(t *testing.T) {
	b := ast.NewBuilder()
	inner := b.BoolValue(true)
	outer := b.Return(inner)
	got := ast.Print(outer, ast.PrintOptions{MaxDepth: 1})
	assert.Contains(t, got, "...")
	assert.NotContains(t, got, "value-bool")
}

func TestDebugPrintMaxListLenTruncates(t *testing.T) {
	b := ast.NewBuilder()
	arr := b.ArrayValue(b.BoolValue(true), b.BoolValue(false), b.BoolValue(true))
	got := ast.Print(arr, ast.PrintOptions{MaxListLen: 1})
	assert.Contains(t, got, "elements[0]")
	assert.NotContains(t, got, "elements[1]")
	assert.Contains(t, got, "elements[...] = ...")
}

func TestDebugPrintDeterministic(t *testing.T) {
	b := ast.NewBuilder()
	v := b.StructureValue("Point", b.Assignment(b.Property(0, "x", b.Int(32, false)), b.IntValue(1, b.Int(32, false))))
	a1 := ast.Print(v, ast.PrintOptions{})
	a2 := ast.Print(v, ast.PrintOptions{})
	assert.Equal(t, a1, a2)
}
