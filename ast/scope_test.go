package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/forge/ast"
)

func TestScopeLookupNearestWins(t *testing.T) {
	b := ast.NewBuilder()
	outer := b.Property(0, "x", b.Int(32, false))
	inner := b.Property(0, "x", b.Int(64, true))

	s := ast.NewScope()
	s.Push()
	s.LoadDeclarations([]ast.Node{outer})
	s.Push()
	s.LoadDeclarations([]ast.Node{inner})

	decl, ok := s.Lookup("x")
	assert.True(t, ok)
	assert.Same(t, ast.Node(inner), decl)

	s.Pop()
	decl, ok = s.Lookup("x")
	assert.True(t, ok)
	assert.Same(t, ast.Node(outer), decl)
	s.Pop()
}

// TestScopeWellBracketing covers spec.md §8: after any sequence of
// push/pop matched as a LIFO, the frame count is unchanged (the
// nearest-binding lookup is covered by TestScopeLookupNearestWins).
func TestScopeWellBracketing(t *testing.T) {
	s := ast.NewScope()
	for i := 0; i < 5; i++ {
		s.Push()
	}
	for i := 0; i < 5; i++ {
		s.Pop()
	}
	assert.Nil(t, s.Top())
}

func TestScopePopEmptyPanics(t *testing.T) {
	s := ast.NewScope()
	assert.Panics(t, func() { s.Pop() })
}

func TestScopeDeclareCollision(t *testing.T) {
	b := ast.NewBuilder()
	p1 := b.Property(0, "x", b.Int(32, false))
	p2 := b.Property(0, "x", b.Int(32, false))

	s := ast.NewScope()
	s.Push()
	collisions := s.LoadDeclarations([]ast.Node{p1, p2})
	assert.Equal(t, []string{"x"}, collisions)
}

func TestDeclarationNameNonDeclarable(t *testing.T) {
	b := ast.NewBuilder()
	_, ok := ast.DeclarationName(b.BoolValue(true))
	assert.False(t, ok)
}
