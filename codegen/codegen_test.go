package codegen_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/forge/ast"
	"github.com/viant/forge/codegen"
)

// fakeModule and fakeBackend exist only to prove the interfaces in
// codegen.go are implementable with the shapes the harness expects.
type fakeModule struct {
	printErr  error
	writeErr  error
	destroyed bool
}

func (m *fakeModule) Print(w io.Writer) error {
	if m.printErr != nil {
		return m.printErr
	}
	_, err := io.WriteString(w, "module")
	return err
}

func (m *fakeModule) WriteObject(path string) error { return m.writeErr }
func (m *fakeModule) Destroy()                      { m.destroyed = true }

type fakeBackend struct {
	module *fakeModule
	err    error
}

func (b *fakeBackend) Compile(root ast.Node) (codegen.Module, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.module, nil
}

func TestBackendCompileReturnsModule(t *testing.T) {
	mod := &fakeModule{}
	var backend codegen.Backend = &fakeBackend{module: mod}

	got, err := backend.Compile(&ast.DeclBlock{})
	assert.NoError(t, err)
	assert.Same(t, mod, got)
}

func TestBackendCompileError(t *testing.T) {
	var backend codegen.Backend = &fakeBackend{err: errors.New("boom")}
	_, err := backend.Compile(&ast.DeclBlock{})
	assert.Error(t, err)
}

func TestModuleLifecycle(t *testing.T) {
	mod := &fakeModule{}
	var w io.Writer = io.Discard
	assert.NoError(t, mod.Print(w))
	assert.NoError(t, mod.WriteObject("/tmp/out.o"))
	mod.Destroy()
	assert.True(t, mod.destroyed)
}
