package loader_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/forge/loader"
)

type fakeFunction struct {
	intVal   int64
	floatVal float64
	boolVal  bool
	err      error
}

func (f *fakeFunction) CallInt() (int64, error)     { return f.intVal, f.err }
func (f *fakeFunction) CallFloat() (float64, error) { return f.floatVal, f.err }
func (f *fakeFunction) CallBool() (bool, error)      { return f.boolVal, f.err }

type fakeLibrary struct {
	funcs  map[string]*fakeFunction
	closed bool
}

func (l *fakeLibrary) GetFunction(name string) (loader.Function, error) {
	fn, ok := l.funcs[name]
	if !ok {
		return nil, errors.New("symbol not found: " + name)
	}
	return fn, nil
}

func (l *fakeLibrary) Close() error {
	l.closed = true
	return nil
}

func TestAssertFunctionReturnsIntMatch(t *testing.T) {
	lib := &fakeLibrary{funcs: map[string]*fakeFunction{"f": {intVal: 5}}}
	ok, err := loader.AssertFunctionReturnsInt(lib, "f", 5)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestAssertFunctionReturnsIntMismatch(t *testing.T) {
	lib := &fakeLibrary{funcs: map[string]*fakeFunction{"f": {intVal: 5}}}
	ok, err := loader.AssertFunctionReturnsInt(lib, "f", 6)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestAssertFunctionReturnsFloatMatch(t *testing.T) {
	lib := &fakeLibrary{funcs: map[string]*fakeFunction{"f": {floatVal: 1.5}}}
	ok, err := loader.AssertFunctionReturnsFloat(lib, "f", 1.5)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestAssertFunctionReturnsBoolMatch(t *testing.T) {
	lib := &fakeLibrary{funcs: map[string]*fakeFunction{"f": {boolVal: true}}}
	ok, err := loader.AssertFunctionReturnsBool(lib, "f", true)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestAssertFunctionMissingSymbolErrors(t *testing.T) {
	lib := &fakeLibrary{funcs: map[string]*fakeFunction{}}
	_, err := loader.AssertFunctionReturnsInt(lib, "missing", 0)
	assert.Error(t, err)
}

func TestAssertFunctionCallErrorPropagates(t *testing.T) {
	lib := &fakeLibrary{funcs: map[string]*fakeFunction{"f": {err: errors.New("trap")}}}
	_, err := loader.AssertFunctionReturnsBool(lib, "f", true)
	assert.Error(t, err)
}

func TestLibraryClose(t *testing.T) {
	lib := &fakeLibrary{funcs: map[string]*fakeFunction{}}
	assert.NoError(t, lib.Close())
	assert.True(t, lib.closed)
}
