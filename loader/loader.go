// Package loader declares the contract for opening a linked shared
// object and resolving exported functions out of it, as used by the
// compilation-test harness to run a compiled program's output with no
// arguments and check its return value. Host-specific dynamic loading
// (dlopen/LoadLibrary) is a platform concern the harness injects, so
// this package stays an interface plus the pure comparison helpers the
// harness composes over it.
package loader

// Function is an exported symbol resolved from a SharedLibrary,
// callable with no arguments, returning one of the scalar kinds the
// harness compares against expected AST value literals.
type Function interface {
	CallInt() (int64, error)
	CallFloat() (float64, error)
	CallBool() (bool, error)
}

// SharedLibrary is a loaded shared object produced by the linker.
type SharedLibrary interface {
	// GetFunction resolves name to a callable Function.
	GetFunction(name string) (Function, error)
	// Close releases the loaded image.
	Close() error
}

// Opener opens a shared object file at path.
type Opener interface {
	Open(path string) (SharedLibrary, error)
}

// AssertFunctionReturnsInt calls name in lib with no arguments and
// reports whether its return value equals want.
func AssertFunctionReturnsInt(lib SharedLibrary, name string, want int64) (bool, error) {
	fn, err := lib.GetFunction(name)
	if err != nil {
		return false, err
	}
	got, err := fn.CallInt()
	if err != nil {
		return false, err
	}
	return got == want, nil
}

// AssertFunctionReturnsFloat calls name in lib with no arguments and
// reports whether its return value equals want.
func AssertFunctionReturnsFloat(lib SharedLibrary, name string, want float64) (bool, error) {
	fn, err := lib.GetFunction(name)
	if err != nil {
		return false, err
	}
	got, err := fn.CallFloat()
	if err != nil {
		return false, err
	}
	return got == want, nil
}

// AssertFunctionReturnsBool calls name in lib with no arguments and
// reports whether its return value equals want.
func AssertFunctionReturnsBool(lib SharedLibrary, name string, want bool) (bool, error) {
	fn, err := lib.GetFunction(name)
	if err != nil {
		return false, err
	}
	got, err := fn.CallBool()
	if err != nil {
		return false, err
	}
	return got == want, nil
}
