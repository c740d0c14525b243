// Package codegen declares the backend contract the harness drives: a
// verified AST in, an opaque compiled Module out. No implementation
// lives here — lowering a verified AST to machine IR is a separate
// concern from the front/middle-end this module builds, and the
// harness only ever needs the shape of the contract to drive its own
// tests against a fake.
package codegen

import (
	"io"

	"github.com/viant/forge/ast"
)

// Module is an opaque compiled unit produced by a Backend from a
// verified AST. Implementations hold whatever IR representation they
// need; callers only ever see it through the three operations below.
type Module interface {
	// Print renders the module's textual IR to w.
	Print(w io.Writer) error
	// WriteObject writes the module's object-file encoding to path.
	WriteObject(path string) error
	// Destroy releases any resources the module holds. Callers must
	// not use the Module after calling Destroy.
	Destroy()
}

// Backend lowers a verified AST root to a Module. root must have
// already passed verify.Verify with no error-or-above diagnostics;
// a Backend is not responsible for re-checking that.
type Backend interface {
	Compile(root ast.Node) (Module, error)
}
