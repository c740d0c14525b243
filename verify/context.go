// Package verify composes visitor handlers over the ast package into
// the compiler's semantic pass: the supported-feature gate, scope
// construction, type resolution, and type checking.
package verify

import (
	"github.com/viant/forge/ast"
	"github.com/viant/forge/diag"
)

// Options toggles which language features the backend accepts,
// matching forge/configuration's options record rather than
// hard-coding constants. It carries no other verifier limits.
type Options struct {
	AllowUnions                bool
	AllowInterfaces             bool
	AllowVariadicKeywordArgs    bool
	AllowStringLiteralValues    bool
	AllowCharacterLiteralValues bool
}

// DefaultOptions rejects every feature the gate knows about, matching
// a backend that has implemented none of the advanced surface yet.
var DefaultOptions = Options{}

// Context is the verifier's shared state, passed as Visitor.UserData
// so every composed handler reads and writes the same scope and
// message buffer.
type Context struct {
	Messages *diag.Buffer
	Scope    *ast.Scope
	Options  Options

	// currentFunction is the innermost enclosing function declaration,
	// used by the return-type check; nil at the top level.
	currentFunction *ast.DeclFunction
}

// NewContext returns a fresh verifier context over an empty scope.
func NewContext(messages *diag.Buffer, opts Options) *Context {
	return &Context{Messages: messages, Scope: ast.NewScope(), Options: opts}
}

func contextOf(v *ast.Visitor) *Context {
	return v.UserData.(*Context)
}
