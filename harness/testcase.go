package harness

import (
	"github.com/viant/forge/ast"
	"github.com/viant/forge/diag"
)

// Kind inverts the harness's success/failure expectation for a test
// case.
type Kind string

const (
	ExpectSuccess        Kind = "expect-success"
	ExpectUnableToParse  Kind = "expect-unable-to-parse"
	ExpectUnableToVerify Kind = "expect-unable-to-verify"
)

// FunctionExpectation is one exported-symbol check run against the
// linked shared object: call Name with no arguments and compare its
// return value to Want, a literal value node (ValueBool/ValueInt/
// ValueFloat) the harness interprets without re-running the verifier
// over it.
type FunctionExpectation struct {
	Name string
	Want ast.Node
}

// TestCase is one compilation scenario the harness drives end to end.
type TestCase struct {
	Kind Kind
	Name string

	SourceText string

	// ASTDebug, if set, is compared against the parsed tree's debug
	// rendering after substitution.
	ASTDebug string
	// LLVMIR, if set, is compared against the backend's textual IR
	// after substitution.
	LLVMIR string

	Functions []FunctionExpectation

	Substituter *Substituter

	// OnAST, OnMessages, and OnSharedLibraryHandle are observer hooks
	// invoked at the end of their respective phase, each receiving
	// MutUserData. A nil hook is skipped.
	OnAST                 func(root ast.Node, userData any)
	OnMessages            func(messages *diag.Buffer, userData any)
	OnSharedLibraryHandle func(handle any, userData any)
	MutUserData           any
}

// substituter returns tc's configured Substituter, or an empty one if
// none was set.
func (tc *TestCase) substituter() *Substituter {
	if tc.Substituter != nil {
		return tc.Substituter
	}
	return NewSubstituter()
}
