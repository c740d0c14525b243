package harness

import (
	"bytes"
	"fmt"

	"github.com/viant/forge/ast"
	"github.com/viant/forge/codegen"
	"github.com/viant/forge/diag"
	"github.com/viant/forge/linker"
	"github.com/viant/forge/loader"
	"github.com/viant/forge/parser"
	"github.com/viant/forge/source"
	"github.com/viant/forge/verify"
)

// Environment supplies the harness with the pieces that are outside
// this module's own scope: a codegen backend, a linker configuration,
// and a loader capable of opening the linked artifact. A Run with a
// nil Backend/Linker/Loader skips the phase that needs it, treats that
// phase as vacuously successful, and goes on with the later phases, so
// front/middle-end-only
// test cases (no ASTDebug round-trip expectation beyond parse/verify)
// still run without a real backend wired in.
type Environment struct {
	Backend codegen.Backend
	Linker  *linker.Config
	Loader  loader.Opener

	ObjectPath string
	OutputPath string
}

// Run drives tc through the full pipeline against env and opts,
// returning "" on success or a single human-readable failure
// description.
func Run(tc *TestCase, env Environment, opts Options) string {
	sub := tc.substituter()

	// 1. Initialization
	src := source.NewBuffer("", tc.SourceText)
	ctx := source.NewContext()
	ctx.Add(src)
	messages := diag.NewBuffer()

	// 2. Parsing
	root := parser.Parse(src, messages)
	parseFailed := messages.HadErrors()
	if tc.Kind == ExpectUnableToParse {
		if !parseFailed {
			return fmt.Sprintf("%s: expected a parse failure, got none", tc.Name)
		}
		return finish(tc, messages, true)
	}
	if parseFailed {
		return fmt.Sprintf("%s: unexpected parse failure: %s", tc.Name, firstMessage(messages))
	}

	// 3. AST auxiliary
	if msg := checkASTAuxiliary(tc, root, sub); msg != "" {
		return msg
	}
	if tc.OnAST != nil {
		tc.OnAST(root, tc.MutUserData)
	}

	// 4. Verification
	verifyMessages := verify.Verify(root, opts.Verify)
	verifyFailed := verifyMessages.HadErrors()
	if tc.Kind == ExpectUnableToVerify {
		if !verifyFailed {
			return fmt.Sprintf("%s: expected a verify failure, got none", tc.Name)
		}
		return finish(tc, verifyMessages, true)
	}
	if verifyFailed {
		return fmt.Sprintf("%s: unexpected verify failure: %s", tc.Name, firstMessage(verifyMessages))
	}

	// 5. Codegen
	var module codegen.Module
	if env.Backend != nil {
		m, err := env.Backend.Compile(root)
		if err != nil {
			return fmt.Sprintf("%s: codegen failed: %s", tc.Name, err)
		}
		module = m
		defer module.Destroy()
		if msg := checkIR(tc, module, sub); msg != "" {
			return msg
		}
		if env.ObjectPath != "" {
			if err := module.WriteObject(env.ObjectPath); err != nil {
				return fmt.Sprintf("%s: write object failed: %s", tc.Name, err)
			}
		}
	}

	// 6. Linking
	if env.Linker != nil && env.ObjectPath != "" && env.OutputPath != "" {
		linkMessages := diag.NewBuffer()
		if ok := linker.Link(linkMessages, *env.Linker, linker.ModeSharedLibrary, env.OutputPath, []string{env.ObjectPath}); !ok {
			return fmt.Sprintf("%s: link failed: %s", tc.Name, firstMessage(linkMessages))
		}
	}

	// 7. Shared object
	if env.Loader != nil && env.OutputPath != "" {
		lib, err := env.Loader.Open(env.OutputPath)
		if err != nil {
			return fmt.Sprintf("%s: unable to open shared object: %s", tc.Name, err)
		}
		defer lib.Close()
		if tc.OnSharedLibraryHandle != nil {
			tc.OnSharedLibraryHandle(lib, tc.MutUserData)
		}
		if msg := checkFunctions(tc, lib); msg != "" {
			return msg
		}
	}

	// 8. Cleanup initialization
	return finish(tc, messages, false)
}

func finish(tc *TestCase, messages *diag.Buffer, expectedFailure bool) string {
	if tc.OnMessages != nil {
		tc.OnMessages(messages, tc.MutUserData)
	}
	return ""
}

func firstMessage(messages *diag.Buffer) string {
	all := messages.Messages()
	if len(all) == 0 {
		return "(no message)"
	}
	return diag.Render(source.NewContext(), all[0])
}

func checkASTAuxiliary(tc *TestCase, root ast.Node, sub *Substituter) string {
	rendered := ast.Print(root, ast.PrintOptions{})
	if tc.ASTDebug != "" {
		want := sub.Expand(tc.ASTDebug)
		if rendered != want {
			return fmt.Sprintf("%s: Parsed AST does not match expected\nwant:\n%s\ngot:\n%s", tc.Name, want, rendered)
		}
	}
	clone := root.Clone()
	cloneRendered := ast.Print(clone, ast.PrintOptions{})
	if cloneRendered != rendered {
		return fmt.Sprintf("%s: clone round-trip mismatch:\nparsed:\n%s\ncloned:\n%s", tc.Name, rendered, cloneRendered)
	}
	return ""
}

func checkIR(tc *TestCase, module codegen.Module, sub *Substituter) string {
	if tc.LLVMIR == "" {
		return ""
	}
	var b bytes.Buffer
	if err := module.Print(&b); err != nil {
		return fmt.Sprintf("%s: ir print failed: %s", tc.Name, err)
	}
	want := sub.Expand(tc.LLVMIR)
	got := b.String()
	if got != want {
		return fmt.Sprintf("%s: llvm_ir mismatch:\nwant:\n%s\ngot:\n%s", tc.Name, want, got)
	}
	return ""
}

func checkFunctions(tc *TestCase, lib loader.SharedLibrary) string {
	for _, expect := range tc.Functions {
		ok, err := assertFunction(lib, expect)
		if err != nil {
			return fmt.Sprintf("%s: calling %q failed: %s", tc.Name, expect.Name, err)
		}
		if !ok {
			return fmt.Sprintf("%s: %q returned an unexpected value", tc.Name, expect.Name)
		}
	}
	return ""
}

func assertFunction(lib loader.SharedLibrary, expect FunctionExpectation) (bool, error) {
	switch want := expect.Want.(type) {
	case *ast.ValueBool:
		return loader.AssertFunctionReturnsBool(lib, expect.Name, want.Lit)
	case *ast.ValueInt:
		return loader.AssertFunctionReturnsInt(lib, expect.Name, int64(want.Value))
	case *ast.ValueFloat:
		return loader.AssertFunctionReturnsFloat(lib, expect.Name, want.Value)
	default:
		return false, fmt.Errorf("unsupported expected-value kind %s", expect.Want.Kind())
	}
}
