package harness

import (
	"fmt"

	"golang.org/x/tools/txtar"
)

// LoadFixture parses a txtar archive into a TestCase. The archive's
// comment is the test name; its files carry "source_text" (required),
// and optionally "ast_debug" and "llvm_ir" — the same shape Go's own
// compiler test suite uses for golden fixtures, adopted here so a
// fixture lives in one file instead of three.
func LoadFixture(name string, data []byte) (*TestCase, error) {
	archive := txtar.Parse(data)
	tc := &TestCase{Kind: ExpectSuccess, Name: name}
	found := false
	for _, f := range archive.Files {
		switch f.Name {
		case "source_text":
			tc.SourceText = string(f.Data)
			found = true
		case "ast_debug":
			tc.ASTDebug = string(f.Data)
		case "llvm_ir":
			tc.LLVMIR = string(f.Data)
		}
	}
	if !found {
		return nil, fmt.Errorf("forge/harness: fixture %q has no source_text file", name)
	}
	return tc, nil
}

// WriteFixture renders tc back to the txtar form LoadFixture reads,
// for regenerating golden fixtures after an intentional output change.
func WriteFixture(tc *TestCase) []byte {
	archive := &txtar.Archive{
		Files: []txtar.File{
			{Name: "source_text", Data: []byte(tc.SourceText)},
		},
	}
	if tc.ASTDebug != "" {
		archive.Files = append(archive.Files, txtar.File{Name: "ast_debug", Data: []byte(tc.ASTDebug)})
	}
	if tc.LLVMIR != "" {
		archive.Files = append(archive.Files, txtar.File{Name: "llvm_ir", Data: []byte(tc.LLVMIR)})
	}
	return txtar.Format(archive)
}
