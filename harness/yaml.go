package harness

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// record is the YAML-serializable shape of a batch of test cases and
// their substituter bindings, kept separate from TestCase itself since
// TestCase's observer hooks and Want value nodes have no YAML form.
type record struct {
	Name       string            `yaml:"name"`
	Kind       string            `yaml:"kind"`
	SourceText string            `yaml:"source_text"`
	ASTDebug   string            `yaml:"ast_debug,omitempty"`
	LLVMIR     string            `yaml:"llvm_ir,omitempty"`
	Bindings   map[string]string `yaml:"bindings,omitempty"`
}

type recordFile struct {
	Cases []record `yaml:"cases"`
}

// LoadCasesYAML parses a batch of test-case records out of data, in
// the format a fixture author maintains by hand (as opposed to the
// txtar form a golden-output regeneration tool would write).
func LoadCasesYAML(data []byte) ([]*TestCase, error) {
	var file recordFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("forge/harness: parse test-case YAML: %w", err)
	}
	cases := make([]*TestCase, 0, len(file.Cases))
	for _, r := range file.Cases {
		kind := Kind(r.Kind)
		if kind == "" {
			kind = ExpectSuccess
		}
		sub := NewSubstituter()
		for k, v := range r.Bindings {
			sub.Bind(k, v)
		}
		cases = append(cases, &TestCase{
			Kind:        kind,
			Name:        r.Name,
			SourceText:  r.SourceText,
			ASTDebug:    r.ASTDebug,
			LLVMIR:      r.LLVMIR,
			Substituter: sub,
		})
	}
	return cases, nil
}
