package ast

import "github.com/viant/forge/source"

// Node is implemented by every AST variant. Every node carries a
// common header (Kind, source Range) and otherwise variant-specific
// payload. Clone, DebugPrint, FormatPrint, and Accept are the four
// per-kind operations that apply to every node unconditionally;
// Compare, DeclarationName, and ResolveType apply only to a subset of
// kinds and are implemented as free functions with type switches
// (compare.go, declname.go, resolve.go) rather than interface methods,
// so a kind that doesn't support them simply isn't a case in the
// switch instead of needing a dummy method body.
type Node interface {
	Kind() Kind
	Range() source.Range
	Clone() Node
	DebugPrint(p *Printer)
	FormatPrint(p *Printer)
	Accept(v *Visitor, parents []Node) Status
}

// Header is embedded by every concrete node type and supplies the
// common Range() implementation. Kind() is implemented individually by
// each concrete type since Go cannot override an embedded method per
// embedder without restating it — restating Kind() per type is also
// what makes each node's kind a compile-time constant rather than a
// stored, mutable field.
type Header struct {
	NodeRange source.Range
}

// Range returns the node's source range, or the null range for
// synthesized nodes.
func (h Header) Range() source.Range { return h.NodeRange }

// CloneSlice deep-clones a slice of nodes, preserving nil vs. empty.
func CloneSlice[T Node](nodes []T) []T {
	if nodes == nil {
		return nil
	}
	out := make([]T, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone().(T)
	}
	return out
}
