package ast

import (
	"fmt"
	"strings"
)

// PrintOptions configures DebugPrint's truncation: a
// max node-nesting depth and a max number of elements shown per list
// property, either of which may be left at 0 to mean "no limit".
type PrintOptions struct {
	MaxDepth     int
	MaxListLen   int
}

// DefaultPrintOptions applies no truncation, producing the full
// canonical rendering.
var DefaultPrintOptions = PrintOptions{}

// Printer accumulates a debug-print or formatted-print rendering. A
// fresh Printer is used for each top-level Print/FormatPrint call; its
// zero value is ready to use for formatted printing, where there is no
// truncation to configure.
type Printer struct {
	b       strings.Builder
	level   int
	opts    PrintOptions
	format  bool // true when printing surface syntax instead of debug form
}

// NewDebugPrinter returns a Printer configured for DebugPrint with the
// given truncation options.
func NewDebugPrinter(opts PrintOptions) *Printer {
	return &Printer{opts: opts}
}

// NewFormatPrinter returns a Printer configured for FormatPrint
// (surface syntax, no truncation).
func NewFormatPrinter() *Printer {
	return &Printer{format: true}
}

// String returns the accumulated text.
func (p *Printer) String() string {
	return p.b.String()
}

func (p *Printer) indent() string {
	return strings.Repeat("  ", p.level)
}

// Raw writes s verbatim — used by FormatPrint implementations that
// build surface syntax directly.
func (p *Printer) Raw(s string) {
	p.b.WriteString(s)
}

// Print renders node's canonical debug form into p: "[kind-name]" on
// its own line, each property on a subsequent line indented two
// spaces per level.
func Print(node Node, opts PrintOptions) string {
	p := NewDebugPrinter(opts)
	p.debugNode(node)
	return p.String()
}

// FormatPrint renders node's surface-syntax reconstruction.
func FormatPrint(node Node) string {
	p := NewFormatPrinter()
	node.FormatPrint(p)
	return p.String()
}

// debugNode writes "[kind]\n" at the current cursor position (the
// caller has already written any indent or "name = " prefix) and then
// lets node fill in its own properties via the Prop* helpers, subject
// to this Printer's depth limit.
func (p *Printer) debugNode(node Node) {
	if node == nil {
		p.b.WriteString("null\n")
		return
	}
	if p.opts.MaxDepth > 0 && p.level >= p.opts.MaxDepth {
		p.b.WriteString("...\n")
		return
	}
	p.b.WriteString("[")
	p.b.WriteString(node.Kind().String())
	p.b.WriteString("]\n")
	p.level++
	node.DebugPrint(p)
	p.level--
}

// Prop writes a scalar property line: "name = value".
func (p *Printer) Prop(name string, value any) {
	p.b.WriteString(p.indent())
	p.b.WriteString(name)
	p.b.WriteString(" = ")
	fmt.Fprint(&p.b, value)
	p.b.WriteString("\n")
}

// PropNode writes a node-valued property line: "name = [kind]"
// followed by the child's own nested properties, or "name = null" if
// child is a nil Node interface value (not a typed nil), or "name = ..."
// if the depth limit truncates it.
func (p *Printer) PropNode(name string, child Node) {
	p.b.WriteString(p.indent())
	p.b.WriteString(name)
	p.b.WriteString(" = ")
	p.debugNode(child)
}

// PropList writes a list property as "name[i] = value" lines for
// scalar elements.
func PropList[T any](p *Printer, name string, items []T) {
	limit := len(items)
	truncated := false
	if p.opts.MaxListLen > 0 && limit > p.opts.MaxListLen {
		limit = p.opts.MaxListLen
		truncated = true
	}
	for i := 0; i < limit; i++ {
		p.Prop(fmt.Sprintf("%s[%d]", name, i), items[i])
	}
	if truncated {
		p.b.WriteString(p.indent())
		p.b.WriteString(fmt.Sprintf("%s[...]", name))
		p.b.WriteString(" = ...\n")
	}
}

// PropNodeList writes a list of node-valued properties as
// "name[i] = [kind]" followed by nested properties, truncating past
// MaxListLen.
func PropNodeList[T Node](p *Printer, name string, items []T) {
	limit := len(items)
	truncated := false
	if p.opts.MaxListLen > 0 && limit > p.opts.MaxListLen {
		limit = p.opts.MaxListLen
		truncated = true
	}
	for i := 0; i < limit; i++ {
		p.PropNode(fmt.Sprintf("%s[%d]", name, i), items[i])
	}
	if truncated {
		p.b.WriteString(p.indent())
		p.b.WriteString(fmt.Sprintf("%s[...]", name))
		p.b.WriteString(" = ...\n")
	}
}
