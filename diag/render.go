package diag

import (
	"fmt"
	"strings"

	"github.com/viant/forge/source"
)

// Render prints m's severity, code (when set), primary text, and — if
// a source range is bound — an excerpt of the offending line annotated
// with a caret span under the range. Children render indented under
// their parent, preserving order.
func Render(ctx *source.Context, m *Message) string {
	var b strings.Builder
	render(&b, ctx, m, 0)
	return b.String()
}

func render(b *strings.Builder, ctx *source.Context, m *Message, depth int) {
	indent := strings.Repeat("  ", depth)

	b.WriteString(indent)
	b.WriteString(m.Severity.String())
	if m.Code != "" {
		b.WriteString("[")
		b.WriteString(m.Code)
		b.WriteString("]")
	}
	b.WriteString(": ")
	b.WriteString(m.Text)
	b.WriteString("\n")

	if m.HasRange && ctx != nil {
		if line, ok := ctx.LineText(m.Range.Start.Path, m.Range.Start.Line); ok {
			b.WriteString(indent)
			b.WriteString(fmt.Sprintf("%d | %s\n", m.Range.Start.Line, line))

			caretPrefix := fmt.Sprintf("%d | ", m.Range.Start.Line)
			b.WriteString(indent)
			b.WriteString(strings.Repeat(" ", len(caretPrefix)))
			b.WriteString(strings.Repeat(" ", m.Range.Start.Column-1))
			length := m.Range.LengthInColumns
			if length < 1 {
				length = 1
			}
			b.WriteString(strings.Repeat("^", length))
			b.WriteString("\n")
		}
	}

	for _, child := range m.Children {
		render(b, ctx, child, depth+1)
	}
}
