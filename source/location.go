package source

import "fmt"

// Location identifies one point in one source file. Line and column
// are both 1-based.
type Location struct {
	Path   string
	Offset int
	Line   int
	Column int
}

// String renders a location as "path:line:column", the form used by
// diagnostic rendering.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Path, l.Line, l.Column)
}

// Less orders locations first by path, then by offset. Locations from
// different paths have no meaningful order beyond the path comparison;
// callers that span ranges are expected to have already checked
// Range.SamePath.
func (l Location) Less(other Location) bool {
	if l.Path != other.Path {
		return l.Path < other.Path
	}
	return l.Offset < other.Offset
}

// Range is a contiguous span of source starting at Start and extending
// LengthInColumns columns along Start's line. A zero-value Range with
// an empty Path is the sentinel "null range" used for synthesized
// nodes not tied to any source.
type Range struct {
	Start            Location
	LengthInColumns  int
}

// Null is the sentinel null range for synthesized AST nodes.
var Null = Range{}

// IsNull reports whether r is the sentinel null range.
func (r Range) IsNull() bool {
	return r == Null
}

// SamePath reports whether two ranges refer to the same source path.
// Spanning ranges from different paths is an invariant violation.
func (r Range) SamePath(other Range) bool {
	return r.Start.Path == other.Start.Path
}

// End returns the location one past the end of the range, on the same
// line as Start.
func (r Range) End() Location {
	end := r.Start
	end.Column += r.LengthInColumns
	end.Offset += r.LengthInColumns
	return end
}

// Span extends from the earlier of a's and b's starts to cover the
// later of their ends. Both ranges must share a path; Span panics
// otherwise via the same rule the rest of the package uses for broken
// invariants — callers that might cross files must check SamePath
// themselves first.
//
// Property under test: for any a, b, c with a.Start <= b.Start <=
// c.Start, Span(Span(a, b), c) == Span(a, c).
func Span(a, b Range) Range {
	if a.IsNull() {
		return b
	}
	if b.IsNull() {
		return a
	}
	if !a.SamePath(b) {
		panic(fmt.Sprintf("forge/source: cannot span ranges from different paths %q and %q", a.Start.Path, b.Start.Path))
	}

	start := a.Start
	if b.Start.Less(start) {
		start = b.Start
	}

	aEnd := a.End()
	bEnd := b.End()
	end := aEnd
	// End locations compare the same way as starts: by offset within a path.
	if bEnd.Offset > end.Offset {
		end = bEnd
	}

	return Range{
		Start:           start,
		LengthInColumns: end.Offset - start.Offset,
	}
}
