package diag

import "strings"

// Query selects messages by zero or more optional fields; every
// non-default field set on the query must match for a message to be
// included. A field is "non-default" when its HasX companion is true
// — this lets Query distinguish "match severity == debug" from "don't
// filter on severity" even though Debug is the zero value of Severity.
type Query struct {
	Severity    Severity
	HasSeverity bool

	Code    string
	HasCode bool

	TextContains    string
	HasTextContains bool

	Line    int
	HasLine bool

	Path    string
	HasPath bool
}

// BySeverity returns a Query matching only the given severity.
func BySeverity(s Severity) Query { return Query{Severity: s, HasSeverity: true} }

// ByCode returns a Query matching only the given code.
func ByCode(code string) Query { return Query{Code: code, HasCode: true} }

// matches reports whether m satisfies every field the query sets.
func (q Query) matches(m *Message) bool {
	if q.HasSeverity && m.Severity != q.Severity {
		return false
	}
	if q.HasCode && m.Code != q.Code {
		return false
	}
	if q.HasTextContains && !strings.Contains(m.Text, q.TextContains) {
		return false
	}
	if q.HasLine && (!m.HasRange || m.Range.Start.Line != q.Line) {
		return false
	}
	if q.HasPath && (!m.HasRange || m.Range.Start.Path != q.Path) {
		return false
	}
	return true
}

// isEmpty reports whether q sets no field at all. An empty query
// matches nothing.
func (q Query) isEmpty() bool {
	return !q.HasSeverity && !q.HasCode && !q.HasTextContains && !q.HasLine && !q.HasPath
}

// Query returns every top-level message in b matching every
// non-default field of q. An empty query matches nothing. Children are
// not searched independently — only top-level messages are queried.
func (b *Buffer) Query(q Query) []*Message {
	if q.isEmpty() {
		return nil
	}
	var out []*Message
	for _, m := range b.Messages() {
		if q.matches(m) {
			out = append(out, m)
		}
	}
	return out
}

// SingleResult is the three-way outcome of QuerySingle: querying for
// "the" message matching q might find none, exactly one, or more than
// one — callers must never be handed an arbitrary choice among
// multiple matches.
type SingleResult int

const (
	SingleNone SingleResult = iota
	SingleOne
	SingleMultiple
)

// QuerySingle runs q against b and reports which of the three
// SingleResult outcomes applies, along with the single match when the
// outcome is SingleOne.
func (b *Buffer) QuerySingle(q Query) (SingleResult, *Message) {
	matches := b.Query(q)
	switch len(matches) {
	case 0:
		return SingleNone, nil
	case 1:
		return SingleOne, matches[0]
	default:
		return SingleMultiple, nil
	}
}
