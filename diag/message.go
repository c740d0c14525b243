package diag

import "github.com/viant/forge/source"

// Message is one diagnostic entity. Code is a short,
// opaque identifier drawn from a fixed family (fc-*, fl-*, is-*, es-*,
// et-*, …) — the library never interprets it, only carries and
// queries on it.
type Message struct {
	LogPath  string
	LogLine  int
	Range    source.Range // zero value means "no source range bound"
	HasRange bool
	Severity Severity
	Code     string // empty means "no code set"
	Text     string
	Children []*Message
}

// New constructs a Message with no source range and no children.
func New(severity Severity, code, text string) *Message {
	return &Message{Severity: severity, Code: code, Text: text}
}

// WithRange returns m with its source range set, for chaining at
// construction time: diag.New(diag.Error, "et-5", "...").WithRange(r).
func (m *Message) WithRange(r source.Range) *Message {
	m.Range = r
	m.HasRange = true
	return m
}

// AddChild appends a child message, growing the message tree.
func (m *Message) AddChild(child *Message) *Message {
	m.Children = append(m.Children, child)
	return m
}
