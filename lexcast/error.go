// Package lexcast implements decoders and encoders for the literal
// forms the parser consumes and the debug/formatted printers emit:
// characters, strings, unsigned integers, and floats.
// Decoders read from a source.Reader cursor so the parser can
// backtrack on failure; encoders produce text guaranteed to re-parse
// to the same value (the lexical round-trip property).
package lexcast

import "fmt"

// Error reports a malformed literal, carrying the opaque diagnostic
// code family the parser surfaces verbatim (is-* "input-syntax").
type Error struct {
	Code string
	Text string
}

func (e *Error) Error() string {
	return e.Text
}

func errf(code, format string, args ...any) *Error {
	return &Error{Code: code, Text: fmt.Sprintf(format, args...)}
}
