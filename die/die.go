// Package die implements the "assertion / internal" error tier for the
// compiler: a broken internal invariant aborts the process with file,
// line, and a message rather than being threaded through error
// returns.
package die

import "fmt"

// Assertf panics with a formatted message if cond is false. Use it for
// invariants that must never be violated by correct caller behavior
// (non-nil pointers, non-empty strings, enum domains, expected AST
// kinds) — never for conditions arising from untrusted input.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("forge: assertion failed: "+format, args...))
	}
}

// Unreachable panics unconditionally. Use it in switch defaults over a
// closed enum where every case is supposed to be handled.
func Unreachable(format string, args ...any) {
	panic(fmt.Sprintf("forge: unreachable: "+format, args...))
}

// NotApplicable panics to report that an operation was requested on an
// AST kind whose kind-info entry leaves that operation unset.
func NotApplicable(operation string, kind fmt.Stringer) {
	panic(fmt.Sprintf("forge: operation %q is not applicable to kind %s", operation, kind))
}
