package diag

// Severity orders diagnostics from least to most severe. Only Warning
// and above count toward MessageBuffer's counters;
// only Error and above set the "had errors" flag that stops the
// pipeline between phases.
type Severity int

const (
	Debug Severity = iota
	Note
	Warning
	Error
	Fatal
	Internal
)

// String implements fmt.Stringer for this enum.
func (s Severity) String() string {
	switch s {
	case Debug:
		return "debug"
	case Note:
		return "note"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	case Internal:
		return "internal"
	default:
		return "unknown-severity"
	}
}

// CountsAsProblem reports whether the severity counts toward a
// MessageBuffer's warning/error counters (Warning and Error, Fatal,
// Internal respectively).
func (s Severity) CountsAsProblem() bool {
	return s >= Warning
}

// IsError reports whether the severity is error-grade or worse (Error,
// Fatal, Internal) — the set that sets MessageBuffer's "had errors"
// flag and stops the pipeline between phases.
func (s Severity) IsError() bool {
	return s >= Error
}
