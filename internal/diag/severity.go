package diag

// Severity defines the class of a diagnostic. The numeric order is the
// display rank: errors sort before warnings, warnings before notes.
type Severity uint8

const (
	SevError Severity = iota
	SevWarning
	// SevNote carries no actionable signal and is dropped by the pipeline
	// before any policy rule runs.
	SevNote
)

// String returns the lowercase token used by clang-tidy logs.
func (s Severity) String() string {
	switch s {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	case SevNote:
		return "note"
	}
	return "unknown"
}

// ParseSeverity maps the literal log tokens to a Severity.
func ParseSeverity(tok string) (Severity, bool) {
	switch tok {
	case "error":
		return SevError, true
	case "warning":
		return SevWarning, true
	case "note":
		return SevNote, true
	}
	return 0, false
}
