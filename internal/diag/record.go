package diag

import "fmt"

// Record is a single clang-tidy finding. Records are built once by the log
// parser and never mutated afterwards; the pipeline stages only filter and
// reorder them.
type Record struct {
	// Path is the canonical repository-relative file path, slash-separated.
	Path string
	// Line and Col are 1-based source positions.
	Line     uint32
	Col      uint32
	Severity Severity
	// Message is the diagnostic text, already unescaped from the log.
	Message string
	// Check is the identifier of the rule that produced the diagnostic.
	// Empty when the log line carried no trailing [check] tag.
	Check string
}

// Key is the identity of a finding. Two records with equal keys are the same
// finding regardless of which log file they came from.
type Key struct {
	Path    string
	Line    uint32
	Col     uint32
	Check   string
	Message string
}

// Key returns the dedup identity of the record. Severity is deliberately not
// part of the key: the same location/check/message pair is one finding.
func (r Record) Key() Key {
	return Key{
		Path:    r.Path,
		Line:    r.Line,
		Col:     r.Col,
		Check:   r.Check,
		Message: r.Message,
	}
}

// String renders the record in the same shape it was parsed from:
// path:line:col: severity: message [check].
func (r Record) String() string {
	if r.Check == "" {
		return fmt.Sprintf("%s:%d:%d: %s: %s", r.Path, r.Line, r.Col, r.Severity, r.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s [%s]", r.Path, r.Line, r.Col, r.Severity, r.Message, r.Check)
}
