// Package suppress decides which diagnostic records survive into the report.
package suppress

import (
	"strings"

	"tidyscope/internal/diag"
	"tidyscope/internal/srcpath"
)

// Policy is the full set of exclusion rules for one run. It is built once
// from configuration sources and treated as immutable afterwards; tests may
// run several policies in one process without interference.
type Policy struct {
	// ExcludedPaths drops records at these exact canonical paths.
	ExcludedPaths map[string]struct{}
	// ExcludedPathPrefixes drops records whose path starts with any entry.
	// Matching is raw string prefix, not segment-aligned: the prefix "src/fo"
	// matches "src/foo.cpp". Slash-terminated entries give directory
	// semantics.
	ExcludedPathPrefixes []string
	// ExcludedChecks drops records by check identifier regardless of location.
	ExcludedChecks map[string]struct{}
	// ExcludedMessageSubstrings drops records whose message contains any entry.
	ExcludedMessageSubstrings []string
	// HeaderOnlyExcludedChecks drops the check only when the record's path is
	// a header file. Header diagnostics repeat across translation units and
	// noisier categories are tolerated there.
	HeaderOnlyExcludedChecks map[string]struct{}
	// HeaderOnlyExcludedSeverities drops the severity only on header paths.
	HeaderOnlyExcludedSeverities map[diag.Severity]struct{}
}

// Default returns the built-in policy. The two
// IgnoreClassesWithAllMemberVariablesBeingPublic entries suppress noise from
// an incomplete parse environment rather than real findings. The header-only
// note entry is unreachable while notes are dropped pipeline-wide but is
// kept so the set stays configurable.
func Default() Policy {
	return Policy{
		ExcludedChecks: map[string]struct{}{
			"IgnoreClassesWithAllMemberVariablesBeingPublic": {},
		},
		ExcludedMessageSubstrings: []string{
			"IgnoreClassesWithAllMemberVariablesBeingPublic",
		},
		HeaderOnlyExcludedSeverities: map[diag.Severity]struct{}{
			diag.SevNote: {},
		},
	}
}

// Keep reports whether the record survives the policy. Rules are evaluated
// cheapest-and-most-decisive first and short-circuit:
//
//  1. notes are always dropped (fixed pipeline rule, not configurable),
//  2. path exclusion (exact, then prefix),
//  3. header-only check and severity exclusion,
//  4. global check exclusion,
//  5. message substring exclusion.
func (p Policy) Keep(r diag.Record) bool {
	if r.Severity == diag.SevNote {
		return false
	}
	if _, ok := p.ExcludedPaths[r.Path]; ok {
		return false
	}
	for _, prefix := range p.ExcludedPathPrefixes {
		if prefix != "" && strings.HasPrefix(r.Path, prefix) {
			return false
		}
	}
	if srcpath.IsHeader(r.Path) {
		if _, ok := p.HeaderOnlyExcludedChecks[r.Check]; ok {
			return false
		}
		if _, ok := p.HeaderOnlyExcludedSeverities[r.Severity]; ok {
			return false
		}
	}
	if _, ok := p.ExcludedChecks[r.Check]; ok {
		return false
	}
	for _, sub := range p.ExcludedMessageSubstrings {
		if sub != "" && strings.Contains(r.Message, sub) {
			return false
		}
	}
	return true
}

// Apply filters records through Keep, preserving input order.
func (p Policy) Apply(records []diag.Record) []diag.Record {
	out := make([]diag.Record, 0, len(records))
	for _, r := range records {
		if p.Keep(r) {
			out = append(out, r)
		}
	}
	return out
}
