// Package aggregate derives display ordering, counts and per-check groupings
// from the final record set. Everything here is pure and re-derivable; there
// is no incremental state.
package aggregate

import (
	"sort"

	"tidyscope/internal/diag"
)

// Summary holds the aggregate counts over the kept record set.
type Summary struct {
	Total    int
	Errors   int
	Warnings int
	Notes    int
	// Files is the number of distinct paths present.
	Files int
	// Checks is the number of distinct non-empty check identifiers.
	Checks int
}

// CheckGroup is the ordered list of records sharing one check identifier.
// The empty check gets its own bucket: diagnostics without a rule identifier
// still belong in the report.
type CheckGroup struct {
	Check   string
	Records []diag.Record
}

// Sort orders records for display: ascending by severity rank (errors
// first), then path, line, column and check, each tie broken on the next
// key. The sort is stable so equal tuples keep their input order.
func Sort(records []diag.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Severity != b.Severity {
			return a.Severity < b.Severity
		}
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Col != b.Col {
			return a.Col < b.Col
		}
		return a.Check < b.Check
	})
}

// Summarize computes the severity, file and check counts.
func Summarize(records []diag.Record) Summary {
	sum := Summary{Total: len(records)}
	files := make(map[string]struct{})
	checks := make(map[string]struct{})
	for _, r := range records {
		switch r.Severity {
		case diag.SevError:
			sum.Errors++
		case diag.SevWarning:
			sum.Warnings++
		case diag.SevNote:
			sum.Notes++
		}
		files[r.Path] = struct{}{}
		if r.Check != "" {
			checks[r.Check] = struct{}{}
		}
	}
	sum.Files = len(files)
	sum.Checks = len(checks)
	return sum
}

// GroupByCheck buckets records by check identifier. Groups are ordered by
// descending record count, ties broken by check name; records inside a
// group keep their incoming (display) order.
func GroupByCheck(records []diag.Record) []CheckGroup {
	byCheck := make(map[string][]diag.Record)
	for _, r := range records {
		byCheck[r.Check] = append(byCheck[r.Check], r)
	}
	groups := make([]CheckGroup, 0, len(byCheck))
	for check, recs := range byCheck {
		groups = append(groups, CheckGroup{Check: check, Records: recs})
	}
	sort.Slice(groups, func(i, j int) bool {
		if len(groups[i].Records) != len(groups[j].Records) {
			return len(groups[i].Records) > len(groups[j].Records)
		}
		return groups[i].Check < groups[j].Check
	})
	return groups
}
