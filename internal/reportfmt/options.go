package reportfmt

import "tidyscope/internal/diag"

// HTMLOpts configures the HTML report.
type HTMLOpts struct {
	// Title is the report heading. Empty means the default title.
	Title string
	// MaxExamples bounds the example rows per check in the By Check table.
	// Zero means the default of 3.
	MaxExamples int
	// NewKeys marks records that were absent from the baseline. Nil when no
	// baseline is in play.
	NewKeys map[diag.Key]struct{}
}

// JSONOpts configures the machine-readable JSON output.
type JSONOpts struct {
	// IncludeRecords adds the full record list next to the summary object.
	IncludeRecords bool
	// NewCount is the number of records not present in the baseline; -1 when
	// no baseline was given (the field is then omitted).
	NewCount int
}

// PrettyOpts configures the colorized terminal listing.
type PrettyOpts struct {
	Color bool
	// Width truncates message text to the terminal width, 0 = unlimited.
	Width int
}

const defaultMaxExamples = 3

const defaultTitle = "Clang-Tidy Report"
