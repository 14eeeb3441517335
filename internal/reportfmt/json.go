package reportfmt

import (
	"encoding/json"
	"io"

	"tidyscope/internal/aggregate"
	"tidyscope/internal/diag"
)

// SummaryJSON is the machine-readable summary consumed by CI.
type SummaryJSON struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Total    int `json:"total"`
	Files    int `json:"files"`
	Checks   int `json:"checks"`
	// New counts records absent from the baseline, present only when a
	// baseline was supplied.
	New *int `json:"new,omitempty"`
}

// RecordJSON is one finding in the optional records array.
type RecordJSON struct {
	Path     string `json:"path"`
	Line     uint32 `json:"line"`
	Col      uint32 `json:"col"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Check    string `json:"check,omitempty"`
}

// Output is the root JSON document.
type Output struct {
	Summary SummaryJSON  `json:"summary"`
	Records []RecordJSON `json:"records,omitempty"`
}

// BuildOutput assembles the JSON document without serializing it.
func BuildOutput(records []diag.Record, sum aggregate.Summary, opts JSONOpts) Output {
	out := Output{
		Summary: SummaryJSON{
			Errors:   sum.Errors,
			Warnings: sum.Warnings,
			Total:    sum.Total,
			Files:    sum.Files,
			Checks:   sum.Checks,
		},
	}
	if opts.NewCount >= 0 {
		n := opts.NewCount
		out.Summary.New = &n
	}
	if opts.IncludeRecords {
		out.Records = make([]RecordJSON, len(records))
		for i, r := range records {
			out.Records[i] = RecordJSON{
				Path:     r.Path,
				Line:     r.Line,
				Col:      r.Col,
				Severity: r.Severity.String(),
				Message:  r.Message,
				Check:    r.Check,
			}
		}
	}
	return out
}

// JSON writes the summary (and optionally the records) as indented JSON.
func JSON(w io.Writer, records []diag.Record, sum aggregate.Summary, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildOutput(records, sum, opts))
}
