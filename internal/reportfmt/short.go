package reportfmt

import (
	"fmt"
	"io"

	"tidyscope/internal/diag"
)

// Short writes one line per record in the same shape the records were parsed
// from. The output is stable for a given ordered record list, which makes it
// suitable for golden comparisons in CI.
func Short(w io.Writer, records []diag.Record) error {
	for _, r := range records {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
	}
	return nil
}
