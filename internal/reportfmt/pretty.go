package reportfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"tidyscope/internal/aggregate"
	"tidyscope/internal/diag"
)

var (
	errColor   = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow, color.Bold)
	noteColor  = color.New(color.FgBlue)
	checkColor = color.New(color.Faint)
	headColor  = color.New(color.Bold)
)

// Pretty writes a colorized per-record listing followed by the summary
// counts. Expects records already in display order.
func Pretty(w io.Writer, records []diag.Record, sum aggregate.Summary, opts PrettyOpts) error {
	restore := color.NoColor
	color.NoColor = !opts.Color
	defer func() { color.NoColor = restore }()

	for _, r := range records {
		msg := r.Message
		if opts.Width > 0 {
			// Keep the location prefix intact, trim only the message tail.
			used := len(r.Path) + len(r.Severity.String()) + 16
			if avail := opts.Width - used; avail > 8 {
				msg = runewidth.Truncate(msg, avail, "…")
			}
		}
		line := fmt.Sprintf("%s:%d:%d: %s: %s", r.Path, r.Line, r.Col, severityColor(r.Severity).Sprint(r.Severity), msg)
		if r.Check != "" {
			line += checkColor.Sprintf(" [%s]", r.Check)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if len(records) > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s %d  %s %d  %s %d  %s %d  %s %d\n",
		headColor.Sprint("total"), sum.Total,
		errColor.Sprint("errors"), sum.Errors,
		warnColor.Sprint("warnings"), sum.Warnings,
		headColor.Sprint("files"), sum.Files,
		headColor.Sprint("checks"), sum.Checks,
	)
	return err
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	}
	return noteColor
}
