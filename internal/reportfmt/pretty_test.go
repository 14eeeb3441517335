package reportfmt

import (
	"strings"
	"testing"

	"tidyscope/internal/aggregate"
	"tidyscope/internal/diag"
)

func TestPretty_NoColor(t *testing.T) {
	records := []diag.Record{
		{Path: "src/a.cpp", Line: 3, Col: 1, Severity: diag.SevError, Message: "broken", Check: "clang-diagnostic-error"},
	}
	sum := aggregate.Summarize(records)

	var b strings.Builder
	if err := Pretty(&b, records, sum, PrettyOpts{Color: false}); err != nil {
		t.Fatalf("Pretty() error = %v", err)
	}
	out := b.String()

	if !strings.Contains(out, "src/a.cpp:3:1: error: broken [clang-diagnostic-error]") {
		t.Errorf("record line missing from output:\n%s", out)
	}
	if !strings.Contains(out, "total 1") || !strings.Contains(out, "errors 1") {
		t.Errorf("summary counts missing from output:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("ANSI escapes present with color disabled:\n%q", out)
	}
}

func TestPretty_EmptyRun(t *testing.T) {
	var b strings.Builder
	if err := Pretty(&b, nil, aggregate.Summary{}, PrettyOpts{}); err != nil {
		t.Fatalf("Pretty() error = %v", err)
	}
	if !strings.Contains(b.String(), "total 0") {
		t.Errorf("empty run must still print counts, got %q", b.String())
	}
}
