package reportfmt

import (
	"strings"
	"testing"

	"tidyscope/internal/diag"
)

func TestShort(t *testing.T) {
	records := []diag.Record{
		{Path: "src/a.cpp", Line: 3, Col: 7, Severity: diag.SevError, Message: "broken", Check: "clang-diagnostic-error"},
		{Path: "src/b.cpp", Line: 1, Col: 1, Severity: diag.SevWarning, Message: "odd"},
	}
	var b strings.Builder
	if err := Short(&b, records); err != nil {
		t.Fatalf("Short() error = %v", err)
	}
	expected := "src/a.cpp:3:7: error: broken [clang-diagnostic-error]\n" +
		"src/b.cpp:1:1: warning: odd\n"
	if b.String() != expected {
		t.Errorf("Short() =\n%q\nwant\n%q", b.String(), expected)
	}
}

func TestShort_Empty(t *testing.T) {
	var b strings.Builder
	if err := Short(&b, nil); err != nil {
		t.Fatalf("Short() error = %v", err)
	}
	if b.String() != "" {
		t.Errorf("Short(nil) wrote %q, want empty", b.String())
	}
}
