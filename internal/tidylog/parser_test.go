package tidylog

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"tidyscope/internal/diag"
)

func TestParser_ParseLine(t *testing.T) {
	p := Parser{}

	tests := []struct {
		name     string
		line     string
		expected diag.Record
		ok       bool
	}{
		{
			name: "warning with check",
			line: "src/foo.cpp:10:5: warning: unused variable 'x' [misc-unused-parameters]",
			expected: diag.Record{
				Path: "src/foo.cpp", Line: 10, Col: 5,
				Severity: diag.SevWarning, Message: "unused variable 'x'", Check: "misc-unused-parameters",
			},
			ok: true,
		},
		{
			name: "error without check",
			line: "src/bar.cpp:1:1: error: expected ';' after expression",
			expected: diag.Record{
				Path: "src/bar.cpp", Line: 1, Col: 1,
				Severity: diag.SevError, Message: "expected ';' after expression",
			},
			ok: true,
		},
		{
			name: "note parsed as note severity",
			line: "src/foo.cpp:12:3: note: previous declaration is here",
			expected: diag.Record{
				Path: "src/foo.cpp", Line: 12, Col: 3,
				Severity: diag.SevNote, Message: "previous declaration is here",
			},
			ok: true,
		},
		{
			name: "surrounding whitespace is insignificant",
			line: "   include/api.hpp:1:1: warning: magic number [readability-magic-numbers]   ",
			expected: diag.Record{
				Path: "include/api.hpp", Line: 1, Col: 1,
				Severity: diag.SevWarning, Message: "magic number", Check: "readability-magic-numbers",
			},
			ok: true,
		},
		{
			name: "brackets inside message are not the check",
			line: "a.cpp:2:2: warning: value [0] is out of range [readability-magic-numbers]",
			expected: diag.Record{
				Path: "a.cpp", Line: 2, Col: 2,
				Severity: diag.SevWarning, Message: "value [0] is out of range", Check: "readability-magic-numbers",
			},
			ok: true,
		},
		{name: "build noise", line: "12 warnings generated.", ok: false},
		{name: "code snippet", line: "    int magic = 42;", ok: false},
		{name: "caret line", line: "        ^", ok: false},
		{name: "unknown severity token", line: "a.cpp:1:1: remark: vectorized loop", ok: false},
		{name: "missing column", line: "a.cpp:1: warning: broken", ok: false},
		{name: "empty line", line: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.ParseLine(tt.line)
			if ok != tt.ok {
				t.Fatalf("ParseLine(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if ok && !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseLine(%q) = %+v, want %+v", tt.line, got, tt.expected)
			}
		})
	}
}

func TestParser_ParseText(t *testing.T) {
	log := `Running clang-tidy on 2 files
src/foo.cpp:10:5: warning: unused variable 'x' [misc-unused-parameters]
    int x = 0;
        ^
src/foo.cpp:20:1: error: no member named 'frobnicate' [clang-diagnostic-error]
2 warnings generated.
`
	records := Parser{}.ParseText(log)
	if len(records) != 2 {
		t.Fatalf("ParseText returned %d records, want 2", len(records))
	}
	if records[0].Line != 10 || records[1].Line != 20 {
		t.Errorf("records out of file order: %+v", records)
	}
}

func TestParser_ParseText_OverlongNoiseLine(t *testing.T) {
	// Some build systems dump entire compile commands onto one line. A line
	// far past any scanner buffer must only skip itself, never the lines
	// after it.
	noise := strings.Repeat("x", 2*1024*1024)
	records := Parser{}.ParseText(noise + "\nsrc/a.cpp:1:1: warning: w [c]\n")
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Path != "src/a.cpp" {
		t.Errorf("path = %q, want %q", records[0].Path, "src/a.cpp")
	}
}

func TestParser_ParseText_PathNormalized(t *testing.T) {
	records := Parser{}.ParseText("src//./foo.cpp:1:1: warning: w [c]\n")
	if len(records) != 1 {
		t.Fatalf("want 1 record, got %d", len(records))
	}
	if records[0].Path != "src/foo.cpp" {
		t.Errorf("path = %q, want %q", records[0].Path, "src/foo.cpp")
	}
}

func TestParser_ParseFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "run1.txt")
	content := "src/a.cpp:1:1: warning: first [check-a]\nnoise\nsrc/b.cpp:2:2: error: second\n"
	if err := os.WriteFile(good, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "does-not-exist.txt")

	records, skipped := Parser{}.ParseFiles([]string{good, missing})
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if len(skipped) != 1 || skipped[0] != missing {
		t.Errorf("skipped = %v, want [%s]", skipped, missing)
	}
}

func TestParser_ParseFiles_InvalidUTF8Replaced(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "run.txt")
	// 0xFF is not valid UTF-8; the line must still parse with the byte replaced.
	raw := []byte("src/a.cpp:1:1: warning: bad byte \xff here [check-a]\n")
	if err := os.WriteFile(logPath, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	records, skipped := Parser{}.ParseFiles([]string{logPath})
	if len(skipped) != 0 {
		t.Fatalf("no file should be skipped, got %v", skipped)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Check != "check-a" {
		t.Errorf("check = %q, want %q", records[0].Check, "check-a")
	}
}
