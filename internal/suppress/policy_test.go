package suppress

import (
	"testing"

	"tidyscope/internal/diag"
)

func rec(path string, sev diag.Severity, msg, check string) diag.Record {
	return diag.Record{Path: path, Line: 1, Col: 1, Severity: sev, Message: msg, Check: check}
}

func TestPolicy_Keep(t *testing.T) {
	policy := Policy{
		ExcludedPaths:        map[string]struct{}{"vendor/lib.cpp": {}},
		ExcludedPathPrefixes: []string{"third_party/"},
		ExcludedChecks:       map[string]struct{}{"bugprone-foo": {}},
		ExcludedMessageSubstrings: []string{
			"incomplete parse environment",
		},
		HeaderOnlyExcludedChecks: map[string]struct{}{"readability-magic-numbers": {}},
		HeaderOnlyExcludedSeverities: map[diag.Severity]struct{}{
			diag.SevNote: {},
		},
	}

	tests := []struct {
		name string
		rec  diag.Record
		keep bool
	}{
		{
			name: "plain warning kept",
			rec:  rec("src/foo.cpp", diag.SevWarning, "unused variable", "misc-unused"),
			keep: true,
		},
		{
			name: "note always dropped",
			rec:  rec("src/foo.cpp", diag.SevNote, "previous declaration", ""),
			keep: false,
		},
		{
			name: "note dropped even when nothing else matches",
			rec:  rec("keep/me.cpp", diag.SevNote, "msg", "keep-check"),
			keep: false,
		},
		{
			name: "exact path excluded",
			rec:  rec("vendor/lib.cpp", diag.SevError, "broken", "some-check"),
			keep: false,
		},
		{
			name: "prefix excluded",
			rec:  rec("third_party/json/json.cpp", diag.SevWarning, "w", "c"),
			keep: false,
		},
		{
			name: "globally excluded check",
			rec:  rec("src/foo.cpp", diag.SevWarning, "w", "bugprone-foo"),
			keep: false,
		},
		{
			name: "check not excluded survives next to excluded one",
			rec:  rec("src/foo.cpp", diag.SevWarning, "w", "bugprone-bar"),
			keep: true,
		},
		{
			name: "message substring excluded",
			rec:  rec("src/foo.cpp", diag.SevWarning, "error due to incomplete parse environment here", ""),
			keep: false,
		},
		{
			name: "header-only check dropped on header path",
			rec:  rec("include/api.hpp", diag.SevWarning, "magic number", "readability-magic-numbers"),
			keep: false,
		},
		{
			name: "header-only check kept on implementation path",
			rec:  rec("src/api.cpp", diag.SevWarning, "magic number", "readability-magic-numbers"),
			keep: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.Keep(tt.rec); got != tt.keep {
				t.Errorf("Keep(%+v) = %v, want %v", tt.rec, got, tt.keep)
			}
		})
	}
}

// Prefix matching is raw string prefix, not segment-aligned. The source this
// behavior was ported from never disambiguated the two; raw prefix is the
// documented choice.
func TestPolicy_PrefixIsRawStringMatch(t *testing.T) {
	policy := Policy{ExcludedPathPrefixes: []string{"src/fo"}}
	if policy.Keep(rec("src/foo.cpp", diag.SevWarning, "w", "")) {
		t.Errorf("raw prefix %q should match %q", "src/fo", "src/foo.cpp")
	}
	if !policy.Keep(rec("src/other.cpp", diag.SevWarning, "w", "")) {
		t.Errorf("prefix %q should not match %q", "src/fo", "src/other.cpp")
	}
}

func TestPolicy_ZeroValueKeepsEverythingButNotes(t *testing.T) {
	var policy Policy
	if !policy.Keep(rec("a.cpp", diag.SevError, "m", "c")) {
		t.Errorf("zero policy dropped an error")
	}
	if !policy.Keep(rec("a.cpp", diag.SevWarning, "m", "")) {
		t.Errorf("zero policy dropped a warning")
	}
	if policy.Keep(rec("a.cpp", diag.SevNote, "m", "")) {
		t.Errorf("zero policy kept a note")
	}
}

func TestDefault(t *testing.T) {
	policy := Default()
	dropped := rec("src/a.cpp", diag.SevWarning, "w", "IgnoreClassesWithAllMemberVariablesBeingPublic")
	if policy.Keep(dropped) {
		t.Errorf("default policy kept the built-in excluded check")
	}
	byMsg := rec("src/a.cpp", diag.SevWarning, "option IgnoreClassesWithAllMemberVariablesBeingPublic is unused", "")
	if policy.Keep(byMsg) {
		t.Errorf("default policy kept the built-in excluded message substring")
	}
	if !policy.Keep(rec("src/a.cpp", diag.SevWarning, "w", "misc-unused")) {
		t.Errorf("default policy dropped an ordinary warning")
	}
}

// Adding an entry to any exclusion set never increases the kept count and
// never removes a record not matching that entry.
func TestPolicy_SuppressionMonotonicity(t *testing.T) {
	records := []diag.Record{
		rec("src/a.cpp", diag.SevWarning, "first", "check-a"),
		rec("src/b.cpp", diag.SevError, "second", "check-b"),
		rec("include/c.hpp", diag.SevWarning, "third", "check-c"),
	}

	base := Policy{}
	baseKept := base.Apply(records)

	wider := Policy{ExcludedChecks: map[string]struct{}{"check-b": {}}}
	widerKept := wider.Apply(records)

	if len(widerKept) > len(baseKept) {
		t.Fatalf("adding an exclusion increased kept count: %d > %d", len(widerKept), len(baseKept))
	}
	for _, r := range widerKept {
		if r.Check == "check-b" {
			t.Errorf("excluded check survived: %+v", r)
		}
		found := false
		for _, b := range baseKept {
			if b == r {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("record %+v removed without matching the new entry", r)
		}
	}
}

func TestPolicy_ApplyPreservesOrder(t *testing.T) {
	records := []diag.Record{
		rec("z.cpp", diag.SevWarning, "1", ""),
		rec("a.cpp", diag.SevNote, "drop", ""),
		rec("m.cpp", diag.SevError, "2", ""),
	}
	kept := Policy{}.Apply(records)
	if len(kept) != 2 || kept[0].Path != "z.cpp" || kept[1].Path != "m.cpp" {
		t.Errorf("Apply reordered records: %+v", kept)
	}
}
