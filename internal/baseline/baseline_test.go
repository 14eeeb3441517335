package baseline

import (
	"os"
	"path/filepath"
	"testing"

	"tidyscope/internal/diag"
)

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "baseline.mp")

	known := diag.Record{Path: "src/a.cpp", Line: 1, Col: 2, Severity: diag.SevWarning, Message: "m", Check: "c"}
	if err := Save(path, []diag.Record{known}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	set, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if set == nil {
		t.Fatal("Load() returned nil set for an existing baseline")
	}
	if !set.Has(known) {
		t.Errorf("baseline should contain the saved record")
	}

	fresh := diag.Record{Path: "src/b.cpp", Line: 9, Col: 9, Severity: diag.SevError, Message: "new"}
	if set.Has(fresh) {
		t.Errorf("baseline should not contain an unsaved record")
	}

	newKeys := set.NewKeys([]diag.Record{known, fresh})
	if len(newKeys) != 1 {
		t.Fatalf("NewKeys() = %v, want exactly the fresh record", newKeys)
	}
	if _, ok := newKeys[fresh.Key()]; !ok {
		t.Errorf("NewKeys() missing the fresh record")
	}
}

func TestLoad_Missing(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), "absent.mp"))
	if err != nil {
		t.Fatalf("missing baseline must not error, got %v", err)
	}
	if set != nil {
		t.Errorf("missing baseline must load as nil set")
	}
}

func TestLoad_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.mp")
	if err := os.WriteFile(path, []byte("not msgpack at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	set, err := Load(path)
	if err != nil {
		t.Fatalf("corrupt baseline must be treated as absent, got %v", err)
	}
	if set != nil {
		t.Errorf("corrupt baseline must load as nil set")
	}
}

func TestNilSet_EverythingIsNew(t *testing.T) {
	var set *Set
	records := []diag.Record{
		{Path: "a.cpp", Line: 1, Col: 1, Severity: diag.SevError, Message: "m"},
		{Path: "b.cpp", Line: 2, Col: 2, Severity: diag.SevWarning, Message: "n"},
	}
	if set.Has(records[0]) {
		t.Errorf("nil set must not contain anything")
	}
	if got := set.NewKeys(records); len(got) != 2 {
		t.Errorf("nil set NewKeys() = %d keys, want 2", len(got))
	}
}
