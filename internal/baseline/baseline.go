// Package baseline persists the kept-record identities of a run so a later
// run can tell new findings from pre-existing ones. The store is a single
// msgpack file, schema-versioned so format changes invalidate old baselines
// instead of misreading them.
package baseline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"tidyscope/internal/diag"
)

// Bump when the payload format changes; mismatched baselines are treated as
// absent, not as errors.
const schemaVersion uint16 = 1

type payload struct {
	Schema uint16
	Keys   []entry
}

type entry struct {
	Path    string
	Line    uint32
	Col     uint32
	Check   string
	Message string
}

// Set is a loaded baseline.
type Set struct {
	keys map[diag.Key]struct{}
}

// Save writes the identities of records to path.
func Save(path string, records []diag.Record) error {
	p := payload{Schema: schemaVersion, Keys: make([]entry, len(records))}
	for i, r := range records {
		k := r.Key()
		p.Keys[i] = entry{Path: k.Path, Line: k.Line, Col: k.Col, Check: k.Check, Message: k.Message}
	}
	data, err := msgpack.Marshal(&p)
	if err != nil {
		return fmt.Errorf("encode baseline: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create baseline directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write baseline %s: %w", path, err)
	}
	return nil
}

// Load reads a baseline from path. A missing file, an undecodable file or a
// schema mismatch all yield (nil, nil): the baseline is simply treated as
// absent and every record counts as new.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read baseline %s: %w", path, err)
	}
	var p payload
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return nil, nil
	}
	if p.Schema != schemaVersion {
		return nil, nil
	}
	s := &Set{keys: make(map[diag.Key]struct{}, len(p.Keys))}
	for _, e := range p.Keys {
		s.keys[diag.Key{Path: e.Path, Line: e.Line, Col: e.Col, Check: e.Check, Message: e.Message}] = struct{}{}
	}
	return s, nil
}

// Has reports whether the record's identity is in the baseline.
func (s *Set) Has(r diag.Record) bool {
	if s == nil {
		return false
	}
	_, ok := s.keys[r.Key()]
	return ok
}

// NewKeys returns the identities of records absent from the baseline. A nil
// Set means no baseline: everything is new.
func (s *Set) NewKeys(records []diag.Record) map[diag.Key]struct{} {
	out := make(map[diag.Key]struct{})
	for _, r := range records {
		if !s.Has(r) {
			out[r.Key()] = struct{}{}
		}
	}
	return out
}
