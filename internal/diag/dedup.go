package diag

// Dedup removes records whose Key was already seen, keeping the first
// occurrence in input order. The relative order of survivors is preserved.
// The same diagnostic typically shows up once per log file when multiple
// logs cover overlapping translation units; the report must count each real
// finding once.
func Dedup(records []Record) []Record {
	if len(records) == 0 {
		return records
	}
	seen := make(map[Key]struct{}, len(records))
	out := make([]Record, 0, len(records))
	for _, r := range records {
		key := r.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}
