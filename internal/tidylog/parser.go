// Package tidylog turns raw clang-tidy log text into diagnostic records.
//
// A tool log interleaves diagnostics with build noise, progress lines and
// code snippets. Only lines matching the diagnostic grammar become records;
// everything else is skipped silently. An unreadable log file is likewise
// skipped so that one bad input cannot abort the whole run.
package tidylog

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"tidyscope/internal/diag"
	"tidyscope/internal/srcpath"
)

// rowRE matches one diagnostic line:
//
//	<path>:<line>:<col>: <severity>: <message>[ [<check>]]
//
// The path may not contain a colon, the severity is one of the three literal
// tokens, and a trailing bracketed token is captured as the check identifier.
var rowRE = regexp.MustCompile(
	`^([^:]+):(\d+):(\d+):\s+(error|warning|note):\s+(.*?)(?:\s\[([^\]]+)\])?\s*$`,
)

// Parser converts log lines into records. Root is the repository root used
// for path normalization; empty Root keeps paths lexically cleaned.
type Parser struct {
	Root string
}

// ParseLine parses a single log line. ok is false for any line that does not
// match the diagnostic grammar, which is expected and not an error.
func (p Parser) ParseLine(line string) (diag.Record, bool) {
	m := rowRE.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return diag.Record{}, false
	}
	lineNo, err := parsePos(m[2])
	if err != nil {
		return diag.Record{}, false
	}
	colNo, err := parsePos(m[3])
	if err != nil {
		return diag.Record{}, false
	}
	sev, ok := diag.ParseSeverity(m[4])
	if !ok {
		return diag.Record{}, false
	}
	return diag.Record{
		Path:     srcpath.Normalize(m[1], p.Root),
		Line:     lineNo,
		Col:      colNo,
		Severity: sev,
		Message:  m[5],
		Check:    m[6],
	}, true
}

// ParseText parses one log's contents in file order. The text is split on
// newlines rather than scanned so that a single overlong noise line cannot
// cut off the lines after it.
func (p Parser) ParseText(text string) []diag.Record {
	var out []diag.Record
	for _, line := range strings.Split(text, "\n") {
		if rec, ok := p.ParseLine(line); ok {
			out = append(out, rec)
		}
	}
	return out
}

// ParseFiles reads and parses the given log files in order. Files that
// cannot be read are recorded in skipped and do not abort the run. Invalid
// byte sequences are replaced rather than rejected.
func (p Parser) ParseFiles(paths []string) (records []diag.Record, skipped []string) {
	for _, logPath := range paths {
		data, err := os.ReadFile(logPath)
		if err != nil {
			skipped = append(skipped, logPath)
			continue
		}
		records = append(records, p.ParseText(decode(data))...)
	}
	return records, skipped
}

// decode applies the best-effort strategy: invalid UTF-8 sequences become
// replacement runes instead of raising.
func decode(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}

func parsePos(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return safecast.Conv[uint32](n)
}
