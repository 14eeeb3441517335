// Package config assembles the run configuration from its additive sources:
// built-in defaults, an optional tidyscope.toml, environment overrides and
// command-line flags. Set-valued settings are unioned across sources; scalar
// settings follow flag > env > file > default.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"tidyscope/internal/diag"
	"tidyscope/internal/suppress"
)

// DefaultFileName is looked up in the working directory when no explicit
// config path is given.
const DefaultFileName = "tidyscope.toml"

// Environment variable names. Comma-separated for identifier-like lists,
// newline-separated for path lists (paths may contain commas).
const (
	EnvSuppressChecks    = "TIDYSCOPE_SUPPRESS_CHECKS"
	EnvSuppressMsgSubstr = "TIDYSCOPE_SUPPRESS_MSG_SUBSTR"
	EnvExcludePaths      = "TIDYSCOPE_EXCLUDE_PATHS"
	EnvExcludePrefixes   = "TIDYSCOPE_EXCLUDE_PREFIXES"
	EnvRoot              = "TIDYSCOPE_ROOT"
)

// File mirrors the tidyscope.toml layout.
type File struct {
	Suppress SuppressSection `toml:"suppress"`
	Report   ReportSection   `toml:"report"`
	Run      RunSection      `toml:"run"`
}

type SuppressSection struct {
	Checks            []string `toml:"checks"`
	MessageSubstrings []string `toml:"message_substrings"`
	Paths             []string `toml:"paths"`
	PathPrefixes      []string `toml:"path_prefixes"`
	HeaderChecks      []string `toml:"header_checks"`
	HeaderSeverities  []string `toml:"header_severities"`
}

type ReportSection struct {
	Title       string `toml:"title"`
	MaxExamples int    `toml:"max_examples"`
}

type RunSection struct {
	Root   string `toml:"root"`
	FailOn string `toml:"fail_on"`
}

// Load parses a tidyscope.toml. A missing file at the default location is
// not an error; an explicitly named file must exist.
func Load(path string) (File, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}
	var cfg File
	if _, err := os.Stat(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return File{}, fmt.Errorf("config %s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// Overrides carries one source's additions to the suppression sets.
type Overrides struct {
	Checks            []string
	MessageSubstrings []string
	Paths             []string
	PathPrefixes      []string
	HeaderChecks      []string
	HeaderSeverities  []string
}

// FromEnv reads the environment overrides.
func FromEnv() Overrides {
	return Overrides{
		Checks:            SplitList(os.Getenv(EnvSuppressChecks), ","),
		MessageSubstrings: SplitList(os.Getenv(EnvSuppressMsgSubstr), ","),
		Paths:             SplitList(os.Getenv(EnvExcludePaths), "\n"),
		PathPrefixes:      SplitList(os.Getenv(EnvExcludePrefixes), "\n"),
	}
}

// SplitList splits on sep, trims each entry and drops empties.
func SplitList(s, sep string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// BuildPolicy unions the built-in defaults with every configured source into
// an immutable suppression policy. Unknown severity names in header
// severities are a configuration error.
func BuildPolicy(file File, overrides ...Overrides) (suppress.Policy, error) {
	p := suppress.Default()
	sources := append([]Overrides{{
		Checks:            file.Suppress.Checks,
		MessageSubstrings: file.Suppress.MessageSubstrings,
		Paths:             file.Suppress.Paths,
		PathPrefixes:      file.Suppress.PathPrefixes,
		HeaderChecks:      file.Suppress.HeaderChecks,
		HeaderSeverities:  file.Suppress.HeaderSeverities,
	}}, overrides...)
	for _, src := range sources {
		addAll(&p.ExcludedChecks, src.Checks)
		p.ExcludedMessageSubstrings = appendUnique(p.ExcludedMessageSubstrings, src.MessageSubstrings)
		addAll(&p.ExcludedPaths, src.Paths)
		p.ExcludedPathPrefixes = appendUnique(p.ExcludedPathPrefixes, src.PathPrefixes)
		addAll(&p.HeaderOnlyExcludedChecks, src.HeaderChecks)
		for _, name := range src.HeaderSeverities {
			sev, ok := diag.ParseSeverity(name)
			if !ok {
				return suppress.Policy{}, fmt.Errorf("unknown severity %q in header severities", name)
			}
			if p.HeaderOnlyExcludedSeverities == nil {
				p.HeaderOnlyExcludedSeverities = make(map[diag.Severity]struct{})
			}
			p.HeaderOnlyExcludedSeverities[sev] = struct{}{}
		}
	}
	return p, nil
}

func addAll(dst *map[string]struct{}, entries []string) {
	if len(entries) == 0 {
		return
	}
	if *dst == nil {
		*dst = make(map[string]struct{}, len(entries))
	}
	for _, e := range entries {
		(*dst)[e] = struct{}{}
	}
}

func appendUnique(dst, entries []string) []string {
	for _, e := range entries {
		found := false
		for _, have := range dst {
			if have == e {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, e)
		}
	}
	return dst
}
