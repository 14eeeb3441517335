package config

import (
	"fmt"

	"tidyscope/internal/aggregate"
)

// FailPolicy decides the terminal status of a run from the final counts.
type FailPolicy uint8

const (
	// FailNever always reports success.
	FailNever FailPolicy = iota
	// FailOnErrors fails the run when any error survived the pipeline.
	FailOnErrors
	// FailOnWarnings fails the run when any error or warning survived.
	FailOnWarnings
)

// ParseFailPolicy recognizes the three policy names. An unknown name is a
// configuration error and must be rejected before any log is processed.
func ParseFailPolicy(s string) (FailPolicy, error) {
	switch s {
	case "never":
		return FailNever, nil
	case "errors":
		return FailOnErrors, nil
	case "warnings":
		return FailOnWarnings, nil
	}
	return 0, fmt.Errorf("unknown fail policy %q (expected never|errors|warnings)", s)
}

func (p FailPolicy) String() string {
	switch p {
	case FailNever:
		return "never"
	case FailOnErrors:
		return "errors"
	case FailOnWarnings:
		return "warnings"
	}
	return "unknown"
}

// Exceeded reports whether the counts violate the policy.
func (p FailPolicy) Exceeded(sum aggregate.Summary) bool {
	switch p {
	case FailOnErrors:
		return sum.Errors > 0
	case FailOnWarnings:
		return sum.Errors > 0 || sum.Warnings > 0
	}
	return false
}
