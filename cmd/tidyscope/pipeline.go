package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tidyscope/internal/aggregate"
	"tidyscope/internal/config"
	"tidyscope/internal/diag"
	"tidyscope/internal/observ"
	"tidyscope/internal/tidylog"
)

// pipelineResult is everything a command needs after the batch pipeline ran:
// the ordered, deduplicated, suppression-filtered records plus their
// aggregates and the validated fail policy.
type pipelineResult struct {
	records []diag.Record
	summary aggregate.Summary
	groups  []aggregate.CheckGroup
	skipped []string
	policy  config.FailPolicy
	cfg     config.File
}

// addPipelineFlags registers the flags shared by every log-consuming
// command. Set-valued suppression flags are additive on top of the config
// file, the environment and the built-in defaults.
func addPipelineFlags(cmd *cobra.Command, defaultFailOn string) {
	cmd.Flags().String("root", "", "repository root for path normalization (default $"+config.EnvRoot+")")
	cmd.Flags().String("config", "", "path to tidyscope.toml (default ./"+config.DefaultFileName+" when present)")
	cmd.Flags().String("fail-on", defaultFailOn, "fail policy (never|errors|warnings)")
	cmd.Flags().StringSlice("suppress-checks", nil, "additional check identifiers to suppress")
	cmd.Flags().StringSlice("suppress-substr", nil, "additional message substrings to suppress")
	cmd.Flags().StringSlice("exclude-paths", nil, "exact file paths to exclude")
	cmd.Flags().StringSlice("exclude-prefixes", nil, "path prefixes to exclude")
	cmd.Flags().StringSlice("suppress-header-checks", nil, "check identifiers to suppress in header files only")
}

// runPipeline validates configuration, reads the logs and runs
// suppression, dedup and aggregation. Configuration errors are returned
// before any log is opened; unreadable logs are skipped, not fatal.
func runPipeline(cmd *cobra.Command, logs []string) (pipelineResult, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return pipelineResult{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return pipelineResult{}, err
	}

	failOn, err := cmd.Flags().GetString("fail-on")
	if err != nil {
		return pipelineResult{}, fmt.Errorf("failed to get fail-on flag: %w", err)
	}
	if !cmd.Flags().Changed("fail-on") && cfg.Run.FailOn != "" {
		failOn = cfg.Run.FailOn
	}
	policy, err := config.ParseFailPolicy(failOn)
	if err != nil {
		return pipelineResult{}, err
	}

	overrides, err := flagOverrides(cmd)
	if err != nil {
		return pipelineResult{}, err
	}
	suppression, err := config.BuildPolicy(cfg, config.FromEnv(), overrides)
	if err != nil {
		return pipelineResult{}, err
	}

	root, err := cmd.Flags().GetString("root")
	if err != nil {
		return pipelineResult{}, fmt.Errorf("failed to get root flag: %w", err)
	}
	if root == "" {
		root = os.Getenv(config.EnvRoot)
	}
	if root == "" {
		root = cfg.Run.Root
	}

	timer := observ.NewTimer()

	phase := timer.Begin("parse")
	parser := tidylog.Parser{Root: root}
	parsed, skipped := parser.ParseFiles(logs)
	timer.End(phase, fmt.Sprintf("%d records from %d logs", len(parsed), len(logs)))

	phase = timer.Begin("suppress")
	kept := suppression.Apply(parsed)
	timer.End(phase, fmt.Sprintf("%d kept", len(kept)))

	phase = timer.Begin("dedup")
	kept = diag.Dedup(kept)
	timer.End(phase, fmt.Sprintf("%d unique", len(kept)))

	phase = timer.Begin("aggregate")
	aggregate.Sort(kept)
	summary := aggregate.Summarize(kept)
	groups := aggregate.GroupByCheck(kept)
	timer.End(phase, "")

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return pipelineResult{}, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if !quiet {
		for _, logPath := range skipped {
			fmt.Fprintf(os.Stderr, "warning: skipped unreadable log %s\n", logPath)
		}
	}

	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return pipelineResult{}, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	return pipelineResult{
		records: kept,
		summary: summary,
		groups:  groups,
		skipped: skipped,
		policy:  policy,
		cfg:     cfg,
	}, nil
}

func flagOverrides(cmd *cobra.Command) (config.Overrides, error) {
	var o config.Overrides
	var err error
	if o.Checks, err = cmd.Flags().GetStringSlice("suppress-checks"); err != nil {
		return o, fmt.Errorf("failed to get suppress-checks flag: %w", err)
	}
	if o.MessageSubstrings, err = cmd.Flags().GetStringSlice("suppress-substr"); err != nil {
		return o, fmt.Errorf("failed to get suppress-substr flag: %w", err)
	}
	if o.Paths, err = cmd.Flags().GetStringSlice("exclude-paths"); err != nil {
		return o, fmt.Errorf("failed to get exclude-paths flag: %w", err)
	}
	if o.PathPrefixes, err = cmd.Flags().GetStringSlice("exclude-prefixes"); err != nil {
		return o, fmt.Errorf("failed to get exclude-prefixes flag: %w", err)
	}
	if o.HeaderChecks, err = cmd.Flags().GetStringSlice("suppress-header-checks"); err != nil {
		return o, fmt.Errorf("failed to get suppress-header-checks flag: %w", err)
	}
	return o, nil
}

// failPerPolicy applies the fail policy to the final counts. A violated
// policy surfaces as a silent error so cobra exits non-zero without
// re-printing usage; the counts were already written to the artifacts.
func failPerPolicy(cmd *cobra.Command, res pipelineResult) error {
	if !res.policy.Exceeded(res.summary) {
		return nil
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return fmt.Errorf("") // diagnostics already reported
}
