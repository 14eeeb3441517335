package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tidyscope/internal/baseline"
	"tidyscope/internal/diag"
	"tidyscope/internal/report"
	"tidyscope/internal/reportfmt"
)

var reportCmd = &cobra.Command{
	Use:   "report [flags] <log.txt>...",
	Short: "Generate the HTML report and JSON summary from clang-tidy logs",
	Long:  `Report parses one or more clang-tidy stdout logs, applies the suppression policy, deduplicates the findings and writes a self-contained interactive HTML report plus an optional machine-readable JSON summary`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runReport,
}

func init() {
	addPipelineFlags(reportCmd, "errors")
	reportCmd.Flags().String("out", "tidy-report.html", "output HTML path")
	reportCmd.Flags().String("json", "", "also write a JSON summary to this path")
	reportCmd.Flags().String("title", "", "report title")
	reportCmd.Flags().Int("max-examples", 3, "example rows per check in the By Check table")
	reportCmd.Flags().String("baseline", "", "baseline file for marking new findings")
	reportCmd.Flags().Bool("update-baseline", false, "rewrite the baseline file after the run (requires --baseline)")
}

func runReport(cmd *cobra.Command, args []string) error {
	res, err := runPipeline(cmd, args)
	if err != nil {
		return err
	}

	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}
	jsonPath, err := cmd.Flags().GetString("json")
	if err != nil {
		return fmt.Errorf("failed to get json flag: %w", err)
	}
	title, err := cmd.Flags().GetString("title")
	if err != nil {
		return fmt.Errorf("failed to get title flag: %w", err)
	}
	if !cmd.Flags().Changed("title") && res.cfg.Report.Title != "" {
		title = res.cfg.Report.Title
	}
	maxExamples, err := cmd.Flags().GetInt("max-examples")
	if err != nil {
		return fmt.Errorf("failed to get max-examples flag: %w", err)
	}
	if !cmd.Flags().Changed("max-examples") && res.cfg.Report.MaxExamples > 0 {
		maxExamples = res.cfg.Report.MaxExamples
	}
	baselinePath, err := cmd.Flags().GetString("baseline")
	if err != nil {
		return fmt.Errorf("failed to get baseline flag: %w", err)
	}
	updateBaseline, err := cmd.Flags().GetBool("update-baseline")
	if err != nil {
		return fmt.Errorf("failed to get update-baseline flag: %w", err)
	}
	if updateBaseline && baselinePath == "" {
		return fmt.Errorf("--update-baseline requires --baseline")
	}

	var newKeys map[diag.Key]struct{}
	newCount := -1
	if baselinePath != "" {
		base, err := baseline.Load(baselinePath)
		if err != nil {
			return err
		}
		newKeys = base.NewKeys(res.records)
		newCount = len(newKeys)
	}

	htmlOpts := reportfmt.HTMLOpts{Title: title, MaxExamples: maxExamples, NewKeys: newKeys}
	if err := report.WriteFile(outPath, func(w io.Writer) error {
		return reportfmt.HTML(w, res.records, res.summary, res.groups, htmlOpts)
	}); err != nil {
		return err
	}

	if jsonPath != "" {
		jsonOpts := reportfmt.JSONOpts{NewCount: newCount}
		if err := report.WriteFile(jsonPath, func(w io.Writer) error {
			return reportfmt.JSON(w, res.records, res.summary, jsonOpts)
		}); err != nil {
			return err
		}
	}

	if updateBaseline {
		if err := baseline.Save(baselinePath, res.records); err != nil {
			return err
		}
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if !quiet {
		fmt.Fprintf(os.Stdout, "wrote %s: %d records (%d errors, %d warnings) across %d files\n",
			outPath, res.summary.Total, res.summary.Errors, res.summary.Warnings, res.summary.Files)
	}

	return failPerPolicy(cmd, res)
}
