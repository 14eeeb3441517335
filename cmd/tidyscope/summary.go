package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tidyscope/internal/reportfmt"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [flags] <log.txt>...",
	Short: "Print the pipeline result to stdout",
	Long:  `Summary runs the same parse/suppress/dedup pipeline as report and prints the result to stdout as machine-readable JSON, a short per-record listing or a colorized listing`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSummary,
}

func init() {
	addPipelineFlags(summaryCmd, "never")
	summaryCmd.Flags().String("format", "json", "output format (json|short|pretty)")
	summaryCmd.Flags().Bool("records", false, "include the full record list in json output")
}

func runSummary(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "json", "short", "pretty":
	default:
		return fmt.Errorf("unknown format %q (expected json|short|pretty)", format)
	}

	res, err := runPipeline(cmd, args)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		includeRecords, err := cmd.Flags().GetBool("records")
		if err != nil {
			return fmt.Errorf("failed to get records flag: %w", err)
		}
		opts := reportfmt.JSONOpts{IncludeRecords: includeRecords, NewCount: -1}
		if err := reportfmt.JSON(os.Stdout, res.records, res.summary, opts); err != nil {
			return err
		}
	case "short":
		if err := reportfmt.Short(os.Stdout, res.records); err != nil {
			return err
		}
	case "pretty":
		colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
		if err != nil {
			return fmt.Errorf("failed to get color flag: %w", err)
		}
		useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
		width := 0
		if isTerminal(os.Stdout) {
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				width = w
			}
		}
		opts := reportfmt.PrettyOpts{Color: useColor, Width: width}
		if err := reportfmt.Pretty(os.Stdout, res.records, res.summary, opts); err != nil {
			return err
		}
	}

	return failPerPolicy(cmd, res)
}
