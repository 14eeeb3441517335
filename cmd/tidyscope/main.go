package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tidyscope/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tidyscope",
	Short: "Clang-tidy log analyzer and report generator",
	Long:  `Tidyscope parses clang-tidy logs into a filterable HTML report and a machine-readable summary for CI`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show pipeline timing information")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
