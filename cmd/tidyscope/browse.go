package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tidyscope/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [flags] <log.txt>...",
	Short: "Browse the kept records interactively in the terminal",
	Long:  `Browse runs the pipeline and opens an interactive terminal view over the kept records with severity, check and substring filters`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBrowse,
}

func init() {
	addPipelineFlags(browseCmd, "never")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	res, err := runPipeline(cmd, args)
	if err != nil {
		return err
	}

	program := tea.NewProgram(ui.NewBrowser(res.records), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}

	return failPerPolicy(cmd, res)
}
