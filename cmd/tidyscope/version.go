package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tidyscope/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tidyscope version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tidyscope %s", version.Version)
		if version.GitCommit != "" {
			fmt.Printf(" (%s)", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Printf(" built %s", version.BuildDate)
		}
		fmt.Println()
	},
}
