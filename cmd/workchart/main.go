// Package main provides the entry point for the workchart CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/workchart/cmd/workchart/commands"
	"github.com/Sumatoshi-tech/workchart/pkg/version"
)

func main() {
	rootCmd := commands.NewChartCommand()
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "workchart %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
