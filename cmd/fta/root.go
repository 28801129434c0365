// Package main provides the entry point for the fta CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for fta.
// The root command itself performs the analysis: `fta <directory>`.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fta [directory]",
		Short: "Classify TypeScript/TSX functions as markup-producing or plain",
		Long: `fta scans a TypeScript/TSX source tree and classifies every function-like
definition (declarations, function expressions, arrow functions) as either
markup-producing or plain, then reports aggregate counts.

The classifier is a structural heuristic: a function counts as
markup-producing if JSX markup appears anywhere in its body, or if it
directly returns a markup node. It favors recall over precision; markup
that is constructed but never returned still flags the function.

Examples:
  # Analyze a source tree
  fta ./src

  # Output a JSON report
  fta --json ./src

  # Write a Markdown report to a file
  fta --markdown -o report.md ./src

  # Analyze with 4 concurrent workers
  fta --jobs 4 ./src`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runAnalyzeCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Analysis flags
	cmd.Flags().IntP("jobs", "b", 0,
		"Number of files analyzed concurrently (default 8)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .fta in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// Add subcommands
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
