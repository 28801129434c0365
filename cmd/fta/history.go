package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SnowSquire/function-type-analyzer/internal/config"
	"github.com/SnowSquire/function-type-analyzer/internal/database"
)

// NewHistoryCmd creates the history command.
// It lists the analysis runs recorded for a target directory.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [directory]",
		Short: "List recorded analysis runs for a directory",
		Long: `History lists the analysis runs recorded in the local database for the
given target directory, newest first.

Every successful run of 'fta <directory>' is recorded automatically.

Examples:
  # List all recorded runs for a source tree
  fta history ./src

  # List only the five most recent runs
  fta history --limit 5 ./src`,
		Args: cobra.ExactArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", 0,
		"Maximum number of runs to list (0 = all)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	target, err := resolveTarget(args[0])
	if err != nil {
		return err
	}

	db, err := database.Open(config.XDGDataDir(), database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	runs, err := db.ListRuns(cmd.Context(), target, limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Recorded runs for %s:\n\n", target)
	fmt.Fprintf(out, "%-6s %-25s %8s %8s %8s %8s\n",
		"ID", "DATE", "FILES", "MARKUP", "PLAIN", "TOTAL")
	for _, r := range runs {
		fmt.Fprintf(out, "%-6d %-25s %8d %8d %8d %8d\n",
			r.ID,
			r.Timestamp.Local().Format("2006-01-02 15:04:05"),
			r.FilesAnalyzed,
			r.MarkupCount,
			r.PlainCount,
			r.TotalFunctions(),
		)
	}

	return nil
}
