package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SnowSquire/function-type-analyzer/internal/config"
	"github.com/SnowSquire/function-type-analyzer/internal/database"
)

// NewCompareCmd creates the compare command.
// It diffs the two most recent recorded runs for a target directory.
func NewCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare [directory]",
		Short: "Compare the two most recent analysis runs of a directory",
		Long: `Compare shows how the function counts changed between the two most recent
recorded runs for the given target directory.

The comparison requires at least two recorded runs. Run 'fta <directory>'
to record runs; use 'fta history' to list them.

Examples:
  # Compare the two latest runs for a source tree
  fta compare ./src`,
		Args: cobra.ExactArgs(1),
		RunE: runCompareCmd,
	}
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	target, err := resolveTarget(args[0])
	if err != nil {
		return err
	}

	db, err := database.Open(config.XDGDataDir(), database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	runs, err := db.ListRuns(cmd.Context(), target, 2)
	if err != nil {
		return err
	}
	if len(runs) < 2 {
		return fmt.Errorf("need at least two recorded runs for %s (found %d)", target, len(runs))
	}

	// ListRuns returns newest first.
	current, previous := runs[0], runs[1]

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Comparing runs for %s:\n\n", target)
	fmt.Fprintf(out, "  Previous: #%d at %s\n", previous.ID, previous.Timestamp.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "  Current:  #%d at %s\n\n", current.ID, current.Timestamp.Local().Format("2006-01-02 15:04:05"))

	writeDelta(out, "Files analyzed", previous.FilesAnalyzed, current.FilesAnalyzed)
	writeDelta(out, "Markup-producing functions", previous.MarkupCount, current.MarkupCount)
	writeDelta(out, "Plain functions", previous.PlainCount, current.PlainCount)
	writeDelta(out, "Total functions", previous.TotalFunctions(), current.TotalFunctions())

	return nil
}

// writeDelta prints one counter with its change since the previous run.
func writeDelta(out io.Writer, label string, previous, current int) {
	switch {
	case current > previous:
		fmt.Fprintf(out, "  %-28s %d (+%d)\n", label+":", current, current-previous)
	case current < previous:
		fmt.Fprintf(out, "  %-28s %d (-%d)\n", label+":", current, previous-current)
	default:
		fmt.Fprintf(out, "  %-28s %d (unchanged)\n", label+":", current)
	}
}
