package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/SnowSquire/function-type-analyzer/internal/analyzer"
	"github.com/SnowSquire/function-type-analyzer/internal/config"
	"github.com/SnowSquire/function-type-analyzer/internal/database"
	"github.com/SnowSquire/function-type-analyzer/internal/log"
	"github.com/SnowSquire/function-type-analyzer/internal/model"
	"github.com/SnowSquire/function-type-analyzer/internal/pipeline"
	"github.com/SnowSquire/function-type-analyzer/internal/report"
	"github.com/SnowSquire/function-type-analyzer/internal/scanner"
	"github.com/SnowSquire/function-type-analyzer/internal/syntax"
)

// runAnalyzeCmd executes the analysis from the root command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Resolve and validate the target before any work happens.
	target, err := resolveTarget(cfg.Target)
	if err != nil {
		return err
	}
	cfg.Target = target

	cfg.Verbose = getVerboseFlag(cmd)
	logger := setupLogger(cfg.Verbose, cfg.Target)
	slog.SetDefault(logger)

	// Handle interrupt signals for graceful shutdown.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runAnalysis(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	if len(args) == 0 {
		return nil, config.ErrNoTarget
	}
	cfg.Target = args[0]

	var err error

	cfg.Jobs, err = cmd.Flags().GetInt("jobs")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load the config file. If the user explicitly specified a path,
	// a missing file is an error; otherwise silence is fine.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.ScanConfig, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.ScanConfig = &config.File{}
	}

	// Flag > config file > default for the concurrency setting.
	if cfg.Jobs <= 0 {
		cfg.Jobs = cfg.ScanConfig.Jobs
	}
	if cfg.Jobs <= 0 {
		cfg.Jobs = config.DefaultJobs
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	// Always record runs in the history database under the XDG data dir.
	cfg.SaveToDB = true
	cfg.DBDir = config.XDGDataDir()

	return cfg, nil
}

// resolveTarget converts the target to an absolute path and verifies that
// it is an existing directory.
func resolveTarget(target string) (string, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("failed to resolve target path %q: %w", target, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("target directory does not exist: %s", abs)
		}
		return "", fmt.Errorf("failed to stat target %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", config.ErrTargetNotDirectory, abs)
	}

	return abs, nil
}

// setupLogger creates a structured logger based on verbosity setting.
// File paths in log attributes are rewritten relative to the scan root.
func setupLogger(verbose bool, root string) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(log.NewPathHandler(handler, root))
}

// runAnalysis executes the full analysis run: discover, analyze, report,
// persist.
func runAnalysis(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting analysis",
		"target", cfg.Target,
		"jobs", cfg.Jobs,
	)

	// Open the history database; failure to persist history should not
	// block analysis, so this is best-effort.
	var db *database.HistoryDB
	if cfg.SaveToDB {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			logger.Warn("history database unavailable, run will not be recorded", "error", err)
		} else {
			defer db.Close()
		}
	}

	p := newAnalysisPipeline(cfg, logger)
	analysisReport := model.NewAnalysisReport(cfg.Target)

	fmt.Printf("Analyzing %s...\n", cfg.Target)
	startTime := time.Now()

	if err := p.Execute(ctx, analysisReport); err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	analysisReport.Elapsed = time.Since(startTime)
	fmt.Printf("Analysis completed in %s\n", analysisReport.Elapsed.Round(time.Millisecond))

	if err := outputReport(cfg, analysisReport); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	saveRun(ctx, db, analysisReport, logger)
	return nil
}

// newAnalysisPipeline assembles the discover and analyze steps from the
// configuration.
func newAnalysisPipeline(cfg *config.Config, logger *slog.Logger) *pipeline.Pipeline {
	walkerOpts := []scanner.WalkerOption{}
	if len(cfg.ScanConfig.Exclude) > 0 {
		walkerOpts = append(walkerOpts, scanner.WithExcludes(cfg.ScanConfig.Exclude))
	}
	if len(cfg.ScanConfig.Extensions) > 0 {
		walkerOpts = append(walkerOpts, scanner.WithExtensions(cfg.ScanConfig.Extensions))
	}

	fileAnalyzer := analyzer.NewFileAnalyzer(
		analyzer.WithParser(syntax.NewParser(syntax.WithMaxFileSize(cfg.MaxFileSize))),
		analyzer.WithLogger(logger),
	)

	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(
		pipeline.NewDiscoverStep(
			pipeline.WithDiscoverWalker(scanner.New(walkerOpts...)),
			pipeline.WithDiscoverLogger(logger),
		),
		pipeline.NewAnalyzeStep(
			pipeline.WithAnalyzeBatcher(pipeline.NewBatcher(
				fileAnalyzer,
				pipeline.WithConcurrency(cfg.Jobs),
				pipeline.WithBatchLogger(logger),
			)),
			pipeline.WithAnalyzeLogger(logger),
		),
	)
	return p
}

// outputReport writes the analysis report in the requested format.
func outputReport(cfg *config.Config, analysisReport *model.AnalysisReport) error {
	var output *os.File
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(output)
	default:
		w = report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}

	_, err := w.Write(analysisReport)
	return err
}

// saveRun records the completed run in the history database.
// Persistence failures are logged, not fatal: the report was already
// delivered.
func saveRun(ctx context.Context, db *database.HistoryDB, analysisReport *model.AnalysisReport, logger *slog.Logger) {
	if db == nil {
		return
	}

	if _, err := db.SaveRun(ctx, analysisReport); err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Error("failed to save run to history", "error", err)
		}
		return
	}

	logger.Info("run saved to history", "target", analysisReport.Root)
}
