package pipeline

import (
	"context"
	"log/slog"

	"github.com/SnowSquire/function-type-analyzer/internal/analyzer"
	"github.com/SnowSquire/function-type-analyzer/internal/model"
	"github.com/SnowSquire/function-type-analyzer/internal/scanner"
)

// DiscoverStep walks the target directory and records the ordered set of
// source files to analyze. It runs first; the analysis step consumes its
// output from the report.
type DiscoverStep struct {
	// walker selects the files.
	walker *scanner.Walker

	// logger for structured logging.
	logger *slog.Logger
}

// DiscoverStepOption configures a DiscoverStep.
type DiscoverStepOption func(*DiscoverStep)

// WithDiscoverWalker sets a custom file walker.
func WithDiscoverWalker(w *scanner.Walker) DiscoverStepOption {
	return func(s *DiscoverStep) {
		s.walker = w
	}
}

// WithDiscoverLogger sets a custom logger for the discover step.
func WithDiscoverLogger(logger *slog.Logger) DiscoverStepOption {
	return func(s *DiscoverStep) {
		s.logger = logger
	}
}

// NewDiscoverStep creates a new file discovery step.
func NewDiscoverStep(opts ...DiscoverStepOption) *DiscoverStep {
	s := &DiscoverStep{}

	for _, opt := range opts {
		opt(s)
	}

	if s.walker == nil {
		s.walker = scanner.New()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// Name returns the step name.
func (s *DiscoverStep) Name() string {
	return "discover"
}

// Do executes the discovery step.
// An empty directory is not an error: the report simply stays at zero.
func (s *DiscoverStep) Do(_ context.Context, report *model.AnalysisReport) error {
	files, err := s.walker.Walk(report.Root)
	if err != nil {
		return err
	}

	report.Files = files

	s.logger.Info("source files discovered",
		"root", report.Root,
		"count", len(files),
	)

	return nil
}

// AnalyzeStep classifies every function in the discovered files and folds
// the per-file results into the report. Files are processed by a bounded
// worker group; results are merged afterwards in discovery order, so the
// report's function list is deterministic even though counts alone would
// not require it (the fold is commutative).
type AnalyzeStep struct {
	// batcher runs the per-file analyses.
	batcher *Batcher

	// logger for structured logging.
	logger *slog.Logger
}

// AnalyzeStepOption configures an AnalyzeStep.
type AnalyzeStepOption func(*AnalyzeStep)

// WithAnalyzeBatcher sets a custom batcher.
func WithAnalyzeBatcher(b *Batcher) AnalyzeStepOption {
	return func(s *AnalyzeStep) {
		s.batcher = b
	}
}

// WithAnalyzeLogger sets a custom logger for the analyze step.
func WithAnalyzeLogger(logger *slog.Logger) AnalyzeStepOption {
	return func(s *AnalyzeStep) {
		s.logger = logger
	}
}

// NewAnalyzeStep creates a new analysis step.
func NewAnalyzeStep(opts ...AnalyzeStepOption) *AnalyzeStep {
	s := &AnalyzeStep{}

	for _, opt := range opts {
		opt(s)
	}

	if s.batcher == nil {
		s.batcher = NewBatcher(analyzer.NewFileAnalyzer())
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// Name returns the step name.
func (s *AnalyzeStep) Name() string {
	return "analyze"
}

// Do executes the analysis step.
// The first file failure aborts the whole run; no partial report survives.
func (s *AnalyzeStep) Do(ctx context.Context, report *model.AnalysisReport) error {
	results, err := s.batcher.Process(ctx, report.Files)
	if err != nil {
		return err
	}

	for _, fr := range results {
		report.Merge(fr)
	}

	s.logger.Info("analysis complete",
		"root", report.Root,
		"files", report.FilesAnalyzed,
		"markupProducing", report.MarkupProducingCount,
		"plain", report.PlainCount,
	)

	return nil
}
