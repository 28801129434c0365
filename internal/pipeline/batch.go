package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SnowSquire/function-type-analyzer/internal/analyzer"
	"github.com/SnowSquire/function-type-analyzer/internal/model"
)

// DefaultConcurrency is the number of files analyzed in parallel when no
// explicit limit is configured. Parsing is CPU-bound, so a small fixed
// default behaves well without tuning.
const DefaultConcurrency = 8

// Batcher runs per-file analyses concurrently while keeping results in
// discovery order.
//
// Design decision: We use errgroup.SetLimit rather than a hand-rolled
// worker pool because errgroup already handles bounded concurrency and
// first-error cancellation, which matches the tool's abort-on-failure
// contract. Each worker writes only its own slot of the results slice, so
// no additional locking is needed; the merge into the shared report
// happens later on a single goroutine.
type Batcher struct {
	// analyzer classifies individual files. It is safe for concurrent use.
	analyzer *analyzer.FileAnalyzer

	// concurrency is the maximum number of files analyzed in parallel.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a Batcher.
type BatchOption func(*Batcher)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *Batcher) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent file analyses.
// Non-positive values are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *Batcher) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatcher creates a Batcher around the given file analyzer.
func NewBatcher(a *analyzer.FileAnalyzer, opts ...BatchOption) *Batcher {
	b := &Batcher{
		analyzer:    a,
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.Default()
	}

	return b
}

// Process analyzes all files and returns their results in input order.
// The first failure cancels the remaining work and is returned; the
// classification totals are order-independent either way.
func (b *Batcher) Process(ctx context.Context, files []string) ([]*model.FileResult, error) {
	b.logger.Debug("starting batch analysis",
		"totalFiles", len(files),
		"concurrency", b.concurrency,
	)

	startTime := time.Now()
	results := make([]*model.FileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, file := range files {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			fr, err := b.analyzer.AnalyzeFile(ctx, file)
			if err != nil {
				return err
			}

			results[i] = fr
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	b.logger.Debug("batch analysis complete",
		"totalFiles", len(files),
		"elapsed", time.Since(startTime),
	)

	return results, nil
}
