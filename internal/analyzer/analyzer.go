package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SnowSquire/function-type-analyzer/internal/model"
	"github.com/SnowSquire/function-type-analyzer/internal/syntax"
)

// FileAnalyzer parses one source file and classifies every function-like
// node in it. It is safe for concurrent use: the underlying parser creates
// a fresh tree-sitter instance per Parse call, and AnalyzeFile shares no
// mutable state between calls.
type FileAnalyzer struct {
	// parser provides syntax trees for source files.
	parser *syntax.Parser

	// logger for structured logging.
	logger *slog.Logger
}

// FileAnalyzerOption configures a FileAnalyzer.
type FileAnalyzerOption func(*FileAnalyzer)

// WithParser sets a custom parser, e.g. one with a different file size
// limit.
func WithParser(p *syntax.Parser) FileAnalyzerOption {
	return func(a *FileAnalyzer) {
		a.parser = p
	}
}

// WithLogger sets a custom logger for the analyzer.
func WithLogger(logger *slog.Logger) FileAnalyzerOption {
	return func(a *FileAnalyzer) {
		a.logger = logger
	}
}

// NewFileAnalyzer creates a FileAnalyzer with the given options.
func NewFileAnalyzer(opts ...FileAnalyzerOption) *FileAnalyzer {
	a := &FileAnalyzer{}

	for _, opt := range opts {
		opt(a)
	}

	if a.parser == nil {
		a.parser = syntax.NewParser()
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}

	return a
}

// AnalyzeFile reads, parses, and classifies one source file.
// Any read or parse failure is returned to the caller and aborts the run;
// there is no skip-and-continue mode.
func (a *FileAnalyzer) AnalyzeFile(ctx context.Context, path string) (*model.FileResult, error) {
	src, err := os.ReadFile(path) //nolint:gosec // Paths come from the directory walk the user requested
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return a.AnalyzeSource(ctx, path, src)
}

// AnalyzeSource parses and classifies source that is already in memory.
func (a *FileAnalyzer) AnalyzeSource(ctx context.Context, path string, src []byte) (*model.FileResult, error) {
	tree, err := a.parser.Parse(ctx, path, src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	if tree.HasSyntaxError() {
		// tree-sitter recovers from malformed input; the partial tree is
		// still traversable, so warn instead of aborting.
		a.logger.Warn("source contains syntax errors", "file", path)
	}

	result := &model.FileResult{Path: path}
	for fn := range Functions(tree) {
		result.Add(model.FunctionRecord{
			Name:           fn.Name,
			Kind:           fn.Kind,
			File:           path,
			Line:           int(fn.Node.StartPoint().Row) + 1,
			Classification: Classify(fn),
		})
	}

	a.logger.Debug("file analyzed",
		"file", path,
		"markupProducing", result.MarkupProducingCount,
		"plain", result.PlainCount,
	)

	return result, nil
}
