package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/SnowSquire/function-type-analyzer/internal/model"
)

// SimpleWriter outputs human-readable text reports for terminal display.
// Plain ASCII formatting keeps the output pipeable and diff-friendly.
type SimpleWriter struct {
	baseWriter

	// verbose enables the per-function listing below the totals.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables the per-function listing in the output.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.AnalysisReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeTotals(&sb, report)
	if w.verbose {
		w.writeFunctions(&sb, report)
	}

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with run information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.AnalysisReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n")
	sb.WriteString("               FUNCTION TYPE ANALYSIS REPORT\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "Target:    %s\n", report.Root)
	fmt.Fprintf(sb, "Analyzed:  %s\n", report.DateAnalyzed.Format("2006-01-02 15:04:05 MST"))

	if report.ErrorMessage != "" {
		fmt.Fprintf(sb, "Status:    ERROR - %s\n", report.ErrorMessage)
	} else {
		sb.WriteString("Status:    Complete\n")
	}

	sb.WriteString("\n")
}

// writeTotals writes the aggregate counters.
func (w *SimpleWriter) writeTotals(sb *strings.Builder, report *model.AnalysisReport) {
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "Files analyzed:             %d\n", report.FilesAnalyzed)
	fmt.Fprintf(sb, "Markup-producing functions: %d\n", report.MarkupProducingCount)
	fmt.Fprintf(sb, "Plain functions:            %d\n", report.PlainCount)
	fmt.Fprintf(sb, "Total functions found:      %d\n", report.TotalFunctions())
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
}

// writeFunctions writes the per-function listing, grouped by file in
// discovery order.
func (w *SimpleWriter) writeFunctions(sb *strings.Builder, report *model.AnalysisReport) {
	if len(report.Functions) == 0 {
		return
	}

	sb.WriteString("\nFunctions:\n")
	lastFile := ""
	for _, fn := range report.Functions {
		if fn.File != lastFile {
			fmt.Fprintf(sb, "\n  %s\n", fn.File)
			lastFile = fn.File
		}
		marker := " "
		if fn.Classification == model.MarkupProducing {
			marker = "*"
		}
		fmt.Fprintf(sb, "    %s L%-5d %-16s %s\n", marker, fn.Line, fn.Kind, fn.Name)
	}
	sb.WriteString("\n  (* = markup-producing)\n")
}
