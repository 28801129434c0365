package report

import (
	"io"

	"github.com/SnowSquire/function-type-analyzer/internal/model"
)

// Writer defines the interface for report output.
// Implementations render an analysis report in a particular format to a
// destination chosen at construction time (stdout, a file, a buffer).
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.AnalysisReport) (int, error)
}

// MultiWriter writes the same report through several Writers, e.g. to the
// terminal and a file at once.
//
// Design decision: We implement this as a separate type rather than using
// io.MultiWriter because our Writer interface takes reports, not raw
// bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers.
// Returns the total bytes written; stops on the first error.
func (m *MultiWriter) Write(report *model.AnalysisReport) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides the shared output destination for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
