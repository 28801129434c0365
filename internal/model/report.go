package model

import "time"

// FileResult is the partial aggregate produced by analyzing one source file.
// File analysis may run concurrently; each worker fills its own FileResult
// and the results are merged into the AnalysisReport afterwards, so no two
// goroutines ever touch the same counter.
type FileResult struct {
	// Path is the analyzed source file.
	Path string `json:"path"`

	// MarkupProducingCount is the number of markup-producing functions
	// found in this file.
	MarkupProducingCount int `json:"markup_producing_count"`

	// PlainCount is the number of plain functions found in this file.
	PlainCount int `json:"plain_count"`

	// Functions lists every classified function in source order.
	Functions []FunctionRecord `json:"functions,omitempty"`
}

// Add records one classification result, incrementing exactly one counter.
func (f *FileResult) Add(rec FunctionRecord) {
	switch rec.Classification {
	case MarkupProducing:
		f.MarkupProducingCount++
	case Plain:
		f.PlainCount++
	}
	f.Functions = append(f.Functions, rec)
}

// AnalysisReport is the aggregate result of one analysis run.
// It is owned by the top-level driver: written by the pipeline, read by the
// report writers, and discarded when the run ends. Counts are a commutative
// fold over per-file results, so the merge order never affects the totals.
type AnalysisReport struct {
	// Root is the target directory that was analyzed.
	Root string `json:"root"`

	// DateAnalyzed is the timestamp when the analysis was performed.
	DateAnalyzed time.Time `json:"date_analyzed"`

	// FilesAnalyzed is the number of source files analyzed.
	FilesAnalyzed int `json:"files_analyzed"`

	// MarkupProducingCount is the number of functions classified as
	// markup-producing across all files.
	MarkupProducingCount int `json:"markup_producing_count"`

	// PlainCount is the number of functions classified as plain across
	// all files.
	PlainCount int `json:"plain_count"`

	// Functions lists every classified function across all files.
	Functions []FunctionRecord `json:"functions,omitempty"`

	// Files is the ordered set of source files selected for analysis.
	// Filled by the discovery step and consumed by the analysis step;
	// not part of the serialized report.
	Files []string `json:"-"`

	// PerformedSteps records which pipeline steps ran, in order.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// Error holds the failure that aborted the run, if any.
	Error error `json:"-"`

	// ErrorMessage is the serializable form of Error.
	ErrorMessage string `json:"error,omitempty"`

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration `json:"elapsed_ns"`
}

// NewAnalysisReport creates an empty report for the given target directory.
func NewAnalysisReport(root string) *AnalysisReport {
	return &AnalysisReport{
		Root:         root,
		DateAnalyzed: time.Now(),
	}
}

// Merge folds one file's partial aggregate into the report.
// Callers must serialize access; the pipeline merges results from a single
// goroutine after the concurrent analysis completes.
func (r *AnalysisReport) Merge(fr *FileResult) {
	r.FilesAnalyzed++
	r.MarkupProducingCount += fr.MarkupProducingCount
	r.PlainCount += fr.PlainCount
	r.Functions = append(r.Functions, fr.Functions...)
}

// TotalFunctions returns the total number of function-like nodes found.
// It always equals MarkupProducingCount + PlainCount.
func (r *AnalysisReport) TotalFunctions() int {
	return r.MarkupProducingCount + r.PlainCount
}
