// Package pipeline orchestrates an analysis run as an ordered sequence of
// steps: discover the source files, then analyze them. Steps share a
// single AnalysisReport accumulator; file analysis itself fans out across
// a bounded worker group and merges per-file partial aggregates back into
// the report from one goroutine.
package pipeline
