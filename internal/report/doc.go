// Package report renders analysis results in human-readable, JSON, and
// Markdown formats behind a common Writer interface.
package report
