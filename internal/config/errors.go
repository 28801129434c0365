package config

import "errors"

// Configuration and argument validation errors.
// Package-level sentinels so callers can match them with errors.Is.
var (
	// ErrNoTarget is returned when no target directory is supplied on the
	// command line.
	ErrNoTarget = errors.New("no target specified: provide a directory to analyze")

	// ErrTargetNotDirectory is returned when the target path exists but
	// is not a directory.
	ErrTargetNotDirectory = errors.New("target is not a directory")

	// ErrInvalidJobs is returned when the concurrency setting is not
	// positive.
	ErrInvalidJobs = errors.New("invalid jobs: must be positive")

	// ErrInvalidMaxFileSize is returned when the maximum file size is not
	// positive.
	ErrInvalidMaxFileSize = errors.New("invalid max file size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a
	// time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
