package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultJobs is the number of files analyzed concurrently.
	// Parsing is CPU-bound; a fixed small default behaves well without
	// tuning and can be overridden with --jobs.
	DefaultJobs = 8

	// DefaultMaxFileSize limits how large a single source file may be.
	// 5MB covers any hand-written source while rejecting generated
	// bundles that slipped past the exclude list.
	DefaultMaxFileSize = 5 * 1024 * 1024

	// AppName is the application name used for XDG directory paths.
	AppName = "fta"
)

// Config holds all configuration options for an analysis run.
// It is populated from CLI flags and the optional config file, then passed
// through the application by dependency injection; there is no ambient
// mutable state.
type Config struct {
	// Target is the directory to analyze.
	Target string

	// Jobs is the number of files analyzed concurrently.
	Jobs int

	// MaxFileSize is the largest source file accepted, in bytes.
	MaxFileSize int64

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .fta in the current directory and
	// then in the user's home directory.
	ConfigFilePath string

	// ScanConfig holds settings loaded from the config file.
	ScanConfig *File

	// JSONReport enables JSON report output instead of the human-readable
	// format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string

	// SaveToDB controls whether the run is recorded in the history
	// database.
	SaveToDB bool

	// DBDir is the directory holding the history database.
	DBDir string
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Jobs:        DefaultJobs,
		MaxFileSize: DefaultMaxFileSize,
		ScanConfig:  &File{},
	}
}

// Validate checks the configuration for invalid combinations.
// Returns a sentinel error from errors.go on failure.
func (c *Config) Validate() error {
	if c.Jobs <= 0 {
		return ErrInvalidJobs
	}
	if c.MaxFileSize <= 0 {
		return ErrInvalidMaxFileSize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}

// XDGDataDir returns the XDG data directory for the application.
// The history database lives here.
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}
