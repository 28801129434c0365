package config

import (
	"errors"
	"testing"
)

// TestNewConfigDefaults tests the built-in defaults.
func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	c := NewConfig()
	if c.Jobs != DefaultJobs {
		t.Errorf("expected jobs %d, got %d", DefaultJobs, c.Jobs)
	}
	if c.MaxFileSize != DefaultMaxFileSize {
		t.Errorf("expected max file size %d, got %d", DefaultMaxFileSize, c.MaxFileSize)
	}
	if c.ScanConfig == nil {
		t.Error("expected a non-nil scan config")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

// TestValidate tests each validation sentinel.
func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{
			name:   "zero jobs",
			modify: func(c *Config) { c.Jobs = 0 },
			want:   ErrInvalidJobs,
		},
		{
			name:   "negative jobs",
			modify: func(c *Config) { c.Jobs = -1 },
			want:   ErrInvalidJobs,
		},
		{
			name:   "zero max file size",
			modify: func(c *Config) { c.MaxFileSize = 0 },
			want:   ErrInvalidMaxFileSize,
		},
		{
			name:   "conflicting report formats",
			modify: func(c *Config) { c.JSONReport = true; c.MarkdownReport = true },
			want:   ErrConflictingReportFormats,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewConfig()
			tt.modify(c)
			if err := c.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

// TestValidateSingleFormat tests that one report format at a time is
// allowed.
func TestValidateSingleFormat(t *testing.T) {
	t.Parallel()

	c := NewConfig()
	c.JSONReport = true
	if err := c.Validate(); err != nil {
		t.Errorf("expected JSON-only to validate, got %v", err)
	}

	c = NewConfig()
	c.MarkdownReport = true
	if err := c.Validate(); err != nil {
		t.Errorf("expected Markdown-only to validate, got %v", err)
	}
}

// TestXDGDataDir tests that the data directory ends with the app name.
func TestXDGDataDir(t *testing.T) {
	t.Parallel()

	dir := XDGDataDir()
	if dir == "" {
		t.Fatal("expected a non-empty data directory")
	}
	if got := dir[len(dir)-len(AppName):]; got != AppName {
		t.Errorf("expected directory to end with %q, got %q", AppName, dir)
	}
}
