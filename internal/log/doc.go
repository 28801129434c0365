// Package log provides slog handler wrappers used by the CLI.
package log
