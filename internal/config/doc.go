// Package config provides configuration structures and utilities for the
// analyzer: CLI-derived settings, validation, and the optional .fta
// configuration file.
package config
