package config

// File represents the structure of the .fta configuration file.
// All fields are optional; zero values fall back to built-in defaults.
type File struct {
	// Exclude lists directory names never descended into during file
	// discovery, replacing the built-in exclude list when non-empty.
	Exclude []string `yaml:"exclude,omitempty"`

	// Extensions lists the file extensions to analyze (with leading dot),
	// replacing the built-in list when non-empty.
	Extensions []string `yaml:"extensions,omitempty"`

	// Jobs overrides the default analysis concurrency.
	// The --jobs flag takes precedence over this value.
	Jobs int `yaml:"jobs,omitempty"`
}
