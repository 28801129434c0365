// Package scanner discovers the source files to analyze: it walks a target
// directory recursively, selects files by extension, and never descends
// into dependency or build-output directories.
package scanner
