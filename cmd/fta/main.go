// Package main provides the entry point for the fta CLI.
//
// fta (function type analyzer) scans a TypeScript/TSX source tree and
// classifies every function-like definition as markup-producing or plain,
// then reports aggregate counts.
//
// Usage:
//
//	fta <directory>
//	fta history <directory>
//
// See --help for all available options.
package main

// main is the entry point for fta.
func main() {
	Execute()
}
