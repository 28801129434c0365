package scanner

import (
	"fmt"
	"path/filepath"

	"github.com/karrick/godirwalk"
)

// DefaultExtensions lists the file extensions selected for analysis.
var DefaultExtensions = []string{".ts", ".tsx"}

// DefaultExcludes lists directory names that are never descended into.
// These are dependency and build-output trees whose contents are generated
// or third-party code, not part of the corpus under analysis.
var DefaultExcludes = []string{
	"node_modules",
	"dist",
	"build",
	"out",
	"coverage",
	".git",
	".next",
}

// Walker enumerates source files under a target directory.
type Walker struct {
	// extensions is the set of file extensions to select.
	extensions map[string]bool

	// excludes is the set of directory names to skip entirely.
	excludes map[string]bool
}

// WalkerOption configures a Walker.
type WalkerOption func(*Walker)

// WithExtensions replaces the default extension set.
// Extensions must include the leading dot.
func WithExtensions(exts []string) WalkerOption {
	return func(w *Walker) {
		if len(exts) == 0 {
			return
		}
		w.extensions = make(map[string]bool, len(exts))
		for _, ext := range exts {
			w.extensions[ext] = true
		}
	}
}

// WithExcludes replaces the default set of excluded directory names.
func WithExcludes(names []string) WalkerOption {
	return func(w *Walker) {
		if len(names) == 0 {
			return
		}
		w.excludes = make(map[string]bool, len(names))
		for _, name := range names {
			w.excludes[name] = true
		}
	}
}

// New creates a Walker with the given options.
func New(opts ...WalkerOption) *Walker {
	w := &Walker{}

	for _, opt := range opts {
		opt(w)
	}

	if w.extensions == nil {
		WithExtensions(DefaultExtensions)(w)
	}
	if w.excludes == nil {
		WithExcludes(DefaultExcludes)(w)
	}

	return w
}

// Walk returns every matching file under root, in lexical order.
// Excluded directories are pruned during descent rather than filtered
// afterwards, so a large node_modules tree is never even read.
func (w *Walker) Walk(root string) ([]string, error) {
	var files []string

	err := godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				if path != root && w.excludes[de.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if w.extensions[filepath.Ext(de.Name())] {
				files = append(files, path)
			}
			return nil
		},
		// Lexical order keeps discovery deterministic across runs.
		Unsorted: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return files, nil
}
