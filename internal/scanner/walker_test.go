package scanner

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// writeFiles creates the given relative paths under dir, with parent
// directories as needed.
func writeFiles(t *testing.T, dir string, paths ...string) {
	t.Helper()

	for _, p := range paths {
		full := filepath.Join(dir, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("export {};\n"), 0600); err != nil {
			t.Fatal(err)
		}
	}
}

// TestWalkSelectsByExtension tests that only .ts and .tsx files are
// returned by default.
func TestWalkSelectsByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir,
		"app.ts",
		"page.tsx",
		"readme.md",
		"styles.css",
		"data.json",
	)

	files, err := New().Walk(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		filepath.Join(dir, "app.ts"),
		filepath.Join(dir, "page.tsx"),
	}
	if !slices.Equal(files, want) {
		t.Errorf("expected %v, got %v", want, files)
	}
}

// TestWalkPrunesExcludedDirectories tests that default exclusions like
// node_modules are never descended into, at any depth.
func TestWalkPrunesExcludedDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir,
		"src/index.ts",
		"node_modules/pkg/index.ts",
		"src/node_modules/other/mod.ts",
		"dist/bundle.ts",
	)

	files, err := New().Walk(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{filepath.Join(dir, "src", "index.ts")}
	if !slices.Equal(files, want) {
		t.Errorf("expected %v, got %v", want, files)
	}
}

// TestWalkLexicalOrder tests that discovery order is deterministic and
// lexical.
func TestWalkLexicalOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir,
		"zeta.ts",
		"alpha.ts",
		"mid/beta.tsx",
	)

	files, err := New().Walk(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		filepath.Join(dir, "alpha.ts"),
		filepath.Join(dir, "mid", "beta.tsx"),
		filepath.Join(dir, "zeta.ts"),
	}
	if !slices.Equal(files, want) {
		t.Errorf("expected %v, got %v", want, files)
	}
}

// TestWalkCustomOptions tests extension and exclusion overrides.
func TestWalkCustomOptions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir,
		"keep.mts",
		"skip.ts",
		"vendor/dep.mts",
	)

	w := New(
		WithExtensions([]string{".mts"}),
		WithExcludes([]string{"vendor"}),
	)
	files, err := w.Walk(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{filepath.Join(dir, "keep.mts")}
	if !slices.Equal(files, want) {
		t.Errorf("expected %v, got %v", want, files)
	}
}

// TestWalkEmptyDirectory tests that an empty target yields no files and
// no error.
func TestWalkEmptyDirectory(t *testing.T) {
	t.Parallel()

	files, err := New().Walk(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", files)
	}
}

// TestWalkMissingRoot tests that a nonexistent target is an error.
func TestWalkMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := New().Walk(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("expected error for missing root")
	}
}

// TestWalkRootNamedLikeExclusion tests that the target itself is walked
// even if its own name matches an excluded directory name.
func TestWalkRootNamedLikeExclusion(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "build")
	writeFiles(t, dir, "tool.ts")

	files, err := New().Walk(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{filepath.Join(dir, "tool.ts")}
	if !slices.Equal(files, want) {
		t.Errorf("expected %v, got %v", want, files)
	}
}
