package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/SnowSquire/function-type-analyzer/internal/analyzer"
)

// writeSource writes src to a new file under dir and returns its path.
func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(src), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestBatcherProcess tests concurrent analysis with results kept in
// input order.
func TestBatcherProcess(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := []string{
		writeSource(t, dir, "a.tsx", "function A(){ return <div/>; }\n"),
		writeSource(t, dir, "b.ts", "function b(){ return 1; }\n"),
		writeSource(t, dir, "c.tsx", "const C = () => <span/>;\nconst d = () => 2;\n"),
	}

	b := NewBatcher(analyzer.NewFileAnalyzer(), WithConcurrency(2))
	results, err := b.Process(context.Background(), files)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != len(files) {
		t.Fatalf("expected %d results, got %d", len(files), len(results))
	}
	for i, fr := range results {
		if fr.Path != files[i] {
			t.Errorf("result %d: expected path %s, got %s", i, files[i], fr.Path)
		}
	}

	if results[0].MarkupProducingCount != 1 || results[0].PlainCount != 0 {
		t.Errorf("a.tsx: unexpected counts %+v", results[0])
	}
	if results[1].MarkupProducingCount != 0 || results[1].PlainCount != 1 {
		t.Errorf("b.ts: unexpected counts %+v", results[1])
	}
	if results[2].MarkupProducingCount != 1 || results[2].PlainCount != 1 {
		t.Errorf("c.tsx: unexpected counts %+v", results[2])
	}
}

// TestBatcherProcessEmpty tests that no files means no results and no
// error.
func TestBatcherProcessEmpty(t *testing.T) {
	t.Parallel()

	b := NewBatcher(analyzer.NewFileAnalyzer())
	results, err := b.Process(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

// TestBatcherProcessFileError tests that an unreadable file aborts the
// whole batch.
func TestBatcherProcessFileError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := []string{
		writeSource(t, dir, "good.ts", "function f(){ return 1; }\n"),
		filepath.Join(dir, "missing.ts"),
	}

	b := NewBatcher(analyzer.NewFileAnalyzer())
	if _, err := b.Process(context.Background(), files); err == nil {
		t.Error("expected error for unreadable file")
	}
}

// TestBatcherProcessCancellation tests that a cancelled context stops
// the batch.
func TestBatcherProcessCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	files := []string{
		writeSource(t, dir, "a.ts", "function f(){ return 1; }\n"),
	}

	b := NewBatcher(analyzer.NewFileAnalyzer())
	if _, err := b.Process(ctx, files); err == nil {
		t.Error("expected error for cancelled context")
	}
}
