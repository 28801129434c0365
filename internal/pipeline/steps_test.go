package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/SnowSquire/function-type-analyzer/internal/model"
)

// TestDiscoverAndAnalyzeSteps tests the two production steps end to end
// against a small source tree.
func TestDiscoverAndAnalyzeSteps(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sources := map[string]string{
		"page.tsx":   "export function Page(){ return <main><h1>hi</h1></main>; }\n",
		"util.ts":    "export function add(a: number, b: number){ return a + b; }\nconst double = (n: number) => n * 2;\n",
		"widget.tsx": "const Widget = () => <aside/>;\n",
		"notes.md":   "not a source file\n",
	}
	for name, src := range sources {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0600); err != nil {
			t.Fatal(err)
		}
	}

	p := New()
	p.AddSteps(NewDiscoverStep(), NewAnalyzeStep())

	report := model.NewAnalysisReport(dir)
	if err := p.Execute(context.Background(), report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.FilesAnalyzed != 3 {
		t.Errorf("expected 3 files analyzed, got %d", report.FilesAnalyzed)
	}
	if report.MarkupProducingCount != 2 {
		t.Errorf("expected 2 markup-producing functions, got %d", report.MarkupProducingCount)
	}
	if report.PlainCount != 2 {
		t.Errorf("expected 2 plain functions, got %d", report.PlainCount)
	}
	if got := report.TotalFunctions(); got != 4 {
		t.Errorf("expected 4 total functions, got %d", got)
	}
	if len(report.PerformedSteps) != 2 {
		t.Errorf("expected 2 performed steps, got %v", report.PerformedSteps)
	}
}

// TestStepsOnEmptyDirectory tests that an empty target succeeds with a
// zeroed report.
func TestStepsOnEmptyDirectory(t *testing.T) {
	t.Parallel()

	p := New()
	p.AddSteps(NewDiscoverStep(), NewAnalyzeStep())

	report := model.NewAnalysisReport(t.TempDir())
	if err := p.Execute(context.Background(), report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.FilesAnalyzed != 0 || report.TotalFunctions() != 0 {
		t.Errorf("expected a zeroed report, got %+v", report)
	}
}

// TestDiscoverStepMissingRoot tests that a nonexistent target fails the
// discovery step.
func TestDiscoverStepMissingRoot(t *testing.T) {
	t.Parallel()

	report := model.NewAnalysisReport(filepath.Join(t.TempDir(), "nope"))
	if err := NewDiscoverStep().Do(context.Background(), report); err == nil {
		t.Error("expected error for missing root")
	}
}

// TestAnalyzeStepMergesInDiscoveryOrder tests that per-function records
// follow the file discovery order.
func TestAnalyzeStepMergesInDiscoveryOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.ts"), []byte("function first(){}\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.ts"), []byte("function second(){}\n"), 0600); err != nil {
		t.Fatal(err)
	}

	report := model.NewAnalysisReport(dir)
	report.Files = []string{
		filepath.Join(dir, "a.ts"),
		filepath.Join(dir, "b.ts"),
	}

	if err := NewAnalyzeStep().Do(context.Background(), report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Functions) != 2 {
		t.Fatalf("expected 2 records, got %d", len(report.Functions))
	}
	if report.Functions[0].Name != "first" || report.Functions[1].Name != "second" {
		t.Errorf("expected [first second], got [%s %s]",
			report.Functions[0].Name, report.Functions[1].Name)
	}
}
