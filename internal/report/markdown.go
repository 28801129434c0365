package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/SnowSquire/function-type-analyzer/internal/model"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown, suitable for
// pasting into pull requests or docs.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.AnalysisReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeTotals(md, report)
	w.writeFileBreakdown(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H1("Function Type Analysis Report")
	md.PlainText("")

	status := "✅ Complete"
	if report.ErrorMessage != "" {
		status = "❌ Error - " + report.ErrorMessage
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Target", "`" + report.Root + "`"},
			{"Analyzed", report.DateAnalyzed.Format("2006-01-02 15:04:05 MST")},
			{"Files analyzed", strconv.Itoa(report.FilesAnalyzed)},
			{"Status", status},
		},
	})
	md.PlainText("")
}

// writeTotals writes the aggregate counters and a distribution chart.
func (w *MarkdownWriter) writeTotals(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Totals")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Classification", "Count"},
		Rows: [][]string{
			{"Markup-producing", strconv.Itoa(report.MarkupProducingCount)},
			{"Plain", strconv.Itoa(report.PlainCount)},
			{"**Total**", "**" + strconv.Itoa(report.TotalFunctions()) + "**"},
		},
	})

	if report.TotalFunctions() > 0 {
		chart := piechart.NewPieChart(
			io.Discard,
			piechart.WithTitle("Function Classification"),
			piechart.WithShowData(true),
		)
		if report.MarkupProducingCount > 0 {
			chart.LabelAndIntValue("Markup-producing", uint64(report.MarkupProducingCount))
		}
		if report.PlainCount > 0 {
			chart.LabelAndIntValue("Plain", uint64(report.PlainCount))
		}

		md.PlainText("")
		md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	}
	md.PlainText("")
}

// writeFileBreakdown writes per-file counts derived from the function
// records.
func (w *MarkdownWriter) writeFileBreakdown(md *markdown.Markdown, report *model.AnalysisReport) {
	if len(report.Functions) == 0 {
		return
	}

	type fileCounts struct {
		markup int
		plain  int
	}

	counts := make(map[string]*fileCounts)
	order := make([]string, 0)
	for _, fn := range report.Functions {
		fc, ok := counts[fn.File]
		if !ok {
			fc = &fileCounts{}
			counts[fn.File] = fc
			order = append(order, fn.File)
		}
		if fn.Classification == model.MarkupProducing {
			fc.markup++
		} else {
			fc.plain++
		}
	}

	rows := make([][]string, 0, len(order))
	for _, file := range order {
		fc := counts[file]
		rows = append(rows, []string{
			"`" + file + "`",
			strconv.Itoa(fc.markup),
			strconv.Itoa(fc.plain),
		})
	}

	md.H2("Per-file Breakdown")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"File", "Markup-producing", "Plain"},
		Rows:   rows,
	})
	md.PlainText("")
}
