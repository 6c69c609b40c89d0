package report

import (
	"io"

	"github.com/Bahjat/header-insight-tool/internal/model"
	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs a Markdown document with one section per URL.
type MarkdownWriter struct {
	out io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to out.
func NewMarkdownWriter(out io.Writer) *MarkdownWriter {
	return &MarkdownWriter{out: out}
}

// Write renders one section per result, each with a status table and the
// remediation summary when there is one.
func (w *MarkdownWriter) Write(results []model.BatchResult) error {
	md := markdown.NewMarkdown(w.out)
	md.H1("Security Header Report")
	md.PlainText("")

	for _, r := range results {
		md.H2(r.URL)
		md.PlainText("")

		if r.Response == nil {
			md.Warningf("%s", r.Error)
			md.PlainText("")
			continue
		}

		rows := make([][]string, 0, len(model.Checklist()))
		for _, name := range model.Checklist() {
			status := r.Response.Analysis[name]
			mark := "❌"
			if status == model.Present {
				mark = "✅"
			}
			rows = append(rows, []string{"`" + name + "`", mark + " " + string(status)})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Header", "Status"},
			Rows:   rows,
		})
		md.PlainText("")
		md.PlainTextf("%d/%d security headers present.", presentCount(r.Response.Analysis), len(rows))
		md.PlainText("")

		if r.Response.AIAnalysis != "" {
			md.PlainText(r.Response.AIAnalysis)
			md.PlainText("")
		}
	}

	return md.Build()
}
