package report

import (
	"fmt"
	"io"

	"github.com/Bahjat/header-insight-tool/internal/model"
	"github.com/fatih/color"
)

// TextWriter prints a colorized, human-oriented report. Colors are dropped
// automatically when the output is not a terminal or NO_COLOR is set.
type TextWriter struct {
	out io.Writer

	url     *color.Color
	present *color.Color
	missing *color.Color
	failure *color.Color
}

// NewTextWriter creates a TextWriter that outputs to out.
func NewTextWriter(out io.Writer) *TextWriter {
	return &TextWriter{
		out:     out,
		url:     color.New(color.FgCyan, color.Bold),
		present: color.New(color.FgGreen),
		missing: color.New(color.FgRed),
		failure: color.New(color.FgYellow),
	}
}

// Write prints each result followed by a blank line.
func (w *TextWriter) Write(results []model.BatchResult) error {
	for _, r := range results {
		if _, err := w.url.Fprintln(w.out, r.URL); err != nil {
			return err
		}

		if r.Response == nil {
			if _, err := w.failure.Fprintf(w.out, "  error: %s\n\n", r.Error); err != nil {
				return err
			}
			continue
		}

		if err := w.writeAnalysis(r.Response); err != nil {
			return err
		}
	}
	return nil
}

func (w *TextWriter) writeAnalysis(resp *model.AnalysisResponse) error {
	checklist := model.Checklist()
	for _, name := range checklist {
		status := resp.Analysis[name]
		c := w.missing
		if status == model.Present {
			c = w.present
		}
		if _, err := fmt.Fprintf(w.out, "  %-28s %s\n", name, c.Sprint(status)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w.out, "  %d/%d security headers present\n\n", presentCount(resp.Analysis), len(checklist)); err != nil {
		return err
	}

	if resp.AIAnalysis != "" {
		if _, err := fmt.Fprintf(w.out, "%s\n\n", resp.AIAnalysis); err != nil {
			return err
		}
	}
	return nil
}
