// Package report renders batch analysis results for the command line.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Bahjat/header-insight-tool/internal/model"
)

// Writer renders analysis results to an output stream.
type Writer interface {
	Write(results []model.BatchResult) error
}

// Format names an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Formats lists the supported output formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatMarkdown}
}

// NewWriter returns the Writer for format.
func NewWriter(format Format, out io.Writer) (Writer, error) {
	switch Format(strings.ToLower(string(format))) {
	case FormatText:
		return NewTextWriter(out), nil
	case FormatJSON:
		return NewJSONWriter(out), nil
	case FormatMarkdown, "md":
		return NewMarkdownWriter(out), nil
	default:
		return nil, fmt.Errorf("unknown report format %q (want one of %v)", format, Formats())
	}
}

// presentCount returns how many checklist headers the analysis found.
func presentCount(a model.HeaderAnalysis) int {
	return len(a.Present())
}
