package report

import (
	"encoding/json"
	"io"

	"github.com/Bahjat/header-insight-tool/internal/model"
)

// JSONWriter outputs results as an indented JSON array.
type JSONWriter struct {
	out io.Writer
}

// NewJSONWriter creates a JSONWriter that outputs to out.
func NewJSONWriter(out io.Writer) *JSONWriter {
	return &JSONWriter{out: out}
}

// Write encodes all results as a single JSON array.
func (w *JSONWriter) Write(results []model.BatchResult) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
