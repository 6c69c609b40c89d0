package analyzer

import (
	"context"

	"github.com/Bahjat/header-insight-tool/internal/model"
)

// HeaderInspector classifies a target's security headers.
type HeaderInspector interface {
	Inspect(ctx context.Context, targetURL string) (model.HeaderAnalysis, error)
}

// Summarizer turns a header analysis into remediation advice.
type Summarizer interface {
	Summarize(ctx context.Context, analysis model.HeaderAnalysis) (string, error)
}
