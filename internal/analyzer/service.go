package analyzer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Bahjat/header-insight-tool/internal/model"
	"github.com/Bahjat/header-insight-tool/internal/platform/errs"
	"github.com/Bahjat/header-insight-tool/internal/platform/requestid"
	"github.com/Bahjat/header-insight-tool/internal/remediation"
)

// Service runs the header inspection and, when configured, the remediation
// summary for a URL.
type Service struct {
	inspector  HeaderInspector
	summarizer Summarizer
	logger     *slog.Logger
}

// NewService creates a Service. A nil summarizer disables AI summaries and
// leaves AIAnalysis empty.
func NewService(inspector HeaderInspector, summarizer Summarizer, logger *slog.Logger) *Service {
	return &Service{inspector: inspector, summarizer: summarizer, logger: logger}
}

// Analyze inspects targetURL and attaches a remediation summary. Inspection
// failures are returned as *errs.AppError. Summary failures never fail the
// call: they are logged and described in AIAnalysis instead.
func (s *Service) Analyze(ctx context.Context, targetURL string) (*model.AnalysisResponse, error) {
	logger := s.logger.With(slog.String("url", targetURL), requestid.Attr(ctx))

	analysis, err := s.inspector.Inspect(ctx, targetURL)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = &errs.AppError{
				Kind:    errs.Timeout,
				Message: "Analysis timed out. The target URL may be slow to respond.",
				Cause:   err,
			}
		}

		attrs := []any{"error", err, "kind", errs.KindOf(err).String()}
		var appErr *errs.AppError
		if errors.As(err, &appErr) && appErr.UpstreamStatus != 0 {
			attrs = append(attrs, "target_status", appErr.UpstreamStatus)
		}
		logger.Error("header inspection failed", attrs...)
		return nil, err
	}

	resp := &model.AnalysisResponse{Analysis: analysis}
	if s.summarizer != nil {
		resp.AIAnalysis = s.summarize(ctx, logger, analysis)
	}

	logger.Info("analysis complete",
		"present", len(analysis.Present()),
		"missing", len(analysis.Missing()),
		"missing_headers", analysis.Missing(),
	)
	return resp, nil
}

func (s *Service) summarize(ctx context.Context, logger *slog.Logger, analysis model.HeaderAnalysis) string {
	summary, err := s.summarizer.Summarize(ctx, analysis)
	if err != nil {
		attrs := []any{"error", err, "kind", errs.KindOf(err).String()}
		var appErr *errs.AppError
		if errors.As(err, &appErr) && appErr.UpstreamStatus != 0 {
			attrs = append(attrs, "upstream_status", appErr.UpstreamStatus)
		}
		logger.Warn("remediation summary unavailable", attrs...)
		return remediation.Describe(err)
	}
	return summary
}
