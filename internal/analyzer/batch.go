package analyzer

import (
	"context"
	"errors"

	"github.com/Bahjat/header-insight-tool/internal/model"
	"github.com/Bahjat/header-insight-tool/internal/platform/errs"
	"golang.org/x/sync/errgroup"
)

// AnalyzeBatch analyzes every URL with at most concurrency analyses in
// flight. Results are returned in input order. A failing URL is recorded in
// its BatchResult and does not stop the others; the returned error is only
// set when ctx ends before every URL was attempted.
func (s *Service) AnalyzeBatch(ctx context.Context, urls []string, concurrency int) ([]model.BatchResult, error) {
	results := make([]model.BatchResult, len(urls))
	if len(urls) == 0 {
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(concurrency, len(urls))))

	for i, u := range urls {
		g.Go(func() error {
			results[i].URL = u
			if err := ctx.Err(); err != nil {
				results[i].Error = err.Error()
				return err
			}

			resp, err := s.Analyze(ctx, u)
			if err != nil {
				results[i].Error = userMessage(err)
				return nil
			}
			results[i].Response = resp
			return nil
		})
	}

	return results, g.Wait()
}

func userMessage(err error) string {
	var appErr *errs.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
