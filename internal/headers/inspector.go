package headers

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/Bahjat/header-insight-tool/internal/model"
	"github.com/Bahjat/header-insight-tool/internal/platform/errs"
)

// Inspector checks a target URL's response for the security header checklist.
type Inspector struct {
	fetcher Fetcher
}

// NewInspector returns an Inspector backed by the given Fetcher.
func NewInspector(fetcher Fetcher) *Inspector {
	return &Inspector{fetcher: fetcher}
}

// Inspect validates targetURL, fetches it once and classifies every
// checklist header as PRESENT or MISSING. An invalid URL is rejected before
// any request is made.
func (i *Inspector) Inspect(ctx context.Context, targetURL string) (model.HeaderAnalysis, error) {
	normalized, err := ValidateURL(targetURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	header, statusCode, err := i.fetcher.Fetch(ctx, normalized)
	if err != nil {
		if isTimeout(err) {
			return nil, &errs.AppError{
				Kind:    errs.Timeout,
				Message: "The target URL took too long to respond.",
				Cause:   err,
			}
		}
		return nil, &errs.AppError{
			Kind:    errs.Unreachable,
			Message: "The provided URL could not be reached. Check the address.",
			Cause:   err,
		}
	}

	if statusCode >= http.StatusBadRequest {
		return nil, &errs.AppError{
			Kind:           errs.Unreachable,
			UpstreamStatus: statusCode,
			Message:        "The provided URL returned an error status.",
		}
	}

	return Classify(header), nil
}

// Classify marks each checklist header PRESENT if the response carries it
// under any casing, MISSING otherwise.
func Classify(header http.Header) model.HeaderAnalysis {
	seen := make(map[string]struct{}, len(header))
	for name := range header {
		seen[strings.ToLower(name)] = struct{}{}
	}

	analysis := make(model.HeaderAnalysis, len(model.Checklist()))
	for _, name := range model.Checklist() {
		if _, ok := seen[name]; ok {
			analysis[name] = model.Present
		} else {
			analysis[name] = model.Missing
		}
	}
	return analysis
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
