package headers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fetcher retrieves the response headers of a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (header http.Header, statusCode int, err error)
}

// HTTPClient implements Fetcher using a real HTTP client.
type HTTPClient struct {
	client *http.Client
}

const (
	fetchTimeout = 10 * time.Second
	maxRedirects = 5
	userAgent    = "HeaderInsightBot/1.0"

	// Bodies are ignored, but draining a little lets the connection be reused.
	maxDrainBytes = 64 << 10
)

var (
	errTooManyRedirects = errors.New("too many redirects")
	errBlockedRedirect  = errors.New("redirect to non-http(s) scheme blocked")
)

// ClientOptions tunes the HTTPClient. The zero value is the safe default.
type ClientOptions struct {
	// AllowPrivate permits targets on loopback, private and reserved
	// networks. Only the CLI exposes it.
	AllowPrivate bool
}

// NewHTTPClient returns a Fetcher with a 10s timeout, a dial guard that
// blocks private and reserved address ranges unless opts.AllowPrivate is set,
// and redirect validation that prevents SSRF via redirect chains.
func NewHTTPClient(opts ClientOptions) *HTTPClient {
	guard := dialGuard{allowPrivate: opts.AllowPrivate}
	return &HTTPClient{
		client: &http.Client{
			Timeout: fetchTimeout,
			Transport: &http.Transport{
				DialContext:         guard.dialer().DialContext,
				TLSHandshakeTimeout: fetchTimeout,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
			CheckRedirect: safeRedirectPolicy,
		},
	}
}

// safeRedirectPolicy validates redirect targets and limits the redirect chain length.
func safeRedirectPolicy(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("%w: stopped after %d", errTooManyRedirects, maxRedirects)
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return fmt.Errorf("%w: %s", errBlockedRedirect, req.URL.Scheme)
	}
	return nil
}

// Fetch issues a single GET and returns the final response's headers and status.
func (c *HTTPClient) Fetch(ctx context.Context, targetURL string) (http.Header, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "*/*")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	return resp.Header, resp.StatusCode, nil
}
