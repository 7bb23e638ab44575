// Package http provides an HTTP-based implementation of headlines.Fetcher.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/headlines"
	"golang.org/x/net/html/charset"
)

// DefaultMaxBodySize caps how much of a response body is read.
const DefaultMaxBodySize = 10 << 20

// Ensure Fetcher implements headlines.Fetcher at compile time.
var _ headlines.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP GET requests.
// It does not execute JavaScript.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	maxBodySize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout used when a request carries none.
// Defaults to headlines.DefaultFetchTimeout (10s) if not specified or not positive.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxBodySize caps the number of body bytes read per response.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:      &http.Client{},
		timeout:     headlines.DefaultFetchTimeout,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.timeout <= 0 {
		f.timeout = headlines.DefaultFetchTimeout
	}
	return f
}

// Fetch sends a single GET for req and returns the body decoded to UTF-8.
// Any failure, including a non-2xx status, is returned as an EFETCH error.
func (f *Fetcher) Fetch(ctx context.Context, req *headlines.FetchRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	timeout := req.Timeout
	if timeout == 0 {
		timeout = f.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return "", headlines.Errorf(headlines.EFETCH, "invalid request for %s: %v", req.URL, err)
	}

	userAgent := req.UserAgent
	if userAgent == "" {
		userAgent = headlines.DefaultUserAgent
	}
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	httpReq.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(httpReq)
	if err != nil {
		return "", headlines.Errorf(headlines.EFETCH, "request to %s failed: %v", req.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", headlines.Errorf(headlines.EFETCH, "HTTP %d for %s", resp.StatusCode, req.URL)
	}

	body, err := charset.NewReader(io.LimitReader(resp.Body, f.maxBodySize), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", headlines.Errorf(headlines.EFETCH, "decode body of %s: %v", req.URL, err)
	}

	html, err := io.ReadAll(body)
	if err != nil {
		return "", headlines.Errorf(headlines.EFETCH, "read body of %s: %v", req.URL, err)
	}

	return string(html), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
