package headlines

import (
	"context"
	"time"
)

// DefaultURL is the page scraped when no URL is given.
const DefaultURL = "https://news.ycombinator.com"

// DefaultFetchTimeout bounds a single page fetch.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent mimics a common desktop browser so that basic bot
// filters let the request through.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// FetchRequest describes a single page fetch.
type FetchRequest struct {
	URL       string
	Timeout   time.Duration
	UserAgent string
}

// NewFetchRequest returns a FetchRequest for url with default timeout and user agent.
func NewFetchRequest(url string) *FetchRequest {
	return &FetchRequest{
		URL:       url,
		Timeout:   DefaultFetchTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Validate returns an error if the request contains invalid fields.
func (r *FetchRequest) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "fetch URL required")
	}
	if r.Timeout < 0 {
		return Errorf(EINVALID, "fetch timeout must not be negative")
	}
	return nil
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a single GET for the request and returns the body as text.
	// Transport failures, timeouts and non-2xx statuses are returned as
	// EFETCH errors. The context controls cancellation.
	Fetch(ctx context.Context, req *FetchRequest) (html string, err error)

	// Close releases fetcher resources.
	Close() error
}
