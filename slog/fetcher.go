// Package slog provides logging decorators for headlines services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/headlines"
)

// Ensure LoggingFetcher implements headlines.Fetcher.
var _ headlines.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   headlines.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next headlines.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, req *headlines.FetchRequest) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", req.URL,
			"timeout", req.Timeout,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, req)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
