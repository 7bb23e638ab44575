package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/headlines"
)

// Ensure LoggingExtractor implements headlines.Extractor.
var _ headlines.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor and logs which strategy won.
type LoggingExtractor struct {
	next   headlines.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next headlines.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(pageURL, html string) (result *headlines.ExtractResult, err error) {
	defer func(begin time.Time) {
		strategy := "(none)"
		count := 0
		if result != nil {
			count = len(result.Headlines)
			if result.Strategy != "" {
				strategy = result.Strategy
			}
		}
		e.logger.Info("extract",
			"url", pageURL,
			"strategy", strategy,
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(pageURL, html)
}
