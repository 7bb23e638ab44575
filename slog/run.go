package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/headlines"
)

// Ensure LoggingRunService implements headlines.RunService.
var _ headlines.RunService = (*LoggingRunService)(nil)

// LoggingRunService wraps a RunService with logging.
type LoggingRunService struct {
	next   headlines.RunService
	logger *slog.Logger
}

// NewLoggingRunService creates a new LoggingRunService.
func NewLoggingRunService(next headlines.RunService, logger *slog.Logger) *LoggingRunService {
	return &LoggingRunService{next: next, logger: logger}
}

// CreateRun delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) CreateRun(ctx context.Context, run *headlines.Run) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create run",
			"url", run.URL,
			"id", run.ID,
			"count", len(run.Headlines),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRun(ctx, run)
}

// FindRuns delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) FindRuns(ctx context.Context, filter headlines.RunFilter) (runs []*headlines.Run, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find runs",
			"count", len(runs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRuns(ctx, filter)
}

// UnseenHeadlines delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) UnseenHeadlines(ctx context.Context, url string, candidates []string) (unseen []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("unseen headlines",
			"url", url,
			"candidates", len(candidates),
			"unseen", len(unseen),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UnseenHeadlines(ctx, url, candidates)
}
