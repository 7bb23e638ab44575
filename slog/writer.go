package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/headlines"
)

// Ensure LoggingReportWriter implements headlines.ReportWriter.
var _ headlines.ReportWriter = (*LoggingReportWriter)(nil)

// LoggingReportWriter wraps a ReportWriter with logging.
type LoggingReportWriter struct {
	next   headlines.ReportWriter
	logger *slog.Logger
}

// NewLoggingReportWriter creates a new LoggingReportWriter.
func NewLoggingReportWriter(next headlines.ReportWriter, logger *slog.Logger) *LoggingReportWriter {
	return &LoggingReportWriter{next: next, logger: logger}
}

// WriteReport delegates to the wrapped writer and logs the operation.
func (w *LoggingReportWriter) WriteReport(ctx context.Context, report *headlines.Report) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write report",
			"url", report.URL,
			"count", len(report.Headlines),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteReport(ctx, report)
}
