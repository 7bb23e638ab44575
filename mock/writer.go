package mock

import (
	"context"

	"github.com/fwojciec/headlines"
)

var _ headlines.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of headlines.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, report *headlines.Report) error
}

func (w *ReportWriter) WriteReport(ctx context.Context, report *headlines.Report) error {
	return w.WriteReportFn(ctx, report)
}
