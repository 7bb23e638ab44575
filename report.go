package headlines

import (
	"context"
	"time"
)

// DefaultOutputPath is where reports are written when no path is given.
const DefaultOutputPath = "headlines.txt"

// Report is the outcome of one scrape, ready to be persisted.
type Report struct {
	URL       string
	Headlines []string
	ScrapedAt time.Time
}

// ReportWriter persists reports.
type ReportWriter interface {
	// WriteReport persists the report. Failures are returned as EWRITE errors.
	WriteReport(ctx context.Context, report *Report) error
}
