package headlines

import (
	"context"
	"time"
)

// Run is a recorded scrape of one URL.
type Run struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Strategy  string    `json:"strategy"`
	Headlines []string  `json:"headlines"`
	ScrapedAt time.Time `json:"scrapedAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "run URL required")
	}
	return nil
}

// RunService records scrape history.
type RunService interface {
	// CreateRun records a run and its headlines.
	// ID and ScrapedAt are assigned when empty.
	CreateRun(ctx context.Context, run *Run) error

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// UnseenHeadlines returns the headlines, in input order, that no
	// earlier run of url recorded.
	UnseenHeadlines(ctx context.Context, url string, headlines []string) ([]string, error)
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
