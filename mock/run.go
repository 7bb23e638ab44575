package mock

import (
	"context"

	"github.com/fwojciec/headlines"
)

var _ headlines.RunService = (*RunService)(nil)

// RunService is a mock implementation of headlines.RunService.
type RunService struct {
	CreateRunFn       func(ctx context.Context, run *headlines.Run) error
	FindRunsFn        func(ctx context.Context, filter headlines.RunFilter) ([]*headlines.Run, error)
	UnseenHeadlinesFn func(ctx context.Context, url string, candidates []string) ([]string, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *headlines.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRuns(ctx context.Context, filter headlines.RunFilter) ([]*headlines.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) UnseenHeadlines(ctx context.Context, url string, candidates []string) ([]string, error) {
	return s.UnseenHeadlinesFn(ctx, url, candidates)
}
