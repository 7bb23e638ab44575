package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/headlines"
)

// Run lists recorded scrapes, newest first.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if deps.Runs == nil {
		return headlines.Errorf(headlines.EINVALID, "history is disabled; set --db or HEADLINES_DB")
	}

	filter := headlines.RunFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded")
		return nil
	}

	for _, run := range runs {
		strategy := run.Strategy
		if strategy == "" {
			strategy = "-"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %d headlines  [%s]\n",
			run.ScrapedAt.UTC().Format(time.RFC3339), run.URL, len(run.Headlines), strategy)
		if c.Full {
			for i, h := range run.Headlines {
				fmt.Fprintf(deps.Stdout, "  %d. %s\n", i+1, h)
			}
		}
	}

	return nil
}
