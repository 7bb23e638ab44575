package main

import (
	"fmt"

	"github.com/fwojciec/headlines"
	"github.com/fwojciec/headlines/fs"
	"github.com/fwojciec/headlines/goquery"
	headhttp "github.com/fwojciec/headlines/http"
	headslog "github.com/fwojciec/headlines/slog"
)

// Run fetches the page, extracts headlines and writes the report.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	cfg := headlines.DefaultExtractConfig()
	cfg.MaxHeadlines = c.Max

	ex, err := goquery.NewExtractor(cfg, goquery.NewDefaultRegistry())
	if err != nil {
		return err
	}
	var extractor headlines.Extractor = ex

	fetcher := deps.Fetcher
	if fetcher == nil {
		fetcher = headhttp.NewFetcher(headhttp.WithTimeout(c.Timeout))
	}
	defer fetcher.Close()

	var writer headlines.ReportWriter = fs.NewWriter(c.Output)

	if deps.Logger != nil {
		fetcher = headslog.NewLoggingFetcher(fetcher, deps.Logger)
		extractor = headslog.NewLoggingExtractor(extractor, deps.Logger)
		writer = headslog.NewLoggingReportWriter(writer, deps.Logger)
	}

	fmt.Fprintf(deps.Stdout, "Fetching headlines from: %s\n", c.URL)

	req := headlines.NewFetchRequest(c.URL)
	if c.Timeout > 0 {
		req.Timeout = c.Timeout
	}
	if c.UserAgent != "" {
		req.UserAgent = c.UserAgent
	}
	html, err := fetcher.Fetch(deps.Ctx, req)
	if err != nil {
		return err
	}

	result, err := extractor.Extract(c.URL, html)
	if err != nil {
		return err
	}

	if len(result.Headlines) == 0 {
		fmt.Fprintln(deps.Stderr, "Hint: The website might have a different structure or blocked the request.")
		return headlines.Errorf(headlines.ENOTFOUND, "no headlines found at %s", c.URL)
	}

	if deps.Runs != nil {
		unseen, err := deps.Runs.UnseenHeadlines(deps.Ctx, c.URL, result.Headlines)
		if err != nil {
			return fmt.Errorf("failed to read history: %w", err)
		}
		fmt.Fprintf(deps.Stdout, "Found %d headlines (%d new).\n", len(result.Headlines), len(unseen))
	} else {
		fmt.Fprintf(deps.Stdout, "Found %d headlines.\n", len(result.Headlines))
	}

	scrapedAt := deps.Now().UTC()
	report := &headlines.Report{
		URL:       c.URL,
		Headlines: result.Headlines,
		ScrapedAt: scrapedAt,
	}
	if err := writer.WriteReport(deps.Ctx, report); err != nil {
		return err
	}

	if deps.Runs != nil {
		run := &headlines.Run{
			URL:       c.URL,
			Strategy:  result.Strategy,
			Headlines: result.Headlines,
			ScrapedAt: scrapedAt,
		}
		if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
			return fmt.Errorf("failed to record run: %w", err)
		}
	}

	fmt.Fprintf(deps.Stdout, "Successfully saved %d headlines to %s\n", len(result.Headlines), c.Output)
	return nil
}
