package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/headlines"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Now    func() time.Time

	// Logger is nil unless verbose output was requested.
	Logger *slog.Logger

	// Fetcher overrides the default HTTP fetcher when set.
	Fetcher headlines.Fetcher

	// Runs is nil unless a history database is configured.
	Runs headlines.RunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape  ScrapeCmd  `cmd:"" default:"withargs" help:"Scrape headlines from a page and save them (default)"`
	History HistoryCmd `cmd:"" help:"List recorded scrapes"`

	DB      string `name:"db" env:"HEADLINES_DB" help:"SQLite database for scrape history (disabled when empty)"`
	Verbose bool   `short:"v" help:"Log each operation to stderr"`
}

// ScrapeCmd is the default command.
type ScrapeCmd struct {
	URL       string        `arg:"" optional:"" default:"${default_url}" help:"Page to scrape"`
	Output    string        `arg:"" optional:"" default:"${default_output}" help:"File to write headlines to"`
	Max       int           `short:"n" default:"30" env:"HEADLINES_MAX" help:"Maximum number of headlines to keep"`
	Timeout   time.Duration `short:"t" default:"10s" env:"HEADLINES_TIMEOUT" help:"Fetch timeout"`
	UserAgent string        `name:"user-agent" default:"${user_agent}" env:"HEADLINES_USER_AGENT" help:"User-Agent header sent with the request"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL   string `help:"Only show runs of this URL"`
	Limit int    `short:"l" default:"10" help:"Maximum number of runs to show"`
	Full  bool   `help:"Show the headlines of each run"`
}
