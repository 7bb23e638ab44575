package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/headlines"
	headslog "github.com/fwojciec/headlines/slog"
	"github.com/fwojciec/headlines/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", errorText(err))
		os.Exit(1)
	}
}

// errorText returns the message of application errors and the full text of
// anything else.
func errorText(err error) string {
	if headlines.ErrorCode(err) == headlines.EINTERNAL {
		return err.Error()
	}
	return headlines.ErrorMessage(err)
}

// Main represents the program.
type Main struct {
	// Now returns the time stamped on reports and runs. Set before calling Run().
	Now func() time.Time

	// Fetcher replaces the HTTP fetcher. Used for end-to-end testing.
	Fetcher headlines.Fetcher

	// SQLite database holding scrape history, when enabled.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Now: time.Now,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Now:     m.Now,
		Fetcher: m.Fetcher,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("headlines"),
		kong.Description("Fetch a news page and save its headlines to a text file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{
			"default_url":    headlines.DefaultURL,
			"default_output": headlines.DefaultOutputPath,
			"user_agent":     headlines.DefaultUserAgent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// A bare "help" would otherwise be taken as the URL of the default command.
	if len(args) == 1 && strings.EqualFold(args[0], "help") {
		args = []string{"--help"}
	}

	// Handle help flags
	if wantsHelp(args) {
		_, _ = parser.Parse(args)
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Open history database when configured
	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set HEADLINES_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()

		var runs headlines.RunService = sqlite.NewRunService(m.DB)
		if deps.Logger != nil {
			runs = headslog.NewLoggingRunService(runs, deps.Logger)
		}
		deps.Runs = runs
	}

	return kongCtx.Run(deps)
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
