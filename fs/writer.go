// Package fs provides file-based output for scraped headlines.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/headlines"
)

// TimestampLayout renders report timestamps as ISO-8601 with microseconds
// and an explicit UTC offset.
const TimestampLayout = "2006-01-02T15:04:05.000000-07:00"

// FormatReport formats a report as a commented header followed by a
// numbered list of headlines, one per line.
func FormatReport(report *headlines.Report) string {
	var b strings.Builder
	b.WriteString("# Headlines scraped on ")
	b.WriteString(report.ScrapedAt.UTC().Format(TimestampLayout))
	b.WriteString("\n\n")
	for i, h := range report.Headlines {
		fmt.Fprintf(&b, "%d. %s\n", i+1, h)
	}
	return b.String()
}

// Ensure Writer implements headlines.ReportWriter at compile time.
var _ headlines.ReportWriter = (*Writer)(nil)

// Writer writes reports to a single file path.
// The file is written to a temporary sibling first and renamed into place,
// so readers never observe a partial report.
type Writer struct {
	path string
}

// NewWriter creates a new Writer that writes to path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the output file path.
func (w *Writer) Path() string {
	return w.path
}

// WriteReport writes the formatted report, replacing any existing file.
// Parent directories are not created.
func (w *Writer) WriteReport(ctx context.Context, report *headlines.Report) error {
	if err := ctx.Err(); err != nil {
		return headlines.Errorf(headlines.EWRITE, "cannot write %s: %v", w.path, err)
	}

	dir, base := filepath.Split(w.path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return headlines.Errorf(headlines.EWRITE, "cannot write %s: %v", w.path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(FormatReport(report)); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return headlines.Errorf(headlines.EWRITE, "cannot write %s: %v", w.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return headlines.Errorf(headlines.EWRITE, "cannot write %s: %v", w.path, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return headlines.Errorf(headlines.EWRITE, "cannot write %s: %v", w.path, err)
	}
	if err := os.Rename(tmpPath, w.path); err != nil {
		os.Remove(tmpPath)
		return headlines.Errorf(headlines.EWRITE, "cannot write %s: %v", w.path, err)
	}

	return nil
}
