package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/headlines"
	"github.com/google/uuid"
)

// timeLayout is fixed-width so that stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Compile-time interface verification.
var _ headlines.RunService = (*RunService)(nil)

// RunService implements headlines.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// hashHeadline computes xxHash of a headline and returns a hex string.
func hashHeadline(text string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(text))
	return hex.EncodeToString(b)
}

// CreateRun records a run and its headlines in a single transaction.
func (s *RunService) CreateRun(ctx context.Context, run *headlines.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.ScrapedAt.IsZero() {
		run.ScrapedAt = time.Now()
	}
	run.ScrapedAt = run.ScrapedAt.UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, url, strategy, scraped_at)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.URL, run.Strategy, run.ScrapedAt.Format(timeLayout)); err != nil {
		return err
	}

	for i, h := range run.Headlines {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO headlines (run_id, position, text, text_hash)
			VALUES (?, ?, ?, ?)
		`, run.ID, i, h, hashHeadline(h)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter headlines.RunFilter) ([]*headlines.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, strategy, scraped_at FROM runs WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY scraped_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*headlines.Run
	for rows.Next() {
		var run headlines.Run
		var scrapedAt string

		if err := rows.Scan(&run.ID, &run.URL, &run.Strategy, &scrapedAt); err != nil {
			return nil, err
		}

		run.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at")
		if err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, run := range runs {
		if run.Headlines, err = s.findHeadlines(ctx, run.ID); err != nil {
			return nil, err
		}
	}

	return runs, nil
}

func (s *RunService) findHeadlines(ctx context.Context, runID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT text FROM headlines WHERE run_id = ? ORDER BY position ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, err
		}
		out = append(out, text)
	}
	return out, rows.Err()
}

// UnseenHeadlines returns the headlines that no recorded run of url contains.
func (s *RunService) UnseenHeadlines(ctx context.Context, url string, candidates []string) ([]string, error) {
	unseen := make([]string, 0, len(candidates))
	for _, h := range candidates {
		var seen bool
		err := s.db.QueryRowContext(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM headlines h
				JOIN runs r ON r.id = h.run_id
				WHERE r.url = ? AND h.text_hash = ? AND h.text = ?
			)
		`, url, hashHeadline(h), h).Scan(&seen)
		if err != nil {
			return nil, err
		}
		if !seen {
			unseen = append(unseen, h)
		}
	}
	return unseen, nil
}
