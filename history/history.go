package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store records pressroom runs using SQLite. Only run summaries are kept;
// scraped records live in the export file.
type Store struct {
	db *sql.DB
}

// Run summarizes one collect-and-write run.
type Run struct {
	RunID      uuid.UUID `json:"run_id"`
	BaseURL    string    `json:"base_url"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Pages      int       `json:"pages"`
	Records    int       `json:"records"`
	StopReason string    `json:"stop_reason"`
	LastError  *string   `json:"last_error,omitempty"`
	OutputPath *string   `json:"output_path,omitempty"` // nil when nothing was written
}

// NewRun creates a run for baseURL with a fresh ID, started now.
func NewRun(baseURL string) *Run {
	return &Run{
		RunID:     uuid.New(),
		BaseURL:   baseURL,
		StartedAt: time.Now().UTC(),
	}
}

// NewStore creates a new run store with the given database path.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the runs table if it doesn't exist.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		base_url TEXT NOT NULL,
		started_at TEXT NOT NULL,
		finished_at TEXT NOT NULL,
		pages INTEGER NOT NULL,
		records INTEGER NOT NULL,
		stop_reason TEXT NOT NULL,
		last_error TEXT,
		output_path TEXT
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun stores a finished run.
func (s *Store) RecordRun(ctx context.Context, run *Run) error {
	query := `
	INSERT INTO runs (run_id, base_url, started_at, finished_at, pages, records, stop_reason, last_error, output_path)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		run.RunID.String(),
		run.BaseURL,
		run.StartedAt.UTC().Format(timeLayout),
		run.FinishedAt.UTC().Format(timeLayout),
		run.Pages,
		run.Records,
		run.StopReason,
		run.LastError,
		run.OutputPath,
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs first. A limit of zero or less
// returns every run.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `
	SELECT run_id, base_url, started_at, finished_at, pages, records, stop_reason, last_error, output_path
	FROM runs
	ORDER BY started_at DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return runs, nil
}

func scanRun(rows *sql.Rows) (*Run, error) {
	var (
		run        Run
		runID      string
		startedAt  string
		finishedAt string
		lastError  sql.NullString
		outputPath sql.NullString
	)

	err := rows.Scan(&runID, &run.BaseURL, &startedAt, &finishedAt,
		&run.Pages, &run.Records, &run.StopReason, &lastError, &outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}

	if run.RunID, err = uuid.Parse(runID); err != nil {
		return nil, fmt.Errorf("invalid run_id: %w", err)
	}
	if run.StartedAt, err = time.Parse(timeLayout, startedAt); err != nil {
		return nil, fmt.Errorf("invalid started_at: %w", err)
	}
	if run.FinishedAt, err = time.Parse(timeLayout, finishedAt); err != nil {
		return nil, fmt.Errorf("invalid finished_at: %w", err)
	}
	if lastError.Valid {
		run.LastError = &lastError.String
	}
	if outputPath.Valid {
		run.OutputPath = &outputPath.String
	}

	return &run, nil
}
