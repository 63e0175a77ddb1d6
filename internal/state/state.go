// Package state persists sync-run history in a local SQLite database.
//
// The ledger drives the default date range: a run with no arguments picks
// up the day after the last fully successful run. Runs that finished with
// collector errors are recorded but never advance the last-sync day.
package state

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const dayFormat = "2006-01-02"

// Run is one completed sync run.
type Run struct {
	ID         int64
	StartedAt  time.Time
	FinishedAt time.Time
	StartDay   time.Time
	EndDay     time.Time
	Days       int
	Points     int
	Errors     int
}

// Store is the SQLite-backed sync ledger.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed creates) the ledger database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS sync_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at TEXT NOT NULL,
		finished_at TEXT NOT NULL,
		start_day TEXT NOT NULL,
		end_day TEXT NOT NULL,
		days INTEGER NOT NULL,
		points INTEGER NOT NULL,
		errors INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sync_runs_end_day ON sync_runs(end_day);
	`

	if _, err := db.Exec(schema); err != nil {
		return err
	}

	return nil
}

// RecordRun appends a completed run to the ledger.
func (s *Store) RecordRun(run Run) error {
	_, err := s.db.Exec(
		`INSERT INTO sync_runs (started_at, finished_at, start_day, end_day, days, points, errors)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.StartedAt.UTC().Format(time.RFC3339),
		run.FinishedAt.UTC().Format(time.RFC3339),
		run.StartDay.Format(dayFormat),
		run.EndDay.Format(dayFormat),
		run.Days,
		run.Points,
		run.Errors,
	)
	if err != nil {
		return fmt.Errorf("failed to record sync run: %w", err)
	}

	return nil
}

// LastSyncDay returns the latest end day across fully successful runs.
// ok is false when no successful run is recorded yet.
func (s *Store) LastSyncDay() (day time.Time, ok bool, err error) {
	row := s.db.QueryRow(`SELECT MAX(end_day) FROM sync_runs WHERE errors = 0`)

	var raw sql.NullString
	if err := row.Scan(&raw); err != nil {
		return time.Time{}, false, fmt.Errorf("failed to query last sync day: %w", err)
	}
	if !raw.Valid || raw.String == "" {
		return time.Time{}, false, nil
	}

	day, err = time.Parse(dayFormat, raw.String)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("corrupt end_day %q in ledger: %w", raw.String, err)
	}

	return day, true, nil
}

// RecentRuns returns the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, started_at, finished_at, start_day, end_day, days, points, errors
		 FROM sync_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run

	for rows.Next() {
		var run Run
		var startedAt, finishedAt, startDay, endDay string

		if err := rows.Scan(&run.ID, &startedAt, &finishedAt, &startDay, &endDay,
			&run.Days, &run.Points, &run.Errors); err != nil {
			return nil, fmt.Errorf("failed to scan sync run: %w", err)
		}

		run.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		run.FinishedAt, _ = time.Parse(time.RFC3339, finishedAt)
		run.StartDay, _ = time.Parse(dayFormat, startDay)
		run.EndDay, _ = time.Parse(dayFormat, endDay)
		runs = append(runs, run)
	}

	return runs, rows.Err()
}
