package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"intentbench/internal/evaluation"
	"intentbench/internal/logging"
)

// History is an append-only SQLite store of run summaries, used by the
// stats command to show accuracy trends across runs.
type History struct {
	db *sql.DB
}

// RunRecord is one row of run history.
type RunRecord struct {
	RunID         string
	CreatedAt     time.Time
	Classifier    string
	Category      string
	TotalTests    int
	Passed        int
	Accuracy      float64
	AvgConfidence float64
	AvgTimeMs     float64
}

const historySchema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id         TEXT PRIMARY KEY,
	created_at     TEXT NOT NULL,
	classifier     TEXT NOT NULL,
	category       TEXT NOT NULL DEFAULT '',
	total_tests    INTEGER NOT NULL,
	passed         INTEGER NOT NULL,
	accuracy       REAL NOT NULL,
	avg_confidence REAL NOT NULL,
	avg_time_ms    REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`

// OpenHistory opens (or creates) the history database.
func OpenHistory(path string) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history db: %w", err)
	}

	// Concurrency-friendly pragmas; failures are tolerable.
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logging.StoreDebug("Failed to set sqlite busy_timeout: %v", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logging.StoreDebug("Failed to set sqlite journal_mode=WAL: %v", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL"); err != nil {
		logging.StoreDebug("Failed to set sqlite synchronous=NORMAL: %v", err)
	}

	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init history schema: %w", err)
	}

	logging.StoreDebug("History db open: %s", path)
	return &History{db: db}, nil
}

// Append records one run.
func (h *History) Append(a *Artifact, rep *evaluation.Report) error {
	_, err := h.db.Exec(
		`INSERT INTO runs (run_id, created_at, classifier, category, total_tests, passed, accuracy, avg_confidence, avg_time_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.RunID,
		a.CreatedAt.Format(time.RFC3339Nano),
		a.Classifier,
		a.Category,
		rep.TotalTests,
		rep.Passed,
		rep.Accuracy,
		rep.AvgConfidence,
		rep.AvgExecutionTimeMs,
	)
	if err != nil {
		return fmt.Errorf("failed to append run %s: %w", a.RunID, err)
	}
	logging.Store("Run %s recorded (accuracy %.3f)", a.RunID, rep.Accuracy)
	return nil
}

// Recent returns up to n runs, newest first.
func (h *History) Recent(n int) ([]RunRecord, error) {
	if n <= 0 {
		n = 10
	}

	rows, err := h.db.Query(
		`SELECT run_id, created_at, classifier, category, total_tests, passed, accuracy, avg_confidence, avg_time_ms
		 FROM runs ORDER BY created_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query run history: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt string
		if err := rows.Scan(&r.RunID, &createdAt, &r.Classifier, &r.Category,
			&r.TotalTests, &r.Passed, &r.Accuracy, &r.AvgConfidence, &r.AvgTimeMs); err != nil {
			return nil, fmt.Errorf("failed to scan run record: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			r.CreatedAt = t
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Close releases the database handle.
func (h *History) Close() error {
	return h.db.Close()
}
