package datastore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/camford/httplatency/internal/models"
)

// HistoryStore persists latency records across runs in a local SQLite
// database so measurements can be compared over time.
type HistoryStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

// RunInfo describes one recorded run.
type RunInfo struct {
	ID          int64
	StartedAt   time.Time
	RecordCount int
}

// NewHistoryStore opens (creating if needed) the history database at dbPath
// and ensures the schema exists.
func NewHistoryStore(ctx context.Context, dbPath string, logger zerolog.Logger) (*HistoryStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create history database directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open history database %s: %w", dbPath, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping history database %s: %w", dbPath, err)
	}

	store := &HistoryStore{
		db:     db,
		logger: logger.With().Str("component", "HistoryStore").Logger(),
	}
	if err := store.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate history database %s: %w", dbPath, err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *HistoryStore) Close() error { return s.db.Close() }

// migrate ensures the database schema is created.
func (s *HistoryStore) migrate(ctx context.Context) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at   TEXT NOT NULL,
	record_count INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS latencies (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      INTEGER NOT NULL,
	url         TEXT NOT NULL,
	latency_ms  INTEGER NOT NULL,
	recorded_at TEXT NOT NULL,
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_latencies_run_id ON latencies (run_id);
CREATE INDEX IF NOT EXISTS idx_latencies_url ON latencies (url);
`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// RecordRun stores one run and its latency records in a single transaction.
// It returns the new run's ID.
func (s *HistoryStore) RecordRun(ctx context.Context, startedAt time.Time, records []models.LatencyRecord) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started_at, record_count) VALUES (?, ?)`,
		startedAt.UTC().Format(time.RFC3339Nano), len(records))
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, rec := range records {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO latencies (run_id, url, latency_ms, recorded_at) VALUES (?, ?, ?, ?)`,
			runID, rec.URL, rec.LatencyMS, now); err != nil {
			return 0, fmt.Errorf("failed to insert latency record for %s: %w", rec.URL, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("could not commit run: %w", err)
	}

	s.logger.Info().
		Int64("run_id", runID).
		Int("records", len(records)).
		Msg("Recorded run in history database")

	return runID, nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *HistoryStore) RecentRuns(ctx context.Context, limit int) ([]RunInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, record_count FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunInfo
	for rows.Next() {
		var info RunInfo
		var startedAt string
		if err := rows.Scan(&info.ID, &startedAt, &info.RecordCount); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339Nano, startedAt); parseErr == nil {
			info.StartedAt = ts
		}
		runs = append(runs, info)
	}
	return runs, rows.Err()
}

// LatenciesForRun returns the latency records stored for one run, in
// insertion order.
func (s *HistoryStore) LatenciesForRun(ctx context.Context, runID int64) ([]models.LatencyRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT url, latency_ms FROM latencies WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query latencies for run %d: %w", runID, err)
	}
	defer rows.Close()

	var records []models.LatencyRecord
	for rows.Next() {
		var rec models.LatencyRecord
		if err := rows.Scan(&rec.URL, &rec.LatencyMS); err != nil {
			return nil, fmt.Errorf("failed to scan latency row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
