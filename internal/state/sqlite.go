package state

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)

	"github.com/leapstack-labs/dictlint/pkg/core"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// NewSQLiteStore creates a SQLite store instance. Open must be called before
// any other operation.
func NewSQLiteStore(logger *slog.Logger) *SQLiteStore {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SQLiteStore{logger: logger}
}

// Open opens the SQLite database. Use ":memory:" for an in-memory store.
func (s *SQLiteStore) Open(path string) error {
	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	s.db = db
	s.path = path
	s.logger.Debug("state store opened", "path", path)
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun persists a report with its summary counts.
func (s *SQLiteStore) SaveRun(batchName string, report *core.Report) (*Run, error) {
	if s.db == nil {
		return nil, errors.New("database not opened")
	}
	if report == nil {
		return nil, errors.New("nil report")
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}

	run := &Run{
		ID:        uuid.New().String(),
		BatchName: batchName,
		RanAt:     time.Now().UTC(),
		Summary:   report.Summary,
		Report:    report,
	}

	_, err = s.db.Exec(
		`INSERT INTO runs (id, batch_name, ran_at, tables_count, columns_count, errors, warnings, infos, hints, score, report)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.BatchName, run.RanAt,
		run.Summary.Tables, run.Summary.Columns,
		run.Summary.Errors, run.Summary.Warnings, run.Summary.Infos, run.Summary.Hints,
		run.Summary.Score, string(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save run: %w", err)
	}

	s.logger.Debug("run saved", "run_id", run.ID, "batch", batchName, "score", run.Summary.Score)
	return run, nil
}

// ListRuns returns the most recent runs, newest first. A non-positive limit
// returns the default page of 20.
func (s *SQLiteStore) ListRuns(limit int) ([]Run, error) {
	if s.db == nil {
		return nil, errors.New("database not opened")
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, batch_name, ran_at, tables_count, columns_count, errors, warnings, infos, hints, score
		 FROM runs ORDER BY ran_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.BatchName, &run.RanAt,
			&run.Summary.Tables, &run.Summary.Columns,
			&run.Summary.Errors, &run.Summary.Warnings, &run.Summary.Infos, &run.Summary.Hints,
			&run.Summary.Score); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun returns one run with its full report.
func (s *SQLiteStore) GetRun(id string) (*Run, error) {
	if s.db == nil {
		return nil, errors.New("database not opened")
	}

	var run Run
	var payload string
	err := s.db.QueryRow(
		`SELECT id, batch_name, ran_at, tables_count, columns_count, errors, warnings, infos, hints, score, report
		 FROM runs WHERE id = ?`, id,
	).Scan(&run.ID, &run.BatchName, &run.RanAt,
		&run.Summary.Tables, &run.Summary.Columns,
		&run.Summary.Errors, &run.Summary.Warnings, &run.Summary.Infos, &run.Summary.Hints,
		&run.Summary.Score, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	var report core.Report
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		return nil, fmt.Errorf("failed to decode report for run %s: %w", id, err)
	}
	run.Report = &report
	return &run, nil
}
