package state

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/leapstack-labs/dictlint/pkg/core"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(nil)
	if err := store.Open(":memory:"); err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := store.Migrate(); err != nil {
		t.Fatalf("failed to migrate store: %v", err)
	}
	return store
}

func testReport() *core.Report {
	return &core.Report{
		Violations: []core.Violation{
			{
				RuleID:   "CN02",
				Severity: core.SeverityError,
				Entity:   core.EntityColumn,
				Name:     "PROVR_LOC",
				Table:    "T_PROVR_LOC_DIM",
				Message:  "Column 'PROVR_LOC' does not end in an approved class word",
			},
			{
				RuleID:   "DS02",
				Severity: core.SeverityWarning,
				Entity:   core.EntityColumn,
				Name:     "NAM_PROVR",
				Table:    "T_PROVR_LOC_DIM",
				Message:  "Column 'NAM_PROVR' has no description",
			},
		},
		Summary: core.Summary{
			Tables:   1,
			Columns:  3,
			Errors:   1,
			Warnings: 1,
			Score:    55,
		},
	}
}

func TestSQLiteStore_OpenClose(t *testing.T) {
	store := NewSQLiteStore(nil)

	path := filepath.Join(t.TempDir(), "dictlint.db")
	if err := store.Open(path); err != nil {
		t.Fatalf("failed to open file-backed store: %v", err)
	}

	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}
}

func TestSQLiteStore_Migrate(t *testing.T) {
	store := NewSQLiteStore(nil)
	if err := store.Open(":memory:"); err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	if err := store.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	rows, err := store.db.Query("SELECT 1 FROM runs LIMIT 1")
	if err != nil {
		t.Fatalf("runs table does not exist: %v", err)
	}
	rows.Close()

	// A second pass is a no-op, not an error.
	if err := store.Migrate(); err != nil {
		t.Fatalf("re-running migrations failed: %v", err)
	}
}

func TestSQLiteStore_NotOpened(t *testing.T) {
	store := NewSQLiteStore(nil)

	if err := store.Migrate(); err == nil || !strings.Contains(err.Error(), "not opened") {
		t.Errorf("Migrate before Open: expected not-opened error, got %v", err)
	}
	if _, err := store.SaveRun("batch", testReport()); err == nil || !strings.Contains(err.Error(), "not opened") {
		t.Errorf("SaveRun before Open: expected not-opened error, got %v", err)
	}
	if _, err := store.ListRuns(10); err == nil || !strings.Contains(err.Error(), "not opened") {
		t.Errorf("ListRuns before Open: expected not-opened error, got %v", err)
	}
	if _, err := store.GetRun("some-id"); err == nil || !strings.Contains(err.Error(), "not opened") {
		t.Errorf("GetRun before Open: expected not-opened error, got %v", err)
	}
}

func TestSQLiteStore_RunLifecycle(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(t *testing.T, store *SQLiteStore) *Run
		operation func(t *testing.T, store *SQLiteStore, run *Run)
	}{
		{
			name: "save run",
			setup: func(t *testing.T, store *SQLiteStore) *Run {
				run, err := store.SaveRun("warehouse_q3", testReport())
				if err != nil {
					t.Fatalf("failed to save run: %v", err)
				}
				return run
			},
			operation: func(t *testing.T, store *SQLiteStore, run *Run) {
				if run.ID == "" {
					t.Error("run ID should not be empty")
				}
				if run.BatchName != "warehouse_q3" {
					t.Errorf("expected batch name 'warehouse_q3', got %q", run.BatchName)
				}
				if run.RanAt.IsZero() {
					t.Error("ran_at should be set")
				}
				if run.RanAt.Location() != time.UTC {
					t.Errorf("ran_at should be UTC, got %v", run.RanAt.Location())
				}
				if run.Summary.Score != 55 {
					t.Errorf("expected score 55, got %d", run.Summary.Score)
				}
			},
		},
		{
			name: "save run nil report",
			setup: func(t *testing.T, store *SQLiteStore) *Run {
				return nil
			},
			operation: func(t *testing.T, store *SQLiteStore, run *Run) {
				if _, err := store.SaveRun("batch", nil); err == nil {
					t.Error("expected error for nil report")
				}
			},
		},
		{
			name: "get run round-trips the report",
			setup: func(t *testing.T, store *SQLiteStore) *Run {
				run, err := store.SaveRun("warehouse_q3", testReport())
				if err != nil {
					t.Fatalf("failed to save run: %v", err)
				}
				return run
			},
			operation: func(t *testing.T, store *SQLiteStore, run *Run) {
				retrieved, err := store.GetRun(run.ID)
				if err != nil {
					t.Fatalf("failed to get run: %v", err)
				}
				if retrieved.ID != run.ID {
					t.Errorf("expected ID %q, got %q", run.ID, retrieved.ID)
				}
				if retrieved.Report == nil {
					t.Fatal("expected report to be populated")
				}
				if len(retrieved.Report.Violations) != 2 {
					t.Fatalf("expected 2 violations, got %d", len(retrieved.Report.Violations))
				}
				if retrieved.Report.Violations[0].RuleID != "CN02" {
					t.Errorf("expected first violation CN02, got %q", retrieved.Report.Violations[0].RuleID)
				}
				if retrieved.Summary != run.Summary {
					t.Errorf("expected summary %+v, got %+v", run.Summary, retrieved.Summary)
				}
			},
		},
		{
			name: "get run not found",
			setup: func(t *testing.T, store *SQLiteStore) *Run {
				return nil
			},
			operation: func(t *testing.T, store *SQLiteStore, run *Run) {
				_, err := store.GetRun("nonexistent-id")
				if err == nil {
					t.Fatal("expected error for nonexistent run")
				}
				if !strings.Contains(err.Error(), "run not found") {
					t.Errorf("expected run-not-found error, got %v", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := setupTestStore(t)
			defer store.Close()

			var run *Run
			if tt.setup != nil {
				run = tt.setup(t, store)
			}
			if tt.operation != nil {
				tt.operation(t, store, run)
			}
		})
	}
}

func TestSQLiteStore_ListRuns(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	var saved []*Run
	for _, batch := range []string{"first", "second", "third"} {
		run, err := store.SaveRun(batch, testReport())
		if err != nil {
			t.Fatalf("failed to save run %q: %v", batch, err)
		}
		saved = append(saved, run)
		time.Sleep(5 * time.Millisecond)
	}

	runs, err := store.ListRuns(10)
	if err != nil {
		t.Fatalf("failed to list runs: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if runs[0].ID != saved[2].ID {
		t.Errorf("expected newest run %q first, got %q", saved[2].ID, runs[0].ID)
	}
	if runs[2].ID != saved[0].ID {
		t.Errorf("expected oldest run %q last, got %q", saved[0].ID, runs[2].ID)
	}
	for _, run := range runs {
		if run.Report != nil {
			t.Errorf("listing should not hydrate reports, run %s has one", run.ID)
		}
	}

	limited, err := store.ListRuns(2)
	if err != nil {
		t.Fatalf("failed to list limited runs: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected 2 runs with limit 2, got %d", len(limited))
	}

	defaulted, err := store.ListRuns(0)
	if err != nil {
		t.Fatalf("failed to list with default limit: %v", err)
	}
	if len(defaulted) != 3 {
		t.Errorf("expected all 3 runs under default limit, got %d", len(defaulted))
	}
}

func TestSQLiteStore_FileBackedPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store := NewSQLiteStore(nil)
	if err := store.Open(path); err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := store.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	run, err := store.SaveRun("persisted", testReport())
	if err != nil {
		t.Fatalf("failed to save run: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	reopened := NewSQLiteStore(nil)
	if err := reopened.Open(path); err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer reopened.Close()
	if err := reopened.Migrate(); err != nil {
		t.Fatalf("failed to re-migrate: %v", err)
	}

	retrieved, err := reopened.GetRun(run.ID)
	if err != nil {
		t.Fatalf("failed to get run after reopen: %v", err)
	}
	if retrieved.BatchName != "persisted" {
		t.Errorf("expected batch name 'persisted', got %q", retrieved.BatchName)
	}
	if len(retrieved.Report.Violations) != 2 {
		t.Errorf("expected 2 violations after reopen, got %d", len(retrieved.Report.Violations))
	}
}
