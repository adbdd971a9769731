// Package state persists validation run history in SQLite. Timestamps live
// only here: reports themselves stay reproducible, history records when they
// were produced.
package state

import (
	"time"

	"github.com/leapstack-labs/dictlint/pkg/core"
)

// Run is one persisted validation run.
type Run struct {
	ID        string       `json:"id"`
	BatchName string       `json:"batch_name"`
	RanAt     time.Time    `json:"ran_at"`
	Summary   core.Summary `json:"summary"`
	// Report carries the full violation list. Populated by GetRun;
	// listings return summaries only.
	Report *core.Report `json:"report,omitempty"`
}

// Store persists and retrieves validation runs.
type Store interface {
	SaveRun(batchName string, report *core.Report) (*Run, error)
	ListRuns(limit int) ([]Run, error)
	GetRun(id string) (*Run, error)
	Close() error
}
