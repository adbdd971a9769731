// Package engine runs the governance pipeline over a batch of dictionary
// records. Record-scope rules fan out across a bounded worker pool, batch-scope
// rules run after every record task has finished, and the assembler turns the
// combined findings into the canonical report.
package engine

import (
	"errors"
	"io"
	"log/slog"
	"runtime"

	"github.com/leapstack-labs/dictlint/pkg/identifier"
	"github.com/leapstack-labs/dictlint/pkg/lint"
	"github.com/leapstack-labs/dictlint/pkg/lint/batch"
	"github.com/leapstack-labs/dictlint/pkg/lint/record"
	"github.com/leapstack-labs/dictlint/pkg/spell"
	"github.com/leapstack-labs/dictlint/pkg/vocab"
)

// Config holds engine configuration.
type Config struct {
	// Vocab is the approved vocabulary and classword set. Required: every
	// naming rule resolves against it.
	Vocab *vocab.Store
	// Speller checks description spelling (optional, no-op if nil)
	Speller spell.Checker
	// Singular decides whether a name segment is singular (optional,
	// heuristic policy if nil)
	Singular identifier.SingularPolicy
	// Lint controls rule enablement, severity overrides and options
	// (optional, defaults if nil)
	Lint *lint.Config
	// TableDirection and ColumnDirection are the concept assembly
	// conventions for technical names. They are taken as given; callers
	// choose the convention, the engine never guesses it from content.
	TableDirection  identifier.Direction
	ColumnDirection identifier.Direction
	// Workers caps record-scope concurrency (0 means GOMAXPROCS)
	Workers int
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// Engine validates batches of dictionary records.
type Engine struct {
	cfg      Config
	logger   *slog.Logger
	records  *record.Analyzer
	batchers *batch.Analyzer
}

// New creates an engine, filling optional collaborators with their defaults.
// A missing vocabulary is a configuration error, not a validation finding.
func New(cfg Config) (*Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if cfg.Vocab == nil {
		return nil, errors.New("engine: vocabulary store is required")
	}
	if cfg.Speller == nil {
		cfg.Speller = spell.Noop{}
	}
	if cfg.Singular == nil {
		cfg.Singular = identifier.NewHeuristicPolicy()
	}
	if cfg.Lint == nil {
		cfg.Lint = lint.NewConfig()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}

	logger.Debug("initializing engine",
		"workers", cfg.Workers,
		"table_direction", cfg.TableDirection.String(),
		"column_direction", cfg.ColumnDirection.String())

	return &Engine{
		cfg:      cfg,
		logger:   logger,
		records:  record.NewAnalyzer(cfg.Lint),
		batchers: batch.NewAnalyzer(cfg.Lint),
	}, nil
}

// Workers returns the effective record-scope concurrency limit.
func (e *Engine) Workers() int {
	return e.cfg.Workers
}
