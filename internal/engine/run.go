package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/lint"
	"github.com/leapstack-labs/dictlint/pkg/lint/batch"
	"github.com/leapstack-labs/dictlint/pkg/lint/record"
)

// Run validates a batch using a two-phase approach:
// Phase 1: record-scope rules, one task per table, bounded by Workers
// Phase 2: batch-scope rules, after every record task has finished
// The assembled report is deterministic regardless of input order and
// phase 1 scheduling.
func (e *Engine) Run(ctx context.Context, tables []core.TableRecord) (*core.Report, error) {
	e.logger.Info("starting validation", "tables", len(tables))

	deps := record.Deps{
		Vocab:           e.cfg.Vocab,
		Speller:         e.cfg.Speller,
		Singular:        e.cfg.Singular,
		TableDirection:  e.cfg.TableDirection,
		ColumnDirection: e.cfg.ColumnDirection,
		Config:          e.cfg.Lint,
	}

	// Phase 1: record scope. Each task writes its own slot of results, so
	// the collected violations need no locks and keep table order.
	results := make([][]core.Violation, len(tables))

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(e.cfg.Workers)
	for i, table := range tables {
		i, table := i, table
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			rc := record.NewContext(egctx, table, deps)
			results[i] = e.records.Analyze(rc)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		e.logger.Error("validation aborted", "error", err)
		return nil, err
	}

	e.logger.Debug("record scope complete", "tables", len(tables))

	// Phase 2: batch scope. Runs only once the barrier above has passed;
	// batch rules may assume they see every record.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	bc := batch.NewContext(tables, e.cfg.Lint)
	batchViolations := e.batchers.Analyze(bc)

	e.logger.Debug("batch scope complete", "violations", len(batchViolations))

	var all []core.Violation
	for _, vios := range results {
		all = append(all, vios...)
	}
	all = append(all, batchViolations...)

	report := lint.NewReport(tables, all)

	e.logger.Info("validation complete",
		"violations", len(report.Violations),
		"errors", report.Summary.Errors,
		"warnings", report.Summary.Warnings,
		"score", report.Summary.Score)

	return report, nil
}
