// Package record runs the record-scope governance rules: everything that can
// be decided from one table record and its columns, with the vocabulary and
// collaborators injected. Rules in this scope are pure with the single
// exception of the spelling collaborator call.
package record

import (
	"context"

	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/identifier"
	"github.com/leapstack-labs/dictlint/pkg/lint"
	"github.com/leapstack-labs/dictlint/pkg/spell"
	"github.com/leapstack-labs/dictlint/pkg/vocab"
)

// Deps carries the collaborators a record validation needs. Nil collaborators
// get sensible defaults: no-op speller, heuristic singular policy, an empty
// config. Directions are taken as given - the zero value is LeftToRight, and
// the engine sets the approved conventions (tables left-to-right, columns
// right-to-left) from its config.
type Deps struct {
	Vocab           *vocab.Store
	Speller         spell.Checker
	Singular        identifier.SingularPolicy
	TableDirection  identifier.Direction
	ColumnDirection identifier.Direction
	Config          *lint.Config
}

// Context is one table's validation context. It is request-scoped and
// carries the run's context.Context for collaborator calls.
type Context struct {
	ctx   context.Context
	table core.TableRecord
	deps  Deps
}

// NewContext builds a record validation context. The table record is held by
// value; rules can never mutate the caller's batch.
func NewContext(ctx context.Context, table core.TableRecord, deps Deps) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if deps.Speller == nil {
		deps.Speller = spell.Noop{}
	}
	if deps.Singular == nil {
		deps.Singular = identifier.NewHeuristicPolicy()
	}
	if deps.Config == nil {
		deps.Config = lint.NewConfig()
	}
	return &Context{ctx: ctx, table: table, deps: deps}
}

// Ctx returns the run context for collaborator calls.
func (c *Context) Ctx() context.Context { return c.ctx }

// Table returns the record under validation.
func (c *Context) Table() core.TableRecord { return c.table }

// Vocab returns the vocabulary store; may be nil when a rule is exercised
// in isolation, so rules guard their lookups.
func (c *Context) Vocab() *vocab.Store { return c.deps.Vocab }

// Speller returns the spelling collaborator.
func (c *Context) Speller() spell.Checker { return c.deps.Speller }

// Singular returns the singularity policy.
func (c *Context) Singular() identifier.SingularPolicy { return c.deps.Singular }

// TableDirection returns the table-name assembly direction.
func (c *Context) TableDirection() identifier.Direction { return c.deps.TableDirection }

// ColumnDirection returns the column-name assembly direction.
func (c *Context) ColumnDirection() identifier.Direction { return c.deps.ColumnDirection }

// Config returns the lint configuration.
func (c *Context) Config() *lint.Config { return c.deps.Config }

// Options returns the option map configured for a rule.
func (c *Context) Options(ruleID string) map[string]any {
	return c.deps.Config.Options(ruleID)
}
