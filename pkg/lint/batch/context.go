// Package batch runs the batch-scope governance rules: checks that need the
// whole record set at once. Batch rules execute only after all record-scope
// work has finished; the engine owns that barrier.
package batch

import (
	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/lint"
)

// Context is the whole batch's validation context. Rules iterate the tables
// in input order and never mutate them; deterministic output order is the
// report assembler's job.
type Context struct {
	tables []core.TableRecord
	config *lint.Config
}

// ColumnRef is one column with its owner attribution.
type ColumnRef struct {
	Table  string
	Column core.ColumnRecord
}

// NewContext builds a batch validation context.
func NewContext(tables []core.TableRecord, config *lint.Config) *Context {
	if config == nil {
		config = lint.NewConfig()
	}
	return &Context{tables: tables, config: config}
}

// Tables returns the batch in input order.
func (c *Context) Tables() []core.TableRecord { return c.tables }

// Columns returns every column in the batch in input order, each carrying
// its owner table's name.
func (c *Context) Columns() []ColumnRef {
	var refs []ColumnRef
	for _, t := range c.tables {
		for _, col := range t.Columns {
			refs = append(refs, ColumnRef{Table: t.Name, Column: col})
		}
	}
	return refs
}

// Config returns the lint configuration.
func (c *Context) Config() *lint.Config { return c.config }

// Options returns the option map configured for a rule.
func (c *Context) Options(ruleID string) map[string]any {
	return c.config.Options(ruleID)
}
