package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/dictlint/pkg/core"
)

func vio(ruleID string, entity core.EntityType, name, table, message string) core.Violation {
	return core.Violation{
		RuleID:   ruleID,
		Severity: core.SeverityError,
		Entity:   entity,
		Name:     name,
		Table:    table,
		Message:  message,
	}
}

func TestNewReport_Empty(t *testing.T) {
	report := NewReport(nil, nil)

	assert.Empty(t, report.Violations)
	assert.Equal(t, 0, report.Summary.Tables)
	assert.Equal(t, 0, report.Summary.Columns)
	assert.Equal(t, 100, report.Summary.Score)
}

func TestNewReport_CleanBatchScoresFull(t *testing.T) {
	tables := []core.TableRecord{
		{Name: "T_PROVR_DIM", Columns: []core.ColumnRecord{{Name: "IDN_PROVR"}, {Name: "NAM_PROVR"}}},
	}

	report := NewReport(tables, nil)

	assert.Equal(t, 1, report.Summary.Tables)
	assert.Equal(t, 2, report.Summary.Columns)
	assert.Equal(t, 100, report.Summary.Score)
	assert.Equal(t, 0, report.Summary.Total())
}

func TestNewReport_CountsBySeverity(t *testing.T) {
	violations := []core.Violation{
		{RuleID: "A", Severity: core.SeverityError, Message: "e1"},
		{RuleID: "B", Severity: core.SeverityError, Message: "e2"},
		{RuleID: "C", Severity: core.SeverityWarning, Message: "w1"},
		{RuleID: "D", Severity: core.SeverityInfo, Message: "i1"},
		{RuleID: "E", Severity: core.SeverityHint, Message: "h1"},
	}

	report := NewReport(nil, violations)

	assert.Equal(t, 2, report.Summary.Errors)
	assert.Equal(t, 1, report.Summary.Warnings)
	assert.Equal(t, 1, report.Summary.Infos)
	assert.Equal(t, 1, report.Summary.Hints)
	assert.Equal(t, 5, report.Summary.Total())
}

func TestNewReport_Dedupe(t *testing.T) {
	v := vio("CN01", core.EntityColumn, "NAM_PROVR", "T_PROVR_DIM", "too long")

	report := NewReport(nil, []core.Violation{v, v, v})

	require.Len(t, report.Violations, 1)
	assert.Equal(t, 1, report.Summary.Errors)
}

func TestNewReport_DedupeKeepsDistinctMessages(t *testing.T) {
	a := vio("CN01", core.EntityColumn, "NAM_PROVR", "T_PROVR_DIM", "first finding")
	b := vio("CN01", core.EntityColumn, "NAM_PROVR", "T_PROVR_DIM", "second finding")

	report := NewReport(nil, []core.Violation{a, b})

	assert.Len(t, report.Violations, 2)
}

func TestNewReport_CanonicalOrder(t *testing.T) {
	violations := []core.Violation{
		vio("CN02", core.EntityColumn, "NAM_LOC", "T_LOC_DIM", "m"),
		vio("TN01", core.EntityTable, "T_LOC_DIM", "T_LOC_DIM", "m"),
		vio("CN01", core.EntityColumn, "IDN_LOC", "T_LOC_DIM", "m"),
		vio("TN01", core.EntityTable, "T_ENC_FACT", "T_ENC_FACT", "m"),
		vio("CN01", core.EntityColumn, "NAM_LOC", "T_LOC_DIM", "m"),
	}

	report := NewReport(nil, violations)

	require.Len(t, report.Violations, 5)
	// T_ENC_FACT sorts before T_LOC_DIM; within a table the table's own
	// findings come first, then columns by name, then rule ID.
	assert.Equal(t, "T_ENC_FACT", report.Violations[0].Table)
	assert.Equal(t, core.EntityTable, report.Violations[1].Entity)
	assert.Equal(t, "T_LOC_DIM", report.Violations[1].Name)
	assert.Equal(t, "IDN_LOC", report.Violations[2].Name)
	assert.Equal(t, "NAM_LOC", report.Violations[3].Name)
	assert.Equal(t, "CN01", report.Violations[3].RuleID)
	assert.Equal(t, "CN02", report.Violations[4].RuleID)
}

func TestNewReport_OrderIndependentOfInput(t *testing.T) {
	forward := []core.Violation{
		vio("TN01", core.EntityTable, "T_LOC_DIM", "T_LOC_DIM", "m"),
		vio("CN01", core.EntityColumn, "IDN_LOC", "T_LOC_DIM", "m"),
		vio("CN02", core.EntityColumn, "NAM_LOC", "T_LOC_DIM", "m"),
	}
	backward := []core.Violation{forward[2], forward[1], forward[0]}

	a := NewReport(nil, forward)
	b := NewReport(nil, backward)

	assert.Equal(t, a, b)
}

func TestNewReport_ScoreReflectsImpact(t *testing.T) {
	tables := []core.TableRecord{
		{Name: "T_A", Columns: []core.ColumnRecord{{Name: "C1"}}},
	}
	violations := []core.Violation{
		{RuleID: "A", Severity: core.SeverityError, Message: "m", ImpactScore: 40},
	}

	report := NewReport(tables, violations)

	// 40 impact over 2 entities is a 20 point penalty.
	assert.Equal(t, 80, report.Summary.Score)
}

func TestNewReport_ScoreFloorsAtZero(t *testing.T) {
	tables := []core.TableRecord{{Name: "T_A"}}
	violations := []core.Violation{
		{RuleID: "A", Message: "m1", ImpactScore: 90},
		{RuleID: "B", Message: "m2", ImpactScore: 90},
	}

	report := NewReport(tables, violations)

	assert.Equal(t, 0, report.Summary.Score)
}

func TestSummary_HasSeverityAtOrAbove(t *testing.T) {
	s := core.Summary{Warnings: 2}

	assert.False(t, s.HasSeverityAtOrAbove(core.SeverityError))
	assert.True(t, s.HasSeverityAtOrAbove(core.SeverityWarning))
	assert.True(t, s.HasSeverityAtOrAbove(core.SeverityInfo))
	assert.True(t, s.HasSeverityAtOrAbove(core.SeverityHint))
}
