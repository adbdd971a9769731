package core_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/dictlint/pkg/core"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input  string
		want   core.Severity
		wantOK bool
	}{
		{"error", core.SeverityError, true},
		{"Warning", core.SeverityWarning, true},
		{"INFO", core.SeverityInfo, true},
		{"hint", core.SeverityHint, true},
		{" error ", core.SeverityError, true},
		{"critical", core.SeverityWarning, false},
		{"", core.SeverityWarning, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := core.ParseSeverity(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestSeverityJSONRoundTrip(t *testing.T) {
	for _, sev := range []core.Severity{core.SeverityError, core.SeverityWarning, core.SeverityInfo, core.SeverityHint} {
		data, err := json.Marshal(sev)
		require.NoError(t, err)
		assert.Equal(t, `"`+sev.String()+`"`, string(data))

		var back core.Severity
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, sev, back)
	}
}

func TestParseDataType(t *testing.T) {
	tests := []struct {
		raw  string
		want core.DataType
	}{
		{"NUMBER", core.TypeNumber},
		{"decimal", core.TypeNumber},
		{"BIGINT", core.TypeNumber},
		{"VARCHAR2", core.TypeVarchar},
		{"text", core.TypeVarchar},
		{"DATE", core.TypeDate},
		{"TIMESTAMP", core.TypeDate},
		{" timestamp_ntz ", core.TypeDate},
		{"BLOB", core.TypeOther},
		{"", core.TypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, core.ParseDataType(tt.raw))
		})
	}
}

func TestParseNullability(t *testing.T) {
	assert.Equal(t, core.Nullable, core.ParseNullability("YES"))
	assert.Equal(t, core.Nullable, core.ParseNullability("null"))
	assert.Equal(t, core.NotNull, core.ParseNullability("NOT NULL"))
	assert.Equal(t, core.NotNull, core.ParseNullability("no"))
	assert.Equal(t, core.NullabilityUnknown, core.ParseNullability(""))
	assert.Equal(t, core.NullabilityUnknown, core.ParseNullability("maybe"))
}

func TestDeriveSuffix(t *testing.T) {
	tests := []struct {
		name string
		want core.SuffixCategory
	}{
		{"T_PROVR_LOC_DIM", core.SuffixDimension},
		{"T_ENC_FACT", core.SuffixFact},
		{"T_CLAIM_STG", core.SuffixStaging},
		{"T_USAGE_RPTNG", core.SuffixReporting},
		{"T_PROVIDER", core.SuffixNone},
		{"", core.SuffixNone},
		{"T_X_DIMENSION", core.SuffixNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, core.DeriveSuffix(tt.name))
		})
	}
}

func TestReportJSONRoundTrip(t *testing.T) {
	report := core.Report{
		Violations: []core.Violation{
			{
				RuleID:   "TN01",
				Severity: core.SeverityError,
				Entity:   core.EntityTable,
				Name:     "PROVIDER_DIM",
				Table:    "PROVIDER_DIM",
				Message:  "table name must start with the T prefix",
			},
			{
				RuleID:   "CN04",
				Severity: core.SeverityWarning,
				Entity:   core.EntityColumn,
				Name:     "NAM_PROVIDERS",
				Table:    "PROVIDER_DIM",
				Message:  `segment "PROVIDERS" appears plural`,
			},
		},
		Summary: core.Summary{Tables: 1, Columns: 3, Errors: 1, Warnings: 1, Score: 76},
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var back core.Report
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, report, back)
}

func TestSummaryHelpers(t *testing.T) {
	s := core.Summary{Errors: 2, Warnings: 1, Infos: 3}

	assert.Equal(t, 6, s.Total())
	assert.True(t, s.HasSeverityAtOrAbove(core.SeverityError))
	assert.True(t, s.HasSeverityAtOrAbove(core.SeverityWarning))
	assert.True(t, s.HasSeverityAtOrAbove(core.SeverityHint))

	clean := core.Summary{}
	assert.False(t, clean.HasSeverityAtOrAbove(core.SeverityHint))

	warnOnly := core.Summary{Warnings: 4}
	assert.False(t, warnOnly.HasSeverityAtOrAbove(core.SeverityError))
	assert.True(t, warnOnly.HasSeverityAtOrAbove(core.SeverityWarning))
}

func TestColumnRecordIsKey(t *testing.T) {
	assert.False(t, core.ColumnRecord{}.IsKey())
	assert.True(t, core.ColumnRecord{PrimaryKey: true}.IsKey())
	assert.True(t, core.ColumnRecord{ForeignKey: true}.IsKey())
}
