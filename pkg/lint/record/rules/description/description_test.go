package description

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/lint/record"
	"github.com/leapstack-labs/dictlint/pkg/spell"
)

func testContext(speller spell.Checker, cols ...core.ColumnRecord) *record.Context {
	table := core.TableRecord{Name: "T_PROVR_LOC_DIM", EnglishName: "Provider Location", Columns: cols}
	return record.NewContext(nil, table, record.Deps{Speller: speller})
}

func TestDS01_DescriptionSpelling(t *testing.T) {
	flagging := spell.CheckerFunc(func(_ context.Context, _ string) ([]string, error) {
		return []string{"condtion"}, nil
	})
	clean := spell.CheckerFunc(func(_ context.Context, _ string) ([]string, error) {
		return nil, nil
	})

	tests := []struct {
		name      string
		speller   spell.Checker
		column    core.ColumnRecord
		wantDiags int
	}{
		{
			name:      "flagged words are reported",
			speller:   flagging,
			column:    core.ColumnRecord{Name: "CDE_ERROR", Description: "Indicates the error condtion"},
			wantDiags: 1,
		},
		{
			name:      "clean description passes",
			speller:   clean,
			column:    core.ColumnRecord{Name: "CDE_ERROR", Description: "Indicates the error condition"},
			wantDiags: 0,
		},
		{
			name:      "empty description is DS02's concern",
			speller:   flagging,
			column:    core.ColumnRecord{Name: "CDE_ERROR"},
			wantDiags: 0,
		},
		{
			name:      "blank name is owned by the malformed-record rule",
			speller:   flagging,
			column:    core.ColumnRecord{Name: "", Description: "Indicates the error condtion"},
			wantDiags: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := checkDescriptionSpelling(testContext(tt.speller, tt.column))

			assert.Len(t, diags, tt.wantDiags)
		})
	}
}

func TestDS01_CollaboratorFailureDegrades(t *testing.T) {
	failing := spell.CheckerFunc(func(_ context.Context, _ string) ([]string, error) {
		return nil, errors.New("dictionary offline")
	})
	col := core.ColumnRecord{Name: "CDE_ERROR", Description: "Indicates the error condition"}

	diags := checkDescriptionSpelling(testContext(failing, col))

	require.Len(t, diags, 1)
	assert.Equal(t, core.SeverityWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "could not be verified")
}

func TestDS01_CollaboratorPanicDegrades(t *testing.T) {
	panicking := spell.CheckerFunc(func(_ context.Context, _ string) ([]string, error) {
		panic("speller bug")
	})
	col := core.ColumnRecord{Name: "CDE_ERROR", Description: "Indicates the error condition"}

	diags := checkDescriptionSpelling(testContext(panicking, col))

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "could not be verified")
}

func TestDS02_DescriptionRequired(t *testing.T) {
	tests := []struct {
		name      string
		column    core.ColumnRecord
		wantDiags int
	}{
		{
			name:      "missing description",
			column:    core.ColumnRecord{Name: "CDE_ERROR"},
			wantDiags: 1,
		},
		{
			name:      "whitespace-only description",
			column:    core.ColumnRecord{Name: "CDE_ERROR", Description: "   "},
			wantDiags: 1,
		},
		{
			name:      "described column passes",
			column:    core.ColumnRecord{Name: "CDE_ERROR", Description: "Indicates the error condition"},
			wantDiags: 0,
		},
		{
			name:      "blank name is owned by the malformed-record rule",
			column:    core.ColumnRecord{Name: ""},
			wantDiags: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := checkDescriptionRequired(testContext(nil, tt.column))

			assert.Len(t, diags, tt.wantDiags)
		})
	}
}

func TestDS03_EnglishNameCase(t *testing.T) {
	tests := []struct {
		name        string
		englishName string
		wantDiags   int
	}{
		{
			name:        "title case passes",
			englishName: "Provider Location",
			wantDiags:   0,
		},
		{
			name:        "lowercase words",
			englishName: "provider location",
			wantDiags:   1,
		},
		{
			name:        "capitalized stopword",
			englishName: "Date Of Birth",
			wantDiags:   1,
		},
		{
			name:        "lowercase stopword passes",
			englishName: "Date of Birth",
			wantDiags:   0,
		},
		{
			name:        "leading stopword is capitalized",
			englishName: "Of Note",
			wantDiags:   0,
		},
		{
			name:        "all caps",
			englishName: "PROVIDER LOCATION",
			wantDiags:   1,
		},
		{
			name:        "empty English name is exempt",
			englishName: "",
			wantDiags:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := core.ColumnRecord{Name: "CDE_ERROR", EnglishName: tt.englishName}
			diags := checkEnglishNameCase(testContext(nil, col))

			assert.Len(t, diags, tt.wantDiags)
		})
	}
}

func TestDS03_TableEnglishNameChecked(t *testing.T) {
	table := core.TableRecord{Name: "T_PROVR_LOC_DIM", EnglishName: "provider location"}
	ctx := record.NewContext(nil, table, record.Deps{})

	diags := checkEnglishNameCase(ctx)

	require.Len(t, diags, 1)
	assert.Equal(t, core.EntityTable, diags[0].Entity)
	assert.Contains(t, diags[0].Message, "'Provider Location'")
}
