package column

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/identifier"
	"github.com/leapstack-labs/dictlint/pkg/lint"
	"github.com/leapstack-labs/dictlint/pkg/lint/record"
	"github.com/leapstack-labs/dictlint/pkg/vocab"
)

func testContext(t *testing.T, cols ...core.ColumnRecord) *record.Context {
	t.Helper()
	store, err := vocab.NewStore([]vocab.Entry{
		{Term: "PROVIDER", Abbreviation: "PROVR"},
		{Term: "LOCATION", Abbreviation: "LOC"},
		{Term: "ENCOUNTER", Abbreviation: "ENC"},
		{Term: "REGISTRATION", Abbreviation: "REGN"},
	}, vocab.DefaultClasswords())
	require.NoError(t, err)

	table := core.TableRecord{Name: "T_PROVR_LOC_DIM", Columns: cols}
	return record.NewContext(nil, table, record.Deps{
		Vocab:           store,
		ColumnDirection: identifier.RightToLeft,
	})
}

func TestCN01_ColumnLength(t *testing.T) {
	tests := []struct {
		name       string
		columnName string
		wantDiags  int
	}{
		{
			name:       "exactly thirty characters passes",
			columnName: "IDN_" + strings.Repeat("A", 26),
			wantDiags:  0,
		},
		{
			name:       "thirty one characters fails",
			columnName: "IDN_" + strings.Repeat("A", 27),
			wantDiags:  1,
		},
		{
			name:       "short name passes",
			columnName: "IDN_PROVR",
			wantDiags:  0,
		},
		{
			name:       "blank name is owned by the malformed-record rule",
			columnName: "",
			wantDiags:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t, core.ColumnRecord{Name: tt.columnName})
			diags := checkColumnLength(ctx)

			assert.Len(t, diags, tt.wantDiags)
		})
	}
}

func TestCN02_ColumnClassword(t *testing.T) {
	tests := []struct {
		name       string
		columnName string
		wantDiags  int
	}{
		{
			name:       "missing classword",
			columnName: "PROVR_LOC",
			wantDiags:  1,
		},
		{
			name:       "IDN classword passes",
			columnName: "IDN_PROVR",
			wantDiags:  0,
		},
		{
			name:       "longest classword code wins",
			columnName: "IDN_EDW_PROVR",
			wantDiags:  0,
		},
		{
			name:       "CDE classword passes",
			columnName: "CDE_TYPE_ENC",
			wantDiags:  0,
		},
		{
			name:       "name shorter than a classword",
			columnName: "XY",
			wantDiags:  1,
		},
		{
			name:       "blank name is owned by the malformed-record rule",
			columnName: "",
			wantDiags:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t, core.ColumnRecord{Name: tt.columnName})
			diags := checkColumnClassword(ctx)

			assert.Len(t, diags, tt.wantDiags)
		})
	}
}

func TestCN02_ReportsLeadingCandidate(t *testing.T) {
	ctx := testContext(t, core.ColumnRecord{Name: "PROVR_LOC"})

	diags := checkColumnClassword(ctx)

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "'PRO'")
}

func TestCN03_ColumnAbbreviation(t *testing.T) {
	tests := []struct {
		name         string
		columnName   string
		englishName  string
		wantDiags    int
		wantSeverity core.Severity
	}{
		{
			name:        "long word abbreviated",
			columnName:  "CDE_REGN",
			englishName: "Registration Code",
			wantDiags:   0,
		},
		{
			name:         "long word left unabbreviated",
			columnName:   "CDE_REGISTRATION",
			englishName:  "Registration Code",
			wantDiags:    1,
			wantSeverity: core.SeverityError,
		},
		{
			name:         "long word without a vocabulary entry is a policy gap",
			columnName:   "CDE_CNFD",
			englishName:  "Confidentiality Code",
			wantDiags:    1,
			wantSeverity: core.SeverityWarning,
		},
		{
			name:        "short words need no abbreviation",
			columnName:  "CDE_TYPE_ENC",
			englishName: "Encounter Type Code",
			wantDiags:   0,
		},
		{
			name:        "blank name is owned by the malformed-record rule",
			columnName:  "",
			englishName: "Registration Code",
			wantDiags:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t, core.ColumnRecord{Name: tt.columnName, EnglishName: tt.englishName})
			diags := checkColumnAbbreviation(ctx)

			require.Len(t, diags, tt.wantDiags)
			if tt.wantDiags > 0 {
				assert.Equal(t, tt.wantSeverity, diags[0].Severity)
			}
		})
	}
}

func TestCN03_MaxWordLengthOption(t *testing.T) {
	store, err := vocab.NewStore([]vocab.Entry{
		{Term: "PROVIDER", Abbreviation: "PROVR"},
	}, vocab.DefaultClasswords())
	require.NoError(t, err)

	cfg := lint.NewConfig().SetOption("CN03", "max_word_length", 5)
	table := core.TableRecord{
		Name:    "T_PROVR_DIM",
		Columns: []core.ColumnRecord{{Name: "CDE_PROVIDER", EnglishName: "Provider Code"}},
	}
	ctx := record.NewContext(nil, table, record.Deps{Vocab: store, Config: cfg})

	diags := checkColumnAbbreviation(ctx)

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "'PROVR'")
}

func TestCN04_ColumnSingular(t *testing.T) {
	tests := []struct {
		name       string
		columnName string
		wantDiags  int
	}{
		{
			name:       "plural subject",
			columnName: "IDN_PROVRS",
			wantDiags:  1,
		},
		{
			name:       "singular subject passes",
			columnName: "IDN_PROVR",
			wantDiags:  0,
		},
		{
			name:       "numeric suffix is skipped",
			columnName: "IDN_EDW_01",
			wantDiags:  0,
		},
		{
			name:       "exception list word passes",
			columnName: "CDE_STS",
			wantDiags:  0,
		},
		{
			name:       "blank name is owned by the malformed-record rule",
			columnName: "",
			wantDiags:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t, core.ColumnRecord{Name: tt.columnName})
			diags := checkColumnSingular(ctx)

			assert.Len(t, diags, tt.wantDiags)
		})
	}
}

func TestCN05_ColumnParts(t *testing.T) {
	tests := []struct {
		name        string
		columnName  string
		englishName string
		wantDiags   int
	}{
		{
			name:        "all segments traceable",
			columnName:  "CDE_TYPE_ENC",
			englishName: "Encounter Type Code",
			wantDiags:   0,
		},
		{
			name:        "private abbreviations",
			columnName:  "CDE_TYP_ENCTR",
			englishName: "Encounter Type Code",
			wantDiags:   1,
		},
		{
			name:        "numeric suffix is traceable",
			columnName:  "IDN_EDW_01",
			englishName: "",
			wantDiags:   0,
		},
		{
			name:        "blank name is owned by the malformed-record rule",
			columnName:  "",
			englishName: "Encounter Type Code",
			wantDiags:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t, core.ColumnRecord{Name: tt.columnName, EnglishName: tt.englishName})
			diags := checkColumnParts(ctx)

			assert.Len(t, diags, tt.wantDiags)
		})
	}
}

func TestCN05_ReportsSegmentsInConceptOrder(t *testing.T) {
	ctx := testContext(t, core.ColumnRecord{Name: "CDE_TYP_ENCTR", EnglishName: "Encounter Type Code"})

	diags := checkColumnParts(ctx)

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "ENCTR, TYP")
}
