package malformed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/lint/record"
)

func TestRC01_TableNameMissing(t *testing.T) {
	tests := []struct {
		name      string
		table     core.TableRecord
		wantDiags int
	}{
		{
			name:      "blank table name",
			table:     core.TableRecord{Name: ""},
			wantDiags: 1,
		},
		{
			name:      "whitespace-only table name",
			table:     core.TableRecord{Name: "   "},
			wantDiags: 1,
		},
		{
			name:      "named table passes",
			table:     core.TableRecord{Name: "T_PROVR_LOC_DIM"},
			wantDiags: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := record.NewContext(nil, tt.table, record.Deps{})
			diags := checkTableNameMissing(ctx)

			assert.Len(t, diags, tt.wantDiags)
		})
	}
}

func TestRC01_MessageCarriesEnglishName(t *testing.T) {
	table := core.TableRecord{Name: "", EnglishName: "Provider Location"}
	ctx := record.NewContext(nil, table, record.Deps{})

	diags := checkTableNameMissing(ctx)

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "'Provider Location'")
}

func TestRC02_ColumnNameMissing(t *testing.T) {
	table := core.TableRecord{
		Name: "T_PROVR_LOC_DIM",
		Columns: []core.ColumnRecord{
			{Name: "IDN_PROVR"},
			{Name: "", EnglishName: "Provider Type Code"},
			{Name: "CDE_TYPE_ENC"},
			{Name: "  "},
		},
	}
	ctx := record.NewContext(nil, table, record.Deps{})

	diags := checkColumnNameMissing(ctx)

	require.Len(t, diags, 2)
	assert.Contains(t, diags[0].Message, "Column 2 of table 'T_PROVR_LOC_DIM'")
	assert.Contains(t, diags[0].Message, "'Provider Type Code'")
	assert.Contains(t, diags[1].Message, "Column 4 of table 'T_PROVR_LOC_DIM'")
}
