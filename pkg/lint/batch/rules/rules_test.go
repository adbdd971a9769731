package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/lint/batch"
)

func testContext(tables ...core.TableRecord) *batch.Context {
	return batch.NewContext(tables, nil)
}

func col(name, description string) core.ColumnRecord {
	return core.ColumnRecord{Name: name, Description: description}
}

func fk(name, reference string) core.ColumnRecord {
	return core.ColumnRecord{Name: name, ForeignKey: true, FKReference: reference}
}

func TestBD01_DuplicateDescription(t *testing.T) {
	tests := []struct {
		name      string
		tables    []core.TableRecord
		wantDiags int
	}{
		{
			name: "shared description across different columns flags both",
			tables: []core.TableRecord{
				{Name: "T_ENC_FACT", Columns: []core.ColumnRecord{
					col("CDE_ERROR", "Indicates the error condition"),
					col("CDE_STATUS", "Indicates the error condition"),
				}},
			},
			wantDiags: 2,
		},
		{
			name: "unique descriptions pass",
			tables: []core.TableRecord{
				{Name: "T_ENC_FACT", Columns: []core.ColumnRecord{
					col("CDE_ERROR", "The error code"),
					col("CDE_STATUS", "The status code"),
				}},
			},
			wantDiags: 0,
		},
		{
			name: "same column name in different tables may share text",
			tables: []core.TableRecord{
				{Name: "T_ENC_FACT", Columns: []core.ColumnRecord{
					col("IDN_PROVR", "Surrogate key of the provider"),
				}},
				{Name: "T_REGN_FACT", Columns: []core.ColumnRecord{
					col("IDN_PROVR", "Surrogate key of the provider"),
				}},
			},
			wantDiags: 0,
		},
		{
			name: "conformed copy plus a renamed column flags the whole group",
			tables: []core.TableRecord{
				{Name: "T_ENC_FACT", Columns: []core.ColumnRecord{
					col("IDN_PROVR", "Surrogate key of the provider"),
				}},
				{Name: "T_REGN_FACT", Columns: []core.ColumnRecord{
					col("IDN_PROVR", "Surrogate key of the provider"),
					col("IDN_PRSN", "Surrogate key of the provider"),
				}},
			},
			wantDiags: 3,
		},
		{
			name: "blank descriptions are not grouped",
			tables: []core.TableRecord{
				{Name: "T_ENC_FACT", Columns: []core.ColumnRecord{
					col("CDE_ERROR", ""),
					col("CDE_STATUS", "   "),
				}},
			},
			wantDiags: 0,
		},
		{
			name: "descriptions match after trimming",
			tables: []core.TableRecord{
				{Name: "T_ENC_FACT", Columns: []core.ColumnRecord{
					col("CDE_ERROR", "  The code  "),
					col("CDE_STATUS", "The code"),
				}},
			},
			wantDiags: 2,
		},
		{
			name: "comparison is case sensitive",
			tables: []core.TableRecord{
				{Name: "T_ENC_FACT", Columns: []core.ColumnRecord{
					col("CDE_ERROR", "The code"),
					col("CDE_STATUS", "the code"),
				}},
			},
			wantDiags: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vios := checkDuplicateDescription(testContext(tt.tables...))
			assert.Len(t, vios, tt.wantDiags)
		})
	}
}

func TestBD01_MessageNamesAllMembers(t *testing.T) {
	ctx := testContext(core.TableRecord{Name: "T_ENC_FACT", Columns: []core.ColumnRecord{
		col("CDE_ERROR", "Indicates the condition"),
		col("CDE_STATUS", "Indicates the condition"),
	}})
	vios := checkDuplicateDescription(ctx)
	require.Len(t, vios, 2)
	assert.Contains(t, vios[0].Message, "CDE_ERROR (T_ENC_FACT)")
	assert.Contains(t, vios[0].Message, "CDE_STATUS (T_ENC_FACT)")
	assert.Equal(t, "CDE_ERROR", vios[0].Name)
	assert.Equal(t, "CDE_STATUS", vios[1].Name)
}

func TestBN01_CodeNamePair(t *testing.T) {
	tests := []struct {
		name      string
		columns   []core.ColumnRecord
		wantDiags int
	}{
		{
			name:      "code without counterpart",
			columns:   []core.ColumnRecord{col("CDE_TYPE_ENC", "")},
			wantDiags: 1,
		},
		{
			name: "NAM counterpart satisfies",
			columns: []core.ColumnRecord{
				col("CDE_TYPE_ENC", ""),
				col("NAM_TYPE_ENC", ""),
			},
			wantDiags: 0,
		},
		{
			name: "TXT counterpart satisfies",
			columns: []core.ColumnRecord{
				col("CDE_TYPE_ENC", ""),
				col("TXT_TYPE_ENC", ""),
			},
			wantDiags: 0,
		},
		{
			name: "counterpart must match the full remainder",
			columns: []core.ColumnRecord{
				col("CDE_TYPE_ENC", ""),
				col("NAM_TYPE", ""),
			},
			wantDiags: 1,
		},
		{
			name: "two codes one counterpart",
			columns: []core.ColumnRecord{
				col("CDE_TYPE_ENC", ""),
				col("CDE_STS_ENC", ""),
				col("NAM_TYPE_ENC", ""),
			},
			wantDiags: 1,
		},
		{
			name:      "bare classword token is not a code column",
			columns:   []core.ColumnRecord{col("CDE", "")},
			wantDiags: 0,
		},
		{
			name:      "non code columns pass",
			columns:   []core.ColumnRecord{col("AMT_CLAIM", ""), col("NAM_PROVR", "")},
			wantDiags: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(core.TableRecord{Name: "T_ENC_FACT", Columns: tt.columns})
			vios := checkCodeNamePair(ctx)
			assert.Len(t, vios, tt.wantDiags)
		})
	}
}

func TestBN01_CounterpartMustShareTable(t *testing.T) {
	ctx := testContext(
		core.TableRecord{Name: "T_ENC_FACT", Columns: []core.ColumnRecord{col("CDE_TYPE_ENC", "")}},
		core.TableRecord{Name: "T_REGN_FACT", Columns: []core.ColumnRecord{col("NAM_TYPE_ENC", "")}},
	)
	vios := checkCodeNamePair(ctx)
	require.Len(t, vios, 1)
	assert.Equal(t, "CDE_TYPE_ENC", vios[0].Name)
	assert.Equal(t, "T_ENC_FACT", vios[0].Table)
	assert.Equal(t, core.SeverityWarning, vios[0].Severity)
}

func TestBK01_FKReferenceDistinct(t *testing.T) {
	tests := []struct {
		name      string
		columns   []core.ColumnRecord
		wantDiags int
	}{
		{
			name: "numbered family sharing a target flags each member",
			columns: []core.ColumnRecord{
				fk("IDN_EDW_01", "T_EDW_DIM"),
				fk("IDN_EDW_02", "T_EDW_DIM"),
			},
			wantDiags: 2,
		},
		{
			name: "distinct targets pass",
			columns: []core.ColumnRecord{
				fk("IDN_EDW_01", "T_PROVR_DIM"),
				fk("IDN_EDW_02", "T_LOC_DIM"),
			},
			wantDiags: 0,
		},
		{
			name: "blank references are left to the key rules",
			columns: []core.ColumnRecord{
				fk("IDN_EDW_01", ""),
				fk("IDN_EDW_02", "  "),
			},
			wantDiags: 0,
		},
		{
			name: "different families may share a target",
			columns: []core.ColumnRecord{
				fk("IDN_PROVR", "T_PROVR_DIM"),
				fk("IDN_PROVR_ATND", "T_PROVR_DIM"),
			},
			wantDiags: 0,
		},
		{
			name: "non foreign keys are ignored",
			columns: []core.ColumnRecord{
				col("IDN_EDW_01", ""),
				col("IDN_EDW_02", ""),
			},
			wantDiags: 0,
		},
		{
			name: "three members sharing one target flag all three",
			columns: []core.ColumnRecord{
				fk("IDN_EDW_01", "T_EDW_DIM"),
				fk("IDN_EDW_02", "T_EDW_DIM"),
				fk("IDN_EDW_03", "T_EDW_DIM"),
			},
			wantDiags: 3,
		},
		{
			name: "only the shared subset of a family is flagged",
			columns: []core.ColumnRecord{
				fk("IDN_EDW_01", "T_EDW_DIM"),
				fk("IDN_EDW_02", "T_EDW_DIM"),
				fk("IDN_EDW_03", "T_LOC_DIM"),
			},
			wantDiags: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(core.TableRecord{Name: "T_ENC_FACT", Columns: tt.columns})
			vios := checkFKReferenceDistinct(ctx)
			assert.Len(t, vios, tt.wantDiags)
		})
	}
}

func TestBK01_FamiliesAreScopedToTheirTable(t *testing.T) {
	ctx := testContext(
		core.TableRecord{Name: "T_ENC_FACT", Columns: []core.ColumnRecord{fk("IDN_EDW_01", "T_EDW_DIM")}},
		core.TableRecord{Name: "T_REGN_FACT", Columns: []core.ColumnRecord{fk("IDN_EDW_01", "T_EDW_DIM")}},
	)
	assert.Empty(t, checkFKReferenceDistinct(ctx))
}

func TestBR01_DuplicateTable(t *testing.T) {
	tests := []struct {
		name      string
		tables    []core.TableRecord
		wantDiags int
	}{
		{
			name: "duplicate name yields one violation",
			tables: []core.TableRecord{
				{Name: "T_PROVR_DIM"},
				{Name: "T_PROVR_DIM"},
			},
			wantDiags: 1,
		},
		{
			name: "names match case insensitively after trimming",
			tables: []core.TableRecord{
				{Name: "T_PROVR_DIM"},
				{Name: "  t_provr_dim "},
			},
			wantDiags: 1,
		},
		{
			name: "unique names pass",
			tables: []core.TableRecord{
				{Name: "T_PROVR_DIM"},
				{Name: "T_LOC_DIM"},
			},
			wantDiags: 0,
		},
		{
			name: "blank names are not grouped",
			tables: []core.TableRecord{
				{Name: ""},
				{Name: "   "},
			},
			wantDiags: 0,
		},
		{
			name: "two duplicated names yield two violations",
			tables: []core.TableRecord{
				{Name: "T_PROVR_DIM"},
				{Name: "T_PROVR_DIM"},
				{Name: "T_LOC_DIM"},
				{Name: "T_LOC_DIM"},
			},
			wantDiags: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vios := checkDuplicateTable(testContext(tt.tables...))
			assert.Len(t, vios, tt.wantDiags)
		})
	}
}

func TestBR01_MessageCarriesOccurrenceCount(t *testing.T) {
	ctx := testContext(
		core.TableRecord{Name: "T_PROVR_DIM"},
		core.TableRecord{Name: "T_PROVR_DIM"},
		core.TableRecord{Name: "T_PROVR_DIM"},
	)
	vios := checkDuplicateTable(ctx)
	require.Len(t, vios, 1)
	assert.Contains(t, vios[0].Message, "3 times")
	assert.Equal(t, core.EntityTable, vios[0].Entity)
	assert.Equal(t, "T_PROVR_DIM", vios[0].Name)
}
