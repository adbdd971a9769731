package sampledata

import (
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/dictlint/pkg/core"
)

func intp(n int) *int { return &n }

func sampleTable() core.TableRecord {
	return core.TableRecord{
		Name:           "T_PROVR_DIM",
		EnglishName:    "Provider",
		SuffixCategory: core.SuffixDimension,
		Columns: []core.ColumnRecord{
			{
				Name:        "IDN_PROVR",
				DataType:    core.TypeNumber,
				Precision:   intp(38),
				Nullability: core.NotNull,
				PrimaryKey:  true,
			},
			{
				Name:        "NAM_PROVR",
				DataType:    core.TypeVarchar,
				Precision:   intp(100),
				Nullability: core.NotNull,
			},
			{
				Name:        "DTE_BIRTH",
				DataType:    core.TypeDate,
				Nullability: core.NotNull,
			},
			{
				Name:        "AMT_CLM",
				DataType:    core.TypeNumber,
				Precision:   intp(12),
				Scale:       intp(2),
				Nullability: core.NotNull,
			},
		},
	}
}

func TestHeader(t *testing.T) {
	got := Header(sampleTable())
	assert.Equal(t, []string{"IDN_PROVR", "NAM_PROVR", "DTE_BIRTH", "AMT_CLM"}, got)
}

func TestRows_Shape(t *testing.T) {
	rows := Rows(sampleTable(), 5)
	require.Len(t, rows, 5)
	for _, row := range rows {
		assert.Len(t, row, 4)
	}
}

func TestRows_Deterministic(t *testing.T) {
	table := sampleTable()

	first := Rows(table, 10)
	second := Rows(table, 10)

	assert.Equal(t, first, second)
}

func TestRows_KeywordHeuristics(t *testing.T) {
	idPattern := regexp.MustCompile(`^ID\d{4}$`)
	moneyPattern := regexp.MustCompile(`^\d+\.\d{2}$`)

	rows := Rows(sampleTable(), 20)
	require.Len(t, rows, 20)

	for _, row := range rows {
		assert.Regexp(t, idPattern, row[0], "key cells follow the ID#### shape")

		birth, err := time.Parse("2006-01-02", row[2])
		require.NoError(t, err, "date cells parse as dates")
		assert.True(t, birth.Before(sampleEpoch), "birth dates lie in the past")

		assert.Regexp(t, moneyPattern, row[3], "amount cells look like money")
	}
}

func TestRows_KeywordBeatsType(t *testing.T) {
	// A code column typed VARCHAR still generates key-shaped values.
	table := core.TableRecord{
		Name: "T_ENC_FACT",
		Columns: []core.ColumnRecord{
			{Name: "CDE_TYPE_ENC", DataType: core.TypeVarchar, Nullability: core.NotNull},
		},
	}

	for _, row := range Rows(table, 10) {
		assert.Regexp(t, `^ID\d{4}$`, row[0])
	}
}

func TestRows_TypeFallbacks(t *testing.T) {
	table := core.TableRecord{
		Name: "T_LOC_DIM",
		Columns: []core.ColumnRecord{
			{Name: "PROVR_LOC", DataType: core.TypeVarchar, Precision: intp(30), Nullability: core.NotNull},
			{Name: "STORY_FLOOR", DataType: core.TypeNumber, Precision: intp(3), Nullability: core.NotNull},
			{Name: "STAMP_LOAD", DataType: core.TypeDate, Nullability: core.NotNull},
			{Name: "BLOB_RAW", DataType: core.TypeOther, Nullability: core.NotNull},
		},
	}

	rows := Rows(table, 20)
	for _, row := range rows {
		assert.NotEmpty(t, row[0])
		assert.LessOrEqual(t, len([]rune(row[0])), 30, "varchar cells respect declared length")

		floor, err := strconv.Atoi(row[1])
		require.NoError(t, err)
		assert.LessOrEqual(t, floor, 999, "number cells respect declared precision")
		assert.GreaterOrEqual(t, floor, 1)

		_, err = time.Parse("2006-01-02", row[2])
		require.NoError(t, err)

		assert.Empty(t, row[3], "untyped columns stay blank")
	}
}

func TestRows_NullableColumnsGoBlankSometimes(t *testing.T) {
	table := core.TableRecord{
		Name: "T_PROVR_DIM",
		Columns: []core.ColumnRecord{
			{Name: "TXT_NOTE", DataType: core.TypeVarchar, Nullability: core.Nullable},
		},
	}

	blanks := 0
	rows := Rows(table, 200)
	for _, row := range rows {
		if row[0] == "" {
			blanks++
		}
	}
	assert.Greater(t, blanks, 0, "nullable columns should produce some blanks")
	assert.Less(t, blanks, 200, "nullable columns should not be all blank")
}

func TestRows_Empty(t *testing.T) {
	assert.Nil(t, Rows(sampleTable(), 0))
	assert.Nil(t, Rows(core.TableRecord{Name: "T_EMPTY_DIM"}, 5))
}
