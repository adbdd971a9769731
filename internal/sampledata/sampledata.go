// Package sampledata generates plausible example rows for dictionary
// tables. Generation is deterministic: each column's faker is seeded from a
// hash of table.column, so repeated runs over the same dictionary emit
// identical rows. Dates anchor to a fixed epoch for the same reason.
package sampledata

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/identifier"
)

// sampleEpoch anchors generated dates.
var sampleEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Header returns the column names of a table in declaration order.
func Header(table core.TableRecord) []string {
	names := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		names[i] = col.Name
	}
	return names
}

// Rows generates n sample rows for a table, one cell per column in
// declaration order. Cells are display strings; nullable non-key columns
// come up blank roughly a tenth of the time.
func Rows(table core.TableRecord, n int) [][]string {
	if n <= 0 || len(table.Columns) == 0 {
		return nil
	}

	byColumn := make([][]string, len(table.Columns))
	for i, col := range table.Columns {
		f := columnFaker(table.Name, col.Name)
		values := make([]string, n)
		for r := range values {
			values[r] = cell(f, col)
		}
		byColumn[i] = values
	}

	rows := make([][]string, n)
	for r := range rows {
		row := make([]string, len(byColumn))
		for c := range byColumn {
			row[c] = byColumn[c][r]
		}
		rows[r] = row
	}
	return rows
}

// columnFaker seeds a faker from the fully qualified column name.
func columnFaker(tableName, columnName string) *gofakeit.Faker {
	h := fnv.New64a()
	h.Write([]byte(tableName))
	h.Write([]byte("."))
	h.Write([]byte(columnName))
	return gofakeit.New(int64(h.Sum64()))
}

// cell generates one display value for a column. Name keywords take
// precedence over the declared type, so key and date columns look like keys
// and dates even when the dictionary types them loosely.
func cell(f *gofakeit.Faker, col core.ColumnRecord) string {
	if col.Nullability == core.Nullable && !col.IsKey() && f.Number(1, 10) == 1 {
		return ""
	}

	tokens := identifier.Parse(col.Name).Tokens
	switch {
	case hasToken(tokens, "DTE", "DATE", "BIRTH"):
		return f.DateRange(sampleEpoch.AddDate(-40, 0, 0), sampleEpoch).Format("2006-01-02")
	case hasToken(tokens, "IDN", "ID", "CDE", "CODE", "REF", "NBR", "NUM", "KEY"):
		return fmt.Sprintf("ID%04d", f.Number(0, 9999))
	case hasToken(tokens, "AMT", "AMOUNT", "PRICE", "COST"):
		return strconv.FormatFloat(f.Price(10, 10000), 'f', 2, 64)
	case hasToken(tokens, "NAM", "NAME"):
		return truncate(f.Name(), col.Precision)
	case hasToken(tokens, "TXT", "DESC"):
		return truncate(f.Sentence(4), col.Precision)
	case hasToken(tokens, "FLG", "FLAG", "IND"):
		if f.Bool() {
			return "Y"
		}
		return "N"
	case hasToken(tokens, "PCT", "RATE"):
		return strconv.FormatFloat(f.Float64Range(0, 100), 'f', 1, 64)
	}

	switch col.DataType {
	case core.TypeNumber:
		return numberCell(f, col)
	case core.TypeVarchar:
		return truncate(f.Sentence(3), col.Precision)
	case core.TypeDate:
		return f.DateRange(sampleEpoch.AddDate(-1, 0, 0), sampleEpoch).Format("2006-01-02")
	default:
		return ""
	}
}

// numberCell respects declared precision and scale.
func numberCell(f *gofakeit.Faker, col core.ColumnRecord) string {
	if col.Scale != nil && *col.Scale > 0 {
		return strconv.FormatFloat(f.Float64Range(0, 100000), 'f', *col.Scale, 64)
	}

	limit := 99999
	if col.Precision != nil && *col.Precision > 0 && *col.Precision < 6 {
		limit = 1
		for i := 0; i < *col.Precision; i++ {
			limit *= 10
		}
		limit--
	}
	return strconv.Itoa(f.Number(1, limit))
}

func hasToken(tokens []string, wants ...string) bool {
	for _, tok := range tokens {
		for _, want := range wants {
			if tok == want {
				return true
			}
		}
	}
	return false
}

// truncate clips a value to the column's declared length.
func truncate(s string, limit *int) string {
	if limit == nil || *limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) > *limit {
		return string(runes[:*limit])
	}
	return s
}
