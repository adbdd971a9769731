package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/leapstack-labs/dictlint/pkg/core"
)

// Dictionary export headers. Matching is case-insensitive on trimmed names;
// the description column keeps its legacy spelling as an alias.
const (
	headerTableName        = "table name"
	headerTableEnglishName = "table english name"
	headerColumnName       = "column name"
	headerEnglishName      = "english name"
	headerDataType         = "data type"
	headerPrecision        = "precision"
	headerScale            = "scale"
	headerNullability      = "nullability"
	headerPrimaryKey       = "primary key"
	headerForeignKey       = "foreign key"
	headerFKReference      = "fk reference"
	headerDescription      = "description"
	headerDescriptionAlias = "description/business rules"
)

// LoadBatchCSV reads the warehouse dictionary export: one row per column,
// grouped into tables in first-seen order. Only the table and column name
// headers are required; everything else is optional so partial exports
// still validate (and their gaps surface as findings).
func LoadBatchCSV(path string) ([]core.TableRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load batch %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("load batch %s: missing header row: %w", path, err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{headerTableName, headerColumnName} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("load batch %s: missing required column %q", path, required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var tables []core.TableRecord
	slot := make(map[string]int)

	for line := 2; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("load batch %s:%d: %w", path, line, err)
		}

		tableName := field(row, headerTableName)
		precision, err := parseOptionalInt(field(row, headerPrecision))
		if err != nil {
			return nil, fmt.Errorf("load batch %s:%d: invalid precision: %w", path, line, err)
		}
		scale, err := parseOptionalInt(field(row, headerScale))
		if err != nil {
			return nil, fmt.Errorf("load batch %s:%d: invalid scale: %w", path, line, err)
		}

		description := field(row, headerDescription)
		if description == "" {
			description = field(row, headerDescriptionAlias)
		}

		col := core.ColumnRecord{
			Name:        field(row, headerColumnName),
			EnglishName: field(row, headerEnglishName),
			DataType:    normalizeDataType(field(row, headerDataType)),
			Precision:   precision,
			Scale:       scale,
			Nullability: core.ParseNullability(field(row, headerNullability)),
			PrimaryKey:  parseFlag(field(row, headerPrimaryKey)),
			ForeignKey:  parseFlag(field(row, headerForeignKey)),
			FKReference: field(row, headerFKReference),
			Description: description,
		}

		key := strings.ToUpper(tableName)
		i, seen := slot[key]
		if !seen {
			i = len(tables)
			slot[key] = i
			tables = append(tables, core.TableRecord{
				Name:           tableName,
				EnglishName:    field(row, headerTableEnglishName),
				SuffixCategory: core.DeriveSuffix(tableName),
			})
		}
		tables[i].Columns = append(tables[i].Columns, col)
	}

	return tables, nil
}

// parseOptionalInt distinguishes an absent value from zero: the precision
// rule needs to know which one the export declared.
func parseOptionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// parseFlag accepts the flag spellings warehouse exports use.
func parseFlag(s string) bool {
	switch strings.ToUpper(s) {
	case "Y", "YES", "TRUE", "1", "X", "PK", "FK":
		return true
	default:
		return false
	}
}
