// Package loader turns on-disk dictionary inputs into core records: batch
// files (YAML or the warehouse CSV export), vocabulary files, and word lists.
// Loaders validate shape only; naming quality is the rule catalog's job.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/dictlint/pkg/core"
)

// LoadBatch reads a batch of table records, dispatching on the file
// extension: .yaml/.yml or the .csv dictionary export.
func LoadBatch(path string) ([]core.TableRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadBatchYAML(path)
	case ".csv":
		return LoadBatchCSV(path)
	default:
		return nil, fmt.Errorf("load batch %s: unsupported format %q (want .yaml, .yml or .csv)", path, filepath.Ext(path))
	}
}

// batchYAML mirrors the batch file shape for unmarshaling. Data types and
// nullability arrive as free-form strings and are normalized onto the core
// enums afterwards.
type batchYAML struct {
	Tables []tableYAML `yaml:"tables"`
}

type tableYAML struct {
	Name        string       `yaml:"name"`
	EnglishName string       `yaml:"english_name"`
	Columns     []columnYAML `yaml:"columns"`
}

type columnYAML struct {
	Name        string `yaml:"name"`
	EnglishName string `yaml:"english_name"`
	DataType    string `yaml:"data_type"`
	Precision   *int   `yaml:"precision"`
	Scale       *int   `yaml:"scale"`
	Nullability string `yaml:"nullability"`
	PrimaryKey  bool   `yaml:"primary_key"`
	ForeignKey  bool   `yaml:"foreign_key"`
	FKReference string `yaml:"fk_reference"`
	Description string `yaml:"description"`
}

// LoadBatchYAML reads a tables: list into core records.
func LoadBatchYAML(path string) ([]core.TableRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load batch %s: %w", path, err)
	}

	var doc batchYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("load batch %s: invalid YAML: %w", path, err)
	}

	tables := make([]core.TableRecord, 0, len(doc.Tables))
	for _, t := range doc.Tables {
		table := core.TableRecord{
			Name:           t.Name,
			EnglishName:    t.EnglishName,
			SuffixCategory: core.DeriveSuffix(t.Name),
		}
		for _, c := range t.Columns {
			table.Columns = append(table.Columns, core.ColumnRecord{
				Name:        c.Name,
				EnglishName: c.EnglishName,
				DataType:    normalizeDataType(c.DataType),
				Precision:   c.Precision,
				Scale:       c.Scale,
				Nullability: core.ParseNullability(c.Nullability),
				PrimaryKey:  c.PrimaryKey,
				ForeignKey:  c.ForeignKey,
				FKReference: c.FKReference,
				Description: c.Description,
			})
		}
		tables = append(tables, table)
	}
	return tables, nil
}

// normalizeDataType maps a raw type spelling onto the core enum, preserving
// "unspecified" as the empty value so the typing rules can tell the two apart.
func normalizeDataType(raw string) core.DataType {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	return core.ParseDataType(raw)
}
