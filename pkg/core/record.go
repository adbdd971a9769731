package core

import "strings"

// =============================================================================
// Entity kinds
// =============================================================================

// EntityType identifies which kind of dictionary entity a violation is
// attached to.
type EntityType string

// Entity types for violation attribution.
const (
	EntityTable  EntityType = "TABLE"
	EntityColumn EntityType = "COLUMN"
)

// =============================================================================
// Data types
// =============================================================================

// DataType is the coarse warehouse data type of a column. Source systems
// report dozens of concrete type names; the governance rules only care about
// these four classes.
type DataType string

// Coarse data type classes.
const (
	TypeNumber  DataType = "NUMBER"
	TypeVarchar DataType = "VARCHAR"
	TypeDate    DataType = "DATE"
	TypeOther   DataType = "OTHER"
)

// ParseDataType maps a warehouse type name onto the coarse DataType classes.
// Unrecognized names map to TypeOther, never an error: type validation is a
// rule concern, not a parsing concern.
func ParseDataType(raw string) DataType {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "NUMBER", "NUMERIC", "DECIMAL", "INT", "INTEGER", "BIGINT", "SMALLINT", "FLOAT", "DOUBLE", "REAL":
		return TypeNumber
	case "VARCHAR", "VARCHAR2", "CHAR", "NVARCHAR", "TEXT", "STRING", "CLOB":
		return TypeVarchar
	case "DATE", "DATETIME", "TIMESTAMP", "TIMESTAMP_NTZ", "TIMESTAMP_TZ", "TIME":
		return TypeDate
	default:
		return TypeOther
	}
}

// =============================================================================
// Nullability
// =============================================================================

// Nullability is the declared null constraint of a column. UNSPECIFIED means
// the source dictionary left the constraint blank, which is itself a
// governance violation.
type Nullability string

// Nullability states.
const (
	Nullable           Nullability = "NULL"
	NotNull            Nullability = "NOT_NULL"
	NullabilityUnknown Nullability = "UNSPECIFIED"
)

// ParseNullability maps dictionary-export spellings onto Nullability.
func ParseNullability(raw string) Nullability {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "NULL", "NULLABLE", "YES", "Y", "TRUE":
		return Nullable
	case "NOT NULL", "NOT_NULL", "NO", "N", "FALSE":
		return NotNull
	default:
		return NullabilityUnknown
	}
}

// =============================================================================
// Table suffix categories
// =============================================================================

// SuffixCategory is the warehouse layer a table belongs to, declared through
// its name suffix.
type SuffixCategory string

// Approved table suffix categories.
const (
	SuffixFact      SuffixCategory = "FACT"
	SuffixDimension SuffixCategory = "DIM"
	SuffixStaging   SuffixCategory = "STG"
	SuffixReporting SuffixCategory = "RPTNG"
	SuffixNone      SuffixCategory = ""
)

// SuffixCategories lists the approved categories in display order.
func SuffixCategories() []SuffixCategory {
	return []SuffixCategory{SuffixFact, SuffixDimension, SuffixStaging, SuffixReporting}
}

// DeriveSuffix returns the suffix category encoded in a table name, or
// SuffixNone when the name does not end in an approved suffix token.
func DeriveSuffix(name string) SuffixCategory {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, sc := range SuffixCategories() {
		if upper == string(sc) || strings.HasSuffix(upper, "_"+string(sc)) {
			return sc
		}
	}
	return SuffixNone
}

// =============================================================================
// Records
// =============================================================================

// TableRecord is one table's slice of the data dictionary: the technical
// name, the business (English) name, the declared warehouse layer, and the
// column records beneath it. Records are inputs only; nothing in the system
// mutates them.
type TableRecord struct {
	Name           string         `json:"name" yaml:"name"`
	EnglishName    string         `json:"english_name,omitempty" yaml:"english_name,omitempty"`
	SuffixCategory SuffixCategory `json:"suffix_category,omitempty" yaml:"suffix_category,omitempty"`
	Columns        []ColumnRecord `json:"columns,omitempty" yaml:"columns,omitempty"`
}

// ColumnRecord is one column's slice of the data dictionary.
//
// Precision and Scale are pointers because "absent" and "zero" mean different
// things to the precision rule. FKReference is free text naming the
// referenced table or dimension; its quality is checked, never parsed.
type ColumnRecord struct {
	Name        string      `json:"name" yaml:"name"`
	EnglishName string      `json:"english_name,omitempty" yaml:"english_name,omitempty"`
	DataType    DataType    `json:"data_type,omitempty" yaml:"data_type,omitempty"`
	Precision   *int        `json:"precision,omitempty" yaml:"precision,omitempty"`
	Scale       *int        `json:"scale,omitempty" yaml:"scale,omitempty"`
	Nullability Nullability `json:"nullability,omitempty" yaml:"nullability,omitempty"`
	PrimaryKey  bool        `json:"primary_key,omitempty" yaml:"primary_key,omitempty"`
	ForeignKey  bool        `json:"foreign_key,omitempty" yaml:"foreign_key,omitempty"`
	FKReference string      `json:"fk_reference,omitempty" yaml:"fk_reference,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
}

// IsKey reports whether the column is declared as a primary or foreign key.
func (c ColumnRecord) IsKey() bool {
	return c.PrimaryKey || c.ForeignKey
}
