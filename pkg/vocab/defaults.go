package vocab

import "github.com/leapstack-labs/dictlint/pkg/core"

// DefaultClasswords returns the standard governance classword set with the
// data types each is compatible with. Deployments extend or replace the set
// through their classword file; the codes here are the baseline the naming
// policy document defines.
func DefaultClasswords() []Classword {
	return []Classword{
		{Code: "AMT", DataTypes: []core.DataType{core.TypeNumber}},
		{Code: "CDE", DataTypes: []core.DataType{core.TypeNumber, core.TypeVarchar}},
		{Code: "CNT", DataTypes: []core.DataType{core.TypeNumber}},
		{Code: "DTE", DataTypes: []core.DataType{core.TypeDate}},
		{Code: "IDN", DataTypes: []core.DataType{core.TypeNumber}},
		// Warehouse-assigned surrogate keys carry the extended IDN_EDW code.
		{Code: "IDN_EDW", DataTypes: []core.DataType{core.TypeNumber}},
		{Code: "IND", DataTypes: []core.DataType{core.TypeVarchar, core.TypeOther}},
		{Code: "NAM", DataTypes: []core.DataType{core.TypeVarchar}},
		{Code: "NBR", DataTypes: []core.DataType{core.TypeNumber}},
		{Code: "TME", DataTypes: []core.DataType{core.TypeDate, core.TypeOther}},
		{Code: "TXT", DataTypes: []core.DataType{core.TypeVarchar}},
	}
}
