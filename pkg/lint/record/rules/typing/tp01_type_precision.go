package typing

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/lint"
	"github.com/leapstack-labs/dictlint/pkg/lint/record"
)

func init() {
	record.Register(record.RuleDef{
		ID:          "TP01",
		Name:        "type-precision",
		Group:       "type",
		Description: "NUMBER and VARCHAR columns must declare a precision",
		Severity:    core.SeverityError,
		Check:       checkTypePrecision,
		Rationale:   "Sized types without a declared size get vendor defaults that differ between environments.",
		BadExample:  "CDE_TYPE_ENC NUMBER",
		GoodExample: "CDE_TYPE_ENC NUMBER(4)",
		Fix:         "Declare the precision in the dictionary.",
	})
}

func checkTypePrecision(ctx *record.Context) []core.Violation {
	table := ctx.Table()
	var violations []core.Violation
	for _, col := range table.Columns {
		if strings.TrimSpace(col.Name) == "" {
			continue
		}
		if col.DataType != core.TypeNumber && col.DataType != core.TypeVarchar {
			continue
		}
		if col.Precision != nil {
			continue
		}

		violations = append(violations, core.Violation{
			RuleID:           "TP01",
			Severity:         core.SeverityError,
			Entity:           core.EntityColumn,
			Name:             col.Name,
			Table:            table.Name,
			Message:          fmt.Sprintf("Column '%s' has data type %s but no precision", col.Name, col.DataType),
			DocumentationURL: lint.BuildDocURL("TP01"),
			ImpactScore:      lint.ImpactMedium.Int(),
		})
	}
	return violations
}
