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
		ID:          "TP02",
		Name:        "nullability",
		Group:       "type",
		Description: "Columns must declare whether they accept nulls",
		Severity:    core.SeverityError,
		Check:       checkNullability,
		Rationale:   "An unspecified null constraint turns into an implicit NULL at DDL time, usually unintended for governed columns.",
		BadExample:  "nullability left blank",
		GoodExample: "NOT_NULL",
		Fix:         "Declare NULL or NOT_NULL in the dictionary.",
	})
}

func checkNullability(ctx *record.Context) []core.Violation {
	table := ctx.Table()
	var violations []core.Violation
	for _, col := range table.Columns {
		if strings.TrimSpace(col.Name) == "" {
			continue
		}
		if col.Nullability == core.Nullable || col.Nullability == core.NotNull {
			continue
		}

		violations = append(violations, core.Violation{
			RuleID:           "TP02",
			Severity:         core.SeverityError,
			Entity:           core.EntityColumn,
			Name:             col.Name,
			Table:            table.Name,
			Message:          fmt.Sprintf("Column '%s' does not specify nullability", col.Name),
			DocumentationURL: lint.BuildDocURL("TP02"),
			ImpactScore:      lint.ImpactMedium.Int(),
		})
	}
	return violations
}
