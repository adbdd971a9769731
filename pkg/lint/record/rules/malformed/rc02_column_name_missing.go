package malformed

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/lint"
	"github.com/leapstack-labs/dictlint/pkg/lint/record"
)

func init() {
	record.Register(record.RuleDef{
		ID:          "RC02",
		Name:        "column-name-missing",
		Group:       "record",
		Description: "Column records must carry a technical name",
		Severity:    core.SeverityError,
		Check:       checkColumnNameMissing,
		Rationale:   "Without a technical name the record cannot be matched to any warehouse object.",
		Fix:         "Fill in the column's technical name.",
	})
}

// checkColumnNameMissing identifies nameless columns by their position in
// the table's column list, which is part of the record and stable.
func checkColumnNameMissing(ctx *record.Context) []core.Violation {
	table := ctx.Table()
	var violations []core.Violation
	for i, col := range table.Columns {
		if strings.TrimSpace(col.Name) != "" {
			continue
		}

		msg := fmt.Sprintf("Column %d of table '%s' has no technical name", i+1, table.Name)
		if english := strings.TrimSpace(col.EnglishName); english != "" {
			msg += fmt.Sprintf(" (English name '%s')", english)
		}

		violations = append(violations, core.Violation{
			RuleID:           "RC02",
			Severity:         core.SeverityError,
			Entity:           core.EntityColumn,
			Name:             col.Name,
			Table:            table.Name,
			Message:          msg,
			DocumentationURL: lint.BuildDocURL("RC02"),
			ImpactScore:      lint.ImpactCritical.Int(),
		})
	}
	return violations
}
