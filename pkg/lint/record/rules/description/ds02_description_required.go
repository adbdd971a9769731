package description

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/lint"
	"github.com/leapstack-labs/dictlint/pkg/lint/record"
)

func init() {
	record.Register(record.RuleDef{
		ID:          "DS02",
		Name:        "description-required",
		Group:       "description",
		Description: "Columns must carry a description",
		Severity:    core.SeverityWarning,
		Check:       checkDescriptionRequired,
		Rationale:   "An undocumented column forces every consumer to reverse-engineer its meaning.",
		BadExample:  "description left blank",
		GoodExample: "Indicates the encounter type assigned at registration.",
		Fix:         "Describe the column's business meaning in the dictionary.",
	})
}

func checkDescriptionRequired(ctx *record.Context) []core.Violation {
	table := ctx.Table()
	var violations []core.Violation
	for _, col := range table.Columns {
		if strings.TrimSpace(col.Name) == "" {
			continue
		}
		if strings.TrimSpace(col.Description) != "" {
			continue
		}

		violations = append(violations, core.Violation{
			RuleID:           "DS02",
			Severity:         core.SeverityWarning,
			Entity:           core.EntityColumn,
			Name:             col.Name,
			Table:            table.Name,
			Message:          fmt.Sprintf("Column '%s' has no description", col.Name),
			DocumentationURL: lint.BuildDocURL("DS02"),
			ImpactScore:      lint.ImpactLow.Int(),
		})
	}
	return violations
}
