package column

import (
	"fmt"

	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/identifier"
	"github.com/leapstack-labs/dictlint/pkg/lint"
	"github.com/leapstack-labs/dictlint/pkg/lint/record"
)

func init() {
	record.Register(record.RuleDef{
		ID:          "CN04",
		Name:        "column-singular",
		Group:       "column",
		Description: "Column name subjects must be singular",
		Severity:    core.SeverityWarning,
		Check:       checkColumnSingular,
		Rationale:   "Column names describe one value per row. The plural test is a heuristic, so this rule warns rather than errors.",
		BadExample:  "IDN_PROVRS",
		GoodExample: "IDN_PROVR",
		Fix:         "Rename the subject segment to its singular form.",
	})
}

// checkColumnSingular applies the singularity policy to the rightmost
// meaningful segment. Columns assemble right to left, so the rightmost
// segment is the entity the column is about; numeric suffixes like the 01
// in IDN_EDW_01 are skipped.
func checkColumnSingular(ctx *record.Context) []core.Violation {
	table := ctx.Table()
	var violations []core.Violation
	for _, col := range table.Columns {
		name := identifier.Parse(col.Name)
		if name.IsEmpty() {
			continue
		}

		subject, ok := name.Tail(identifier.IsNumeric)
		if !ok {
			continue
		}

		if ctx.Singular().IsSingular(subject) {
			continue
		}

		violations = append(violations, core.Violation{
			RuleID:           "CN04",
			Severity:         core.SeverityWarning,
			Entity:           core.EntityColumn,
			Name:             col.Name,
			Table:            table.Name,
			Message:          fmt.Sprintf("Column name '%s' looks plural in segment '%s'", name.Raw, subject),
			DocumentationURL: lint.BuildDocURL("CN04"),
			ImpactScore:      lint.ImpactLow.Int(),
		})
	}
	return violations
}
