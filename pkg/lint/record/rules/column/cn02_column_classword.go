package column

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/lint"
	"github.com/leapstack-labs/dictlint/pkg/lint/record"
)

func init() {
	record.Register(record.RuleDef{
		ID:          "CN02",
		Name:        "column-classword",
		Group:       "column",
		Description: "Column names must start with an approved classword",
		Severity:    core.SeverityError,
		Check:       checkColumnClassword,
		Rationale:   "The leading classword declares what kind of value the column holds.",
		BadExample:  "PROVR_LOC",
		GoodExample: "IDN_PROVR_LOC",
		Fix:         "Prefix the name with the classword matching the column's meaning.",
	})
}

// checkColumnClassword matches the approved classwords against the start of
// each column name, preferring the longest code. When nothing matches, the
// leading three characters are reported as the offending candidate.
func checkColumnClassword(ctx *record.Context) []core.Violation {
	v := ctx.Vocab()
	if v == nil {
		return nil
	}

	table := ctx.Table()
	var violations []core.Violation
	for _, col := range table.Columns {
		name := strings.ToUpper(strings.TrimSpace(col.Name))
		if name == "" {
			continue
		}
		if _, ok := v.MatchClassword(name); ok {
			continue
		}

		lead := name
		if len(lead) > 3 {
			lead = lead[:3]
		}
		violations = append(violations, core.Violation{
			RuleID:           "CN02",
			Severity:         core.SeverityError,
			Entity:           core.EntityColumn,
			Name:             col.Name,
			Table:            table.Name,
			Message:          fmt.Sprintf("Column name '%s' does not start with an approved classword (leading token '%s')", name, lead),
			DocumentationURL: lint.BuildDocURL("CN02"),
			ImpactScore:      lint.ImpactHigh.Int(),
		})
	}
	return violations
}
