package rules

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/identifier"
	"github.com/leapstack-labs/dictlint/pkg/lint"
	"github.com/leapstack-labs/dictlint/pkg/lint/batch"
)

func init() {
	batch.Register(batch.RuleDef{
		ID:          "BN01",
		Name:        "code-name-pair",
		Group:       "naming",
		Description: "Every code column should have a name or text counterpart in the same table",
		Severity:    core.SeverityWarning,
		Check:       checkCodeNamePair,
		Rationale:   "A code without its readable counterpart forces every consumer to join out to a reference table just to label the value.",
		BadExample:  "CDE_TYPE_ENC with no NAM_TYPE_ENC or TXT_TYPE_ENC in the table",
		GoodExample: "CDE_TYPE_ENC alongside NAM_TYPE_ENC",
		Fix:         "Add a NAM_ or TXT_ column carrying the decoded value, or document why the code stands alone.",
	})
}

// checkCodeNamePair pairs columns within a table by everything after the
// classword: CDE_TYPE_ENC is satisfied by NAM_TYPE_ENC or TXT_TYPE_ENC.
func checkCodeNamePair(ctx *batch.Context) []core.Violation {
	var violations []core.Violation

	for _, table := range ctx.Tables() {
		// Remainders of every NAM/TXT column, keyed by the token
		// sequence after the classword.
		counterparts := make(map[string]bool)
		for _, col := range table.Columns {
			name := identifier.Parse(col.Name)
			if len(name.Tokens) < 2 {
				continue
			}
			if name.Tokens[0] == "NAM" || name.Tokens[0] == "TXT" {
				counterparts[strings.Join(name.Tokens[1:], "_")] = true
			}
		}

		for _, col := range table.Columns {
			name := identifier.Parse(col.Name)
			if len(name.Tokens) < 2 || name.Tokens[0] != "CDE" {
				continue
			}
			if counterparts[strings.Join(name.Tokens[1:], "_")] {
				continue
			}
			violations = append(violations, core.Violation{
				RuleID:           "BN01",
				Severity:         core.SeverityWarning,
				Entity:           core.EntityColumn,
				Name:             col.Name,
				Table:            table.Name,
				Message:          fmt.Sprintf("Code column '%s' has no NAM or TXT counterpart in table '%s'", col.Name, table.Name),
				DocumentationURL: lint.BuildDocURL("BN01"),
				ImpactScore:      lint.ImpactLow.Int(),
			})
		}
	}
	return violations
}
