package table

import (
	"fmt"

	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/identifier"
	"github.com/leapstack-labs/dictlint/pkg/lint"
	"github.com/leapstack-labs/dictlint/pkg/lint/record"
)

func init() {
	record.Register(record.RuleDef{
		ID:          "TN01",
		Name:        "table-prefix",
		Group:       "table",
		Description: "Table names must start with the T_ prefix",
		Severity:    core.SeverityError,
		Check:       checkTablePrefix,
		Rationale:   "The T prefix separates warehouse tables from views and external objects at a glance.",
		BadExample:  "PROVR_LOC_DIM",
		GoodExample: "T_PROVR_LOC_DIM",
		Fix:         "Prepend T_ to the table name.",
	})
}

func checkTablePrefix(ctx *record.Context) []core.Violation {
	table := ctx.Table()
	name := identifier.Parse(table.Name)
	if name.IsEmpty() {
		return nil
	}

	if name.Tokens[0] == "T" {
		return nil
	}

	return []core.Violation{{
		RuleID:           "TN01",
		Severity:         core.SeverityError,
		Entity:           core.EntityTable,
		Name:             table.Name,
		Table:            table.Name,
		Message:          fmt.Sprintf("Table name '%s' must start with the 'T_' prefix", name.Raw),
		DocumentationURL: lint.BuildDocURL("TN01"),
		ImpactScore:      lint.ImpactMedium.Int(),
	}}
}
