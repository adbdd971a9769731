package table

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/lint"
	"github.com/leapstack-labs/dictlint/pkg/lint/record"
)

func init() {
	record.Register(record.RuleDef{
		ID:          "TN02",
		Name:        "table-length",
		Group:       "table",
		Description: "Table names must not exceed the maximum length",
		Severity:    core.SeverityError,
		ConfigKeys:  []string{"max_length"},
		Check:       checkTableLength,
		Rationale:   "Database identifiers past 30 characters get truncated or rejected by warehouse tooling.",
		BadExample:  "T_PROVIDER_LOCATION_ASSIGNMENT_HISTORY_DIM",
		GoodExample: "T_PROVR_LOC_ASGN_HIST_DIM",
		Fix:         "Use approved abbreviations to shorten the name.",
	})
}

const defaultMaxTableLength = 30

func checkTableLength(ctx *record.Context) []core.Violation {
	table := ctx.Table()
	name := strings.TrimSpace(table.Name)
	if name == "" {
		return nil
	}

	maxLen := lint.GetIntOption(ctx.Options("TN02"), "max_length", defaultMaxTableLength)
	if len(name) <= maxLen {
		return nil
	}

	return []core.Violation{{
		RuleID:           "TN02",
		Severity:         core.SeverityError,
		Entity:           core.EntityTable,
		Name:             table.Name,
		Table:            table.Name,
		Message:          fmt.Sprintf("Table name '%s' is %d characters long; the maximum is %d", name, len(name), maxLen),
		DocumentationURL: lint.BuildDocURL("TN02"),
		ImpactScore:      lint.ImpactMedium.Int(),
	}}
}
