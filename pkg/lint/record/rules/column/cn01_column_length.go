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
		ID:          "CN01",
		Name:        "column-length",
		Group:       "column",
		Description: "Column names must not exceed the maximum length",
		Severity:    core.SeverityError,
		ConfigKeys:  []string{"max_length"},
		Check:       checkColumnLength,
		Rationale:   "Database identifiers past 30 characters get truncated or rejected by warehouse tooling.",
		BadExample:  "CDE_REGISTRATION_CONFIRMATION_STATUS",
		GoodExample: "CDE_REGN_CONF_STS",
		Fix:         "Use approved abbreviations to shorten the name.",
	})
}

const defaultMaxColumnLength = 30

func checkColumnLength(ctx *record.Context) []core.Violation {
	table := ctx.Table()
	maxLen := lint.GetIntOption(ctx.Options("CN01"), "max_length", defaultMaxColumnLength)

	var violations []core.Violation
	for _, col := range table.Columns {
		name := strings.TrimSpace(col.Name)
		if name == "" || len(name) <= maxLen {
			continue
		}

		violations = append(violations, core.Violation{
			RuleID:           "CN01",
			Severity:         core.SeverityError,
			Entity:           core.EntityColumn,
			Name:             col.Name,
			Table:            table.Name,
			Message:          fmt.Sprintf("Column name '%s' is %d characters long; the maximum is %d", name, len(name), maxLen),
			DocumentationURL: lint.BuildDocURL("CN01"),
			ImpactScore:      lint.ImpactMedium.Int(),
		})
	}
	return violations
}
