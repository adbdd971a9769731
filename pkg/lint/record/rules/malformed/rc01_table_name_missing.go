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
		ID:          "RC01",
		Name:        "table-name-missing",
		Group:       "record",
		Description: "Table records must carry a technical name",
		Severity:    core.SeverityError,
		Check:       checkTableNameMissing,
		Rationale:   "Without a technical name the record cannot be matched to any warehouse object.",
		Fix:         "Fill in the table's technical name.",
	})
}

func checkTableNameMissing(ctx *record.Context) []core.Violation {
	table := ctx.Table()
	if strings.TrimSpace(table.Name) != "" {
		return nil
	}

	msg := "Table record has no technical name"
	if english := strings.TrimSpace(table.EnglishName); english != "" {
		msg += fmt.Sprintf(" (English name '%s')", english)
	}

	return []core.Violation{{
		RuleID:           "RC01",
		Severity:         core.SeverityError,
		Entity:           core.EntityTable,
		Name:             table.Name,
		Table:            table.Name,
		Message:          msg,
		DocumentationURL: lint.BuildDocURL("RC01"),
		ImpactScore:      lint.ImpactCritical.Int(),
	}}
}
