package key

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/lint"
	"github.com/leapstack-labs/dictlint/pkg/lint/record"
)

func init() {
	record.Register(record.RuleDef{
		ID:          "KN01",
		Name:        "key-prefix",
		Group:       "key",
		Description: "Primary and foreign key columns must start with IDN_",
		Severity:    core.SeverityError,
		Check:       checkKeyPrefix,
		Rationale:   "Key columns are joined on constantly; the IDN_ prefix makes them findable without reading constraint metadata.",
		BadExample:  "CDE_PROVR as primary key",
		GoodExample: "IDN_PROVR as primary key",
		Fix:         "Rename the key column to start with IDN_.",
	})
}

func checkKeyPrefix(ctx *record.Context) []core.Violation {
	table := ctx.Table()
	var violations []core.Violation
	for _, col := range table.Columns {
		name := strings.ToUpper(strings.TrimSpace(col.Name))
		if name == "" || !col.IsKey() {
			continue
		}
		if strings.HasPrefix(name, "IDN_") {
			continue
		}

		violations = append(violations, core.Violation{
			RuleID:           "KN01",
			Severity:         core.SeverityError,
			Entity:           core.EntityColumn,
			Name:             col.Name,
			Table:            table.Name,
			Message:          fmt.Sprintf("%s column '%s' must start with 'IDN_'", keyRole(col), name),
			DocumentationURL: lint.BuildDocURL("KN01"),
			ImpactScore:      lint.ImpactHigh.Int(),
		})
	}
	return violations
}

// keyRole names the declared key role for messages.
func keyRole(col core.ColumnRecord) string {
	switch {
	case col.PrimaryKey && col.ForeignKey:
		return "Primary/foreign key"
	case col.PrimaryKey:
		return "Primary key"
	default:
		return "Foreign key"
	}
}
