package typing

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/lint"
	"github.com/leapstack-labs/dictlint/pkg/lint/record"
)

func init() {
	record.Register(record.RuleDef{
		ID:          "TP03",
		Name:        "classword-type",
		Group:       "type",
		Description: "Data types must match what the classword promises",
		Severity:    core.SeverityWarning,
		Check:       checkClasswordType,
		Rationale:   "A DTE column holding VARCHAR breaks every consumer that trusts the classword.",
		BadExample:  "DTE_BIRTH VARCHAR",
		GoodExample: "DTE_BIRTH DATE",
		Fix:         "Align the data type with the classword, or pick the right classword.",
	})
}

func checkClasswordType(ctx *record.Context) []core.Violation {
	v := ctx.Vocab()
	if v == nil {
		return nil
	}

	table := ctx.Table()
	var violations []core.Violation
	for _, col := range table.Columns {
		if strings.TrimSpace(col.Name) == "" || col.DataType == "" {
			continue
		}
		cw, ok := v.MatchClassword(col.Name)
		if !ok {
			continue
		}
		if cw.Compatible(col.DataType) {
			continue
		}

		violations = append(violations, core.Violation{
			RuleID:           "TP03",
			Severity:         core.SeverityWarning,
			Entity:           core.EntityColumn,
			Name:             col.Name,
			Table:            table.Name,
			Message:          fmt.Sprintf("Column '%s' classword %s expects %s, not %s", col.Name, cw.Code, typeList(cw.DataTypes), col.DataType),
			DocumentationURL: lint.BuildDocURL("TP03"),
			ImpactScore:      lint.ImpactLow.Int(),
		})
	}
	return violations
}

// typeList joins a classword's compatible types for messages.
func typeList(types []core.DataType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, " or ")
}
