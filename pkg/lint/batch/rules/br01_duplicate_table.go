package rules

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/lint"
	"github.com/leapstack-labs/dictlint/pkg/lint/batch"
)

func init() {
	batch.Register(batch.RuleDef{
		ID:          "BR01",
		Name:        "duplicate-table",
		Group:       "record",
		Description: "Table names must be unique within the batch",
		Severity:    core.SeverityError,
		Check:       checkDuplicateTable,
		Rationale:   "Two dictionary records claiming the same table name cannot both be deployed; one of them is stale or misnamed.",
		BadExample:  "Two records both named T_PROVR_DIM",
		GoodExample: "Every record names its own table",
		Fix:         "Remove the stale record or rename the table that was meant to be new.",
	})
}

// checkDuplicateTable groups records by upper-cased trimmed name and emits
// one violation per duplicated name. Blank names are skipped; those records
// are already malformed and reported as such.
func checkDuplicateTable(ctx *batch.Context) []core.Violation {
	counts := make(map[string]int)
	var order []string
	for _, table := range ctx.Tables() {
		key := strings.ToUpper(strings.TrimSpace(table.Name))
		if key == "" {
			continue
		}
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}

	var violations []core.Violation
	for _, key := range order {
		if counts[key] < 2 {
			continue
		}
		violations = append(violations, core.Violation{
			RuleID:           "BR01",
			Severity:         core.SeverityError,
			Entity:           core.EntityTable,
			Name:             key,
			Table:            key,
			Message:          fmt.Sprintf("Table '%s' appears %d times in the batch", key, counts[key]),
			DocumentationURL: lint.BuildDocURL("BR01"),
			ImpactScore:      lint.ImpactCritical.Int(),
		})
	}
	return violations
}
