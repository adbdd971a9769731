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
		ID:          "BD01",
		Name:        "duplicate-description",
		Group:       "description",
		Description: "Column descriptions must be unique across differently named columns",
		Severity:    core.SeverityError,
		Check:       checkDuplicateDescription,
		Rationale:   "Two columns with different names and the same description either mean the same thing (one is redundant) or the description is a copy-paste placeholder.",
		BadExample:  "CDE_ERROR and CDE_STATUS both described as 'Indicates the error condition'",
		GoodExample: "Each column describes its own meaning",
		Fix:         "Rewrite the descriptions to state what each column actually holds.",
	})
}

// checkDuplicateDescription groups every column in the batch by its trimmed
// description, case-sensitive. A group spanning more than one distinct
// column name flags every member. Same-named columns in different tables
// are conformed copies and may legitimately share their text.
func checkDuplicateDescription(ctx *batch.Context) []core.Violation {
	type member struct {
		table string
		col   core.ColumnRecord
	}
	groups := make(map[string][]member)
	var order []string

	for _, ref := range ctx.Columns() {
		if strings.TrimSpace(ref.Column.Name) == "" {
			continue
		}
		desc := strings.TrimSpace(ref.Column.Description)
		if desc == "" {
			continue
		}
		if _, seen := groups[desc]; !seen {
			order = append(order, desc)
		}
		groups[desc] = append(groups[desc], member{table: ref.Table, col: ref.Column})
	}

	var violations []core.Violation
	for _, desc := range order {
		members := groups[desc]
		names := make(map[string]bool, len(members))
		for _, m := range members {
			names[strings.ToUpper(strings.TrimSpace(m.col.Name))] = true
		}
		if len(names) < 2 {
			continue
		}

		list := make([]string, len(members))
		for i, m := range members {
			list[i] = fmt.Sprintf("%s (%s)", m.col.Name, m.table)
		}
		shared := strings.Join(list, ", ")

		for _, m := range members {
			violations = append(violations, core.Violation{
				RuleID:           "BD01",
				Severity:         core.SeverityError,
				Entity:           core.EntityColumn,
				Name:             m.col.Name,
				Table:            m.table,
				Message:          fmt.Sprintf("Description '%s' is shared by %d columns: %s", desc, len(members), shared),
				DocumentationURL: lint.BuildDocURL("BD01"),
				ImpactScore:      lint.ImpactMedium.Int(),
			})
		}
	}
	return violations
}
