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
		ID:          "KN02",
		Name:        "fk-reference",
		Group:       "key",
		Description: "Foreign key columns must name the specific table they reference",
		Severity:    core.SeverityError,
		ConfigKeys:  []string{"generic_phrases"},
		Check:       checkFKReference,
		Rationale:   "A foreign key without a named target cannot be joined or audited.",
		BadExample:  "FK reference: 'lookup'",
		GoodExample: "FK reference: 'T_PROVR_DIM'",
		Fix:         "Name the referenced table or dimension in the FK reference.",
	})
}

// defaultGenericPhrases are reference texts that name nothing. The list is
// replaceable through the generic_phrases option.
var defaultGenericPhrases = []string{
	"reference",
	"foreign key",
	"fk",
	"dimension",
	"lookup",
	"see above",
}

func checkFKReference(ctx *record.Context) []core.Violation {
	table := ctx.Table()
	generic := lint.GetStringSliceOption(ctx.Options("KN02"), "generic_phrases", defaultGenericPhrases)

	var violations []core.Violation
	for _, col := range table.Columns {
		if strings.TrimSpace(col.Name) == "" || !col.ForeignKey {
			continue
		}

		ref := strings.TrimSpace(col.FKReference)
		if ref == "" {
			violations = append(violations, core.Violation{
				RuleID:           "KN02",
				Severity:         core.SeverityError,
				Entity:           core.EntityColumn,
				Name:             col.Name,
				Table:            table.Name,
				Message:          fmt.Sprintf("Foreign key column '%s' does not name the table it references", col.Name),
				DocumentationURL: lint.BuildDocURL("KN02"),
				ImpactScore:      lint.ImpactMedium.Int(),
			})
			continue
		}

		for _, phrase := range generic {
			if strings.EqualFold(ref, phrase) {
				violations = append(violations, core.Violation{
					RuleID:           "KN02",
					Severity:         core.SeverityError,
					Entity:           core.EntityColumn,
					Name:             col.Name,
					Table:            table.Name,
					Message:          fmt.Sprintf("Foreign key column '%s' reference '%s' is generic; name the specific table or dimension", col.Name, ref),
					DocumentationURL: lint.BuildDocURL("KN02"),
					ImpactScore:      lint.ImpactMedium.Int(),
				})
				break
			}
		}
	}
	return violations
}
