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
		ID:          "BK01",
		Name:        "fk-reference-distinct",
		Group:       "key",
		Description: "Numbered foreign key columns in a table must reference distinct targets",
		Severity:    core.SeverityError,
		Check:       checkFKReferenceDistinct,
		Rationale:   "A numbered family like IDN_PROVR_01, IDN_PROVR_02 exists to hold role-distinct references; pointing them at the same target means one is redundant or mislabeled.",
		BadExample:  "IDN_EDW_01 and IDN_EDW_02 both referencing 'T_EDW_DIM'",
		GoodExample: "IDN_EDW_01 referencing the admitting provider, IDN_EDW_02 the attending provider",
		Fix:         "Point each numbered key at its own target, or collapse the family to a single column.",
	})
}

// familyBase strips one trailing numeric token so IDN_EDW_01 and IDN_EDW_02
// fall into the same family. Names without a numeric suffix are their own
// family of one.
func familyBase(colName string) string {
	name := identifier.Parse(colName)
	tokens := name.Tokens
	if len(tokens) > 1 && identifier.IsNumeric(tokens[len(tokens)-1]) {
		tokens = tokens[:len(tokens)-1]
	}
	return strings.Join(tokens, "_")
}

// checkFKReferenceDistinct flags foreign key families within a table whose
// members declare the same reference target. Blank references are skipped
// here; requiring a target at all is the key-prefix rules' concern.
func checkFKReferenceDistinct(ctx *batch.Context) []core.Violation {
	var violations []core.Violation

	for _, table := range ctx.Tables() {
		families := make(map[string][]core.ColumnRecord)
		var order []string
		for _, col := range table.Columns {
			if !col.ForeignKey || strings.TrimSpace(col.Name) == "" {
				continue
			}
			base := familyBase(col.Name)
			if _, seen := families[base]; !seen {
				order = append(order, base)
			}
			families[base] = append(families[base], col)
		}

		for _, base := range order {
			members := families[base]
			if len(members) < 2 {
				continue
			}
			byRef := make(map[string][]core.ColumnRecord)
			var refs []string
			for _, col := range members {
				ref := strings.TrimSpace(col.FKReference)
				if ref == "" {
					continue
				}
				if _, seen := byRef[ref]; !seen {
					refs = append(refs, ref)
				}
				byRef[ref] = append(byRef[ref], col)
			}
			for _, ref := range refs {
				shared := byRef[ref]
				if len(shared) < 2 {
					continue
				}
				for _, col := range shared {
					violations = append(violations, core.Violation{
						RuleID:           "BK01",
						Severity:         core.SeverityError,
						Entity:           core.EntityColumn,
						Name:             col.Name,
						Table:            table.Name,
						Message:          fmt.Sprintf("Foreign key '%s' references '%s', the same target as %d other key(s) in its numbered family", col.Name, ref, len(shared)-1),
						DocumentationURL: lint.BuildDocURL("BK01"),
						ImpactScore:      lint.ImpactMedium.Int(),
					})
				}
			}
		}
	}
	return violations
}
