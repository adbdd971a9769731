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
		ID:          "TN04",
		Name:        "table-singular",
		Group:       "table",
		Description: "Table name subjects must be singular",
		Severity:    core.SeverityWarning,
		Check:       checkTableSingular,
		Rationale:   "A table holds many rows of one entity; the entity name stays singular. The plural test is a heuristic, so this rule warns rather than errors.",
		BadExample:  "T_PROVIDERS_DIM",
		GoodExample: "T_PROVR_DIM",
		Fix:         "Rename the subject segment to its singular form.",
	})
}

// checkTableSingular applies the singularity policy to the table's subject
// segment: the last meaningful token once the T prefix, the layer suffix and
// numeric tokens are set aside.
func checkTableSingular(ctx *record.Context) []core.Violation {
	table := ctx.Table()
	name := identifier.Parse(table.Name)
	if name.IsEmpty() {
		return nil
	}

	subject, ok := name.Tail(func(tok string) bool {
		return tok == "T" || identifier.IsNumeric(tok) || core.DeriveSuffix(tok) != core.SuffixNone
	})
	if !ok {
		return nil
	}

	if ctx.Singular().IsSingular(subject) {
		return nil
	}

	return []core.Violation{{
		RuleID:           "TN04",
		Severity:         core.SeverityWarning,
		Entity:           core.EntityTable,
		Name:             table.Name,
		Table:            table.Name,
		Message:          fmt.Sprintf("Table name '%s' looks plural in segment '%s'", name.Raw, subject),
		DocumentationURL: lint.BuildDocURL("TN04"),
		ImpactScore:      lint.ImpactLow.Int(),
	}}
}
