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
		ID:          "TN03",
		Name:        "table-suffix",
		Group:       "table",
		Description: "Table names must end with an approved suffix category",
		Severity:    core.SeverityError,
		Check:       checkTableSuffix,
		Rationale:   "The suffix declares the warehouse layer a table belongs to.",
		BadExample:  "T_PROVR_LOC",
		GoodExample: "T_PROVR_LOC_DIM",
		Fix:         "Append the layer suffix: FACT, DIM, STG or RPTNG.",
	})
}

func checkTableSuffix(ctx *record.Context) []core.Violation {
	table := ctx.Table()
	if strings.TrimSpace(table.Name) == "" {
		return nil
	}

	if core.DeriveSuffix(table.Name) != core.SuffixNone {
		return nil
	}

	return []core.Violation{{
		RuleID:           "TN03",
		Severity:         core.SeverityError,
		Entity:           core.EntityTable,
		Name:             table.Name,
		Table:            table.Name,
		Message:          fmt.Sprintf("Table name '%s' must end with one of FACT, DIM, STG, RPTNG", strings.TrimSpace(table.Name)),
		DocumentationURL: lint.BuildDocURL("TN03"),
		ImpactScore:      lint.ImpactMedium.Int(),
	}}
}
