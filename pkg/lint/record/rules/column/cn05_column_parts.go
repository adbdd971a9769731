package column

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/identifier"
	"github.com/leapstack-labs/dictlint/pkg/lint"
	"github.com/leapstack-labs/dictlint/pkg/lint/record"
)

func init() {
	record.Register(record.RuleDef{
		ID:          "CN05",
		Name:        "column-parts",
		Group:       "column",
		Description: "Every column name segment must trace to the vocabulary or the English name",
		Severity:    core.SeverityWarning,
		Check:       checkColumnParts,
		Rationale:   "A segment nobody can look up is a private code. Ad-hoc abbreviations hide meaning from everyone downstream.",
		BadExample:  "CDE_TYP_ENCTR",
		GoodExample: "CDE_TYPE_ENC",
		Fix:         "Use vocabulary terms, approved abbreviations, or words from the English name.",
	})
}

// checkColumnParts verifies that each segment after the classword is a
// vocabulary term, an approved abbreviation, a classword, a word of the
// column's English name, or a numeric suffix. Untraceable segments are
// reported in concept order so the message reads like the English name.
func checkColumnParts(ctx *record.Context) []core.Violation {
	v := ctx.Vocab()
	if v == nil {
		return nil
	}

	table := ctx.Table()
	var violations []core.Violation
	for _, col := range table.Columns {
		name := identifier.Parse(col.Name)
		if name.IsEmpty() {
			continue
		}

		english := make(map[string]bool)
		for _, w := range identifier.SplitWords(col.EnglishName) {
			english[w] = true
		}

		// The classword sits at the written start of the name, which in
		// concept order is the far end for right-to-left assembly.
		concepts := name.Concepts(ctx.ColumnDirection())
		if cw, ok := v.MatchClassword(name.Raw); ok {
			n := len(strings.Split(cw.Code, "_"))
			if ctx.ColumnDirection() == identifier.RightToLeft {
				concepts = concepts[:len(concepts)-n]
			} else {
				concepts = concepts[n:]
			}
		}

		var unknown []string
		for _, tok := range concepts {
			if identifier.IsNumeric(tok) || v.IsTerm(tok) || v.IsAbbreviation(tok) || v.IsClassword(tok) || english[tok] {
				continue
			}
			unknown = append(unknown, tok)
		}
		if len(unknown) == 0 {
			continue
		}

		violations = append(violations, core.Violation{
			RuleID:           "CN05",
			Severity:         core.SeverityWarning,
			Entity:           core.EntityColumn,
			Name:             col.Name,
			Table:            table.Name,
			Message:          fmt.Sprintf("Column name '%s' contains unrecognized segments: %s", name.Raw, strings.Join(unknown, ", ")),
			DocumentationURL: lint.BuildDocURL("CN05"),
			ImpactScore:      lint.ImpactLow.Int(),
		})
	}
	return violations
}
