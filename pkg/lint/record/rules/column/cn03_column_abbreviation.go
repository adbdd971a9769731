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
		ID:          "CN03",
		Name:        "column-abbreviation",
		Group:       "column",
		Description: "English words over the length threshold must appear as their approved abbreviation",
		Severity:    core.SeverityError,
		ConfigKeys:  []string{"max_word_length"},
		Check:       checkColumnAbbreviation,
		Rationale:   "Long words eat the identifier length budget; the vocabulary fixes one abbreviation per word so names stay consistent across the warehouse.",
		BadExample:  "CDE_REGISTRATION",
		GoodExample: "CDE_REGN",
		Fix:         "Replace the word with its approved abbreviation, or add one to the vocabulary.",
	})
}

const defaultMaxWordLength = 10

// checkColumnAbbreviation walks the English-name words of each column. Words
// past the length threshold must show up in the technical name as their
// approved abbreviation. A long word the vocabulary has no entry for is a
// policy gap and downgrades to a warning: the dictionary author cannot fix
// it, the vocabulary owner can.
func checkColumnAbbreviation(ctx *record.Context) []core.Violation {
	v := ctx.Vocab()
	if v == nil {
		return nil
	}

	table := ctx.Table()
	maxWord := lint.GetIntOption(ctx.Options("CN03"), "max_word_length", defaultMaxWordLength)

	var violations []core.Violation
	for _, col := range table.Columns {
		if strings.TrimSpace(col.Name) == "" {
			continue
		}
		name := identifier.Parse(col.Name)
		tokens := make(map[string]bool, len(name.Tokens))
		for _, tok := range name.Tokens {
			tokens[tok] = true
		}

		for _, word := range identifier.SplitWords(col.EnglishName) {
			if len(word) <= maxWord || identifier.IsStopword(word) {
				continue
			}

			abbr, ok := v.Abbreviation(word)
			if !ok {
				violations = append(violations, core.Violation{
					RuleID:           "CN03",
					Severity:         core.SeverityWarning,
					Entity:           core.EntityColumn,
					Name:             col.Name,
					Table:            table.Name,
					Message:          fmt.Sprintf("Word '%s' exceeds %d characters but the vocabulary has no approved abbreviation for it", word, maxWord),
					DocumentationURL: lint.BuildDocURL("CN03"),
					ImpactScore:      lint.ImpactLow.Int(),
				})
				continue
			}

			if tokens[abbr] {
				continue
			}

			violations = append(violations, core.Violation{
				RuleID:           "CN03",
				Severity:         core.SeverityError,
				Entity:           core.EntityColumn,
				Name:             col.Name,
				Table:            table.Name,
				Message:          fmt.Sprintf("Word '%s' must appear in column name '%s' as its approved abbreviation '%s'", word, name.Raw, abbr),
				DocumentationURL: lint.BuildDocURL("CN03"),
				ImpactScore:      lint.ImpactMedium.Int(),
			})
		}
	}
	return violations
}
