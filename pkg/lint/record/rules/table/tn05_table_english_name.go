package table

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
		ID:          "TN05",
		Name:        "table-english-name",
		Group:       "table",
		Description: "English names must map onto table name segments in order",
		Severity:    core.SeverityError,
		Check:       checkTableEnglishName,
		Rationale:   "The technical name is the English name assembled concept by concept; a name that cannot be read back from its English name is untraceable.",
		BadExample:  "T_LOC_PROVR_DIM for 'Provider Location'",
		GoodExample: "T_PROVR_LOC_DIM for 'Provider Location'",
		Fix:         "Order the name segments like the English name and use the approved abbreviation of each word.",
	})
}

// checkTableEnglishName verifies structural correspondence, not spelling:
// every non-stopword word of the English name, rewritten to its approved
// abbreviation when the vocabulary has one, must appear among the table
// name's concepts in the same relative order.
func checkTableEnglishName(ctx *record.Context) []core.Violation {
	table := ctx.Table()
	name := identifier.Parse(table.Name)
	if name.IsEmpty() {
		return nil
	}

	english := strings.TrimSpace(table.EnglishName)
	if english == "" {
		return []core.Violation{{
			RuleID:           "TN05",
			Severity:         core.SeverityError,
			Entity:           core.EntityTable,
			Name:             table.Name,
			Table:            table.Name,
			Message:          fmt.Sprintf("Table '%s' has no English name", name.Raw),
			DocumentationURL: lint.BuildDocURL("TN05"),
			ImpactScore:      lint.ImpactMedium.Int(),
		}}
	}

	v := ctx.Vocab()
	if v == nil {
		return nil
	}

	var expected []string
	for _, word := range identifier.SplitWords(english) {
		if identifier.IsStopword(word) {
			continue
		}
		if abbr, ok := v.Abbreviation(word); ok {
			expected = append(expected, abbr)
			continue
		}
		expected = append(expected, word)
	}

	concepts := name.Concepts(ctx.TableDirection())
	if identifier.Subsequence(expected, concepts) {
		return nil
	}

	return []core.Violation{{
		RuleID:           "TN05",
		Severity:         core.SeverityError,
		Entity:           core.EntityTable,
		Name:             table.Name,
		Table:            table.Name,
		Message:          fmt.Sprintf("English name '%s' does not map onto table name '%s': expected segment '%s' in order", english, name.Raw, firstUnmatched(expected, concepts)),
		DocumentationURL: lint.BuildDocURL("TN05"),
		ImpactScore:      lint.ImpactMedium.Int(),
	}}
}

// firstUnmatched returns the first expected segment the concept sequence
// fails to cover in order. Matching is greedy, the same walk Subsequence
// does, so the reported segment is where the correspondence breaks.
func firstUnmatched(expected, concepts []string) string {
	i := 0
	for _, c := range concepts {
		if i < len(expected) && c == expected[i] {
			i++
		}
	}
	if i < len(expected) {
		return expected[i]
	}
	return ""
}
