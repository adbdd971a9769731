package description

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/identifier"
	"github.com/leapstack-labs/dictlint/pkg/lint"
	"github.com/leapstack-labs/dictlint/pkg/lint/record"
)

func init() {
	record.Register(record.RuleDef{
		ID:          "DS03",
		Name:        "english-name-case",
		Group:       "description",
		Description: "English names use title case with lowercase stopwords",
		Severity:    core.SeverityInfo,
		Check:       checkEnglishNameCase,
		Rationale:   "English names appear verbatim in business-facing catalogs; consistent casing keeps them readable.",
		BadExample:  "date Of birth",
		GoodExample: "Date of Birth",
		Fix:         "Title-case each word; keep connective words lowercase unless they lead.",
	})
}

var titleCaser = cases.Title(language.English)

// expectedEnglishCase renders an English name the way the style guide wants
// it: every word title-cased except connective stopwords past the first
// position, which stay lowercase.
func expectedEnglishCase(english string) string {
	words := strings.Fields(english)
	for i, w := range words {
		if i > 0 && identifier.IsStopword(w) {
			words[i] = strings.ToLower(w)
			continue
		}
		words[i] = titleCaser.String(w)
	}
	return strings.Join(words, " ")
}

func checkEnglishNameCase(ctx *record.Context) []core.Violation {
	table := ctx.Table()
	var violations []core.Violation

	if strings.TrimSpace(table.Name) != "" {
		if v, ok := caseViolation(core.EntityTable, table.Name, table.Name, table.EnglishName); ok {
			violations = append(violations, v)
		}
	}
	for _, col := range table.Columns {
		if strings.TrimSpace(col.Name) == "" {
			continue
		}
		if v, ok := caseViolation(core.EntityColumn, col.Name, table.Name, col.EnglishName); ok {
			violations = append(violations, v)
		}
	}
	return violations
}

func caseViolation(entity core.EntityType, name, owner, english string) (core.Violation, bool) {
	given := strings.Join(strings.Fields(english), " ")
	if given == "" {
		return core.Violation{}, false
	}
	expected := expectedEnglishCase(given)
	if expected == given {
		return core.Violation{}, false
	}

	return core.Violation{
		RuleID:           "DS03",
		Severity:         core.SeverityInfo,
		Entity:           entity,
		Name:             name,
		Table:            owner,
		Message:          fmt.Sprintf("English name '%s' should be written '%s'", given, expected),
		DocumentationURL: lint.BuildDocURL("DS03"),
		ImpactScore:      lint.ImpactLow.Int(),
	}, true
}
