package description

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/lint"
	"github.com/leapstack-labs/dictlint/pkg/lint/record"
)

func init() {
	record.Register(record.RuleDef{
		ID:          "DS01",
		Name:        "description-spelling",
		Group:       "description",
		Description: "Description text is spell-checked against the dictionary",
		Severity:    core.SeverityWarning,
		Check:       checkDescriptionSpelling,
		Rationale:   "Misspelled descriptions defeat search and erode trust in the dictionary.",
		BadExample:  "Indicates the error condtion",
		GoodExample: "Indicates the error condition",
		Fix:         "Correct the flagged words, or extend the wordlist for domain terms.",
	})
}

// checkDescriptionSpelling is the one record rule that calls out to a
// collaborator. A failing or panicking speller degrades to a single
// could-not-verify warning per column; it never aborts the batch.
func checkDescriptionSpelling(ctx *record.Context) []core.Violation {
	table := ctx.Table()
	var violations []core.Violation
	for _, col := range table.Columns {
		if strings.TrimSpace(col.Name) == "" {
			continue
		}
		desc := strings.TrimSpace(col.Description)
		if desc == "" {
			continue
		}

		flagged, err := checkSpelling(ctx, desc)
		if err != nil {
			violations = append(violations, core.Violation{
				RuleID:           "DS01",
				Severity:         core.SeverityWarning,
				Entity:           core.EntityColumn,
				Name:             col.Name,
				Table:            table.Name,
				Message:          fmt.Sprintf("Spelling of the description for column '%s' could not be verified", col.Name),
				DocumentationURL: lint.BuildDocURL("DS01"),
				ImpactScore:      lint.ImpactLow.Int(),
			})
			continue
		}
		if len(flagged) == 0 {
			continue
		}

		violations = append(violations, core.Violation{
			RuleID:           "DS01",
			Severity:         core.SeverityWarning,
			Entity:           core.EntityColumn,
			Name:             col.Name,
			Table:            table.Name,
			Message:          fmt.Sprintf("Description of column '%s' has possible misspellings: %s", col.Name, strings.Join(flagged, ", ")),
			DocumentationURL: lint.BuildDocURL("DS01"),
			ImpactScore:      lint.ImpactLow.Int(),
		})
	}
	return violations
}

// checkSpelling calls the collaborator with the run context. A panic inside
// the collaborator is converted to an error so one bad speller cannot take
// down the run.
func checkSpelling(ctx *record.Context, text string) (flagged []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("speller panic: %v", r)
		}
	}()
	return ctx.Speller().Check(ctx.Ctx(), text)
}
