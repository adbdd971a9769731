package lint

import (
	"sort"

	"github.com/leapstack-labs/dictlint/pkg/core"
)

// NewReport assembles raw validator output into the canonical report:
// exact duplicates collapsed, violations totally ordered, summary counts
// and score computed. The order is independent of input order, so two runs
// over the same batch serialize byte-identically.
func NewReport(tables []core.TableRecord, violations []core.Violation) *core.Report {
	report := &core.Report{
		Violations: dedupe(violations),
	}
	sortViolations(report.Violations)

	report.Summary.Tables = len(tables)
	for _, t := range tables {
		report.Summary.Columns += len(t.Columns)
	}

	impact := 0
	for _, v := range report.Violations {
		impact += v.ImpactScore
		switch v.Severity {
		case core.SeverityError:
			report.Summary.Errors++
		case core.SeverityWarning:
			report.Summary.Warnings++
		case core.SeverityInfo:
			report.Summary.Infos++
		default:
			report.Summary.Hints++
		}
	}

	report.Summary.Score = score(impact, report.Summary.Tables+report.Summary.Columns)
	return report
}

// dedupe collapses violations that agree on rule, entity and message. The
// same defect reached through two code paths reports once.
func dedupe(violations []core.Violation) []core.Violation {
	out := make([]core.Violation, 0, len(violations))
	seen := make(map[violationKey]bool, len(violations))
	for _, v := range violations {
		k := violationKey{v.RuleID, v.Entity, v.Name, v.Table, v.Message}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, v)
	}
	return out
}

type violationKey struct {
	ruleID  string
	entity  core.EntityType
	name    string
	table   string
	message string
}

// sortViolations applies the canonical order: owner table, entity kind
// (a table's own findings before its columns'), entity name, rule ID, and
// finally message so the order is total.
func sortViolations(violations []core.Violation) {
	sort.Slice(violations, func(i, j int) bool {
		a, b := violations[i], violations[j]
		if a.Table != b.Table {
			return a.Table < b.Table
		}
		if ra, rb := entityRank(a.Entity), entityRank(b.Entity); ra != rb {
			return ra < rb
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if a.RuleID != b.RuleID {
			return a.RuleID < b.RuleID
		}
		return a.Message < b.Message
	})
}

func entityRank(e core.EntityType) int {
	if e == core.EntityTable {
		return 0
	}
	return 1
}

// score maps accumulated violation impact onto a 0-100 health score,
// normalized by batch size so one bad column does not sink a big batch.
func score(totalImpact, entities int) int {
	if entities == 0 {
		return 100
	}
	penalty := totalImpact / entities
	if penalty > 100 {
		penalty = 100
	}
	return 100 - penalty
}
