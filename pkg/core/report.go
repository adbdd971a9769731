package core

// Violation is one governance finding, attributed to a single dictionary
// entity. Message strings are deterministic: the same record and vocabulary
// always produce the same message.
type Violation struct {
	RuleID   string     `json:"rule_id"`
	Severity Severity   `json:"severity"`
	Entity   EntityType `json:"entity"`
	// Name is the technical name of the flagged entity.
	Name string `json:"name"`
	// Table is the owning table's technical name. For table entities it
	// equals Name.
	Table   string `json:"table"`
	Message string `json:"message"`

	DocumentationURL string `json:"documentation_url,omitempty"`
	ImpactScore      int    `json:"impact_score,omitempty"`
}

// Report is the assembled result of validating one batch: violations in
// their canonical order plus summary counts. Reports carry no timestamps so
// validating the same batch twice yields byte-identical serializations.
type Report struct {
	Violations []Violation `json:"violations"`
	Summary    Summary     `json:"summary"`
}

// Summary aggregates a report.
type Summary struct {
	Tables   int `json:"tables"`
	Columns  int `json:"columns"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Infos    int `json:"infos"`
	Hints    int `json:"hints"`
	// Score is a 0-100 governance health score derived from violation
	// impact, weighted against batch size.
	Score int `json:"score"`
}

// Total returns the number of violations across all severities.
func (s Summary) Total() int {
	return s.Errors + s.Warnings + s.Infos + s.Hints
}

// HasSeverityAtOrAbove reports whether the summary counts at least one
// violation at the given severity or a more severe level. Severity values
// grow less severe as they increase.
func (s Summary) HasSeverityAtOrAbove(threshold Severity) bool {
	switch threshold {
	case SeverityError:
		return s.Errors > 0
	case SeverityWarning:
		return s.Errors+s.Warnings > 0
	case SeverityInfo:
		return s.Errors+s.Warnings+s.Infos > 0
	default:
		return s.Total() > 0
	}
}
