package record

import (
	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/lint"
)

// Analyzer runs record-scope rules against one table's context.
type Analyzer struct {
	config *lint.Config
}

// NewAnalyzer creates a record analyzer with optional configuration.
func NewAnalyzer(config *lint.Config) *Analyzer {
	if config == nil {
		config = lint.NewConfig()
	}
	return &Analyzer{config: config}
}

// Analyze runs all registered record rules against the context and returns
// the raw violations. Ordering and deduplication belong to the report
// assembler, not here.
func (a *Analyzer) Analyze(rc *Context) []core.Violation {
	if rc == nil {
		return nil
	}

	var violations []core.Violation
	for _, rule := range GetAll() {
		if a.config.IsDisabled(rule.ID) {
			continue
		}

		vios := rule.Check(rc)

		// Apply severity overrides
		for i := range vios {
			vios[i].Severity = a.config.GetSeverity(rule.ID, vios[i].Severity)
		}

		violations = append(violations, vios...)
	}

	return violations
}

// Name identifies the analyzer in logs.
func (a *Analyzer) Name() string {
	return "record"
}
