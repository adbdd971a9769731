package batch

import (
	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/lint"
)

// Analyzer runs batch-scope rules against the full record set.
type Analyzer struct {
	config *lint.Config
}

// NewAnalyzer creates a batch analyzer with optional configuration.
func NewAnalyzer(config *lint.Config) *Analyzer {
	if config == nil {
		config = lint.NewConfig()
	}
	return &Analyzer{config: config}
}

// Analyze runs all registered batch rules against the context and returns
// the raw violations.
func (a *Analyzer) Analyze(bc *Context) []core.Violation {
	if bc == nil {
		return nil
	}

	var violations []core.Violation
	for _, rule := range GetAll() {
		if a.config.IsDisabled(rule.ID) {
			continue
		}

		vios := rule.Check(bc)

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
	return "batch"
}
