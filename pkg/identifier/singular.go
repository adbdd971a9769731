package identifier

import "strings"

// SingularPolicy decides whether a name segment is singular. The default is
// a heuristic; deployments with richer morphology needs supply their own.
type SingularPolicy interface {
	IsSingular(token string) bool
}

// defaultExceptions are tokens that end in S without being plural: mass
// nouns, Latin singulars, and common warehouse abbreviations.
var defaultExceptions = []string{
	"ACCESS",
	"ADDRESS",
	"ANALYSIS",
	"BASIS",
	"BUS",
	"BUSINESS",
	"CAMPUS",
	"CENSUS",
	"CLASS",
	"DIAGNOSIS",
	"GAS",
	"PROCESS",
	"PROGRESS",
	"STATUS",
	"STS",
	"SYS",
}

// HeuristicPolicy is the default SingularPolicy: a token is plural when it
// ends in S, unless it ends in SS, US or IS or sits on the exception list.
// The heuristic is deliberately shallow; it exists to catch PROVIDERS and
// CLAIMS, not to do morphology.
type HeuristicPolicy struct {
	exceptions map[string]bool
}

// NewHeuristicPolicy builds the default policy, with any extra exception
// tokens merged in.
func NewHeuristicPolicy(extra ...string) *HeuristicPolicy {
	p := &HeuristicPolicy{exceptions: make(map[string]bool, len(defaultExceptions)+len(extra))}
	for _, w := range defaultExceptions {
		p.exceptions[w] = true
	}
	for _, w := range extra {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w != "" {
			p.exceptions[w] = true
		}
	}
	return p
}

// IsSingular applies the heuristic.
func (p *HeuristicPolicy) IsSingular(token string) bool {
	tok := strings.ToUpper(strings.TrimSpace(token))
	if len(tok) < 2 || !strings.HasSuffix(tok, "S") {
		return true
	}
	if p.exceptions[tok] {
		return true
	}
	for _, safe := range []string{"SS", "US", "IS"} {
		if strings.HasSuffix(tok, safe) {
			return true
		}
	}
	return false
}
