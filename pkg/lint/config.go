package lint

import (
	"fmt"

	"github.com/leapstack-labs/dictlint/pkg/core"
)

// Config controls which rules run and how their findings are weighted.
type Config struct {
	// DisabledRules contains rule IDs to skip
	DisabledRules map[string]bool

	// SeverityOverrides changes the default severity of rules
	SeverityOverrides map[string]core.Severity

	// RuleOptions holds per-rule option maps, keyed by rule ID
	RuleOptions map[string]map[string]any
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		SeverityOverrides: make(map[string]core.Severity),
		RuleOptions:       make(map[string]map[string]any),
	}
}

// FromProjectConfig converts the config-file representation into a runtime
// Config. Invalid severity names are a caller configuration error.
func FromProjectConfig(pc *core.LintConfig) (*Config, error) {
	c := NewConfig()
	if pc == nil {
		return c, nil
	}

	for _, id := range pc.Disabled {
		c.Disable(id)
	}
	for id, raw := range pc.Severity {
		sev, ok := core.ParseSeverity(raw)
		if !ok {
			return nil, fmt.Errorf("lint config: invalid severity %q for rule %s", raw, id)
		}
		c.SetSeverity(id, sev)
	}
	for id, opts := range pc.Rules {
		for k, v := range opts {
			c.SetOption(id, k, v)
		}
	}
	return c, nil
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	return c.DisabledRules[ruleID]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(ruleID string, defaultSeverity core.Severity) core.Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[ruleID]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// Options returns the option map for a rule, or nil.
func (c *Config) Options(ruleID string) map[string]any {
	if c == nil {
		return nil
	}
	return c.RuleOptions[ruleID]
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	c.DisabledRules[ruleID] = true
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(ruleID string, severity core.Severity) *Config {
	c.SeverityOverrides[ruleID] = severity
	return c
}

// SetOption sets a rule option.
func (c *Config) SetOption(ruleID, key string, value any) *Config {
	if c.RuleOptions[ruleID] == nil {
		c.RuleOptions[ruleID] = make(map[string]any)
	}
	c.RuleOptions[ruleID][key] = value
	return c
}
