package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/identifier"
)

var validOutputs = map[string]bool{
	"auto":     true,
	"text":     true,
	"markdown": true,
	"json":     true,
	"csv":      true,
}

var validSpellingModes = map[string]bool{
	"strict":  true,
	"lenient": true,
	"off":     true,
}

// Validate checks enumerated fields and value ranges after all layers merge.
func (c *Config) Validate() error {
	if !validOutputs[strings.ToLower(c.Output)] {
		return fmt.Errorf("invalid output mode %q (valid: auto, text, markdown, json, csv)", c.Output)
	}
	if _, ok := core.ParseSeverity(c.FailOn); !ok {
		return fmt.Errorf("invalid fail_on severity %q (valid: error, warning, info, hint)", c.FailOn)
	}
	if _, ok := identifier.ParseDirection(c.Directions.Table); !ok {
		return fmt.Errorf("invalid table direction %q (valid: left-to-right, right-to-left)", c.Directions.Table)
	}
	if _, ok := identifier.ParseDirection(c.Directions.Column); !ok {
		return fmt.Errorf("invalid column direction %q (valid: left-to-right, right-to-left)", c.Directions.Column)
	}
	if !validSpellingModes[strings.ToLower(c.Spelling.Mode)] {
		return fmt.Errorf("invalid spelling mode %q (valid: strict, lenient, off)", c.Spelling.Mode)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be zero or positive, got %d", c.Workers)
	}
	return nil
}
