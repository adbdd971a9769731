// Package config loads and validates CLI configuration from defaults, a
// YAML file, environment variables and flags, in ascending precedence.
package config

import (
	"github.com/leapstack-labs/dictlint/pkg/core"
)

// Config is the resolved CLI configuration.
type Config struct {
	// Vocabulary is the approved-abbreviations CSV path. Empty means no
	// vocabulary entries; structural rules still run.
	Vocabulary string `koanf:"vocabulary"`

	// Classwords is the classword CSV path. Empty selects the built-in set.
	Classwords string `koanf:"classwords"`

	// Output selects the rendering mode (auto, text, markdown, json, csv).
	Output string `koanf:"output"`

	// FailOn is the severity threshold for a non-zero exit code.
	FailOn string `koanf:"fail_on"`

	// Workers caps record-scope concurrency. Zero means GOMAXPROCS.
	Workers int `koanf:"workers"`

	Directions DirectionsConfig `koanf:"directions"`
	Spelling   SpellingConfig   `koanf:"spelling"`

	// Lint holds rule enablement, severity overrides and per-rule options.
	Lint *core.LintConfig `koanf:"lint"`

	// State is the run-history SQLite path. Empty disables history.
	State string `koanf:"state"`

	Serve ServeConfig `koanf:"serve"`

	Verbose bool `koanf:"verbose"`
}

// DirectionsConfig sets the concept assembly order for technical names.
type DirectionsConfig struct {
	Table  string `koanf:"table"`
	Column string `koanf:"column"`
}

// SpellingConfig controls description spell checking.
type SpellingConfig struct {
	// Mode is strict, lenient or off.
	Mode string `koanf:"mode"`
	// Wordlist is an optional file of extra accepted words, one per line.
	Wordlist string `koanf:"wordlist"`
}

// ServeConfig holds the validation API server settings.
type ServeConfig struct {
	Addr string `koanf:"addr"`
}

// Default configuration values.
const (
	DefaultOutput          = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultFailOn          = "error"
	DefaultTableDirection  = "left-to-right"
	DefaultColumnDirection = "right-to-left"
	DefaultSpellingMode    = "lenient"
	DefaultServeAddr       = ":8484"
)
