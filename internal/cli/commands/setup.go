// Package commands implements the dictlint subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/dictlint/internal/cli/config"
	"github.com/leapstack-labs/dictlint/internal/cli/output"
	"github.com/leapstack-labs/dictlint/internal/engine"
	"github.com/leapstack-labs/dictlint/internal/loader"
	"github.com/leapstack-labs/dictlint/internal/state"
	"github.com/leapstack-labs/dictlint/pkg/identifier"
	"github.com/leapstack-labs/dictlint/pkg/lint"
	"github.com/leapstack-labs/dictlint/pkg/spell"
	"github.com/leapstack-labs/dictlint/pkg/vocab"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds the shared dependencies from the loaded config.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.Output)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration, falling back to defaults when
// the root command's PersistentPreRunE has not run (direct command tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		Output: config.DefaultOutput,
		FailOn: config.DefaultFailOn,
		Directions: config.DirectionsConfig{
			Table:  config.DefaultTableDirection,
			Column: config.DefaultColumnDirection,
		},
		Spelling: config.SpellingConfig{Mode: config.DefaultSpellingMode},
		Serve:    config.ServeConfig{Addr: config.DefaultServeAddr},
	}
}

// buildEngine assembles a validation engine from the configuration:
// vocabulary, spell checker, lint config and name directions. A nil lintCfg
// uses the config file's lint section unchanged.
func buildEngine(cfg *config.Config, logger *slog.Logger, lintCfg *lint.Config) (*engine.Engine, error) {
	store, err := loadVocabulary(cfg)
	if err != nil {
		return nil, err
	}

	speller, err := buildSpeller(cfg, store)
	if err != nil {
		return nil, err
	}

	if lintCfg == nil {
		lintCfg, err = lint.FromProjectConfig(cfg.Lint)
		if err != nil {
			return nil, err
		}
	}

	tableDir, _ := identifier.ParseDirection(cfg.Directions.Table)
	columnDir, _ := identifier.ParseDirection(cfg.Directions.Column)

	return engine.New(engine.Config{
		Vocab:           store,
		Speller:         speller,
		Lint:            lintCfg,
		TableDirection:  tableDir,
		ColumnDirection: columnDir,
		Workers:         cfg.Workers,
		Logger:          logger,
	})
}

// loadVocabulary builds the vocabulary store from the configured files. An
// empty vocabulary path yields a store with no entries; an empty classword
// path selects the built-in classword set.
func loadVocabulary(cfg *config.Config) (*vocab.Store, error) {
	var (
		entries    []vocab.Entry
		classwords []vocab.Classword
		err        error
	)

	if cfg.Vocabulary != "" {
		switch strings.ToLower(filepath.Ext(cfg.Vocabulary)) {
		case ".yaml", ".yml":
			entries, classwords, err = loader.LoadVocabularyYAML(cfg.Vocabulary)
		default:
			entries, err = loader.LoadAbbreviationsCSV(cfg.Vocabulary)
		}
		if err != nil {
			return nil, err
		}
	}

	if cfg.Classwords != "" {
		classwords, err = loader.LoadClasswordsCSV(cfg.Classwords)
		if err != nil {
			return nil, err
		}
	}
	if len(classwords) == 0 {
		classwords = vocab.DefaultClasswords()
	}

	return vocab.NewStore(entries, classwords)
}

// buildSpeller creates the description spell checker. The dictionary always
// includes the vocabulary's terms and abbreviations so DS01 never re-flags
// tokens DS02 already governs.
func buildSpeller(cfg *config.Config, store *vocab.Store) (spell.Checker, error) {
	if strings.EqualFold(cfg.Spelling.Mode, "off") {
		return spell.Noop{}, nil
	}
	mode, _ := spell.ParseMode(cfg.Spelling.Mode)

	words := spell.BaseWords()
	for _, e := range store.Entries() {
		words = append(words, e.Term, e.Abbreviation)
	}
	if cfg.Spelling.Wordlist != "" {
		extra, err := loader.LoadWordlist(cfg.Spelling.Wordlist)
		if err != nil {
			return nil, err
		}
		words = append(words, extra...)
	}

	return spell.NewDictionary(mode, words...), nil
}

// openStateStore opens and migrates the run-history store at cfg.State,
// creating the parent directory when needed. Callers own Close.
func openStateStore(cfg *config.Config, logger *slog.Logger) (*state.SQLiteStore, error) {
	if cfg.State == "" {
		return nil, fmt.Errorf("state path not configured; set state in dictlint.yaml to record runs")
	}

	dir := filepath.Dir(cfg.State)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	store := state.NewSQLiteStore(logger)
	if err := store.Open(cfg.State); err != nil {
		return nil, err
	}
	if err := store.Migrate(); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}
