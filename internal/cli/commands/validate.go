package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/dictlint/internal/cli/output"
	"github.com/leapstack-labs/dictlint/internal/loader"
	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/lint"
	_ "github.com/leapstack-labs/dictlint/pkg/lint/batch/rules"  // register batch rules
	_ "github.com/leapstack-labs/dictlint/pkg/lint/record/rules" // register record rules
	"github.com/spf13/cobra"
)

// watchDebounce coalesces editor save bursts into one validation pass.
const watchDebounce = 100 * time.Millisecond

// ValidateOptions holds options for the validate command.
type ValidateOptions struct {
	Format  string   // Output format override
	Disable []string // Rule IDs to disable
	Rules   []string // Run only specific rules
	Save    bool     // Record the run in state history
	Watch   bool     // Re-validate on file changes
}

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	opts := &ValidateOptions{}
	cmd := &cobra.Command{
		Use:   "validate <batch-file>",
		Short: "Validate a dictionary batch against the naming rules",
		Long: `Validate a data dictionary batch file against the governance rule catalog.

The batch file is a YAML tables list or a dictionary CSV export. Every table
and column record is checked for naming, typing, key and description
violations, then cross-record batch rules run over the whole set.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON/CSV: Machine-readable formats`,
		Example: `  # Validate a batch file
  dictlint validate warehouse.yaml

  # Validate a dictionary CSV export as JSON
  dictlint validate export.csv --format json

  # Disable specific rules
  dictlint validate warehouse.yaml --disable DS03,CN04

  # Re-validate on every save
  dictlint validate warehouse.yaml --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, csv")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().BoolVar(&opts.Save, "save", false, "Record the run in state history")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Re-validate when the batch file changes")

	return cmd
}

func runValidate(cmd *cobra.Command, path string, opts *ValidateOptions) error {
	c := NewCommandContext(cmd)
	r := c.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	if opts.Watch {
		return watchAndValidate(cmd.Context(), c, r, path, opts)
	}
	return validateOnce(cmd.Context(), c, r, path, opts)
}

func validateOnce(ctx context.Context, c *CommandContext, r *output.Renderer, path string, opts *ValidateOptions) error {
	tables, err := loader.LoadBatch(path)
	if err != nil {
		return err
	}

	lintCfg, err := buildLintConfig(c, opts)
	if err != nil {
		return err
	}

	eng, err := buildEngine(c.Cfg, c.Logger, lintCfg)
	if err != nil {
		return err
	}

	report, err := eng.Run(ctx, tables)
	if err != nil {
		return err
	}

	if err := renderReport(r, filepath.Base(path), report); err != nil {
		return err
	}

	if opts.Save {
		if err := saveRun(c, r, path, report); err != nil {
			return err
		}
	}

	threshold, _ := core.ParseSeverity(c.Cfg.FailOn)
	if report.Summary.HasSeverityAtOrAbove(threshold) {
		return fmt.Errorf("validation failed: %d violations at or above %s",
			violationsAtOrAbove(report.Summary, threshold), threshold)
	}
	return nil
}

// buildLintConfig merges the config file's lint section with CLI overrides.
// --rule restricts the run by disabling every other catalog rule.
func buildLintConfig(c *CommandContext, opts *ValidateOptions) (*lint.Config, error) {
	lintCfg, err := lint.FromProjectConfig(c.Cfg.Lint)
	if err != nil {
		return nil, err
	}

	for _, id := range opts.Disable {
		lintCfg.Disable(strings.ToUpper(strings.TrimSpace(id)))
	}

	if len(opts.Rules) > 0 {
		enabled := make(map[string]bool)
		for _, id := range opts.Rules {
			enabled[strings.ToUpper(strings.TrimSpace(id))] = true
		}
		for _, info := range lint.AllRules() {
			if !enabled[info.ID] {
				lintCfg.Disable(info.ID)
			}
		}
	}

	return lintCfg, nil
}

func violationsAtOrAbove(s core.Summary, threshold core.Severity) int {
	switch threshold {
	case core.SeverityError:
		return s.Errors
	case core.SeverityWarning:
		return s.Errors + s.Warnings
	case core.SeverityInfo:
		return s.Errors + s.Warnings + s.Infos
	default:
		return s.Total()
	}
}

func saveRun(c *CommandContext, r *output.Renderer, path string, report *core.Report) error {
	store, err := openStateStore(c.Cfg, c.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	run, err := store.SaveRun(filepath.Base(path), report)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	if r.EffectiveMode() != output.ModeJSON && r.EffectiveMode() != output.ModeCSV {
		r.Success("Recorded run " + run.ID)
	}
	return nil
}

// watchAndValidate validates once, then re-validates on every write to the
// batch file until the context is cancelled. Validation failures are printed
// but never end the loop.
func watchAndValidate(ctx context.Context, c *CommandContext, r *output.Renderer, path string, opts *ValidateOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory: editors replace files on save and a watch on the
	// file itself would go stale after the first write.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	runPass := func() {
		if err := validateOnce(ctx, c, r, path, opts); err != nil {
			r.Failure(err.Error())
		}
	}

	runPass()
	r.Println("")
	r.Println("Watching for changes. Press Ctrl+C to stop.")

	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || abs != target {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, runPass)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.Logger.Warn("watch error", "error", err)
		}
	}
}
