package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/dictlint/internal/cli/output"
	"github.com/leapstack-labs/dictlint/internal/state"
	"github.com/spf13/cobra"
)

// HistoryOptions holds options for the history command.
type HistoryOptions struct {
	Limit  int
	Format string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand() *cobra.Command {
	opts := &HistoryOptions{}
	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show recorded validation runs",
		Long: `Show validation runs recorded with validate --save.

Without arguments, lists recent runs newest first. With a run ID, shows that
run's full report. Requires a state path in the configuration.`,
		Example: `  # List recent runs
  dictlint history

  # Show one run's report
  dictlint history 3f8a1c2e-...

  # Last five runs as JSON
  dictlint history --limit 5 --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewCommandContext(cmd)
			r := c.Renderer
			if opts.Format != "" {
				r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
			}

			store, err := openStateStore(c.Cfg, c.Logger)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if len(args) > 0 {
				return showRun(r, store, args[0])
			}
			return listRunsHistory(r, store, opts.Limit)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "Maximum runs to list")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

func listRunsHistory(r *output.Renderer, store state.Store, limit int) error {
	runs, err := store.ListRuns(limit)
	if err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(runs)
	}

	styles := r.Styles()
	if len(runs) == 0 {
		r.Println(styles.Muted.Render("No recorded runs. Use 'dictlint validate --save' to record one."))
		return nil
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println("| Run | Batch | Ran At | Errors | Warnings | Score |")
		r.Println("|-----|-------|--------|--------|----------|-------|")
		for _, run := range runs {
			r.Printf("| %s | %s | %s | %d | %d | %d |\n",
				shortID(run.ID), run.BatchName, run.RanAt.Format("2006-01-02 15:04:05"),
				run.Summary.Errors, run.Summary.Warnings, run.Summary.Score)
		}
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Run", "Batch", "Ran At", "Errors", "Warnings", "Score"})
	for _, run := range runs {
		t.AppendRow(table.Row{
			shortID(run.ID),
			run.BatchName,
			run.RanAt.Format("2006-01-02 15:04:05"),
			run.Summary.Errors,
			run.Summary.Warnings,
			run.Summary.Score,
		})
	}
	t.Render()
	return nil
}

func showRun(r *output.Renderer, store state.Store, id string) error {
	full, err := resolveRunID(store, id)
	if err != nil {
		return err
	}

	run, err := store.GetRun(full)
	if err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(run)
	}

	title := fmt.Sprintf("%s (%s, %s)", run.BatchName, shortID(run.ID), run.RanAt.Format("2006-01-02 15:04:05"))
	return renderReport(r, title, run.Report)
}

// resolveRunID expands a truncated run ID from a listing back to the full
// UUID. Exact IDs pass through untouched.
func resolveRunID(store state.Store, id string) (string, error) {
	runs, err := store.ListRuns(0)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, run := range runs {
		if run.ID == id {
			return id, nil
		}
		if strings.HasPrefix(run.ID, id) {
			matches = append(matches, run.ID)
		}
	}

	switch len(matches) {
	case 0:
		return id, nil // let GetRun report the not-found error
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("run ID %q is ambiguous (%d matches)", id, len(matches))
	}
}

// shortID truncates a run UUID for listings; full IDs stay in JSON output.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
