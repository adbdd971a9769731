package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/dictlint/internal/cli/output"
	"github.com/leapstack-labs/dictlint/internal/loader"
	"github.com/leapstack-labs/dictlint/internal/sampledata"
	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/spf13/cobra"
)

// SamplesOptions holds options for the samples command.
type SamplesOptions struct {
	Rows   int
	Table  string
	Format string
}

// NewSamplesCommand creates the samples command.
func NewSamplesCommand() *cobra.Command {
	opts := &SamplesOptions{}
	cmd := &cobra.Command{
		Use:   "samples <batch-file>",
		Short: "Generate sample rows for a dictionary batch",
		Long: `Generate plausible sample rows from the column records in a batch file.

Values are derived from each column's name keywords, data type, precision and
nullability, and are deterministic per table and column: the same batch
always produces the same samples. Useful for reviewing whether a dictionary's
names and types actually describe the data they claim to.`,
		Example: `  # Sample every table in the batch
  dictlint samples warehouse.yaml

  # Ten rows for one table as CSV
  dictlint samples warehouse.yaml --table T_ENC_FACT --rows 10 --format csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSamples(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Rows, "rows", "n", 5, "Rows to generate per table")
	cmd.Flags().StringVar(&opts.Table, "table", "", "Only sample the named table")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, csv")

	return cmd
}

func runSamples(cmd *cobra.Command, path string, opts *SamplesOptions) error {
	c := NewCommandContext(cmd)
	r := c.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	tables, err := loader.LoadBatch(path)
	if err != nil {
		return err
	}

	if opts.Table != "" {
		tables = filterTables(tables, opts.Table)
		if len(tables) == 0 {
			return fmt.Errorf("table %q not found in batch", opts.Table)
		}
	}

	if opts.Rows < 1 {
		return fmt.Errorf("rows must be at least 1, got %d", opts.Rows)
	}

	return renderSamples(r, tables, opts.Rows)
}

func filterTables(tables []core.TableRecord, name string) []core.TableRecord {
	var filtered []core.TableRecord
	for _, t := range tables {
		if strings.EqualFold(t.Name, name) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// tableSamples is the JSON output structure for one sampled table.
type tableSamples struct {
	Table  string     `json:"table"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

func renderSamples(r *output.Renderer, tables []core.TableRecord, n int) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		out := make([]tableSamples, 0, len(tables))
		for _, t := range tables {
			out = append(out, tableSamples{
				Table:  t.Name,
				Header: sampledata.Header(t),
				Rows:   sampledata.Rows(t, n),
			})
		}
		return r.JSON(out)

	case output.ModeCSV:
		// One CSV stream only makes sense for a single table.
		if len(tables) > 1 {
			return fmt.Errorf("csv output requires --table to select a single table")
		}
		renderSamplesCSV(r, tables[0], n)
		return nil

	case output.ModeMarkdown:
		for _, t := range tables {
			renderSamplesMarkdown(r, t, n)
		}
		return nil

	default:
		for _, t := range tables {
			renderSamplesText(r, t, n)
		}
		return nil
	}
}

func renderSamplesText(r *output.Renderer, tr core.TableRecord, n int) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Entity.Render(tr.Name))

	header := sampledata.Header(tr)
	if len(header) == 0 {
		r.Println(styles.Muted.Render("  (no columns)"))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, row := range sampledata.Rows(tr, n) {
		tableRow := make(table.Row, len(row))
		for i, cell := range row {
			tableRow[i] = cell
		}
		t.AppendRow(tableRow)
	}
	t.Render()
}

func renderSamplesMarkdown(r *output.Renderer, tr core.TableRecord, n int) {
	r.Printf("## %s\n\n", tr.Name)

	header := sampledata.Header(tr)
	if len(header) == 0 {
		r.Println("(no columns)")
		r.Println("")
		return
	}

	r.Println("| " + strings.Join(header, " | ") + " |")
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	r.Println("| " + strings.Join(sep, " | ") + " |")

	for _, row := range sampledata.Rows(tr, n) {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = escapeMarkdownCell(cell)
		}
		r.Println("| " + strings.Join(cells, " | ") + " |")
	}
	r.Println("")
}

func renderSamplesCSV(r *output.Renderer, tr core.TableRecord, n int) {
	header := sampledata.Header(tr)
	escaped := make([]string, len(header))
	for i, h := range header {
		escaped[i] = escapeCSV(h)
	}
	r.Println(strings.Join(escaped, ","))

	for _, row := range sampledata.Rows(tr, n) {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = escapeCSV(cell)
		}
		r.Println(strings.Join(cells, ","))
	}
}
