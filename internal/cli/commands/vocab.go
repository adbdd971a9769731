package commands

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/dictlint/internal/cli/output"
	"github.com/leapstack-labs/dictlint/pkg/vocab"
	"github.com/spf13/cobra"
)

// NewVocabCommand creates the vocab command.
func NewVocabCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Show the approved vocabulary and classwords",
		Long: `Show the vocabulary the naming rules resolve against: approved
term-to-abbreviation pairs and the classword set with their compatible data
types. Paths come from the vocabulary and classwords config keys.`,
		Example: `  # Show the configured vocabulary
  dictlint vocab

  # Machine-readable listing
  dictlint vocab --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := NewCommandContext(cmd)
			r := c.Renderer
			if format != "" {
				r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(format))
			}

			store, err := loadVocabulary(c.Cfg)
			if err != nil {
				return err
			}
			return renderVocab(r, store)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, json, markdown")
	return cmd
}

// vocabJSONOutput is the JSON output structure for the vocab command.
type vocabJSONOutput struct {
	Entries    []vocab.Entry     `json:"entries"`
	Classwords []vocab.Classword `json:"classwords"`
}

func renderVocab(r *output.Renderer, store *vocab.Store) error {
	entries := store.Entries()
	classwords := store.Classwords()

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(vocabJSONOutput{Entries: entries, Classwords: classwords})
	case output.ModeMarkdown:
		renderVocabMarkdown(r, entries, classwords)
	default:
		renderVocabText(r, entries, classwords)
	}
	return nil
}

func renderVocabText(r *output.Renderer, entries []vocab.Entry, classwords []vocab.Classword) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render("Vocabulary"))
	r.Println("")

	if len(entries) == 0 {
		r.Println(styles.Muted.Render("No vocabulary entries configured."))
	} else {
		t := table.NewWriter()
		t.SetOutputMirror(r.Writer())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Term", "Abbreviation"})
		for _, e := range entries {
			t.AppendRow(table.Row{e.Term, e.Abbreviation})
		}
		t.Render()
	}

	r.Println("")
	r.Println(styles.Header2.Render("Classwords"))
	r.Println("")

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Code", "Compatible Types"})
	for _, cw := range classwords {
		t.AppendRow(table.Row{cw.Code, formatDataTypes(cw)})
	}
	t.Render()
	r.Println("")
}

func renderVocabMarkdown(r *output.Renderer, entries []vocab.Entry, classwords []vocab.Classword) {
	r.Println("# Vocabulary")
	r.Println("")

	if len(entries) == 0 {
		r.Println("No vocabulary entries configured.")
	} else {
		r.Println("| Term | Abbreviation |")
		r.Println("|------|--------------|")
		for _, e := range entries {
			r.Printf("| %s | %s |\n", e.Term, e.Abbreviation)
		}
	}

	r.Println("")
	r.Println("## Classwords")
	r.Println("")
	r.Println("| Code | Compatible Types |")
	r.Println("|------|------------------|")
	for _, cw := range classwords {
		r.Printf("| %s | %s |\n", cw.Code, formatDataTypes(cw))
	}
	r.Println("")
}

func formatDataTypes(cw vocab.Classword) string {
	if len(cw.DataTypes) == 0 {
		return "any"
	}
	parts := make([]string, len(cw.DataTypes))
	for i, dt := range cw.DataTypes {
		parts[i] = string(dt)
	}
	return strings.Join(parts, ", ")
}
