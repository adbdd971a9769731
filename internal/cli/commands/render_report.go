package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/dictlint/internal/cli/output"
	"github.com/leapstack-labs/dictlint/pkg/core"
)

// renderReport writes a validation report in the renderer's effective mode.
func renderReport(r *output.Renderer, batchName string, report *core.Report) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(report)
	case output.ModeCSV:
		renderReportCSV(r, report)
	case output.ModeMarkdown:
		renderReportMarkdown(r, batchName, report)
	default:
		renderReportText(r, batchName, report)
	}
	return nil
}

func renderReportText(r *output.Renderer, batchName string, report *core.Report) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render("Validation: " + batchName))
	r.Println("")

	if len(report.Violations) == 0 {
		r.Success("No violations found")
	} else {
		currentTable := ""
		for _, v := range report.Violations {
			if v.Table != currentTable {
				if currentTable != "" {
					r.Println("")
				}
				currentTable = v.Table
				r.Println(styles.Entity.Render(currentTable))
			}

			sevStyle := getSeverityStyle(styles, v.Severity)
			r.Printf("  %s  %s  %s %s: %s\n",
				sevStyle.Render(fmt.Sprintf("%-7s", v.Severity)),
				styles.Bold.Render(v.RuleID),
				strings.ToLower(string(v.Entity)),
				v.Name,
				v.Message,
			)
		}
	}

	r.Println("")
	s := report.Summary
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Tables", "Columns", "Errors", "Warnings", "Infos", "Hints", "Score"})
	t.AppendRow(table.Row{s.Tables, s.Columns, s.Errors, s.Warnings, s.Infos, s.Hints, fmt.Sprintf("%d/100", s.Score)})
	t.Render()
	r.Println("")
}

func renderReportMarkdown(r *output.Renderer, batchName string, report *core.Report) {
	r.Printf("# Validation: %s\n\n", batchName)

	if len(report.Violations) == 0 {
		r.Println("No violations found.")
	} else {
		r.Println("| Severity | Rule | Entity | Name | Table | Message |")
		r.Println("|----------|------|--------|------|-------|---------|")
		for _, v := range report.Violations {
			r.Printf("| %s | %s | %s | %s | %s | %s |\n",
				v.Severity,
				v.RuleID,
				strings.ToLower(string(v.Entity)),
				escapeMarkdownCell(v.Name),
				escapeMarkdownCell(v.Table),
				escapeMarkdownCell(v.Message),
			)
		}
	}

	s := report.Summary
	r.Println("")
	r.Println("## Summary")
	r.Println("")
	r.Printf("- Tables: %d, Columns: %d\n", s.Tables, s.Columns)
	r.Printf("- Errors: %d, Warnings: %d, Infos: %d, Hints: %d\n", s.Errors, s.Warnings, s.Infos, s.Hints)
	r.Printf("- Score: %d/100\n", s.Score)
}

func renderReportCSV(r *output.Renderer, report *core.Report) {
	r.Println("rule_id,severity,entity,name,table,message")
	for _, v := range report.Violations {
		fields := []string{
			v.RuleID,
			v.Severity.String(),
			strings.ToLower(string(v.Entity)),
			v.Name,
			v.Table,
			v.Message,
		}
		for i, f := range fields {
			fields[i] = escapeCSV(f)
		}
		r.Println(strings.Join(fields, ","))
	}
}

// escapeCSV quotes a value when it contains commas, quotes or newlines.
func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
	}
	return s
}

func escapeMarkdownCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func getSeverityStyle(styles *output.Styles, sev core.Severity) lipgloss.Style {
	switch sev {
	case core.SeverityError:
		return styles.Error
	case core.SeverityWarning:
		return styles.Warning
	case core.SeverityInfo:
		return styles.Info
	default:
		return styles.Muted
	}
}
