package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leapstack-labs/dictlint/internal/cli/output"
	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/lint"
	_ "github.com/leapstack-labs/dictlint/pkg/lint/batch/rules"  // register batch rules
	_ "github.com/leapstack-labs/dictlint/pkg/lint/record/rules" // register record rules
	"github.com/spf13/cobra"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Type    string // Filter by type: record, batch
	Verbose bool   // Show full documentation
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List the governance rule catalog",
		Long: `List the naming governance rules with their documentation.

Rules are organized by type (record or batch) and group (e.g. table, column,
key). Use --verbose to see full documentation including examples and fix
guidance.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all rules
  dictlint rules

  # Show details for a specific rule
  dictlint rules CN02

  # List batch rules only
  dictlint rules --type batch

  # List rules in the key group
  dictlint rules --group key

  # Output as JSON
  dictlint rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().StringVar(&opts.Type, "type", "", "Filter by type: record, batch")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	c := NewCommandContext(cmd)
	r := c.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	rules := filterRulesByOptions(lint.AllRules(), opts)

	// Sort by type, then group, then ID
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Type != rules[j].Type {
			return rules[i].Type < rules[j].Type
		}
		if rules[i].Group != rules[j].Group {
			return rules[i].Group < rules[j].Group
		}
		return rules[i].ID < rules[j].ID
	})

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listRulesJSON(r, rules)
	case output.ModeMarkdown:
		return listRulesMarkdown(r, rules, opts.Verbose)
	default:
		return listRulesText(r, rules, opts.Verbose)
	}
}

func filterRulesByOptions(rules []core.RuleInfo, opts *RulesOptions) []core.RuleInfo {
	if opts.Group == "" && opts.Type == "" {
		return rules
	}

	var filtered []core.RuleInfo
	for _, ri := range rules {
		if opts.Group != "" && ri.Group != opts.Group {
			continue
		}
		if opts.Type != "" && ri.Type != opts.Type {
			continue
		}
		filtered = append(filtered, ri)
	}
	return filtered
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	c := NewCommandContext(cmd)
	r := c.Renderer

	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	rule, ok := lint.GetRuleInfo(strings.ToUpper(strings.TrimSpace(ruleID)))
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(rule)
	case output.ModeMarkdown:
		return showRuleMarkdown(r, rule)
	default:
		return showRuleText(r, rule)
	}
}

func listRulesText(r *output.Renderer, rules []core.RuleInfo, verbose bool) error {
	styles := r.Styles()

	recordCount, batchCount := 0, 0
	for _, ri := range rules {
		if ri.Type == "batch" {
			batchCount++
		} else {
			recordCount++
		}
	}

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Governance Rules (%d record, %d batch)", recordCount, batchCount)))
	r.Println("")

	currentType := ""
	currentGroup := ""

	for _, ri := range rules {
		if ri.Type != currentType {
			currentType = ri.Type
			currentGroup = ""
			r.Println(styles.Header2.Render(typeLabel(currentType)))
			r.Println("")
		}

		if ri.Group != currentGroup {
			currentGroup = ri.Group
			r.Println(styles.Bold.Render("  " + capitalizeFirst(currentGroup)))
		}

		severityStyle := getSeverityStyle(styles, ri.DefaultSeverity)
		r.Printf("    %s  %s - %s\n",
			styles.Muted.Render(ri.ID),
			ri.Name,
			severityStyle.Render(ri.DefaultSeverity.String()),
		)

		if verbose {
			r.Println(styles.Muted.Render("        " + ri.Description))
			if ri.Rationale != "" {
				r.Println(styles.Muted.Render("        Why: " + truncateOneLine(ri.Rationale, 80)))
			}
			r.Println("")
		}
	}

	r.Println("")
	r.Println(styles.Muted.Render("Use 'dictlint rules <rule-id>' for detailed documentation"))
	r.Println("")

	return nil
}

func listRulesMarkdown(r *output.Renderer, rules []core.RuleInfo, verbose bool) error {
	r.Println("# Governance Rules")
	r.Println("")

	currentType := ""
	currentGroup := ""

	for _, ri := range rules {
		if ri.Type != currentType {
			currentType = ri.Type
			currentGroup = ""
			r.Println("## " + typeLabel(currentType))
			r.Println("")
		}

		if ri.Group != currentGroup {
			currentGroup = ri.Group
			r.Println("### " + capitalizeFirst(currentGroup))
			r.Println("")
		}

		r.Printf("- **%s** - %s (`%s`)\n", ri.ID, ri.Name, ri.DefaultSeverity.String())
		if verbose {
			r.Println("  " + ri.Description)
			if ri.Rationale != "" {
				r.Println("  > " + ri.Rationale)
			}
		}
	}

	r.Println("")
	return nil
}

// RulesJSONOutput is the JSON output structure for rules listing.
type RulesJSONOutput struct {
	Rules []core.RuleInfo `json:"rules"`
	Count struct {
		Record int `json:"record"`
		Batch  int `json:"batch"`
		Total  int `json:"total"`
	} `json:"count"`
}

func listRulesJSON(r *output.Renderer, rules []core.RuleInfo) error {
	out := RulesJSONOutput{Rules: rules}
	for _, ri := range rules {
		if ri.Type == "batch" {
			out.Count.Batch++
		} else {
			out.Count.Record++
		}
	}
	out.Count.Total = len(rules)
	return r.JSON(out)
}

func showRuleText(r *output.Renderer, rule core.RuleInfo) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", rule.ID, rule.Name)))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Type"), rule.Type)
	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), rule.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), rule.DefaultSeverity.String())
	r.Printf("  %s: %s\n", styles.Bold.Render("Docs"), lint.BuildDocURL(rule.ID))
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		r.Println("  " + rule.Rationale)
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println(styles.Bold.Render("Bad Example"))
		for _, line := range strings.Split(rule.BadExample, "\n") {
			r.Println(styles.Muted.Render("  " + line))
		}
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println(styles.Bold.Render("Good Example"))
		for _, line := range strings.Split(rule.GoodExample, "\n") {
			r.Println(styles.Success.Render("  " + line))
		}
		r.Println("")
	}

	if rule.Fix != "" {
		r.Println(styles.Bold.Render("How to Fix"))
		r.Println("  " + rule.Fix)
		r.Println("")
	}

	if len(rule.ConfigKeys) > 0 {
		r.Println(styles.Bold.Render("Configuration"))
		r.Printf("  Options: %s\n", strings.Join(rule.ConfigKeys, ", "))
		r.Println("")
	}

	return nil
}

func showRuleMarkdown(r *output.Renderer, rule core.RuleInfo) error {
	r.Printf("# %s - %s\n\n", rule.ID, rule.Name)
	r.Printf("**Type:** %s | **Group:** %s | **Severity:** `%s`\n\n", rule.Type, rule.Group, rule.DefaultSeverity.String())
	r.Println(rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println("## Why This Matters")
		r.Println("")
		r.Println(rule.Rationale)
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println("## Bad Example")
		r.Println("")
		r.Println("```")
		r.Println(rule.BadExample)
		r.Println("```")
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println("## Good Example")
		r.Println("")
		r.Println("```")
		r.Println(rule.GoodExample)
		r.Println("```")
		r.Println("")
	}

	if rule.Fix != "" {
		r.Println("## How to Fix")
		r.Println("")
		r.Println(rule.Fix)
		r.Println("")
	}

	if len(rule.ConfigKeys) > 0 {
		r.Println("## Configuration")
		r.Println("")
		r.Printf("Options: `%s`\n", strings.Join(rule.ConfigKeys, "`, `"))
		r.Println("")
	}

	return nil
}

// Helper functions

func typeLabel(ruleType string) string {
	if ruleType == "batch" {
		return "Batch Rules"
	}
	return "Record Rules"
}

func truncateOneLine(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
