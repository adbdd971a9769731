package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the lipgloss style set commands render with. In non-text modes
// every style is a zero style and Render returns its input unchanged.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	// Entity highlights table and column names.
	Entity lipgloss.Style
}

// newStyles builds the colored style set against w so color degradation
// follows the actual output stream, not os.Stdout.
func newStyles(w io.Writer) *Styles {
	lip := lipgloss.NewRenderer(w)
	return &Styles{
		Header1: lip.NewStyle().Bold(true).Underline(true),
		Header2: lip.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Bold:    lip.NewStyle().Bold(true),
		Muted:   lip.NewStyle().Foreground(lipgloss.Color("8")),
		Error:   lip.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lip.NewStyle().Foreground(lipgloss.Color("11")),
		Info:    lip.NewStyle().Foreground(lipgloss.Color("12")),
		Success: lip.NewStyle().Foreground(lipgloss.Color("10")),
		Entity:  lip.NewStyle().Foreground(lipgloss.Color("14")),
	}
}

func newPlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Header1: plain,
		Header2: plain,
		Bold:    plain,
		Muted:   plain,
		Error:   plain,
		Warning: plain,
		Info:    plain,
		Success: plain,
		Entity:  plain,
	}
}
