package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used for console output.
type Styles struct {
	// Title styling for the greeting line
	Title lipgloss.Style

	// Label styling for field names
	Label lipgloss.Style

	// Value styling for field values
	Value lipgloss.Style

	// Subtle text styling
	Subtle lipgloss.Style

	// Error styling
	Error lipgloss.Style
}

// NewStyles builds the styles against a renderer so color detection
// follows the writer the output ends up on.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")),

		Label: r.NewStyle().
			Foreground(lipgloss.Color("#888888")),

		Value: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),

		Subtle: r.NewStyle().
			Foreground(lipgloss.Color("#666666")),

		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true),
	}
}
