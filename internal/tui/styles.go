package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared across the demo views.
var (
	// ColorAccent highlights the header and the selected row.
	ColorAccent = lipgloss.Color("12")

	// ColorMuted renders detail lines and the help footer.
	ColorMuted = lipgloss.Color("8")

	// ColorWarning flags estimated (not yet measured) state.
	ColorWarning = lipgloss.Color("11")
)

// Reusable styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	statusStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	detailStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	promptStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)
