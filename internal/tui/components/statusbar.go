package components

import (
	"roical/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. flash carries a transient
// message (export confirmation or error) shown on the right.
func RenderStatusBar(width int, flash string, flashIsErr bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [J]son [C]sv [P]df  [q]uit"

	right := ""
	if flash != "" {
		flashStyle := lipgloss.NewStyle().Foreground(t.Green)
		if flashIsErr {
			flashStyle = lipgloss.NewStyle().Foreground(t.Red)
		}
		right = flashStyle.Render(flash) + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
