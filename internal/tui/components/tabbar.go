package components

import (
	"strings"

	"roical/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines the calculator's tabs.
var Tabs = []Tab{
	{Name: "Calculator", Key: 'c'},
	{Name: "Settings", Key: 'x'},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	sepStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(" ")
	for i, tab := range Tabs {
		if i > 0 {
			b.WriteString(sepStyle.Render(" │ "))
		}
		if i == activeIdx {
			b.WriteString(activeStyle.Render("[" + tab.Name + "]"))
		} else {
			b.WriteString(inactiveStyle.Render(" " + tab.Name + " "))
		}
	}

	bar := b.String()
	underline := sepStyle.Render(strings.Repeat("─", width))
	return bar + "\n" + underline + "\n"
}
