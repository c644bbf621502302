package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFCF0")).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3AA99F"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFCF0"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#575653"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D14D41"))
)

// Table represents a bordered text table for CLI output.
// A row consisting of the single cell "---" renders as a separator line.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#282726")).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderFieldError renders one inline validation message.
func RenderFieldError(field, msg string) string {
	return errStyle.Render(fmt.Sprintf("  %s: %s", field, msg))
}

// RenderTable renders a bordered table with headers and rows.
// The first column is left-aligned, all others right-aligned.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	b.WriteString(dimStyle.Render("│"))
	for i, h := range t.Headers {
		b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("│"))
		}
	}
	b.WriteString(dimStyle.Render("│"))
	b.WriteString("\n")
	rule("├", "┼", "┤")

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if i == 0 {
				b.WriteString(valueStyle.Render(fmt.Sprintf(" %-*s ", widths[i], cell)))
			} else {
				b.WriteString(valueStyle.Render(fmt.Sprintf(" %*s ", widths[i], cell)))
			}
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")
	return b.String()
}

// RenderHorizontalBar renders a label with a proportional bar, used by the
// projection command.
func RenderHorizontalBar(value, maxValue float64, maxWidth int) string {
	if maxValue <= 0 || value <= 0 {
		return ""
	}
	barLen := int(value / maxValue * float64(maxWidth))
	if barLen < 1 {
		barLen = 1
	}
	return strings.Repeat("█", barLen)
}
