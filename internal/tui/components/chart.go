package components

import (
	"fmt"
	"math"
	"strings"

	"roical/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// BarGroup is one x-axis group of the projection chart: a cost bar and a
// savings bar rendered side by side under a shared label.
type BarGroup struct {
	Label   string
	Cost    float64
	Savings float64
}

// GroupedBarChart renders cost and savings bars per group with a y-axis.
// All values must be finite and non-negative; the caller zeroes invalid data.
func GroupedBarChart(groups []BarGroup, width, height int) string {
	if len(groups) == 0 || width < 20 || height < 4 {
		return ""
	}

	t := theme.Active

	maxVal := 0.0
	for _, g := range groups {
		if g.Cost > maxVal {
			maxVal = g.Cost
		}
		if g.Savings > maxVal {
			maxVal = g.Savings
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	tickStep := chartTickStep(maxVal)
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	numIntervals := int(math.Round(ceiling / tickStep))
	if numIntervals < 1 {
		numIntervals = 1
	}

	rowsPerTick := height / numIntervals
	if rowsPerTick < 1 {
		rowsPerTick = 1
	}
	chartH := rowsPerTick * numIntervals

	yLabelW := len(formatChartLabel(ceiling)) + 1
	if yLabelW < 5 {
		yLabelW = 5
	}
	tickLabels := make(map[int]string)
	for i := 1; i <= numIntervals; i++ {
		tickLabels[i*rowsPerTick] = formatChartLabel(tickStep * float64(i))
	}

	chartW := width - yLabelW - 1
	n := len(groups)
	groupGap := 2
	// Each group holds two bars separated by a single column.
	barW := (chartW - (n-1)*groupGap - n) / (2 * n)
	if barW < 1 {
		barW = 1
	}
	if barW > 8 {
		barW = 8
	}
	groupW := 2*barW + 1
	axisLen := n*groupW + (n-1)*groupGap

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	costStyle := lipgloss.NewStyle().Foreground(t.Orange)
	savingsStyle := lipgloss.NewStyle().Foreground(t.Green)

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	renderBar := func(v float64, rowTop, rowBottom float64, style lipgloss.Style) string {
		switch {
		case v >= rowTop:
			return style.Render(strings.Repeat("█", barW))
		case v > rowBottom:
			frac := (v - rowBottom) / (rowTop - rowBottom)
			idx := int(frac * 8)
			if idx < 1 {
				idx = 1
			}
			if idx > 8 {
				idx = 8
			}
			return style.Render(strings.Repeat(string(blocks[idx]), barW))
		default:
			return strings.Repeat(" ", barW)
		}
	}

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))

		for i, g := range groups {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", groupGap))
			}
			b.WriteString(renderBar(g.Cost, rowTop, rowBottom, costStyle))
			b.WriteString(" ")
			b.WriteString(renderBar(g.Savings, rowTop, rowBottom, savingsStyle))
		}
		b.WriteString("\n")
	}

	// X-axis and group labels
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", axisLen)))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", yLabelW+1))
	for i, g := range groups {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", groupGap))
		}
		lbl := g.Label
		if len(lbl) > groupW {
			lbl = lbl[:groupW]
		}
		pad := groupW - len(lbl)
		b.WriteString(strings.Repeat(" ", pad/2))
		b.WriteString(axisStyle.Render(lbl))
		b.WriteString(strings.Repeat(" ", pad-pad/2))
	}
	b.WriteString("\n")

	// Legend
	b.WriteString(strings.Repeat(" ", yLabelW+1))
	b.WriteString(costStyle.Render("█ cost"))
	b.WriteString("  ")
	b.WriteString(savingsStyle.Render("█ savings"))

	return b.String()
}

// chartTickStep computes a nice tick interval targeting ~4 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 4
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e9:
		return trimZero(v/1e9) + "B"
	case v >= 1e6:
		return trimZero(v/1e6) + "M"
	case v >= 1e3:
		return trimZero(v/1e3) + "k"
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

func trimZero(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
