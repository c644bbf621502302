package tui

import (
	"fmt"
	"strconv"
	"strings"

	"roical/internal/cli"
	"roical/internal/engine"
	"roical/internal/model"
	"roical/internal/tui/components"
	"roical/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var fieldLabels = [fieldCount]string{
	fieldLicenseCost:  "License Cost / User",
	fieldNumUsers:     "Number of Users",
	fieldHoursSaved:   "Hours Saved / User / Week",
	fieldHourlyRate:   "Hourly Rate",
	fieldImplCost:     "Implementation Cost",
	fieldTimeToValue:  "Time to Value (Months)",
	fieldPricingModel: "Pricing Model",
}

// engineFields maps input fields to validation field names.
// The pricing model cannot fail validation and has no entry.
var engineFields = [fieldCount]string{
	fieldLicenseCost: engine.FieldLicenseCost,
	fieldNumUsers:    engine.FieldNumUsers,
	fieldHoursSaved:  engine.FieldHoursSaved,
	fieldHourlyRate:  engine.FieldHourlyRate,
	fieldImplCost:    engine.FieldImplementationCost,
	fieldTimeToValue: engine.FieldTimeToValue,
}

// fieldValue returns the raw editable text for a field.
func (a App) fieldValue(i int) string {
	s := a.scenario
	switch i {
	case fieldLicenseCost:
		return strconv.FormatFloat(s.LicenseCostPerUser, 'f', -1, 64)
	case fieldNumUsers:
		return strconv.Itoa(s.NumUsers)
	case fieldHoursSaved:
		return strconv.FormatFloat(s.HoursSavedPerUserPerWeek, 'f', -1, 64)
	case fieldHourlyRate:
		return strconv.FormatFloat(s.HourlyRate, 'f', -1, 64)
	case fieldImplCost:
		return strconv.FormatFloat(s.ImplementationCost, 'f', -1, 64)
	case fieldTimeToValue:
		return strconv.FormatFloat(s.TimeToValueMonths, 'f', -1, 64)
	case fieldPricingModel:
		return string(s.PricingModel)
	}
	return ""
}

// fieldDisplay returns the formatted read-only text for a field.
func (a App) fieldDisplay(i int) string {
	s := a.scenario
	switch i {
	case fieldLicenseCost:
		per := "/month"
		if s.PricingModel == model.PricingAnnual {
			per = "/year"
		}
		return cli.FormatCurrency(s.LicenseCostPerUser) + per
	case fieldNumUsers:
		return cli.FormatNumber(int64(s.NumUsers))
	case fieldHoursSaved:
		return cli.FormatHours(s.HoursSavedPerUserPerWeek)
	case fieldHourlyRate:
		return cli.FormatCurrency(s.HourlyRate) + "/hr"
	case fieldImplCost:
		return cli.FormatCurrency(s.ImplementationCost)
	case fieldTimeToValue:
		return cli.FormatMonths(s.TimeToValueMonths)
	case fieldPricingModel:
		return string(s.PricingModel) + "  (enter toggles)"
	}
	return ""
}

func (a App) renderCalculatorTab(cw int) string {
	var b strings.Builder

	b.WriteString(components.ContentCard("Inputs", a.renderInputs(cw), cw))
	b.WriteString("\n")

	// Headline metric cards render N/A uniformly for an invalid scenario.
	m := a.metrics
	savingsDelta := ""
	roiDelta := ""
	paybackDelta := ""
	if a.verr == nil {
		savingsDelta = cli.FormatCurrency(m.MonthlyNetSavings) + "/mo net"
		roiDelta = "net " + cli.FormatCurrency(m.AnnualNetValue)
		paybackDelta = fmt.Sprintf("incl. %s mo ramp-up", cli.FormatMonths(a.scenario.TimeToValueMonths))
	}
	cards := []components.Metric{
		{Label: "Annual Savings", Value: cli.FormatCurrency(m.AnnualSavings), Delta: savingsDelta},
		{Label: "Payback Period", Value: cli.FormatPayback(m.PaybackPeriodMonths), Delta: paybackDelta},
		{Label: "First-Year ROI", Value: cli.FormatROI(m.AnnualROI), Delta: roiDelta},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	halves := components.LayoutRow(cw, 2)

	chart := a.renderProjectionChart(components.CardInnerWidth(halves[0]))
	chartCard := components.ContentCard("3-Year Projection", chart, halves[0])

	detailCard := components.ContentCard("Details", a.renderDetails(), halves[1])

	b.WriteString(components.CardRow([]string{chartCard, detailCard}))
	return b.String()
}

func (a App) renderInputs(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedLabel := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	errorStyle := lipgloss.NewStyle().Foreground(t.Red)

	var b strings.Builder
	for i := 0; i < fieldCount; i++ {
		label := fmt.Sprintf("%-26s ", fieldLabels[i]+":")

		if a.editing && i == a.cursor {
			b.WriteString(markerStyle.Render("▸ "))
			b.WriteString(selectedLabel.Render(label))
			b.WriteString(a.input.View())
			b.WriteString("\n")
			continue
		}

		if i == a.cursor {
			b.WriteString(markerStyle.Render("▸ "))
			b.WriteString(selectedLabel.Render(label))
		} else {
			b.WriteString("  ")
			b.WriteString(labelStyle.Render(label))
		}
		b.WriteString(valueStyle.Render(a.fieldDisplay(i)))

		// Inline validation message next to the offending input.
		if msg := a.verr.For(engineFields[i]); msg != "" {
			b.WriteString(errorStyle.Render("  ← " + msg))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [J/C/P] export"))
	return b.String()
}

func (a App) renderProjectionChart(innerW int) string {
	groups := make([]components.BarGroup, len(a.projection))
	for i, p := range a.projection {
		groups[i] = components.BarGroup{
			Label:   fmt.Sprintf("Y%d", p.Year),
			Cost:    p.Cost,
			Savings: p.Savings,
		}
	}

	chart := components.GroupedBarChart(groups, innerW, 10)

	t := theme.Active
	netStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	var nets []string
	for _, p := range a.projection {
		nets = append(nets, fmt.Sprintf("Y%d %s", p.Year, cli.FormatCurrency(p.Net)))
	}
	return chart + "\n" + netStyle.Render("net: "+strings.Join(nets, "   "))
}

func (a App) renderDetails() string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	m := a.metrics
	rows := []struct {
		label string
		value string
	}{
		{"Annual License Cost", cli.FormatCurrency(m.AnnualLicenseCost)},
		{"First-Year Total Cost", cli.FormatCurrency(m.FirstYearTotalCost)},
		{"First-Year Adj. Savings", cli.FormatCurrency(m.FirstYearAdjustedSavings)},
		{"Monthly Net Savings", cli.FormatCurrency(m.MonthlyNetSavings)},
		{"Annual Net Value", cli.FormatCurrency(m.AnnualNetValue)},
		{"3-Year Total Savings", cli.FormatCurrency(m.TotalSavingsOver3Years)},
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-24s ", r.label+":")))
		b.WriteString(valueStyle.Render(r.value))
		b.WriteString("\n")
	}
	return b.String()
}
