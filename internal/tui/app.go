// Package tui provides the interactive Bubble Tea calculator for roical.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"roical/internal/config"
	"roical/internal/engine"
	"roical/internal/export"
	"roical/internal/model"
	"roical/internal/tui/components"
	"roical/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Input field indices on the calculator tab.
const (
	fieldLicenseCost = iota
	fieldNumUsers
	fieldHoursSaved
	fieldHourlyRate
	fieldImplCost
	fieldTimeToValue
	fieldPricingModel
	fieldCount // sentinel
)

const (
	tabCalculator = iota
	tabSettings
)

// App is the root Bubble Tea model. The scenario is recomputed
// synchronously on every committed edit; there is no background work.
type App struct {
	scenario   model.Scenario
	metrics    model.Metrics
	verr       *engine.ValidationError
	projection [3]model.YearPoint

	width     int
	height    int
	activeTab int
	showHelp  bool

	// Calculator tab state
	cursor  int
	editing bool
	input   textinput.Model

	// Settings tab state
	settings settingsState

	// Transient status bar message (export result)
	flash    string
	flashErr bool

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	exportDir string
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 120
	minContentHeight = 5
)

// loadConfigOrDefault loads config, returning defaults on error so the
// TUI can always start even if the config file is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.Default()
	}
	return cfg
}

// NewApp creates the TUI app model seeded from scenario.
func NewApp(scenario model.Scenario) App {
	cfg := loadConfigOrDefault()

	a := App{
		scenario:  scenario,
		needSetup: !config.Exists(),
		exportDir: config.ExportDir(cfg),
	}
	if a.needSetup {
		a.setupVals = defaultSetupValues(scenario)
		a.setupForm = newSetupForm(&a.setupVals)
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.setupForm != nil {
		return a.setupForm.Init()
	}
	return nil
}

// recompute re-derives all metrics from the current scenario.
// Invalid input leaves the NaN sentinel in place and a zeroed projection.
func (a *App) recompute() {
	m, err := engine.Compute(a.scenario)
	a.metrics = m
	a.verr = nil
	if err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			a.verr = verr
		}
	}
	a.projection = engine.Project(m)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Active text inputs intercept all keys
		if a.activeTab == tabCalculator && a.editing {
			return a.updateFieldInput(msg)
		}
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "c":
			a.activeTab = tabCalculator
			return a, nil
		case "x":
			a.activeTab = tabSettings
			return a, nil
		case "left", "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "J":
			return a.runExport(export.FormatJSON)
		case "C":
			return a.runExport(export.FormatCSV)
		case "P":
			return a.runExport(export.FormatPDF)
		}

		if a.activeTab == tabCalculator {
			switch key {
			case "j", "down":
				if a.cursor < fieldCount-1 {
					a.cursor++
				}
			case "k", "up":
				if a.cursor > 0 {
					a.cursor--
				}
			case "enter", " ":
				if a.cursor == fieldPricingModel {
					a.togglePricingModel()
					return a, nil
				}
				return a.startEdit()
			}
			return a, nil
		}

		// Settings tab navigation (non-editing mode)
		switch key {
		case "j", "down":
			if a.settings.cursor < settingsFieldCount-1 {
				a.settings.cursor++
			}
		case "k", "up":
			if a.settings.cursor > 0 {
				a.settings.cursor--
			}
		case "enter":
			return a.settingsActivate()
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

// togglePricingModel flips monthly/annual and recomputes immediately.
func (a *App) togglePricingModel() {
	if a.scenario.PricingModel == model.PricingAnnual {
		a.scenario.PricingModel = model.PricingMonthly
	} else {
		a.scenario.PricingModel = model.PricingAnnual
	}
	a.recompute()
}

func (a App) startEdit() (tea.Model, tea.Cmd) {
	ti := textinput.New()
	ti.CharLimit = 16
	ti.Width = 20
	ti.SetValue(a.fieldValue(a.cursor))
	ti.Focus()

	a.editing = true
	a.input = ti
	a.flash = ""
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateFieldInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.commitEdit()
		a.editing = false
		return a, nil
	case "esc":
		a.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// commitEdit parses the edited value into the scenario and recomputes.
// Unparseable text leaves the field unchanged; out-of-range values are
// accepted so validation can surface them inline.
func (a *App) commitEdit() {
	val := strings.TrimSpace(a.input.Value())
	if val == "" {
		return
	}

	if a.cursor == fieldNumUsers {
		n, err := strconv.Atoi(val)
		if err != nil {
			a.setFlash("not a whole number: "+val, true)
			return
		}
		a.scenario.NumUsers = n
		a.recompute()
		return
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		a.setFlash("not a number: "+val, true)
		return
	}

	switch a.cursor {
	case fieldLicenseCost:
		a.scenario.LicenseCostPerUser = f
	case fieldHoursSaved:
		a.scenario.HoursSavedPerUserPerWeek = f
	case fieldHourlyRate:
		a.scenario.HourlyRate = f
	case fieldImplCost:
		a.scenario.ImplementationCost = f
	case fieldTimeToValue:
		a.scenario.TimeToValueMonths = f
	}
	a.recompute()
}

func (a *App) setFlash(msg string, isErr bool) {
	a.flash = msg
	a.flashErr = isErr
}

func (a App) runExport(f export.Format) (tea.Model, tea.Cmd) {
	report := export.NewReport(a.scenario, a.metrics)
	path, err := export.Save(report, a.exportDir, f)
	if err != nil {
		a.setFlash(err.Error(), true)
	} else {
		a.setFlash("wrote "+path, false)
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.applySetup()
		a.needSetup = false
		a.setupForm = nil
		a.recompute()
		return a, nil
	}
	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  roical needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.flash, a.flashErr)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabCalculator:
		content = a.renderCalculatorTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	bindings := []struct{ key, desc string }{
		{"c x", "Calculator / Settings tab"},
		{"j k", "Navigate fields"},
		{"Enter", "Edit field (toggles pricing model)"},
		{"Esc", "Cancel edit"},
		{"J C P", "Export JSON / CSV / PDF"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-7s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(descStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
