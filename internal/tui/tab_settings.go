package tui

import (
	"fmt"
	"strings"

	"roical/internal/config"
	"roical/internal/tui/components"
	"roical/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTheme = iota
	settingsFieldExportDir
	settingsFieldSaveDefaults
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool
	saveErr error
}

// settingsActivate starts editing the selected field, or runs the
// save-defaults action directly.
func (a App) settingsActivate() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()
	a.settings.saved = false
	a.settings.saveErr = nil

	if a.settings.cursor == settingsFieldSaveDefaults {
		cfg.Scenario = a.scenario
		a.settings.saveErr = config.Save(cfg)
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	}

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50

	switch a.settings.cursor {
	case settingsFieldTheme:
		ti.Placeholder = themeNames()
		ti.SetValue(cfg.Appearance.Theme)
	case settingsFieldExportDir:
		ti.Placeholder = "directory for exported reports (empty = cwd)"
		ti.SetValue(cfg.Export.Directory)
	}

	ti.Focus()
	a.settings.editing = true
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	cfg := loadConfigOrDefault()
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldTheme:
		for _, t := range theme.All {
			if t.Name == val {
				cfg.Appearance.Theme = val
				theme.SetActive(val)
				break
			}
		}
	case settingsFieldExportDir:
		cfg.Export.Directory = val
		a.exportDir = config.ExportDir(cfg)
	}

	a.settings.saveErr = config.Save(cfg)
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := loadConfigOrDefault()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedLabel := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange)

	fields := []struct {
		label string
		value string
	}{
		{"Theme", cfg.Appearance.Theme},
		{"Export Directory", config.ExportDir(cfg)},
		{"Save Inputs As Defaults", "(enter to save current scenario)"},
	}

	var body strings.Builder
	for i, f := range fields {
		label := fmt.Sprintf("%-24s ", f.label+":")

		if a.settings.editing && i == a.settings.cursor {
			body.WriteString(markerStyle.Render("▸ "))
			body.WriteString(selectedLabel.Render(label))
			body.WriteString(a.settings.input.View())
			body.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			body.WriteString(markerStyle.Render("▸ "))
			body.WriteString(selectedLabel.Render(label))
		} else {
			body.WriteString("  ")
			body.WriteString(labelStyle.Render(label))
		}
		body.WriteString(valueStyle.Render(f.value))
		body.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		body.WriteString("\n")
		body.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		body.WriteString("\n")
		body.WriteString(greenStyle.Render("Saved!"))
	}

	body.WriteString("\n")
	body.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	var info strings.Builder
	info.WriteString(labelStyle.Render("Config file: ") + valueStyle.Render(config.Path()) + "\n")
	status := "using defaults (no config file)"
	if config.Exists() {
		status = "loaded"
	}
	info.WriteString(labelStyle.Render("Status:      ") + valueStyle.Render(status))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", body.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", info.String(), cw))
	return b.String()
}

func themeNames() string {
	names := make([]string, len(theme.All))
	for i, t := range theme.All {
		names[i] = t.Name
	}
	return strings.Join(names, ", ")
}
