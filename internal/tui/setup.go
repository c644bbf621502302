package tui

import (
	"strconv"

	"roical/internal/config"
	"roical/internal/model"
	"roical/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues backs the first-run huh form.
type setupValues struct {
	pricing    string
	users      string
	hourlyRate string
	theme      string
}

func defaultSetupValues(s model.Scenario) setupValues {
	return setupValues{
		pricing:    string(s.PricingModel),
		users:      strconv.Itoa(s.NumUsers),
		hourlyRate: strconv.FormatFloat(s.HourlyRate, 'f', -1, 64),
		theme:      theme.Active.Name,
	}
}

// newSetupForm builds the first-run wizard: pricing model, team size,
// hourly rate, and theme. Everything else is edited on the calculator tab.
func newSetupForm(vals *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOpts[i] = huh.NewOption(t.Name, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to roical!").
				Description("A few defaults to get started. Everything can be changed later."),

			huh.NewSelect[string]().
				Title("Pricing model").
				Description("Is the license cost quoted per month or per year?").
				Options(
					huh.NewOption("Monthly", string(model.PricingMonthly)),
					huh.NewOption("Annual", string(model.PricingAnnual)),
				).
				Value(&vals.pricing),

			huh.NewInput().
				Title("Number of users").
				Validate(validatePositiveInt).
				Value(&vals.users),

			huh.NewInput().
				Title("Hourly rate ($)").
				Validate(validateNonNegativeFloat).
				Value(&vals.hourlyRate),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
		),
	)
}

// applySetup moves the completed form values into the live scenario and
// persists them as the configured defaults.
func (a *App) applySetup() {
	v := a.setupVals

	a.scenario.PricingModel = model.PricingModel(v.pricing)
	if n, err := strconv.Atoi(v.users); err == nil {
		a.scenario.NumUsers = n
	}
	if f, err := strconv.ParseFloat(v.hourlyRate, 64); err == nil {
		a.scenario.HourlyRate = f
	}
	theme.SetActive(v.theme)

	cfg := loadConfigOrDefault()
	cfg.Scenario = a.scenario
	cfg.Appearance.Theme = v.theme
	_ = config.Save(cfg)
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return errAtLeastOne
	}
	return nil
}

func validateNonNegativeFloat(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return errNonNegative
	}
	return nil
}

var (
	errAtLeastOne  = validationMsg("enter a whole number of 1 or more")
	errNonNegative = validationMsg("enter a number of 0 or more")
)

// validationMsg is a trivial error type for form validation messages.
type validationMsg string

func (v validationMsg) Error() string { return string(v) }
