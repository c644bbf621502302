package model

// PricingModel determines whether the license cost per user is quoted
// per month or per year.
type PricingModel string

const (
	PricingMonthly PricingModel = "monthly"
	PricingAnnual  PricingModel = "annual"
)

// Valid reports whether the pricing model is one of the known values.
func (p PricingModel) Valid() bool {
	return p == PricingMonthly || p == PricingAnnual
}

// Scenario holds the business inputs for one ROI estimation.
// All values live only for the session; the config layer may seed them.
type Scenario struct {
	LicenseCostPerUser       float64      `toml:"license_cost_per_user"`
	NumUsers                 int          `toml:"num_users"`
	HoursSavedPerUserPerWeek float64      `toml:"hours_saved_per_user_per_week"`
	HourlyRate               float64      `toml:"hourly_rate"`
	ImplementationCost       float64      `toml:"implementation_cost"`
	TimeToValueMonths        float64      `toml:"time_to_value_months"`
	PricingModel             PricingModel `toml:"pricing_model"`
}

// DefaultScenario returns the inputs a fresh session starts from.
func DefaultScenario() Scenario {
	return Scenario{
		LicenseCostPerUser:       50,
		NumUsers:                 10,
		HoursSavedPerUserPerWeek: 5,
		HourlyRate:               75,
		ImplementationCost:       5000,
		TimeToValueMonths:        3,
		PricingModel:             PricingMonthly,
	}
}
