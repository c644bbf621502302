// Package engine derives ROI metrics from a scenario.
// Compute is a pure function: same scenario in, same metrics out,
// no I/O and no hidden state.
package engine

import (
	"math"
	"strings"

	"roical/internal/model"
)

// FieldError names one violated input constraint.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError is the set of all violated constraints for a scenario.
// Every offending field is reported together so a caller can surface
// them simultaneously.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "invalid scenario: " + strings.Join(msgs, "; ")
}

// For returns the message for a field, or "" if the field is valid.
func (e *ValidationError) For(field string) string {
	if e == nil {
		return ""
	}
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// Field names used in validation errors. The TUI keys inline messages
// off these, so they are part of the package contract.
const (
	FieldLicenseCost        = "licenseCostPerUser"
	FieldNumUsers           = "numUsers"
	FieldHoursSaved         = "hoursSavedPerUserPerWeek"
	FieldHourlyRate         = "hourlyRate"
	FieldImplementationCost = "implementationCost"
	FieldTimeToValue        = "timeToValueMonths"
)

// Validate checks every input constraint and returns all violations
// together, or nil when the scenario is valid.
func Validate(s model.Scenario) *ValidationError {
	var fields []FieldError
	if s.LicenseCostPerUser < 0 {
		fields = append(fields, FieldError{FieldLicenseCost, "must be zero or greater"})
	}
	if s.NumUsers < 1 {
		fields = append(fields, FieldError{FieldNumUsers, "must be at least 1"})
	}
	if s.HoursSavedPerUserPerWeek < 0 {
		fields = append(fields, FieldError{FieldHoursSaved, "must be zero or greater"})
	}
	if s.HourlyRate < 0 {
		fields = append(fields, FieldError{FieldHourlyRate, "must be zero or greater"})
	}
	if s.ImplementationCost < 0 {
		fields = append(fields, FieldError{FieldImplementationCost, "must be zero or greater"})
	}
	if s.TimeToValueMonths < 0 {
		fields = append(fields, FieldError{FieldTimeToValue, "must be zero or greater"})
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// InvalidMetrics returns the all-NaN sentinel used when validation fails.
// Validation is all-or-nothing: no field is computed for a bad scenario.
func InvalidMetrics() model.Metrics {
	nan := math.NaN()
	return model.Metrics{
		AnnualLicenseCost:        nan,
		AnnualSavings:            nan,
		FirstYearAdjustedSavings: nan,
		FirstYearTotalCost:       nan,
		AnnualNetValue:           nan,
		AnnualROI:                nan,
		MonthlyNetSavings:        nan,
		PaybackPeriodMonths:      nan,
		TotalSavingsOver3Years:   nan,
	}
}

// Compute validates the scenario and derives all metrics from it.
// On validation failure it returns the enumerated error and the NaN
// sentinel so callers render "N/A" uniformly.
func Compute(s model.Scenario) (model.Metrics, error) {
	if verr := Validate(s); verr != nil {
		return InvalidMetrics(), verr
	}

	licensePerUserYr := s.LicenseCostPerUser
	if s.PricingModel != model.PricingAnnual {
		licensePerUserYr *= 12
	}

	m := model.Metrics{}
	m.AnnualLicenseCost = licensePerUserYr * float64(s.NumUsers)
	m.AnnualSavings = s.HoursSavedPerUserPerWeek * s.HourlyRate * float64(s.NumUsers) * 52
	m.FirstYearTotalCost = m.AnnualLicenseCost + s.ImplementationCost
	m.AnnualNetValue = m.AnnualSavings - m.AnnualLicenseCost

	// ROI: division by zero is branched around, never left to the FPU.
	// Zero cost with positive net value is an unbounded return.
	switch {
	case m.FirstYearTotalCost > 0:
		m.AnnualROI = m.AnnualNetValue / m.FirstYearTotalCost * 100
	case m.AnnualNetValue > 0:
		m.AnnualROI = math.Inf(1)
	default:
		m.AnnualROI = 0
	}

	m.MonthlyNetSavings = (m.AnnualSavings - m.AnnualLicenseCost) / 12

	// Payback includes the ramp-up delay; without positive monthly net
	// savings the implementation cost is never recovered.
	if m.MonthlyNetSavings > 0 {
		m.PaybackPeriodMonths = s.TimeToValueMonths + s.ImplementationCost/m.MonthlyNetSavings
	} else {
		m.PaybackPeriodMonths = math.Inf(1)
	}

	effectiveMonths := 12 - s.TimeToValueMonths
	if effectiveMonths < 0 {
		effectiveMonths = 0
	}
	m.FirstYearAdjustedSavings = m.AnnualSavings * effectiveMonths / 12

	// Years 2-3 run at the full steady-state rate.
	m.TotalSavingsOver3Years = m.FirstYearAdjustedSavings + m.AnnualSavings*2

	return m, nil
}

// Project builds the three-year chart series. Year 1 carries the one-time
// implementation cost and the ramp-up-adjusted savings; years 2-3 are
// steady state. Invalid (NaN) metrics collapse to three zero points so
// non-finite values never reach the chart.
func Project(m model.Metrics) [3]model.YearPoint {
	var pts [3]model.YearPoint
	for i := range pts {
		pts[i].Year = i + 1
	}

	if !finite(m.FirstYearTotalCost) || !finite(m.FirstYearAdjustedSavings) ||
		!finite(m.AnnualLicenseCost) || !finite(m.AnnualSavings) || !finite(m.AnnualNetValue) {
		return pts
	}

	pts[0].Cost = m.FirstYearTotalCost
	pts[0].Savings = m.FirstYearAdjustedSavings
	pts[0].Net = m.FirstYearAdjustedSavings - m.FirstYearTotalCost

	for i := 1; i < 3; i++ {
		pts[i].Cost = m.AnnualLicenseCost
		pts[i].Savings = m.AnnualSavings
		pts[i].Net = m.AnnualNetValue
	}
	return pts
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
