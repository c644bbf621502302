package model

// Metrics holds the derived financial figures for a scenario.
// AnnualROI and PaybackPeriodMonths may be +Inf — those are meaningful
// sentinels (unbounded return, cost never recovered), not errors.
// All fields are NaN when the scenario failed validation.
type Metrics struct {
	AnnualLicenseCost        float64
	AnnualSavings            float64
	FirstYearAdjustedSavings float64
	FirstYearTotalCost       float64
	AnnualNetValue           float64
	AnnualROI                float64
	MonthlyNetSavings        float64
	PaybackPeriodMonths      float64
	TotalSavingsOver3Years   float64
}

// YearPoint is one datum of the three-year projection chart.
type YearPoint struct {
	Year    int
	Cost    float64
	Savings float64
	Net     float64
}
