package engine

import (
	"errors"
	"math"
	"testing"

	"roical/internal/model"
)

func baseScenario() model.Scenario {
	return model.Scenario{
		LicenseCostPerUser:       50,
		NumUsers:                 10,
		HoursSavedPerUserPerWeek: 5,
		HourlyRate:               75,
		ImplementationCost:       5000,
		TimeToValueMonths:        3,
		PricingModel:             model.PricingMonthly,
	}
}

func approxEq(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestCompute_WorkedExample(t *testing.T) {
	m, err := Compute(baseScenario())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	checks := []struct {
		name string
		got  float64
		want float64
		tol  float64
	}{
		{"AnnualLicenseCost", m.AnnualLicenseCost, 6000, 0},
		{"AnnualSavings", m.AnnualSavings, 195000, 0},
		{"FirstYearTotalCost", m.FirstYearTotalCost, 11000, 0},
		{"AnnualNetValue", m.AnnualNetValue, 189000, 0},
		{"AnnualROI", m.AnnualROI, 1718.1818, 0.001},
		{"MonthlyNetSavings", m.MonthlyNetSavings, 15750, 0},
		{"PaybackPeriodMonths", m.PaybackPeriodMonths, 3.31746, 0.0001},
		{"FirstYearAdjustedSavings", m.FirstYearAdjustedSavings, 146250, 0},
		{"TotalSavingsOver3Years", m.TotalSavingsOver3Years, 536250, 0},
	}
	for _, c := range checks {
		if !approxEq(c.got, c.want, c.tol) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestCompute_AnnualPricingSkipsMonthlyMultiplier(t *testing.T) {
	s := baseScenario()
	s.PricingModel = model.PricingAnnual

	m, err := Compute(s)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if m.AnnualLicenseCost != 500 {
		t.Errorf("AnnualLicenseCost = %v, want 500 (annual cost not multiplied by 12)", m.AnnualLicenseCost)
	}
}

func TestCompute_InfiniteROI(t *testing.T) {
	s := baseScenario()
	s.LicenseCostPerUser = 0
	s.ImplementationCost = 0

	m, err := Compute(s)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if !math.IsInf(m.AnnualROI, 1) {
		t.Errorf("AnnualROI = %v, want +Inf (zero cost, positive savings)", m.AnnualROI)
	}
}

func TestCompute_ZeroNetValueROIIsZeroNotInfinite(t *testing.T) {
	s := model.Scenario{
		NumUsers:     1,
		PricingModel: model.PricingMonthly,
	}

	m, err := Compute(s)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if m.AnnualSavings != 0 {
		t.Errorf("AnnualSavings = %v, want 0", m.AnnualSavings)
	}
	if m.AnnualROI != 0 {
		t.Errorf("AnnualROI = %v, want 0 (net value is zero, not positive)", m.AnnualROI)
	}
}

func TestCompute_InfinitePayback(t *testing.T) {
	s := baseScenario()
	s.HoursSavedPerUserPerWeek = 0 // savings never exceed license cost

	m, err := Compute(s)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if m.MonthlyNetSavings > 0 {
		t.Fatalf("test setup: MonthlyNetSavings = %v, want <= 0", m.MonthlyNetSavings)
	}
	if !math.IsInf(m.PaybackPeriodMonths, 1) {
		t.Errorf("PaybackPeriodMonths = %v, want +Inf", m.PaybackPeriodMonths)
	}
}

func TestCompute_TimeToValueBeyondTwelveMonths(t *testing.T) {
	s := baseScenario()
	s.TimeToValueMonths = 18

	m, err := Compute(s)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if m.FirstYearAdjustedSavings != 0 {
		t.Errorf("FirstYearAdjustedSavings = %v, want 0 (effective months clamped to 0)", m.FirstYearAdjustedSavings)
	}
	if m.TotalSavingsOver3Years != m.AnnualSavings*2 {
		t.Errorf("TotalSavingsOver3Years = %v, want %v", m.TotalSavingsOver3Years, m.AnnualSavings*2)
	}
}

func TestCompute_Monotonicity(t *testing.T) {
	prev := -1.0
	for _, hours := range []float64{0, 1, 2.5, 5, 10, 40} {
		s := baseScenario()
		s.HoursSavedPerUserPerWeek = hours
		m, err := Compute(s)
		if err != nil {
			t.Fatalf("Compute(hours=%v) error = %v", hours, err)
		}
		if m.AnnualSavings < prev {
			t.Errorf("AnnualSavings decreased: hours=%v gave %v after %v", hours, m.AnnualSavings, prev)
		}
		prev = m.AnnualSavings
	}
}

func TestCompute_Idempotent(t *testing.T) {
	s := baseScenario()
	m1, err1 := Compute(s)
	m2, err2 := Compute(s)
	if err1 != nil || err2 != nil {
		t.Fatalf("Compute() errors = %v, %v", err1, err2)
	}
	if m1 != m2 {
		t.Errorf("repeated Compute() diverged:\n first = %+v\nsecond = %+v", m1, m2)
	}
}

func TestValidate_SingleField(t *testing.T) {
	s := baseScenario()
	s.HourlyRate = -1

	verr := Validate(s)
	if verr == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if len(verr.Fields) != 1 {
		t.Fatalf("Validate() reported %d fields, want 1: %+v", len(verr.Fields), verr.Fields)
	}
	if verr.Fields[0].Field != FieldHourlyRate {
		t.Errorf("violated field = %q, want %q", verr.Fields[0].Field, FieldHourlyRate)
	}
	if verr.For(FieldLicenseCost) != "" {
		t.Errorf("For(%q) = %q, want empty for a valid field", FieldLicenseCost, verr.For(FieldLicenseCost))
	}
}

func TestValidate_AllViolationsReportedTogether(t *testing.T) {
	s := model.Scenario{
		LicenseCostPerUser:       -50,
		NumUsers:                 0,
		HoursSavedPerUserPerWeek: -5,
		HourlyRate:               -75,
		ImplementationCost:       -5000,
		TimeToValueMonths:        -3,
		PricingModel:             model.PricingMonthly,
	}

	verr := Validate(s)
	if verr == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if len(verr.Fields) != 6 {
		t.Fatalf("Validate() reported %d fields, want 6: %+v", len(verr.Fields), verr.Fields)
	}
	for _, f := range []string{
		FieldLicenseCost, FieldNumUsers, FieldHoursSaved,
		FieldHourlyRate, FieldImplementationCost, FieldTimeToValue,
	} {
		if verr.For(f) == "" {
			t.Errorf("field %q missing from violations", f)
		}
	}
}

func TestCompute_InvalidCollapsesAllFieldsToNaN(t *testing.T) {
	s := baseScenario()
	s.NumUsers = 0
	s.HourlyRate = 75 // other fields stay valid; output must still be all-NaN

	m, err := Compute(s)
	if err == nil {
		t.Fatal("Compute() error = nil, want ValidationError")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Compute() error = %T, want *ValidationError", err)
	}

	for name, v := range map[string]float64{
		"AnnualLicenseCost":        m.AnnualLicenseCost,
		"AnnualSavings":            m.AnnualSavings,
		"FirstYearAdjustedSavings": m.FirstYearAdjustedSavings,
		"FirstYearTotalCost":       m.FirstYearTotalCost,
		"AnnualNetValue":           m.AnnualNetValue,
		"AnnualROI":                m.AnnualROI,
		"MonthlyNetSavings":        m.MonthlyNetSavings,
		"PaybackPeriodMonths":      m.PaybackPeriodMonths,
		"TotalSavingsOver3Years":   m.TotalSavingsOver3Years,
	} {
		if !math.IsNaN(v) {
			t.Errorf("%s = %v, want NaN", name, v)
		}
	}
}

func TestProject_SteadyStateYears(t *testing.T) {
	m, err := Compute(baseScenario())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	pts := Project(m)
	if pts[0].Year != 1 || pts[1].Year != 2 || pts[2].Year != 3 {
		t.Fatalf("years = %d,%d,%d, want 1,2,3", pts[0].Year, pts[1].Year, pts[2].Year)
	}

	if pts[0].Cost != 11000 || pts[0].Savings != 146250 || pts[0].Net != 146250-11000 {
		t.Errorf("year 1 = %+v, want cost 11000, savings 146250, net 135250", pts[0])
	}
	for _, p := range pts[1:] {
		if p.Cost != 6000 || p.Savings != 195000 || p.Net != 189000 {
			t.Errorf("year %d = %+v, want steady-state 6000/195000/189000", p.Year, p)
		}
	}
}

func TestProject_InvalidCollapsesToZeros(t *testing.T) {
	pts := Project(InvalidMetrics())
	for _, p := range pts {
		if p.Cost != 0 || p.Savings != 0 || p.Net != 0 {
			t.Errorf("year %d = %+v, want all zeros for invalid metrics", p.Year, p)
		}
	}
}
