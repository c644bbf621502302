// Package export renders a computed scenario into JSON, CSV, and PDF reports.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"roical/internal/cli"
	"roical/internal/model"
)

// Format selects an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

// ParseFormat validates a format name from a flag or key binding.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatCSV, FormatPDF:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown export format %q (want json, csv, or pdf)", s)
}

// Row is one labeled line of the report.
type Row struct {
	Label string
	Value string
}

// Report is the ordered data contract every encoder consumes: six input
// rows and seven calculated rows, with the display formatting policy
// (currency grouping, "Infinite %", "Never", "N/A") already applied.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Inputs      []Row
	Calculated  []Row
}

// NewReport builds the report contract from a scenario and its metrics.
func NewReport(s model.Scenario, m model.Metrics) Report {
	per := "month"
	if s.PricingModel == model.PricingAnnual {
		per = "year"
	}

	return Report{
		Title:       "SaaS ROI Report",
		GeneratedAt: time.Now(),
		Inputs: []Row{
			{"License Cost Per User", cli.FormatCurrency(s.LicenseCostPerUser) + "/" + per},
			{"Number of Users", cli.FormatNumber(int64(s.NumUsers))},
			{"Hours Saved Per User Per Week", cli.FormatHours(s.HoursSavedPerUserPerWeek)},
			{"Hourly Rate", cli.FormatCurrency(s.HourlyRate)},
			{"Implementation Cost", cli.FormatCurrency(s.ImplementationCost)},
			{"Time to Value (Months)", cli.FormatMonths(s.TimeToValueMonths)},
		},
		Calculated: []Row{
			{"Annual License Cost", cli.FormatCurrency(m.AnnualLicenseCost)},
			{"Annual Savings", cli.FormatCurrency(m.AnnualSavings)},
			{"First-Year Adjusted Savings", cli.FormatCurrency(m.FirstYearAdjustedSavings)},
			{"First-Year Total Cost", cli.FormatCurrency(m.FirstYearTotalCost)},
			{"Annual Net Value", cli.FormatCurrency(m.AnnualNetValue)},
			{"Annual ROI", cli.FormatROI(m.AnnualROI)},
			{"Payback Period", cli.FormatPayback(m.PaybackPeriodMonths)},
		},
	}
}

// Encode renders the report in the requested format.
func Encode(r Report, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return JSON(r)
	case FormatCSV:
		return CSV(r), nil
	case FormatPDF:
		return PDF(r)
	}
	return nil, fmt.Errorf("unknown export format %q", f)
}

// Save encodes the report and writes it to dir with a timestamped name.
// It returns the path of the written file.
func Save(r Report, dir string, f Format) (string, error) {
	data, err := Encode(r, f)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("roi-report-%s.%s", r.GeneratedAt.Format("20060102-150405"), f)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
