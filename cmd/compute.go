package cmd

import (
	"errors"
	"fmt"

	"roical/internal/cli"
	"roical/internal/engine"
	"roical/internal/model"

	"github.com/spf13/cobra"
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute ROI metrics for the scenario",
	RunE:  runCompute,
}

func init() {
	rootCmd.AddCommand(computeCmd)
}

func runCompute(_ *cobra.Command, _ []string) error {
	scenario, err := buildScenario()
	if err != nil {
		return err
	}

	metrics, cerr := engine.Compute(scenario)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SAAS ROI ESTIMATE"))
	fmt.Println()

	var verr *engine.ValidationError
	if errors.As(cerr, &verr) {
		for _, f := range verr.Fields {
			fmt.Println(cli.RenderFieldError(f.Field, f.Message))
		}
		fmt.Println()
	}

	per := "month"
	if scenario.PricingModel == model.PricingAnnual {
		per = "year"
	}

	inputs := cli.Table{
		Title:   "Inputs",
		Headers: []string{"Input", "Value"},
		Rows: [][]string{
			{"License Cost Per User", cli.FormatCurrency(scenario.LicenseCostPerUser) + "/" + per},
			{"Number of Users", cli.FormatNumber(int64(scenario.NumUsers))},
			{"Hours Saved Per User Per Week", cli.FormatHours(scenario.HoursSavedPerUserPerWeek)},
			{"Hourly Rate", cli.FormatCurrency(scenario.HourlyRate)},
			{"Implementation Cost", cli.FormatCurrency(scenario.ImplementationCost)},
			{"Time to Value", cli.FormatMonths(scenario.TimeToValueMonths) + " months"},
		},
	}
	fmt.Println(cli.RenderTable(inputs))

	results := cli.Table{
		Title:   "Results",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Annual License Cost", cli.FormatCurrency(metrics.AnnualLicenseCost)},
			{"Annual Savings", cli.FormatCurrency(metrics.AnnualSavings)},
			{"First-Year Adjusted Savings", cli.FormatCurrency(metrics.FirstYearAdjustedSavings)},
			{"First-Year Total Cost", cli.FormatCurrency(metrics.FirstYearTotalCost)},
			{"---"},
			{"Annual Net Value", cli.FormatCurrency(metrics.AnnualNetValue)},
			{"Monthly Net Savings", cli.FormatCurrency(metrics.MonthlyNetSavings)},
			{"---"},
			{"Annual ROI", cli.FormatROI(metrics.AnnualROI)},
			{"Payback Period", cli.FormatPayback(metrics.PaybackPeriodMonths)},
			{"3-Year Total Savings", cli.FormatCurrency(metrics.TotalSavingsOver3Years)},
		},
	}
	fmt.Println(cli.RenderTable(results))

	return nil
}
