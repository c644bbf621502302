package cmd

import (
	"fmt"
	"strings"

	"roical/internal/cli"
	"roical/internal/engine"

	"github.com/spf13/cobra"
)

var projectionCmd = &cobra.Command{
	Use:   "projection",
	Short: "Show the three-year cost vs savings projection",
	RunE:  runProjection,
}

func init() {
	rootCmd.AddCommand(projectionCmd)
}

func runProjection(_ *cobra.Command, _ []string) error {
	scenario, err := buildScenario()
	if err != nil {
		return err
	}

	metrics, _ := engine.Compute(scenario)
	points := engine.Project(metrics)

	fmt.Println()
	fmt.Println(cli.RenderTitle("3-YEAR PROJECTION"))
	fmt.Println()

	table := cli.Table{
		Headers: []string{"Year", "Cost", "Savings", "Net"},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("Year %d", p.Year),
			cli.FormatCurrency(p.Cost),
			cli.FormatCurrency(p.Savings),
			cli.FormatCurrency(p.Net),
		})
	}
	fmt.Println(cli.RenderTable(table))

	// Bars scale against the largest savings figure.
	maxSavings := 0.0
	for _, p := range points {
		if p.Savings > maxSavings {
			maxSavings = p.Savings
		}
	}
	if maxSavings <= 0 {
		return nil
	}

	const barWidth = 40
	for _, p := range points {
		label := fmt.Sprintf("  Y%d", p.Year)
		costBar := cli.RenderHorizontalBar(p.Cost, maxSavings, barWidth)
		saveBar := cli.RenderHorizontalBar(p.Savings, maxSavings, barWidth)
		fmt.Printf("%s cost    %-*s %s\n", label, barWidth, costBar, cli.FormatCurrency(p.Cost))
		fmt.Printf("%s savings %-*s %s\n", strings.Repeat(" ", len(label)), barWidth, saveBar, cli.FormatCurrency(p.Savings))
	}
	fmt.Println()

	return nil
}
