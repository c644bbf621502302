// Package cmd implements the roical CLI commands.
package cmd

import (
	"fmt"

	"roical/internal/cli"
	"roical/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	s := cfg.Scenario
	fmt.Println("  [scenario]")
	fmt.Printf("    License cost per user: %s\n", cli.FormatCurrency(s.LicenseCostPerUser))
	fmt.Printf("    Number of users:       %d\n", s.NumUsers)
	fmt.Printf("    Hours saved per week:  %s\n", cli.FormatHours(s.HoursSavedPerUserPerWeek))
	fmt.Printf("    Hourly rate:           %s\n", cli.FormatCurrency(s.HourlyRate))
	fmt.Printf("    Implementation cost:   %s\n", cli.FormatCurrency(s.ImplementationCost))
	fmt.Printf("    Time to value:         %s months\n", cli.FormatMonths(s.TimeToValueMonths))
	fmt.Printf("    Pricing model:         %s\n", s.PricingModel)
	fmt.Println()

	fmt.Println("  [appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [export]")
	fmt.Printf("    Directory: %s\n", config.ExportDir(cfg))
	fmt.Println()

	fmt.Println("  Run `roical setup` to reconfigure.")
	return nil
}
