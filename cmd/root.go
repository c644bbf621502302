package cmd

import (
	"fmt"
	"os"

	"roical/internal/config"
	"roical/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagLicenseCost float64
	flagUsers       int
	flagHoursSaved  float64
	flagHourlyRate  float64
	flagImplCost    float64
	flagTTVMonths   float64
	flagPricing     string
)

var rootCmd = &cobra.Command{
	Use:   "roical",
	Short: "SaaS ROI Calculator",
	Long:  "Estimate the return on investment of a SaaS purchase: savings, ROI, payback, and a three-year projection.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Assigned here rather than in the literal: runCompute reads the
	// flag set back through rootCmd, which would otherwise make the
	// var initializers cyclic.
	rootCmd.RunE = runCompute

	d := model.DefaultScenario()

	rootCmd.PersistentFlags().Float64VarP(&flagLicenseCost, "license-cost", "l", d.LicenseCostPerUser, "License cost per user (per billing period)")
	rootCmd.PersistentFlags().IntVarP(&flagUsers, "users", "u", d.NumUsers, "Number of users")
	rootCmd.PersistentFlags().Float64VarP(&flagHoursSaved, "hours-saved", "s", d.HoursSavedPerUserPerWeek, "Hours saved per user per week")
	rootCmd.PersistentFlags().Float64VarP(&flagHourlyRate, "hourly-rate", "r", d.HourlyRate, "Fully loaded hourly rate ($)")
	rootCmd.PersistentFlags().Float64VarP(&flagImplCost, "implementation-cost", "i", d.ImplementationCost, "One-time implementation cost ($)")
	rootCmd.PersistentFlags().Float64VarP(&flagTTVMonths, "ttv-months", "t", d.TimeToValueMonths, "Ramp-up time to value (months)")
	rootCmd.PersistentFlags().StringVarP(&flagPricing, "pricing", "p", string(d.PricingModel), "Pricing model: monthly or annual")
}

// buildScenario assembles the scenario for a command run: saved config
// defaults first, then any flag the user set explicitly on top.
func buildScenario() (model.Scenario, error) {
	cfg, err := config.Load()
	if err != nil {
		return model.Scenario{}, err
	}
	s := cfg.Scenario

	flags := rootCmd.PersistentFlags()
	if flags.Changed("license-cost") {
		s.LicenseCostPerUser = flagLicenseCost
	}
	if flags.Changed("users") {
		s.NumUsers = flagUsers
	}
	if flags.Changed("hours-saved") {
		s.HoursSavedPerUserPerWeek = flagHoursSaved
	}
	if flags.Changed("hourly-rate") {
		s.HourlyRate = flagHourlyRate
	}
	if flags.Changed("implementation-cost") {
		s.ImplementationCost = flagImplCost
	}
	if flags.Changed("ttv-months") {
		s.TimeToValueMonths = flagTTVMonths
	}
	if flags.Changed("pricing") {
		pm := model.PricingModel(flagPricing)
		if !pm.Valid() {
			return s, fmt.Errorf("invalid --pricing %q (want monthly or annual)", flagPricing)
		}
		s.PricingModel = pm
	}

	return s, nil
}
