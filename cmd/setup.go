package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"roical/internal/config"
	"roical/internal/model"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to roical!")
	fmt.Println()

	// 1. Pricing model
	fmt.Println("  1. Pricing model")
	fmt.Println("     (1) Monthly per user [default]")
	fmt.Println("     (2) Annual per user")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	if strings.TrimSpace(choice) == "2" {
		cfg.Scenario.PricingModel = model.PricingAnnual
	} else {
		cfg.Scenario.PricingModel = model.PricingMonthly
	}
	fmt.Println()

	// 2. Team size
	fmt.Println("  2. Number of users")
	fmt.Printf("     Current: %d\n", cfg.Scenario.NumUsers)
	fmt.Print("     > ")
	users, _ := reader.ReadString('\n')
	if n, err := strconv.Atoi(strings.TrimSpace(users)); err == nil && n >= 1 {
		cfg.Scenario.NumUsers = n
	}
	fmt.Println()

	// 3. Hourly rate
	fmt.Println("  3. Fully loaded hourly rate ($)")
	fmt.Printf("     Current: $%.0f\n", cfg.Scenario.HourlyRate)
	fmt.Print("     > ")
	rate, _ := reader.ReadString('\n')
	if f, err := strconv.ParseFloat(strings.TrimSpace(rate), 64); err == nil && f >= 0 {
		cfg.Scenario.HourlyRate = f
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `roical setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
