package cmd

import (
	"testing"

	"roical/internal/model"
)

func TestRootCommand_ComputesByDefault(t *testing.T) {
	if rootCmd.RunE == nil {
		t.Fatal("root command has no run function; bare `roical` must compute")
	}
}

func TestBuildScenario_FlagsLayerOverConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	flags := rootCmd.PersistentFlags()
	if err := flags.Set("users", "25"); err != nil {
		t.Fatalf("setting --users: %v", err)
	}
	if err := flags.Set("pricing", "annual"); err != nil {
		t.Fatalf("setting --pricing: %v", err)
	}

	s, err := buildScenario()
	if err != nil {
		t.Fatalf("buildScenario() error = %v", err)
	}
	if s.NumUsers != 25 {
		t.Errorf("NumUsers = %d, want 25 from flag", s.NumUsers)
	}
	if s.PricingModel != model.PricingAnnual {
		t.Errorf("PricingModel = %q, want annual from flag", s.PricingModel)
	}
	if want := model.DefaultScenario().HourlyRate; s.HourlyRate != want {
		t.Errorf("HourlyRate = %v, want config default %v", s.HourlyRate, want)
	}
}

func TestBuildScenario_RejectsUnknownPricing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := rootCmd.PersistentFlags().Set("pricing", "quarterly"); err != nil {
		t.Fatalf("setting --pricing: %v", err)
	}
	if _, err := buildScenario(); err == nil {
		t.Fatal("buildScenario() error = nil, want error for --pricing quarterly")
	}
}
