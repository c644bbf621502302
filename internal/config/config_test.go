package config

import (
	"testing"

	"roical/internal/model"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Scenario != model.DefaultScenario() {
		t.Errorf("Scenario = %+v, want defaults", cfg.Scenario)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if Exists() {
		t.Error("Exists() = true before any Save()")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Scenario.NumUsers = 250
	cfg.Scenario.PricingModel = model.PricingAnnual
	cfg.Scenario.HoursSavedPerUserPerWeek = 2.5
	cfg.Export.Directory = "/tmp/reports"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save()")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Scenario != cfg.Scenario {
		t.Errorf("Scenario = %+v, want %+v", got.Scenario, cfg.Scenario)
	}
	if got.Export.Directory != "/tmp/reports" {
		t.Errorf("Export.Directory = %q, want /tmp/reports", got.Export.Directory)
	}
}

func TestLoad_RepairsBadPricingModel(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Scenario.PricingModel = "quarterly"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Scenario.PricingModel != model.PricingMonthly {
		t.Errorf("PricingModel = %q, want %q", got.Scenario.PricingModel, model.PricingMonthly)
	}
}
