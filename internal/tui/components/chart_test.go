package components

import (
	"strings"
	"testing"
)

func projectionGroups() []BarGroup {
	return []BarGroup{
		{Label: "Y1", Cost: 11000, Savings: 146250},
		{Label: "Y2", Cost: 6000, Savings: 195000},
		{Label: "Y3", Cost: 6000, Savings: 195000},
	}
}

func TestGroupedBarChart_RendersAllGroups(t *testing.T) {
	chart := GroupedBarChart(projectionGroups(), 60, 10)
	if chart == "" {
		t.Fatal("GroupedBarChart returned empty string")
	}
	for _, lbl := range []string{"Y1", "Y2", "Y3"} {
		if !strings.Contains(chart, lbl) {
			t.Errorf("chart missing group label %q", lbl)
		}
	}
	if !strings.Contains(chart, "cost") || !strings.Contains(chart, "savings") {
		t.Error("chart missing legend")
	}
}

func TestGroupedBarChart_ZeroDataStillRenders(t *testing.T) {
	groups := []BarGroup{
		{Label: "Y1"}, {Label: "Y2"}, {Label: "Y3"},
	}
	chart := GroupedBarChart(groups, 60, 10)
	if chart == "" {
		t.Fatal("zeroed chart should still render axes")
	}
	if !strings.Contains(chart, "└") {
		t.Error("zeroed chart missing x-axis")
	}
}

func TestGroupedBarChart_TooSmallIsEmpty(t *testing.T) {
	if got := GroupedBarChart(projectionGroups(), 10, 2); got != "" {
		t.Errorf("undersized chart = %q, want empty", got)
	}
}
