package export

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"roical/internal/engine"
	"roical/internal/model"
)

func testReport(t *testing.T) Report {
	t.Helper()
	s := model.DefaultScenario()
	m, err := engine.Compute(s)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	return NewReport(s, m)
}

func TestNewReport_RowCounts(t *testing.T) {
	r := testReport(t)
	if len(r.Inputs) != 6 {
		t.Errorf("len(Inputs) = %d, want 6", len(r.Inputs))
	}
	if len(r.Calculated) != 7 {
		t.Errorf("len(Calculated) = %d, want 7", len(r.Calculated))
	}
}

func TestNewReport_InvalidScenarioRendersNA(t *testing.T) {
	s := model.DefaultScenario()
	s.NumUsers = 0
	m, err := engine.Compute(s)
	if err == nil {
		t.Fatal("Compute() error = nil, want ValidationError")
	}

	r := NewReport(s, m)
	for _, row := range r.Calculated {
		if row.Label == "Annual ROI" || row.Label == "Payback Period" || strings.HasPrefix(row.Label, "Annual") {
			if row.Value != "N/A" {
				t.Errorf("%s = %q, want N/A", row.Label, row.Value)
			}
		}
	}
}

func TestJSON_GroupsAndOrder(t *testing.T) {
	data, err := JSON(testReport(t))
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var doc map[string]map[string]string
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, data)
	}

	inputs, ok := doc["Input Metrics"]
	if !ok {
		t.Fatal("missing \"Input Metrics\" group")
	}
	calc, ok := doc["Calculated Metrics"]
	if !ok {
		t.Fatal("missing \"Calculated Metrics\" group")
	}
	if len(inputs) != 6 || len(calc) != 7 {
		t.Errorf("group sizes = %d/%d, want 6/7", len(inputs), len(calc))
	}

	if got := calc["Annual License Cost"]; got != "$6,000" {
		t.Errorf("Annual License Cost = %q, want $6,000", got)
	}

	// 2-space indentation, label order preserved.
	text := string(data)
	if !strings.Contains(text, "  \"Input Metrics\": {") {
		t.Errorf("missing 2-space indented group key:\n%s", text)
	}
	if strings.Index(text, "License Cost Per User") > strings.Index(text, "Number of Users") {
		t.Error("input rows not emitted in declared order")
	}
}

func TestCSV_ThirteenUnquotedRows(t *testing.T) {
	data := CSV(testReport(t))
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	if lines[0] != "Metric,Value" {
		t.Errorf("header = %q, want Metric,Value", lines[0])
	}
	if len(lines) != 14 {
		t.Fatalf("line count = %d, want 14 (header + 13 rows)", len(lines))
	}
	for i, line := range lines {
		if strings.Contains(line, "\"") {
			t.Errorf("line %d contains quoting: %q", i, line)
		}
		if got := len(strings.Split(line, ",")); got != 2 {
			t.Errorf("line %d has %d columns, want 2: %q", i, got, line)
		}
	}
}

func TestPDF_ProducesDocument(t *testing.T) {
	data, err := PDF(testReport(t))
	if err != nil {
		t.Fatalf("PDF() error = %v", err)
	}
	if len(data) < 5 || string(data[:5]) != "%PDF-" {
		t.Fatalf("output does not start with PDF header, got %q", string(data[:min(5, len(data))]))
	}
}

func TestSave_WritesTimestampedFile(t *testing.T) {
	dir := t.TempDir()
	path, err := Save(testReport(t), dir, FormatCSV)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("file written to %q, want inside %q", path, dir)
	}
	if filepath.Ext(path) != ".csv" {
		t.Errorf("extension = %q, want .csv", filepath.Ext(path))
	}
}

func TestParseFormat(t *testing.T) {
	for _, good := range []string{"json", "csv", "pdf"} {
		if _, err := ParseFormat(good); err != nil {
			t.Errorf("ParseFormat(%q) error = %v", good, err)
		}
	}
	if _, err := ParseFormat("xlsx"); err == nil {
		t.Error("ParseFormat(\"xlsx\") error = nil, want error")
	}
}
