package cmd

import (
	"fmt"
	"os"

	"roical/internal/config"
	"roical/internal/engine"
	"roical/internal/export"

	"github.com/spf13/cobra"
)

var (
	flagExportFormat string
	flagExportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ROI report as JSON, CSV, or PDF",
	RunE:  runExportCmd,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "json", "Export format: json, csv, or pdf")
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default: timestamped name in the export directory)")
	rootCmd.AddCommand(exportCmd)
}

func runExportCmd(_ *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(flagExportFormat)
	if err != nil {
		return err
	}

	scenario, err := buildScenario()
	if err != nil {
		return err
	}

	// An invalid scenario still exports; every metric reads N/A.
	metrics, _ := engine.Compute(scenario)
	report := export.NewReport(scenario, metrics)

	if flagExportOut != "" {
		data, err := export.Encode(report, format)
		if err != nil {
			return err
		}
		if err := os.WriteFile(flagExportOut, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", flagExportOut, err)
		}
		fmt.Printf("  Exported to %s\n", flagExportOut)
		return nil
	}

	cfg, _ := config.Load()
	path, err := export.Save(report, config.ExportDir(cfg), format)
	if err != nil {
		return err
	}
	fmt.Printf("  Exported to %s\n", path)
	return nil
}
