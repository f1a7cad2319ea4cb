package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fandomstats/kudoscope/analyzer"
	"github.com/fandomstats/kudoscope/dataset"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Analyze the built-in sample dataset (no network)",
	Long: `Writes a small built-in dataset of eight works across four fandoms to the
data directory and runs the full analysis over it. Useful for trying the
pipeline without scraping anything.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		works := dataset.Sample()

		csvPath := filepath.Join(cfg.Output.DataDir, dataset.DemoCSVName)
		if err := dataset.WriteCSV(csvPath, works); err != nil {
			return fmt.Errorf("write demo dataset: %w", err)
		}
		slog.Info("demo dataset written", "path", csvPath, "works", len(works))

		summary := analyzer.Summarize(works)
		analyzer.WriteReport(cmd.OutOrStdout(), summary, works, 10)

		return analyzer.RenderCharts(works, cfg.Output.ChartDir)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
