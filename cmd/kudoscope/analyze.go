package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fandomstats/kudoscope/analyzer"
	"github.com/fandomstats/kudoscope/dataset"
)

var (
	analyzeData   string
	analyzeCharts bool
	analyzeTop    int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Summarize a harvested dataset and render charts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd)
	},
}

func init() {
	addAnalyzeFlags(analyzeCmd)
	rootCmd.AddCommand(analyzeCmd)
}

// addAnalyzeFlags registers the analysis flags; the run command shares them.
func addAnalyzeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&analyzeData, "data", "", "dataset CSV to analyze (default <data-dir>/works.csv)")
	cmd.Flags().BoolVar(&analyzeCharts, "charts", true, "render PNG charts to the chart dir")
	cmd.Flags().IntVar(&analyzeTop, "top", 10, "rows per top-works leaderboard")
}

func runAnalyze(cmd *cobra.Command) error {
	path := analyzeData
	if path == "" {
		path = filepath.Join(cfg.Output.DataDir, dataset.DefaultCSVName)
	}

	works, err := dataset.ReadCSV(path)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	slog.Info("dataset loaded", "path", path, "works", len(works))

	summary := analyzer.Summarize(works)
	analyzer.WriteReport(cmd.OutOrStdout(), summary, works, analyzeTop)

	if analyzeCharts {
		if err := analyzer.RenderCharts(works, cfg.Output.ChartDir); err != nil {
			return err
		}
	}
	return nil
}
