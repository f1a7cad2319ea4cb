package main

import (
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [fandom...]",
	Short: "Scrape then analyze in one go",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runScrape(cmd.Context(), cmd, args); err != nil {
			return err
		}
		return runAnalyze(cmd)
	},
}

func init() {
	addScrapeFlags(runCmd)
	addAnalyzeFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}
