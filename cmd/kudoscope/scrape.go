package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fandomstats/kudoscope/archive"
	"github.com/fandomstats/kudoscope/config"
	"github.com/fandomstats/kudoscope/dataset"
	"github.com/fandomstats/kudoscope/models"
	"github.com/fandomstats/kudoscope/webhook"
)

var (
	scrapePages   int
	scrapeDelay   time.Duration
	scrapeDataDir string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape [fandom...]",
	Short: "Harvest work metadata for one or more fandom search terms",
	Long: `Searches the archive for each fandom term, sorted by kudos, and writes
everything extracted to CSV and JSON dataset files. Terms come from the
arguments, or from the config's fandoms list when none are given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScrape(cmd.Context(), cmd, args)
	},
}

func init() {
	addScrapeFlags(scrapeCmd)
	rootCmd.AddCommand(scrapeCmd)
}

// addScrapeFlags registers the harvest flags; the run command shares them.
func addScrapeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&scrapePages, "pages", 0, "result pages per fandom (default from config)")
	cmd.Flags().DurationVar(&scrapeDelay, "delay", 0, "minimum spacing between page requests (default from config)")
	cmd.Flags().StringVar(&scrapeDataDir, "data-dir", "", "directory for dataset files (default from config)")
}

func runScrape(ctx context.Context, cmd *cobra.Command, args []string) error {
	terms := args
	if len(terms) == 0 {
		terms = cfg.Fandoms
	}
	if len(terms) == 0 {
		return fmt.Errorf("no fandoms to search: pass them as arguments or set fandoms in the config")
	}

	if cmd.Flags().Changed("pages") {
		cfg.Archive.MaxPages = scrapePages
	}
	if cmd.Flags().Changed("delay") {
		cfg.Archive.RateLimit = scrapeDelay
	}
	if cmd.Flags().Changed("data-dir") {
		cfg.Output.DataDir = scrapeDataDir
	}
	// Flag overrides must respect the same floors as config input.
	if err := cfg.Validate(); err != nil {
		return err
	}

	works, counts := harvest(ctx, cfg, terms)

	csvPath := filepath.Join(cfg.Output.DataDir, dataset.DefaultCSVName)
	jsonPath := filepath.Join(cfg.Output.DataDir, dataset.DefaultJSONName)

	if err := dataset.WriteCSV(csvPath, works); err != nil {
		if errors.Is(err, models.ErrNoRecords) {
			slog.Warn("harvest produced no records, nothing written", "terms", len(terms))
			return nil
		}
		return fmt.Errorf("write csv: %w", err)
	}
	if err := dataset.WriteJSON(jsonPath, works); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	slog.Info("dataset written", "csv", csvPath, "json", jsonPath, "works", len(works))

	notifyHarvest(counts, len(works), csvPath, jsonPath)
	return nil
}

// harvest walks every term sequentially over one shared client, so the whole
// run answers to a single rate clock. A cancelled context ends the current
// term through its fetch path and skips the rest.
func harvest(ctx context.Context, cfg *config.Config, terms []string) ([]models.Work, map[string]int) {
	client := archive.NewClient(cfg.Archive)

	var works []models.Work
	counts := make(map[string]int, len(terms))
	for i, term := range terms {
		if ctx.Err() != nil {
			slog.Warn("harvest interrupted", "remaining_terms", len(terms)-i)
			break
		}
		found := client.SearchFandom(ctx, term, cfg.Archive.MaxPages)
		counts[term] = len(found)
		works = append(works, found...)
	}
	return works, counts
}

// notifyHarvest posts the harvest.completed event when a webhook is
// configured. Delivery gets a bounded window so a failing endpoint cannot
// hold the process hostage; a lost notification is logged, not fatal.
func notifyHarvest(counts map[string]int, total int, csvPath, jsonPath string) {
	if cfg.Webhook.URL == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	_ = webhook.DeliverWithRetry(ctx, cfg.Webhook.URL, cfg.Webhook.Secret, &webhook.Event{
		Type:      webhook.EventHarvestCompleted,
		RunID:     uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Data: webhook.HarvestData{
			Fandoms:    counts,
			TotalWorks: total,
			CSVPath:    csvPath,
			JSONPath:   jsonPath,
		},
	})
}
