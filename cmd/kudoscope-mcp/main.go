package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fandomstats/kudoscope/analyzer"
	"github.com/fandomstats/kudoscope/archive"
	"github.com/fandomstats/kudoscope/config"
	"github.com/fandomstats/kudoscope/dataset"
	"github.com/fandomstats/kudoscope/models"
)

func main() {
	cfg, err := config.Load(os.Getenv("KUDOSCOPE_CONFIG"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "kudoscope-mcp:", err)
		os.Exit(1)
	}
	defaultData := filepath.Join(cfg.Output.DataDir, dataset.DefaultCSVName)

	// One client for the whole process, so every tool call answers to the
	// same rate clock.
	client := archive.NewClient(cfg.Archive)

	s := server.NewMCPServer(
		"kudoscope",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	searchFandomTool := mcp.NewTool("search_fandom",
		mcp.WithDescription("Search Archive of Our Own for a fandom term and harvest work metadata from the results, sorted by kudos. Requests are spaced at least the configured rate limit apart, so multi-page searches take a while."),
		mcp.WithString("fandom",
			mcp.Required(),
			mcp.Description("The fandom search term, e.g. 'Sherlock' or 'My Chemical Romance'"),
		),
		mcp.WithNumber("max_pages",
			mcp.Description("Result pages to walk (default: 3; each page is roughly 20 works)"),
		),
	)
	s.AddTool(searchFandomTool, handleSearchFandom(client, cfg))

	datasetStatsTool := mcp.NewTool("dataset_stats",
		mcp.WithDescription("Summarize a harvested dataset CSV: totals, averages, medians, per-fandom counts and the words/kudos correlation."),
		mcp.WithString("data",
			mcp.Description("Path to the dataset CSV (default: the configured data directory's works.csv)"),
		),
	)
	s.AddTool(datasetStatsTool, handleDatasetStats(defaultData))

	topWorksTool := mcp.NewTool("top_works",
		mcp.WithDescription("List the top works from a harvested dataset CSV ranked by a metric."),
		mcp.WithString("data",
			mcp.Description("Path to the dataset CSV (default: the configured data directory's works.csv)"),
		),
		mcp.WithString("by",
			mcp.Description("Ranking metric (default: kudos)"),
			mcp.Enum("kudos", "hits", "words"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Number of works to list (default: 10)"),
		),
	)
	s.AddTool(topWorksTool, handleTopWorks(defaultData))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func handleSearchFandom(client *archive.Client, cfg *config.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		fandom, err := request.RequireString("fandom")
		if err != nil {
			return mcp.NewToolResultError("fandom is required"), nil
		}

		maxPages := cfg.Archive.MaxPages
		if raw, ok := request.GetArguments()["max_pages"]; ok {
			if f, ok := raw.(float64); ok && int(f) > 0 {
				maxPages = int(f)
			}
		}

		works := client.SearchFandom(ctx, fandom, maxPages)
		if len(works) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No works collected for %q.", fandom)), nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Collected %d works for %q (up to %d pages, sorted by kudos).\n\n", len(works), fandom, maxPages)
		writeWorkList(&sb, analyzer.TopWorks(works, analyzer.ByKudos, 10), analyzer.ByKudos)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func handleDatasetStats(defaultData string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := request.GetString("data", defaultData)

		works, err := dataset.ReadCSV(path)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("load dataset: %v", err)), nil
		}
		s := analyzer.Summarize(works)

		var sb strings.Builder
		fmt.Fprintf(&sb, "Dataset: %s\n\n", path)
		fmt.Fprintf(&sb, "Total works:    %d\n", s.TotalWorks)
		fmt.Fprintf(&sb, "Unique authors: %d\n", s.UniqueAuthors)
		fmt.Fprintf(&sb, "Total words:    %d\n", s.TotalWords)
		fmt.Fprintf(&sb, "Average words:  %.0f (median %.0f)\n", s.AvgWords, s.MedianWords)
		fmt.Fprintf(&sb, "Average kudos:  %.1f (median %.1f)\n", s.AvgKudos, s.MedianKudos)
		fmt.Fprintf(&sb, "Average hits:   %.0f\n", s.AvgHits)
		fmt.Fprintf(&sb, "Words/kudos correlation: %.3f\n", s.WordsKudosCorrelation)

		if len(s.WorksByFandom) > 0 {
			sb.WriteString("\nWorks by fandom:\n")
			names := make([]string, 0, len(s.WorksByFandom))
			for name := range s.WorksByFandom {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(&sb, "  %s: %d\n", name, s.WorksByFandom[name])
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func handleTopWorks(defaultData string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := request.GetString("data", defaultData)
		by := request.GetString("by", analyzer.ByKudos)
		if !analyzer.ValidMetric(by) {
			return mcp.NewToolResultError("by must be one of kudos, hits, words"), nil
		}

		limit := 10
		if raw, ok := request.GetArguments()["limit"]; ok {
			if f, ok := raw.(float64); ok && int(f) > 0 {
				limit = int(f)
			}
		}

		works, err := dataset.ReadCSV(path)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("load dataset: %v", err)), nil
		}

		top := analyzer.TopWorks(works, by, limit)
		var sb strings.Builder
		fmt.Fprintf(&sb, "Top %d works by %s (%s):\n\n", len(top), by, path)
		writeWorkList(&sb, top, by)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// writeWorkList renders ranked works one per line with the ranking metric.
func writeWorkList(sb *strings.Builder, works []models.Work, by string) {
	for i, w := range works {
		v := w.Kudos
		switch by {
		case analyzer.ByHits:
			v = w.Hits
		case analyzer.ByWords:
			v = w.Words
		}
		fmt.Fprintf(sb, "%3d. %d %s - %s by %s [%s]\n", i+1, v, by, w.Title, w.Author, w.FandomSearched)
	}
}
