package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fandomstats/kudoscope/config"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

var (
	cfgFile   string
	logLevel  string
	logFormat string

	// cfg is loaded by the root PersistentPreRunE before any command runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "kudoscope",
	Short: "Fanfiction archive metadata harvester and analyzer",
	Long: `kudoscope harvests work metadata from Archive of Our Own search results,
writes CSV/JSON datasets, and produces statistics, reports and charts
over them. Scraping keeps a hard floor on request spacing; be patient.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.Log.Format = logFormat
		}
		initLogger(cfg.Log)
		return nil
	},
}

// Execute runs the CLI. SIGINT/SIGTERM cancel the command context, which
// unwinds scrape runs at the next rate-limit wait and drains the API server.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "kudoscope:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to YAML config file (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
}

// initLogger configures slog based on the LogConfig. Logs go to stderr so
// reports and JSON output own stdout.
func initLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}
