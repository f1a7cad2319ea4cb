package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/fandomstats/kudoscope/api"
	"github.com/fandomstats/kudoscope/dataset"
)

var (
	serveData string
	serveAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a read-only HTTP API over a harvested dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveData, "data", "", "dataset CSV to serve (default <data-dir>/works.csv)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config host:port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	path := serveData
	if path == "" {
		path = filepath.Join(cfg.Output.DataDir, dataset.DefaultCSVName)
	}

	store := dataset.NewStore(path)
	if _, err := store.Works(); err != nil {
		// Serving continues; health reports degraded until a harvest lands.
		slog.Warn("dataset not readable yet", "path", path, "error", err)
	}

	router := api.NewRouter(store, cfg, version, time.Now())

	addr := serveAddr
	if addr == "" {
		addr = fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", addr, "dataset", path)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}
	slog.Info("shutdown signal received")

	// Give in-flight requests 5 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server forced shutdown", "error", err)
		return err
	}
	slog.Info("HTTP server drained gracefully")
	return nil
}
