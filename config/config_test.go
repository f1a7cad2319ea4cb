package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kudoscope.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Archive.BaseURL != "https://archiveofourown.org" {
		t.Errorf("BaseURL = %q", cfg.Archive.BaseURL)
	}
	if cfg.Archive.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q", cfg.Archive.UserAgent)
	}
	if cfg.Archive.RateLimit != 5*time.Second {
		t.Errorf("RateLimit = %v, want 5s", cfg.Archive.RateLimit)
	}
	if cfg.Archive.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Archive.Timeout)
	}
	if cfg.Archive.MaxPages != 3 {
		t.Errorf("MaxPages = %d, want 3", cfg.Archive.MaxPages)
	}
	if cfg.Output.DataDir != "data" || cfg.Output.ChartDir != "outputs" {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 8780 || cfg.Server.Mode != "release" {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Webhook.URL != "" {
		t.Errorf("Webhook.URL = %q, want empty (delivery disabled)", cfg.Webhook.URL)
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	path := writeConfig(t, `
archive:
  base_url: "https://archive.example.test"
  rate_limit: "2s"
  max_pages: 5
output:
  data_dir: "harvests"
server:
  port: 9000
  mode: "debug"
log:
  level: "debug"
  format: "json"
fandoms:
  - "Sherlock"
  - "Star Trek"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Archive.BaseURL != "https://archive.example.test" {
		t.Errorf("BaseURL = %q", cfg.Archive.BaseURL)
	}
	if cfg.Archive.RateLimit != 2*time.Second {
		t.Errorf("RateLimit = %v, want 2s", cfg.Archive.RateLimit)
	}
	if cfg.Archive.MaxPages != 5 {
		t.Errorf("MaxPages = %d, want 5", cfg.Archive.MaxPages)
	}
	if cfg.Output.DataDir != "harvests" {
		t.Errorf("DataDir = %q, want harvests", cfg.Output.DataDir)
	}
	if cfg.Server.Port != 9000 || cfg.Server.Mode != "debug" {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if want := []string{"Sherlock", "Star Trek"}; !slices.Equal(cfg.Fandoms, want) {
		t.Errorf("Fandoms = %v, want %v", cfg.Fandoms, want)
	}

	// Values the file does not mention keep their defaults.
	if cfg.Archive.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want default", cfg.Archive.UserAgent)
	}
	if cfg.Archive.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Archive.Timeout)
	}
	if cfg.Output.ChartDir != "outputs" {
		t.Errorf("ChartDir = %q, want outputs", cfg.Output.ChartDir)
	}
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := writeConfig(t, `
archive:
  base_url: "https://file.example.test"
server:
  port: 9000
`)
	t.Setenv("KUDOSCOPE_BASE_URL", "https://env.example.test")
	t.Setenv("KUDOSCOPE_PORT", "9100")
	t.Setenv("KUDOSCOPE_FANDOMS", "My Chemical Romance, Fall Out Boy ,Sherlock")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Archive.BaseURL != "https://env.example.test" {
		t.Errorf("BaseURL = %q, environment should win over the file", cfg.Archive.BaseURL)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("Port = %d, want 9100", cfg.Server.Port)
	}
	if want := []string{"My Chemical Romance", "Fall Out Boy", "Sherlock"}; !slices.Equal(cfg.Fandoms, want) {
		t.Errorf("Fandoms = %v, want %v", cfg.Fandoms, want)
	}
}

func TestLoad_RateLimitBelowFloor(t *testing.T) {
	path := writeConfig(t, `
archive:
  rate_limit: "200ms"
`)

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "rate limit") {
		t.Errorf("error = %v, want a rate limit floor error", err)
	}
}

func TestLoad_BadDuration(t *testing.T) {
	path := writeConfig(t, `
archive:
  rate_limit: "fast"
`)

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "archive.rate_limit") {
		t.Errorf("error = %v, want an archive.rate_limit parse error", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want a not-exist error", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty base url", func(c *Config) { c.Archive.BaseURL = "" }, true},
		{"rate limit below floor", func(c *Config) { c.Archive.RateLimit = 999 * time.Millisecond }, true},
		{"zero timeout", func(c *Config) { c.Archive.Timeout = 0 }, true},
		{"zero max pages", func(c *Config) { c.Archive.MaxPages = 0 }, true},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
