package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Archive ArchiveConfig
	Output  OutputConfig
	Server  ServerConfig
	Webhook WebhookConfig
	Log     LogConfig

	// Fandoms is the default list of search terms for scrape runs that
	// don't name any on the command line.
	Fandoms []string
}

// ArchiveConfig controls the outbound archive search client.
type ArchiveConfig struct {
	// BaseURL is the archive root. default: "https://archiveofourown.org"
	BaseURL string

	// UserAgent is the static client identifier sent with every request.
	// The archive's access policy requires a descriptive, honest value.
	UserAgent string

	// RateLimit is the minimum wall-clock spacing between consecutive
	// page requests. It is a hard floor, not a best-effort throttle.
	RateLimit time.Duration // default: 5s

	// Timeout is the per-request deadline.
	Timeout time.Duration // default: 30s

	// MaxPages is the default number of result pages per search term.
	MaxPages int // default: 3
}

// OutputConfig controls where datasets and charts are written.
type OutputConfig struct {
	DataDir  string // default: "data"
	ChartDir string // default: "outputs"
}

// ServerConfig controls the read-only dataset API server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8780
	Mode string // "debug", "release", "test"; default: "release"
}

// WebhookConfig controls the harvest-completion notification.
// Delivery is disabled while URL is empty.
type WebhookConfig struct {
	URL    string
	Secret string
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "text"
}

// DefaultUserAgent identifies the harvester to the archive.
const DefaultUserAgent = "Mozilla/5.0 (compatible; FandomResearchBot/1.0; Educational Research Project)"

// minRateLimit is the lowest spacing Validate accepts; the archive's access
// policy treats anything faster as abuse.
const minRateLimit = time.Second

// Load builds the configuration from defaults, an optional YAML file, and
// KUDOSCOPE_* environment variables, in that order (environment wins).
// path may be empty.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Archive: ArchiveConfig{
			BaseURL:   "https://archiveofourown.org",
			UserAgent: DefaultUserAgent,
			RateLimit: 5 * time.Second,
			Timeout:   30 * time.Second,
			MaxPages:  3,
		},
		Output: OutputConfig{
			DataDir:  "data",
			ChartDir: "outputs",
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8780,
			Mode: "release",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// fileConfig mirrors Config for YAML decoding. Durations are strings
// ("5s", "1m"); zero values mean "not set" and keep the current value.
type fileConfig struct {
	Archive struct {
		BaseURL   string `yaml:"base_url"`
		UserAgent string `yaml:"user_agent"`
		RateLimit string `yaml:"rate_limit"`
		Timeout   string `yaml:"timeout"`
		MaxPages  int    `yaml:"max_pages"`
	} `yaml:"archive"`
	Output struct {
		DataDir  string `yaml:"data_dir"`
		ChartDir string `yaml:"chart_dir"`
	} `yaml:"output"`
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Mode string `yaml:"mode"`
	} `yaml:"server"`
	Webhook struct {
		URL    string `yaml:"url"`
		Secret string `yaml:"secret"`
	} `yaml:"webhook"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Fandoms []string `yaml:"fandoms"`
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	setString(&c.Archive.BaseURL, fc.Archive.BaseURL)
	setString(&c.Archive.UserAgent, fc.Archive.UserAgent)
	if err := setDuration(&c.Archive.RateLimit, fc.Archive.RateLimit); err != nil {
		return fmt.Errorf("config: %s: archive.rate_limit: %w", path, err)
	}
	if err := setDuration(&c.Archive.Timeout, fc.Archive.Timeout); err != nil {
		return fmt.Errorf("config: %s: archive.timeout: %w", path, err)
	}
	setInt(&c.Archive.MaxPages, fc.Archive.MaxPages)

	setString(&c.Output.DataDir, fc.Output.DataDir)
	setString(&c.Output.ChartDir, fc.Output.ChartDir)

	setString(&c.Server.Host, fc.Server.Host)
	setInt(&c.Server.Port, fc.Server.Port)
	setString(&c.Server.Mode, fc.Server.Mode)

	setString(&c.Webhook.URL, fc.Webhook.URL)
	setString(&c.Webhook.Secret, fc.Webhook.Secret)

	setString(&c.Log.Level, fc.Log.Level)
	setString(&c.Log.Format, fc.Log.Format)

	if len(fc.Fandoms) > 0 {
		c.Fandoms = fc.Fandoms
	}
	return nil
}

// applyEnv overlays KUDOSCOPE_* environment variables. The helpers fall back
// to the current value, so unset variables change nothing.
func (c *Config) applyEnv() {
	c.Archive.BaseURL = envOr("KUDOSCOPE_BASE_URL", c.Archive.BaseURL)
	c.Archive.UserAgent = envOr("KUDOSCOPE_USER_AGENT", c.Archive.UserAgent)
	c.Archive.RateLimit = envDurationOr("KUDOSCOPE_RATE_LIMIT", c.Archive.RateLimit)
	c.Archive.Timeout = envDurationOr("KUDOSCOPE_TIMEOUT", c.Archive.Timeout)
	c.Archive.MaxPages = envIntOr("KUDOSCOPE_MAX_PAGES", c.Archive.MaxPages)

	c.Output.DataDir = envOr("KUDOSCOPE_DATA_DIR", c.Output.DataDir)
	c.Output.ChartDir = envOr("KUDOSCOPE_CHART_DIR", c.Output.ChartDir)

	c.Server.Host = envOr("KUDOSCOPE_HOST", c.Server.Host)
	c.Server.Port = envIntOr("KUDOSCOPE_PORT", c.Server.Port)
	c.Server.Mode = envOr("KUDOSCOPE_MODE", c.Server.Mode)

	c.Webhook.URL = envOr("KUDOSCOPE_WEBHOOK_URL", c.Webhook.URL)
	c.Webhook.Secret = envOr("KUDOSCOPE_WEBHOOK_SECRET", c.Webhook.Secret)

	c.Log.Level = envOr("KUDOSCOPE_LOG_LEVEL", c.Log.Level)
	c.Log.Format = envOr("KUDOSCOPE_LOG_FORMAT", c.Log.Format)

	c.Fandoms = envSliceOr("KUDOSCOPE_FANDOMS", c.Fandoms)
}

// Validate rejects configurations that would break the archive contract or
// cannot serve.
func (c *Config) Validate() error {
	if c.Archive.BaseURL == "" {
		return fmt.Errorf("config: archive base URL must not be empty")
	}
	if c.Archive.RateLimit < minRateLimit {
		return fmt.Errorf("config: rate limit %s is below the %s floor", c.Archive.RateLimit, minRateLimit)
	}
	if c.Archive.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Archive.Timeout)
	}
	if c.Archive.MaxPages < 1 {
		return fmt.Errorf("config: max pages must be at least 1, got %d", c.Archive.MaxPages)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid server port %d", c.Server.Port)
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v string) error {
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}
