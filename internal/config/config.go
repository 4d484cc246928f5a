package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"

	"github.com/vadimtrunov/tmdb-mcp/internal/metadata/tmdb"
)

// DefaultPath is the config file used when --config is not given.
const DefaultPath = "configs/tmdb-mcp.yaml"

// Config represents the main application configuration
type Config struct {
	// Metadata provider
	TMDb TMDbConfig `yaml:"tmdb" toml:"tmdb"`

	// Frontends
	Telegram *TelegramConfig `yaml:"telegram,omitempty" toml:"telegram,omitempty"`

	// Application settings
	App AppConfig `yaml:"app" toml:"app"`
}

// TMDbConfig holds TMDb API configuration
type TMDbConfig struct {
	APIKey  string `yaml:"api_key" toml:"api_key"`
	BaseURL string `yaml:"base_url,omitempty" toml:"base_url,omitempty"` // For proxies and tests
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken       string  `yaml:"bot_token" toml:"bot_token"`
	AllowedUserIDs []int64 `yaml:"allowed_user_ids,omitempty" toml:"allowed_user_ids,omitempty"`
}

// AppConfig holds application-level settings
type AppConfig struct {
	LogLevel      string `yaml:"log_level" toml:"log_level"` // "debug", "info", "warn", "error"
	LogFile       string `yaml:"log_file,omitempty" toml:"log_file,omitempty"`
	LogMaxSizeMB  int    `yaml:"log_max_size_mb,omitempty" toml:"log_max_size_mb,omitempty"`
	LogMaxBackups int    `yaml:"log_max_backups,omitempty" toml:"log_max_backups,omitempty"`
}

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "warning": true, "error": true,
}

// Load reads the configuration file, applies environment overrides and
// validates the result. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults plus environment.
	case err != nil:
		return nil, errors.Wrapf(err, "read config file %s", path)
	default:
		if err := decode(path, data, &cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config file %s", path)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides overrides config values with environment variables
func (c *Config) applyEnvOverrides() {
	// TMDb
	if v := os.Getenv("TMDB_API_KEY"); v != "" {
		c.TMDb.APIKey = v
	}
	if v := os.Getenv("TMDB_BASE_URL"); v != "" {
		c.TMDb.BaseURL = v
	}

	// Telegram
	if v := os.Getenv("TMDBMCP_TELEGRAM_BOT_TOKEN"); v != "" {
		if c.Telegram == nil {
			c.Telegram = &TelegramConfig{}
		}
		c.Telegram.BotToken = v
	}

	// App
	if v := os.Getenv("TMDBMCP_LOG_LEVEL"); v != "" {
		c.App.LogLevel = v
	}
	if v := os.Getenv("TMDBMCP_LOG_FILE"); v != "" {
		c.App.LogFile = v
	}
}

// setDefaults fills zero values.
func (c *Config) setDefaults() {
	if c.TMDb.BaseURL == "" {
		c.TMDb.BaseURL = tmdb.DefaultBaseURL
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.App.LogMaxSizeMB == 0 {
		c.App.LogMaxSizeMB = 10
	}
	if c.App.LogMaxBackups == 0 {
		c.App.LogMaxBackups = 3
	}
}

// Validate fills defaults and validates the configuration.
// A missing API key is not an error: every tool call reports it instead.
func (c *Config) Validate() error {
	c.setDefaults()

	if err := validateURL(c.TMDb.BaseURL, "tmdb.base_url"); err != nil {
		return err
	}

	if !validLogLevels[strings.ToLower(c.App.LogLevel)] {
		return errors.Errorf("app.log_level must be one of debug, info, warn, error (got %q)", c.App.LogLevel)
	}
	if c.App.LogMaxSizeMB < 0 {
		return errors.New("app.log_max_size_mb must be positive")
	}
	if c.App.LogMaxBackups < 0 {
		return errors.New("app.log_max_backups must not be negative")
	}

	if c.Telegram != nil && c.Telegram.BotToken == "" {
		return errors.New("telegram.bot_token is required")
	}

	return nil
}

// HasAPIKey reports whether a TMDb credential was configured.
func (c *Config) HasAPIKey() bool {
	return c.TMDb.APIKey != ""
}

func validateURL(raw, field string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errors.Wrapf(err, "%s is not a valid URL", field)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("%s must use http or https", field)
	}
	if u.Host == "" {
		return errors.Errorf("%s is missing host", field)
	}
	return nil
}
