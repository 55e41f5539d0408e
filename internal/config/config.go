package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"BounceSentry/internal/strategy"
	"BounceSentry/internal/universe"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		Provider string `yaml:"provider"` // "rest", "yahoo", or "mock"
		BaseURL  string `yaml:"base_url"`
		APIKey   string `yaml:"api_key"`
		Suffix   string `yaml:"suffix"` // yahoo ticker suffix, e.g. ".KA"
	} `yaml:"data_source"`
	Universe struct {
		Symbols         []string         `yaml:"symbols"`
		Baselines       map[string]int64 `yaml:"baselines"`
		DefaultBaseline int64            `yaml:"default_baseline"`
	} `yaml:"universe"`
	Strategy strategy.Params `yaml:"strategy"`
	Scan     struct {
		Cron    string `yaml:"cron"`
		Workers int    `yaml:"workers"`
	} `yaml:"scan"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Metrics struct {
		Listen string `yaml:"listen"` // e.g. ":9311"; empty disables the endpoint
	} `yaml:"metrics"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; env overrides and
// defaults still apply.
func Load(path string) (*Config, error) {
	cfg := &Config{Strategy: strategy.DefaultParams()}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Scan.Cron = v
	}
	if v := os.Getenv("SCAN_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scan.Workers = n
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.DataSource.Provider == "" {
		if cfg.DataSource.BaseURL != "" {
			cfg.DataSource.Provider = "rest"
		} else {
			cfg.DataSource.Provider = "yahoo"
		}
	}
	if cfg.DataSource.Suffix == "" {
		cfg.DataSource.Suffix = ".KA"
	}
	if cfg.Scan.Cron == "" {
		// Weekdays shortly after the PSX close.
		cfg.Scan.Cron = "0 45 15 * * 1-5"
	}
	if cfg.Scan.Workers == 0 {
		cfg.Scan.Workers = 1
	}
	if cfg.Universe.DefaultBaseline == 0 {
		cfg.Universe.DefaultBaseline = universe.DefaultBaselineVolume
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if len(c.Universe.Symbols) == 0 {
		return fmt.Errorf("universe.symbols must not be empty")
	}
	switch c.DataSource.Provider {
	case "rest":
		if c.DataSource.BaseURL == "" {
			return fmt.Errorf("data_source.base_url is required for the rest provider")
		}
	case "yahoo", "mock":
	default:
		return fmt.Errorf("unknown data_source.provider: %s", c.DataSource.Provider)
	}
	if c.Scan.Workers < 1 {
		return fmt.Errorf("scan.workers must be at least 1, got %d", c.Scan.Workers)
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	if err := c.Strategy.Validate(); err != nil {
		return fmt.Errorf("strategy: %w", err)
	}
	return nil
}
