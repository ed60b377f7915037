// Package config loads tool configuration from an optional YAML file with
// environment-variable overrides for the secrets (calendar ID, Telegram
// token) that should not live on disk.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all tool settings.
type Config struct {
	// ScheduleURL overrides the beitarfc.co.il schedule page. Empty means
	// the built-in default.
	ScheduleURL string `yaml:"schedule_url"`

	// CalendarID is the target Google calendar. Empty means "primary".
	CalendarID string `yaml:"calendar_id"`

	// CredentialsPath is the Google credentials JSON file, used when the
	// GOOGLE_CREDENTIALS environment variable is unset.
	CredentialsPath string `yaml:"credentials_path"`

	// DataDir holds fixture snapshots between runs.
	DataDir string `yaml:"data_dir"`

	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig enables the optional run-summary notification.
type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		CalendarID:      "primary",
		CredentialsPath: "credentials.json",
		DataDir:         "~/.local/share/no-parking-teddy",
	}
}

// Load reads configuration from path. A missing file is not an error: the
// defaults plus environment overrides are enough to run.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}

	return cfg, nil
}

// applyEnv lets the environment override file values. Used in CI where the
// config file carries no secrets.
func (c *Config) applyEnv() {
	if v := os.Getenv("CALENDAR_ID"); v != "" {
		c.CalendarID = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Telegram.ChatID = id
		}
	}
}
