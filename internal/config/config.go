package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/amishk599/resumatch/internal/skills"
)

// Config is the root configuration for resumatch.
type Config struct {
	Skills       skills.Catalog
	History      HistoryConfig
	UI           UIConfig
	Notification NotificationConfig
}

// HistoryConfig controls the optional analysis history.
type HistoryConfig struct {
	Enabled   bool
	Path      string        // SQLite file, defaults to resumatch.db
	Retention time.Duration // zero keeps everything
}

// NotificationConfig controls where one-shot analyses are shared besides stdout.
type NotificationConfig struct {
	Type       string `yaml:"type"`        // "", "log" or "slack"
	WebhookURL string `yaml:"webhook_url"` // required if type is "slack"
}

// UIConfig controls the interactive shell.
type UIConfig struct {
	AltScreen bool // run the TUI in the terminal's alternate screen
}

const defaultHistoryPath = "resumatch.db"

// rawConfig is used for YAML unmarshaling (snake_case fields and duration as string).
type rawConfig struct {
	Skills       []string           `yaml:"skills"`
	History      rawHistoryConfig   `yaml:"history"`
	UI           rawUIConfig        `yaml:"ui"`
	Notification NotificationConfig `yaml:"notification"`
}

type rawUIConfig struct {
	AltScreen *bool `yaml:"alt_screen"`
}

type rawHistoryConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Path      string `yaml:"path"`
	Retention string `yaml:"retention"`
}

// Default returns the configuration used when no config file exists:
// built-in skill catalog, history disabled, alternate screen on.
func Default() *Config {
	return &Config{
		Skills: skills.Default(),
		History: HistoryConfig{
			Path: defaultHistoryPath,
		},
		UI: UIConfig{AltScreen: true},
	}
}

// Load reads and parses the YAML config file at path, validates it, and returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()

	if raw.Skills != nil {
		catalog, err := skills.NewCatalog(raw.Skills)
		if err != nil {
			return nil, fmt.Errorf("parse skills: %w", err)
		}
		cfg.Skills = catalog
	}

	cfg.History.Enabled = raw.History.Enabled
	if raw.History.Path != "" {
		cfg.History.Path = raw.History.Path
	}
	if raw.History.Retention != "" {
		cfg.History.Retention, err = time.ParseDuration(raw.History.Retention)
		if err != nil {
			return nil, fmt.Errorf("parse history.retention %q: %w", raw.History.Retention, err)
		}
	}

	if raw.UI.AltScreen != nil {
		cfg.UI.AltScreen = *raw.UI.AltScreen
	}

	cfg.Notification = raw.Notification

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Skills.Len() == 0 {
		return fmt.Errorf("skills must not be empty")
	}
	if cfg.History.Retention < 0 {
		return fmt.Errorf("history.retention must not be negative, got %v", cfg.History.Retention)
	}
	if cfg.History.Enabled && cfg.History.Path == "" {
		return fmt.Errorf("history.path is required when history.enabled is true")
	}
	switch cfg.Notification.Type {
	case "", "log":
	case "slack":
		if cfg.Notification.WebhookURL == "" {
			return fmt.Errorf("notification.webhook_url is required when type is \"slack\"")
		}
		if !strings.HasPrefix(cfg.Notification.WebhookURL, "https://hooks.slack.com/") {
			return fmt.Errorf("notification.webhook_url must start with https://hooks.slack.com/")
		}
	default:
		return fmt.Errorf("unknown notification.type %q", cfg.Notification.Type)
	}
	return nil
}
