package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultPageID is fetched when no page ID is given
const DefaultPageID = "275a1865-b187-807a-adea-ebaf36fb49b0"

// Load loads the configuration from file, .env and the environment. A
// config file is optional unless configPath names one explicitly.
func Load(configPath string) (*Config, error) {
	// .env values never override variables already set
	_ = godotenv.Load()

	v := viper.New()

	// Set default values
	setDefaults(v)
	bindEnv(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".notion-page"))
		}

		// Check /etc
		v.AddConfigPath("/etc/notion-page/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Notion defaults
	v.SetDefault("notion.base_url", "https://api.notion.com")
	v.SetDefault("notion.page_id", DefaultPageID)
	v.SetDefault("notion.timeout", "30s")

	// Output defaults
	v.SetDefault("output.format", "json")

	// Logging defaults
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// bindEnv maps environment variables onto config keys
func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("notion.api_key", "NOTION_API_KEY")
	_ = v.BindEnv("notion.base_url", "NOTION_BASE_URL")
	_ = v.BindEnv("notion.page_id", "NOTION_PAGE_ID")
	_ = v.BindEnv("logging.level", "NOTION_LOG_LEVEL")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Notion.BaseURL == "" {
		return fmt.Errorf("notion.base_url is required")
	}

	if cfg.Notion.Timeout < 0 {
		return fmt.Errorf("notion.timeout must not be negative")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	validOutputs := map[string]bool{
		"json": true,
		"yaml": true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("invalid output format: %s", cfg.Output.Format)
	}

	return nil
}
