package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Notion  NotionConfig  `mapstructure:"notion"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// NotionConfig holds Notion API connection details
type NotionConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	PageID  string        `mapstructure:"page_id"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// OutputConfig controls how fetched pages are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
