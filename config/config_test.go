package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"NOTION_API_KEY", "NOTION_BASE_URL", "NOTION_PAGE_ID", "NOTION_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Notion.APIKey)
	assert.Equal(t, "https://api.notion.com", cfg.Notion.BaseURL)
	assert.Equal(t, DefaultPageID, cfg.Notion.PageID)
	assert.Equal(t, 30*time.Second, cfg.Notion.Timeout)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("NOTION_API_KEY", "secret_from_env")
	t.Setenv("NOTION_PAGE_ID", "env-page")
	t.Setenv("NOTION_LOG_LEVEL", "debug")

	path := writeConfig(t, `
notion:
  api_key: secret_from_file
  page_id: file-page
  timeout: 5s
logging:
  level: info
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "secret_from_env", cfg.Notion.APIKey)
	assert.Equal(t, "env-page", cfg.Notion.PageID)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 5*time.Second, cfg.Notion.Timeout)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
notion:
  api_key: secret_from_file
  base_url: http://localhost:9999
output:
  format: yaml
logging:
  format: json
  color: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "secret_from_file", cfg.Notion.APIKey)
	assert.Equal(t, "http://localhost:9999", cfg.Notion.BaseURL)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Logging.Color)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Notion:  NotionConfig{BaseURL: "https://api.notion.com", Timeout: time.Second},
			Output:  OutputConfig{Format: "json"},
			Logging: LoggingConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing API key is allowed", mutate: func(c *Config) { c.Notion.APIKey = "" }},
		{name: "empty base URL", mutate: func(c *Config) { c.Notion.BaseURL = "" }, wantErr: "notion.base_url is required"},
		{name: "negative timeout", mutate: func(c *Config) { c.Notion.Timeout = -time.Second }, wantErr: "notion.timeout"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "trace" }, wantErr: "invalid logging level: trace"},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "invalid logging format: xml"},
		{name: "bad output", mutate: func(c *Config) { c.Output.Format = "table" }, wantErr: "invalid output format: table"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
