package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aoc.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(envSessionCookie, "")
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv(envSessionCookie, "from-env")
	path := writeConfig(t, `{
		"year": 2024,
		"max_day": 25,
		"base_url": "http://example.test/",
		"session_cookie": "  abc123  ",
		"days_dir": "data",
		"ai": {"enabled": false, "model": "local-model"}
	}`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2024, cfg.Year)
	assert.Equal(t, 25, cfg.MaxDay)
	assert.Equal(t, "http://example.test", cfg.BaseURL)
	assert.Equal(t, "abc123", cfg.SessionCookie, "file value wins over env")
	assert.Equal(t, "data", cfg.DaysDir)
	assert.Equal(t, defaultSolutionsDir, cfg.SolutionsDir)
	assert.Equal(t, defaultUA, cfg.UserAgent)
	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, "local-model", cfg.AI.Model)
}

func TestLoadConfigSessionFromEnv(t *testing.T) {
	t.Setenv(envSessionCookie, " envcookie ")
	cfg, err := loadConfig(writeConfig(t, `{"year": 2025}`))
	require.NoError(t, err)
	assert.Equal(t, "envcookie", cfg.SessionCookie)
}

func TestLoadConfigValidation(t *testing.T) {
	t.Setenv(envSessionCookie, "")
	tests := map[string]string{
		"bad year":      `{"year": 2000}`,
		"max_day zero":  `{"max_day": 0}`,
		"max_day big":   `{"max_day": 26}`,
		"empty baseurl": `{"base_url": "  "}`,
		"invalid json":  `{"year": `,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}
