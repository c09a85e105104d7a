package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	defaultConfigPath   = "aoc.json"
	defaultBaseURL      = "https://adventofcode.com"
	defaultUA           = "github.com/aoc-helper (puzzle input fetcher)"
	defaultYear         = 2025
	defaultMaxDay       = 12
	defaultDaysDir      = "days"
	defaultSolutionsDir = "."
	defaultAIModel      = "gpt-4o-mini"
)

// Environment variables read after .env is loaded.
const (
	envSessionCookie = "AOC_SESSION_COOKIE"
	envOpenAIKey     = "OPENAI_API_KEY"
)

// aiConfig holds settings for the explain command.
type aiConfig struct {
	Enabled bool   `json:"enabled,omitempty"`
	Model   string `json:"model,omitempty"`
	BaseURL string `json:"base_url,omitempty"`
	APIKey  string `json:"api_key,omitempty"`
}

// appConfig holds the application configuration.
type appConfig struct {
	Year          int      `json:"year"`
	MaxDay        int      `json:"max_day"`
	BaseURL       string   `json:"base_url"`
	SessionCookie string   `json:"session_cookie"`
	UserAgent     string   `json:"user_agent"`
	DaysDir       string   `json:"days_dir"`
	SolutionsDir  string   `json:"solutions_dir"`
	AI            aiConfig `json:"ai,omitempty"`
}

func defaultConfig() appConfig {
	return appConfig{
		Year:         defaultYear,
		MaxDay:       defaultMaxDay,
		BaseURL:      defaultBaseURL,
		UserAgent:    defaultUA,
		DaysDir:      defaultDaysDir,
		SolutionsDir: defaultSolutionsDir,
		AI: aiConfig{
			Enabled: true,
			Model:   defaultAIModel,
		},
	}
}

// loadConfig loads configuration from the specified path. A missing file
// yields the defaults.
func loadConfig(path string) (appConfig, error) {
	cfg := defaultConfig()

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return appConfig{}, fmt.Errorf("stat config: %w", err)
		}
	} else {
		k := koanf.New(".")
		if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
			return appConfig{}, fmt.Errorf("load config: %w", err)
		}
		if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
			return appConfig{}, fmt.Errorf("unmarshal config: %w", err)
		}
	}

	cfg.SessionCookie = strings.TrimSpace(cfg.SessionCookie)
	if cfg.SessionCookie == "" {
		cfg.SessionCookie = strings.TrimSpace(os.Getenv(envSessionCookie))
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		return appConfig{}, errors.New("base_url must not be empty")
	}
	if cfg.Year < 2015 {
		return appConfig{}, fmt.Errorf("year must be >= 2015, got %d", cfg.Year)
	}
	if cfg.MaxDay < 1 || cfg.MaxDay > maxPuzzleDay {
		return appConfig{}, fmt.Errorf("max_day must be in 1..%d, got %d", maxPuzzleDay, cfg.MaxDay)
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUA
	}
	if strings.TrimSpace(cfg.DaysDir) == "" {
		cfg.DaysDir = defaultDaysDir
	}
	if strings.TrimSpace(cfg.SolutionsDir) == "" {
		cfg.SolutionsDir = defaultSolutionsDir
	}
	if strings.TrimSpace(cfg.AI.Model) == "" {
		cfg.AI.Model = defaultAIModel
	}
	return cfg, nil
}
