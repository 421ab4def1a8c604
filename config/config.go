package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application settings. Everything can be overridden
// from the environment (or a .env file) with TIM_-prefixed variables.
type Config struct {
	ResultsDir   string `json:"results_dir"`
	DataCacheDir string `json:"data_cache_dir"`
	HistoryDB    string `json:"history_db"`

	CacheEnabled bool `json:"cache_enabled"`
	OnlineTools  bool `json:"online_tools"`

	// DefaultYears is the lookback window when the user does not give a
	// start date.
	DefaultYears int `json:"default_years"`
}

// DefaultConfig builds the configuration from defaults, a .env file if
// present, and the process environment, in that order.
func DefaultConfig() *Config {
	currentDir, _ := os.Getwd()

	cfg := &Config{
		ResultsDir:   filepath.Join(currentDir, "results"),
		DataCacheDir: filepath.Join(currentDir, "data", "cache"),
		HistoryDB:    filepath.Join(currentDir, "data", "history.sqlite"),
		CacheEnabled: true,
		OnlineTools:  true,
		DefaultYears: 10,
	}

	_ = godotenv.Load()
	cfg.loadFromEnv()

	return cfg
}

func (c *Config) loadFromEnv() {
	if val := os.Getenv("TIM_RESULTS_DIR"); val != "" {
		c.ResultsDir = val
	}
	if val := os.Getenv("TIM_DATA_CACHE_DIR"); val != "" {
		c.DataCacheDir = val
	}
	if val := os.Getenv("TIM_HISTORY_DB"); val != "" {
		c.HistoryDB = val
	}
	if val := os.Getenv("TIM_CACHE_ENABLED"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			c.CacheEnabled = enabled
		}
	}
	if val := os.Getenv("TIM_ONLINE_TOOLS"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			c.OnlineTools = enabled
		}
	}
	if val := os.Getenv("TIM_DEFAULT_YEARS"); val != "" {
		if years, err := strconv.Atoi(val); err == nil && years > 0 {
			c.DefaultYears = years
		}
	}
}

// EnsureDirectories creates every directory the app writes into.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.ResultsDir, c.DataCacheDir, filepath.Dir(c.HistoryDB)}
	for _, dir := range dirs {
		path := strings.TrimSpace(dir)
		if path == "" {
			continue
		}
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", path, err)
		}
	}
	return nil
}
