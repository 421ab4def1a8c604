package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ResultsDir == "" || cfg.DataCacheDir == "" || cfg.HistoryDB == "" {
		t.Fatalf("expected non-empty default paths, got %+v", cfg)
	}
	if !cfg.CacheEnabled || !cfg.OnlineTools {
		t.Error("cache and online tools should default to enabled")
	}
	if cfg.DefaultYears != 10 {
		t.Errorf("DefaultYears = %d, want 10", cfg.DefaultYears)
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TIM_RESULTS_DIR", filepath.Join(dir, "results"))
	t.Setenv("TIM_CACHE_ENABLED", "false")
	t.Setenv("TIM_ONLINE_TOOLS", "false")
	t.Setenv("TIM_DEFAULT_YEARS", "5")

	cfg := DefaultConfig()
	if cfg.ResultsDir != filepath.Join(dir, "results") {
		t.Errorf("ResultsDir = %s", cfg.ResultsDir)
	}
	if cfg.CacheEnabled {
		t.Error("TIM_CACHE_ENABLED=false not applied")
	}
	if cfg.OnlineTools {
		t.Error("TIM_ONLINE_TOOLS=false not applied")
	}
	if cfg.DefaultYears != 5 {
		t.Errorf("DefaultYears = %d, want 5", cfg.DefaultYears)
	}
}

func TestEnvOverridesIgnoreGarbage(t *testing.T) {
	t.Setenv("TIM_CACHE_ENABLED", "not-a-bool")
	t.Setenv("TIM_DEFAULT_YEARS", "-3")

	cfg := DefaultConfig()
	if !cfg.CacheEnabled {
		t.Error("unparseable bool must keep the default")
	}
	if cfg.DefaultYears != 10 {
		t.Errorf("non-positive years must keep the default, got %d", cfg.DefaultYears)
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		ResultsDir:   filepath.Join(dir, "results"),
		DataCacheDir: filepath.Join(dir, "cache", "data"),
		HistoryDB:    filepath.Join(dir, "db", "history.sqlite"),
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
}
