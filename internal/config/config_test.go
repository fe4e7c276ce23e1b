package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"brewtrack/internal/config"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Vessels.DefaultSlotCount != 5 {
		t.Fatalf("unexpected default slot count: %d", cfg.Vessels.DefaultSlotCount)
	}
	if len(cfg.Vocabulary.Categories) == 0 || cfg.Vocabulary.Categories[0] != "Beer" {
		t.Fatalf("unexpected default categories: %v", cfg.Vocabulary.Categories)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("expected default log format, got %q", cfg.Logging.Format)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`data_dir = "` + filepath.Join(dir, "data") + `"`,
		"[vessels]",
		"default_slot_count = 2",
		"[vocabulary]",
		`categories = ["Wine", "Mead"]`,
		"[display]",
		`timezone = "UTC"`,
		"[logging]",
		`format = "json"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected resolved existing path %q, got %q (exists=%v)", path, resolved, exists)
	}
	if cfg.Vessels.DefaultSlotCount != 2 {
		t.Fatalf("expected slot count override, got %d", cfg.Vessels.DefaultSlotCount)
	}
	if cfg.Vocabulary.Categories[0] != "Wine" {
		t.Fatalf("expected category override, got %v", cfg.Vocabulary.Categories)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected json log format, got %q", cfg.Logging.Format)
	}
	if cfg.StateFilePath() != filepath.Join(dir, "data", "brews.json") {
		t.Fatalf("unexpected state path: %q", cfg.StateFilePath())
	}
	if cfg.HistoryFilePath() != filepath.Join(dir, "data", "brew_history.json") {
		t.Fatalf("unexpected history path: %q", cfg.HistoryFilePath())
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"negative slot count", func(c *config.Config) { c.Vessels.DefaultSlotCount = -1 }, "default_slot_count"},
		{"bogus timezone", func(c *config.Config) { c.Display.Timezone = "Not/AZone" }, "display.timezone"},
		{"bad log format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"bad log level", func(c *config.Config) { c.Logging.Level = "verbose" }, "logging.level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error naming %q, got %v", tc.want, err)
			}
		})
	}
}

func TestCreateSampleParsesCleanly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Display.DateFormat != "2006-01-02 15:04" {
		t.Fatalf("unexpected sample date format: %q", cfg.Display.DateFormat)
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(dir, "data")
	cfg.Paths.LogDir = filepath.Join(dir, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, p := range []string{cfg.Paths.DataDir, cfg.Paths.LogDir} {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory at %q: %v", p, err)
		}
	}
}
