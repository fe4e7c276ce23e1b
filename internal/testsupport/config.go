package testsupport

import (
	"path/filepath"
	"testing"

	"brewtrack/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithSlotCount overrides the default vessel slot count.
func WithSlotCount(count int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Vessels.DefaultSlotCount = count
	}
}

// WithVocabulary overrides the configured vocabularies.
func WithVocabulary(categories, stages, eventTypes []string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Vocabulary.Categories = categories
		cfg.Vocabulary.Stages = stages
		cfg.Vocabulary.EventTypes = eventTypes
	}
}
