package testsupport

import (
	"testing"

	"brewtrack/internal/brew"
	"brewtrack/internal/cellar"
	"brewtrack/internal/config"
	"brewtrack/internal/logging"
)

// MustOpenManager opens a cellar manager against the config's data directory
// and registers its lock release with the test cleanup.
func MustOpenManager(t testing.TB, cfg *config.Config) *cellar.Manager {
	t.Helper()

	m, err := cellar.Open(cellar.Options{
		DataDir:          cfg.Paths.DataDir,
		DefaultSlotCount: cfg.Vessels.DefaultSlotCount,
		Vocabulary: brew.Vocabulary{
			Categories: cfg.Vocabulary.Categories,
			Stages:     cfg.Vocabulary.Stages,
			EventTypes: cfg.Vocabulary.EventTypes,
		},
		Logger: logging.NewNop(),
	})
	if err != nil {
		t.Fatalf("open manager: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}
