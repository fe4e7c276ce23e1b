package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"brewtrack/internal/brew"
	"brewtrack/internal/cellar"
	"brewtrack/internal/config"
	"brewtrack/internal/logging"
	"brewtrack/internal/timeutil"
)

type commandContext struct {
	configFlag *string
	plainFlag  *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string, plainFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		plainFlag:  plainFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger.With(logging.String(logging.FieldSessionID, uuid.NewString()))
	})
	return c.logger
}

// withManager opens the cellar manager for the configured data directory,
// runs fn, and releases the instance lock.
func (c *commandContext) withManager(fn func(*cellar.Manager) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	m, err := cellar.Open(cellar.Options{
		DataDir:          cfg.Paths.DataDir,
		DefaultSlotCount: cfg.Vessels.DefaultSlotCount,
		Vocabulary: brew.Vocabulary{
			Categories: cfg.Vocabulary.Categories,
			Stages:     cfg.Vocabulary.Stages,
			EventTypes: cfg.Vocabulary.EventTypes,
		},
		Logger: c.ensureLogger(),
	})
	if err != nil {
		return err
	}
	defer m.Close()
	return fn(m)
}

func (c *commandContext) displaySettings() timeutil.Settings {
	cfg, err := c.ensureConfig()
	if err != nil || cfg == nil {
		return timeutil.NewSettings("", "")
	}
	return timeutil.NewSettings(cfg.Display.Timezone, cfg.Display.DateFormat)
}

func (c *commandContext) plain() bool {
	return c.plainFlag != nil && *c.plainFlag
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
