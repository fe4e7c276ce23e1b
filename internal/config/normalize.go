package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeVocabulary()
	c.normalizeDisplay()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

// normalizeVocabulary trims entries and drops blanks. An empty list is legal;
// brew construction then falls back to its hardcoded defaults.
func (c *Config) normalizeVocabulary() {
	c.Vocabulary.Categories = trimList(c.Vocabulary.Categories)
	c.Vocabulary.Stages = trimList(c.Vocabulary.Stages)
	c.Vocabulary.EventTypes = trimList(c.Vocabulary.EventTypes)
}

func (c *Config) normalizeDisplay() {
	c.Display.Timezone = strings.TrimSpace(c.Display.Timezone)
	if c.Display.Timezone == "" {
		c.Display.Timezone = defaultTimezone
	}
	c.Display.DateFormat = strings.TrimSpace(c.Display.DateFormat)
	if c.Display.DateFormat == "" {
		c.Display.DateFormat = defaultDateFormat
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func trimList(values []string) []string {
	trimmed := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		trimmed = append(trimmed, value)
	}
	return trimmed
}
