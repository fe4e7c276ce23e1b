package config

import (
	"errors"
	"fmt"
	"time"

	// Fallback zone database for hosts without system tzdata.
	_ "time/tzdata"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateVessels(); err != nil {
		return err
	}
	if err := c.validateDisplay(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateVessels() error {
	if c.Vessels.DefaultSlotCount < 0 {
		return errors.New("vessels.default_slot_count must be >= 0")
	}
	return nil
}

func (c *Config) validateDisplay() error {
	if _, err := time.LoadLocation(c.Display.Timezone); err != nil {
		return fmt.Errorf("display.timezone: unknown zone %q", c.Display.Timezone)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
