// Package config loads, normalizes, and validates Brewtrack configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob the
// CLI and manager need: data/log directories, the default fermenter slot
// count, the category/stage/event-type vocabularies, and display formatting.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
