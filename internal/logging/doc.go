// Package logging wraps log/slog construction for Brewtrack: config-driven
// level and format selection, combined stderr-and-file output, attribute
// helpers, shared field names, and a no-op logger for tests.
package logging
