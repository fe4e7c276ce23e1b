package timeutil

import (
	"fmt"
	"strings"
	"time"

	// Fallback zone database for hosts without system tzdata.
	_ "time/tzdata"
)

// Placeholder is rendered wherever a timestamp is absent or unparseable.
const Placeholder = "-"

// isoLayouts covers the timestamp shapes found in persisted state, newest
// first. Layouts without a zone offset are interpreted as UTC.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Now returns the current instant in UTC.
func Now() time.Time {
	return time.Now().UTC()
}

// FormatISO renders an instant as the ISO-8601 UTC string used in persisted
// records and log entries.
func FormatISO(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseISO parses an ISO-8601 timestamp. Zone-less values are treated as UTC,
// never local time. Returns ok=false for empty or malformed input.
func ParseISO(s string) (time.Time, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// Settings carries the display zone and layout threaded in from configuration.
// The zero value renders in UTC with a date-and-minutes layout.
type Settings struct {
	Location *time.Location
	Layout   string
}

// NewSettings builds display settings from an IANA zone name and a Go time
// layout. Unknown zone names fall back to UTC; an empty layout falls back to
// "2006-01-02 15:04".
func NewSettings(zone, layout string) Settings {
	loc := time.UTC
	if strings.TrimSpace(zone) != "" {
		if parsed, err := time.LoadLocation(zone); err == nil {
			loc = parsed
		}
	}
	if strings.TrimSpace(layout) == "" {
		layout = "2006-01-02 15:04"
	}
	return Settings{Location: loc, Layout: layout}
}

// FormatLocal renders a time.Time or ISO string in the configured local zone.
// Absent or unparseable values render as the placeholder; no failure escapes.
func (s Settings) FormatLocal(value any) string {
	var t time.Time
	switch v := value.(type) {
	case time.Time:
		t = v
	case string:
		parsed, ok := ParseISO(v)
		if !ok {
			return Placeholder
		}
		t = parsed
	default:
		return Placeholder
	}
	if t.IsZero() {
		return Placeholder
	}
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}
	layout := s.Layout
	if layout == "" {
		layout = "2006-01-02 15:04"
	}
	return t.In(loc).Format(layout)
}

// HumanElapsed renders the time elapsed between t and now as
// "{days}d, {hours}h, {minutes}m". Zero times render as the placeholder.
func HumanElapsed(t, now time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	delta := now.Sub(t)
	if delta < 0 {
		delta = 0
	}
	days := int(delta.Hours()) / 24
	hours := int(delta.Hours()) % 24
	minutes := int(delta.Minutes()) % 60
	return fmt.Sprintf("%dd, %dh, %dm", days, hours, minutes)
}
