package main

import (
	"fmt"
	"strconv"
	"strings"

	"brewtrack/internal/brew"
	"brewtrack/internal/timeutil"
)

// parseSlotArg converts a 1-based vessel number from the command line into a
// zero-based slot index.
func parseSlotArg(arg string) (int, error) {
	trimmed := strings.TrimSpace(arg)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid vessel number %q", arg)
	}
	if n < 1 {
		return 0, fmt.Errorf("vessel numbers start at 1, got %d", n)
	}
	return n - 1, nil
}

// formatMetric renders a gravity/pH/temperature reading, using the shared
// placeholder for an unrecorded zero.
func formatMetric(value float64) string {
	if value == 0 {
		return timeutil.Placeholder
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// formatABV renders a brew's ABV, or the placeholder when either gravity is
// missing.
func formatABV(b *brew.Brew) string {
	abv, ok := b.ABV()
	if !ok {
		return timeutil.Placeholder
	}
	return fmt.Sprintf("%.2f%%", abv)
}

func formatVolumeCell(v float64) string {
	return brew.FormatVolume(v) + "L"
}
