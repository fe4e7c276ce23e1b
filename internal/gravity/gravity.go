package gravity

import (
	"math"
	"strconv"
	"strings"
)

// ABV estimates percent alcohol by volume from original and final specific
// gravity using the alcohol-by-weight formula:
//
//	abw = 76.08 * (og - fg) / (1.775 - og)
//	abv = abw * (fg / 0.794)
//
// Returns 0.0 when og <= fg, and 0.0 for the degenerate og == 1.775 input
// that would divide by zero. The result is rounded to two decimals.
func ABV(og, fg float64) float64 {
	if og <= fg {
		return 0.0
	}
	denom := 1.775 - og
	if denom == 0 {
		return 0.0
	}
	abw := 76.08 * (og - fg) / denom
	abv := abw * (fg / 0.794)
	return math.Round(abv*100) / 100
}

// ParseFloat parses a decimal string. The ok result distinguishes "parsed to
// zero" from "failed to parse", which matters for metric inputs where 0.0 is
// a valid reading.
func ParseFloat(s string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// ParseFloatDefault parses a decimal string, returning def when the input is
// not a valid number.
func ParseFloatDefault(s string, def float64) float64 {
	if value, ok := ParseFloat(s); ok {
		return value
	}
	return def
}
