package series

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"brewtrack/internal/brew"
	"brewtrack/internal/timeutil"
)

// Plausibility windows. Readings outside these ranges are treated as parse
// noise and dropped.
const (
	minGravity = 0.990
	maxGravity = 1.200
	minTemp    = -5.0
	maxTemp    = 100.0
)

// Gravity point labels.
const (
	LabelOG      = "OG"
	LabelFG      = "FG"
	LabelReading = "Reading"
)

// GravityPoint is one specific-gravity observation mined from the log.
type GravityPoint struct {
	Time  time.Time
	Value float64
	Label string
}

// TempPoint is one temperature observation mined from the log. Unit is the
// letter written in the entry ("C" or "F"); no conversion is applied.
type TempPoint struct {
	Time  time.Time
	Value float64
	Unit  string
}

var (
	// A decimal with two or more fractional digits, e.g. "1.052".
	decimalPattern = regexp.MustCompile(`\d+\.\d{2,}`)
	// A bare 3-4 digit group, e.g. "1050", read as thousandths.
	integerPattern = regexp.MustCompile(`\b\d{3,4}\b`)
	// A number reaching a C/F unit letter, optionally through a degree mark.
	tempPattern = regexp.MustCompile(`(-?\d+(?:\.\d+)?)\s*°?\s*([CF])\b`)
)

// Gravity mines a brew's log for specific-gravity readings and returns them
// in chronological order. The series is seeded with the recorded OG at the
// start date when one exists. Recomputed from scratch on every call.
func Gravity(b *brew.Brew) []GravityPoint {
	if b == nil {
		return nil
	}

	var points []GravityPoint
	if b.OG > 0 {
		if start, ok := timeutil.ParseISO(b.StartDate); ok {
			points = append(points, GravityPoint{Time: start, Value: b.OG, Label: LabelOG})
		}
	}

	for _, entry := range b.Log {
		folded := foldText(entry.Text)
		if entry.Type != "Gravity Reading" &&
			!strings.Contains(folded, "gravity") &&
			!strings.Contains(folded, "og") &&
			!strings.Contains(folded, "fg") {
			continue
		}

		value, ok := extractGravity(entry.Text)
		if !ok || value < minGravity || value > maxGravity {
			continue
		}
		when, ok := timeutil.ParseISO(entry.Time)
		if !ok {
			continue
		}

		points = append(points, GravityPoint{
			Time:  when,
			Value: value,
			Label: gravityLabel(folded),
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Time.Before(points[j].Time)
	})
	return points
}

// extractGravity pulls a gravity value out of free text. A decimal with two
// or more fractional digits wins; otherwise a bare 3-4 digit group is read as
// thousandths (1050 -> 1.050).
func extractGravity(text string) (float64, bool) {
	if match := decimalPattern.FindString(text); match != "" {
		value, err := strconv.ParseFloat(match, 64)
		if err == nil {
			return value, true
		}
	}
	if match := integerPattern.FindString(text); match != "" {
		value, err := strconv.ParseFloat(match, 64)
		if err == nil {
			return value / 1000, true
		}
	}
	return 0, false
}

// gravityLabel classifies a candidate from its folded text, independent of
// which numeric pattern matched.
func gravityLabel(folded string) string {
	hasOG := strings.Contains(folded, "og")
	hasFG := strings.Contains(folded, "fg")
	switch {
	case hasOG && !hasFG:
		return LabelOG
	case hasFG:
		return LabelFG
	default:
		return LabelReading
	}
}

// Temperature mines a brew's log for temperature readings and returns them in
// chronological order. Recomputed from scratch on every call.
func Temperature(b *brew.Brew) []TempPoint {
	if b == nil {
		return nil
	}

	var points []TempPoint
	for _, entry := range b.Log {
		folded := foldText(entry.Text)
		if entry.Type != "Temp Check" && !strings.Contains(folded, "temp") {
			continue
		}

		match := tempPattern.FindStringSubmatch(strings.ToUpper(entry.Text))
		if match == nil {
			continue
		}
		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil || value < minTemp || value > maxTemp {
			continue
		}
		when, ok := timeutil.ParseISO(entry.Time)
		if !ok {
			continue
		}

		points = append(points, TempPoint{
			Time:  when,
			Value: math.Round(value*100) / 100,
			Unit:  match[2],
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Time.Before(points[j].Time)
	})
	return points
}

func foldText(s string) string {
	return cases.Fold().String(s)
}
