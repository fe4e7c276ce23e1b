package series_test

import (
	"testing"
	"time"

	"brewtrack/internal/brew"
	"brewtrack/internal/series"
)

func logBrew(og float64, startDate string, entries ...brew.LogEntry) *brew.Brew {
	return &brew.Brew{
		ID:        "brew_1",
		Name:      "Test Batch",
		StartDate: startDate,
		OG:        og,
		Log:       entries,
	}
}

func TestGravitySeedsWithOG(t *testing.T) {
	b := logBrew(1.060, "2026-01-01T00:00:00Z")
	points := series.Gravity(b)
	if len(points) != 1 {
		t.Fatalf("expected seed point only, got %d", len(points))
	}
	if points[0].Value != 1.060 || points[0].Label != series.LabelOG {
		t.Fatalf("unexpected seed point: %+v", points[0])
	}
	want := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if !points[0].Time.Equal(want) {
		t.Fatalf("expected seed at start date, got %v", points[0].Time)
	}
}

func TestGravityNoSeedWithoutOG(t *testing.T) {
	b := logBrew(0, "2026-01-01T00:00:00Z")
	if points := series.Gravity(b); len(points) != 0 {
		t.Fatalf("expected empty series, got %v", points)
	}
}

func TestGravityDecimalExtraction(t *testing.T) {
	b := logBrew(0, "2026-01-01T00:00:00Z",
		brew.LogEntry{Time: "2026-01-05T12:00:00Z", Type: "General", Text: "Gravity reading: 1.052"},
	)
	points := series.Gravity(b)
	if len(points) != 1 {
		t.Fatalf("expected one point, got %d", len(points))
	}
	if points[0].Value != 1.052 || points[0].Label != series.LabelReading {
		t.Fatalf("unexpected point: %+v", points[0])
	}
}

func TestGravityIntegerExtraction(t *testing.T) {
	b := logBrew(0, "2026-01-01T00:00:00Z",
		brew.LogEntry{Time: "2026-01-02T12:00:00Z", Type: "General", Text: "Hit OG 1050"},
	)
	points := series.Gravity(b)
	if len(points) != 1 {
		t.Fatalf("expected one point, got %d", len(points))
	}
	if points[0].Value != 1.050 || points[0].Label != series.LabelOG {
		t.Fatalf("unexpected point: %+v", points[0])
	}
}

func TestGravityLabels(t *testing.T) {
	b := logBrew(0, "2026-01-01T00:00:00Z",
		brew.LogEntry{Time: "2026-01-02T00:00:00Z", Type: "Gravity Reading", Text: "OG 1.060"},
		brew.LogEntry{Time: "2026-01-09T00:00:00Z", Type: "Gravity Reading", Text: "fg at 1.012"},
		brew.LogEntry{Time: "2026-01-05T00:00:00Z", Type: "Gravity Reading", Text: "down to 1.025"},
	)
	points := series.Gravity(b)
	if len(points) != 3 {
		t.Fatalf("expected three points, got %d", len(points))
	}
	// Sorted chronologically regardless of log order.
	if points[0].Label != series.LabelOG || points[1].Label != series.LabelReading || points[2].Label != series.LabelFG {
		t.Fatalf("unexpected labels: %+v", points)
	}
	if !points[0].Time.Before(points[1].Time) || !points[1].Time.Before(points[2].Time) {
		t.Fatalf("expected ascending timestamps: %+v", points)
	}
}

func TestGravityPlausibilityWindow(t *testing.T) {
	b := logBrew(0, "2026-01-01T00:00:00Z",
		brew.LogEntry{Time: "2026-01-02T00:00:00Z", Type: "Gravity Reading", Text: "added 1.50 kg sugar, gravity later"},
		brew.LogEntry{Time: "2026-01-03T00:00:00Z", Type: "Gravity Reading", Text: "gravity 0.50"},
	)
	if points := series.Gravity(b); len(points) != 0 {
		t.Fatalf("expected implausible values dropped, got %v", points)
	}
}

func TestGravitySkipsNonMatchingText(t *testing.T) {
	b := logBrew(0, "2026-01-01T00:00:00Z",
		brew.LogEntry{Time: "2026-01-02T00:00:00Z", Type: "Gravity Reading", Text: "forgot my hydrometer"},
		brew.LogEntry{Time: "2026-01-03T00:00:00Z", Type: "General", Text: "racked to secondary"},
	)
	if points := series.Gravity(b); len(points) != 0 {
		t.Fatalf("expected no points, got %v", points)
	}
}

func TestGravityDropsUnparseableTimestamps(t *testing.T) {
	b := logBrew(0, "2026-01-01T00:00:00Z",
		brew.LogEntry{Time: "whenever", Type: "Gravity Reading", Text: "1.045"},
		brew.LogEntry{Time: "2026-01-02T00:00:00Z", Type: "Gravity Reading", Text: "1.040"},
	)
	points := series.Gravity(b)
	if len(points) != 1 || points[0].Value != 1.040 {
		t.Fatalf("expected only the timestamped point, got %v", points)
	}
}

func TestGravityRecomputesAfterAppend(t *testing.T) {
	b := logBrew(0, "2026-01-01T00:00:00Z")
	if points := series.Gravity(b); len(points) != 0 {
		t.Fatalf("expected empty series, got %v", points)
	}
	b.Log = append(b.Log, brew.LogEntry{Time: "2026-01-04T00:00:00Z", Type: "Gravity Reading", Text: "1.030"})
	if points := series.Gravity(b); len(points) != 1 {
		t.Fatalf("expected new entry reflected, got %v", points)
	}
}

func TestTemperatureExtraction(t *testing.T) {
	b := logBrew(0, "2026-01-01T00:00:00Z",
		brew.LogEntry{Time: "2026-01-02T00:00:00Z", Type: "Temp Check", Text: "Temp check: 18.5 C"},
		brew.LogEntry{Time: "2026-01-03T00:00:00Z", Type: "General", Text: "temp up to 68° F"},
		brew.LogEntry{Time: "2026-01-04T00:00:00Z", Type: "Temp Check", Text: "Temp: 250 C"},
		brew.LogEntry{Time: "2026-01-05T00:00:00Z", Type: "Temp Check", Text: "probe flaky, no reading"},
		brew.LogEntry{Time: "2026-01-06T00:00:00Z", Type: "General", Text: "18 C in the cellar"},
	)
	points := series.Temperature(b)
	if len(points) != 2 {
		t.Fatalf("expected two points, got %d: %v", len(points), points)
	}
	if points[0].Value != 18.5 || points[0].Unit != "C" {
		t.Fatalf("unexpected first point: %+v", points[0])
	}
	if points[1].Value != 68 || points[1].Unit != "F" {
		t.Fatalf("unexpected second point: %+v", points[1])
	}
}

func TestTemperatureDropsUnparseableTimestamps(t *testing.T) {
	b := logBrew(0, "2026-01-01T00:00:00Z",
		brew.LogEntry{Time: "n/a", Type: "Temp Check", Text: "19 C"},
	)
	if points := series.Temperature(b); len(points) != 0 {
		t.Fatalf("expected no points, got %v", points)
	}
}

func TestNilBrew(t *testing.T) {
	if series.Gravity(nil) != nil || series.Temperature(nil) != nil {
		t.Fatal("expected nil series for nil brew")
	}
}
