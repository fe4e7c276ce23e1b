// Package series reconstructs gravity and temperature time series from a
// brew's free-form event log for charting. Extraction is a pure function of
// the log: pattern matching pulls candidate readings out of entry text,
// plausibility windows drop parse noise, and the surviving points are sorted
// chronologically. Nothing is cached; callers get a fresh view of the log on
// every request.
package series
