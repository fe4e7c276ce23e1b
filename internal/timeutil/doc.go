// Package timeutil centralizes timestamp handling for brew records.
//
// All persisted timestamps are ISO-8601 UTC strings. Display formatting is
// driven by an explicit Settings value built from configuration rather than
// process-wide state, so tests and callers can supply isolated zones and
// layouts. Every formatting path degrades to a "-" placeholder instead of
// returning an error.
package timeutil
