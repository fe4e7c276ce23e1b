// Package gravity holds the pure numeric helpers for specific-gravity math:
// the ABV estimate derived from original/final gravity and the tolerant float
// parsing used for metric input fields.
package gravity
