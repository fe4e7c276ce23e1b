// Package cellar owns the fermenter slot collection and the archived brew
// history. The Manager is the sole mutator of persisted state: every mutating
// operation writes the slot list through to disk, archives are persisted with
// an atomic temp-file-then-rename write, and loading tolerates missing,
// legacy, and corrupt files by falling back to sane defaults instead of
// failing. A file lock on the data directory guards against a second
// brewtrack process mutating the same state.
package cellar
