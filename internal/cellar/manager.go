package cellar

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"brewtrack/internal/brew"
	"brewtrack/internal/logging"
)

const (
	stateFileName   = "brews.json"
	historyFileName = "brew_history.json"
	lockFileName    = "brewtrack.lock"
)

// Options configures a Manager. DataDir is required; the rest have workable
// zero values.
type Options struct {
	DataDir          string
	DefaultSlotCount int
	Vocabulary       brew.Vocabulary
	Logger           *slog.Logger
}

// Manager owns the slot collection and archive history for one data
// directory. It is not safe for concurrent use; the CLI runs one operation
// per invocation and the file lock keeps other processes out.
type Manager struct {
	statePath    string
	historyPath  string
	defaultSlots int
	vocab        brew.Vocabulary
	logger       *slog.Logger
	lock         *flock.Flock

	slots   []Slot
	history []Archive
}

// Open creates the data directory if needed, takes the instance lock, and
// loads state and history. Missing or unreadable files never fail the open;
// they fall back to default slots and an empty history.
func Open(opts Options) (*Manager, error) {
	if opts.DataDir == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if err := os.MkdirAll(opts.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	lock := flock.New(filepath.Join(opts.DataDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire data directory lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("data directory %s is locked by another brewtrack instance", opts.DataDir)
	}

	m := &Manager{
		statePath:    filepath.Join(opts.DataDir, stateFileName),
		historyPath:  filepath.Join(opts.DataDir, historyFileName),
		defaultSlots: opts.DefaultSlotCount,
		vocab:        opts.Vocabulary,
		logger:       opts.Logger,
		lock:         lock,
	}
	m.loadState()
	m.loadHistory()
	return m, nil
}

// Close releases the data directory lock.
func (m *Manager) Close() error {
	if m.lock == nil {
		return nil
	}
	return m.lock.Unlock()
}

// Slots returns a snapshot of the slot list. The slice is a copy; the brew
// pointers alias live state and must not be mutated by callers.
func (m *Manager) Slots() []Slot {
	return append([]Slot(nil), m.slots...)
}

// Slot returns the slot at the zero-based index.
func (m *Manager) Slot(index int) (Slot, bool) {
	if index < 0 || index >= len(m.slots) {
		return Slot{}, false
	}
	return m.slots[index], true
}

// History returns a snapshot of the archive list, most recent first. The
// result is never nil so it always serializes as a JSON array.
func (m *Manager) History() []Archive {
	out := make([]Archive, len(m.history))
	copy(out, m.history)
	return out
}

// SlotCount returns the number of vessel slots.
func (m *Manager) SlotCount() int {
	return len(m.slots)
}

// AddSlot appends a new empty slot with an auto-generated positional name and
// persists the slot list.
func (m *Manager) AddSlot() Slot {
	slot := Slot{Name: DefaultSlotName(len(m.slots))}
	m.slots = append(m.slots, slot)
	m.persistState("add slot")
	return slot
}

// RemoveLastSlot removes the trailing slot if it exists and is empty. It
// reports whether a slot was removed; occupied or absent trailing slots leave
// the list untouched.
func (m *Manager) RemoveLastSlot() bool {
	if len(m.slots) == 0 {
		return false
	}
	if m.slots[len(m.slots)-1].Occupied() {
		return false
	}
	m.slots = m.slots[:len(m.slots)-1]
	m.persistState("remove slot")
	return true
}

// RenameSlot sets the display name of the slot at index. Out-of-range indexes
// are tolerated as no-ops so stale views cannot corrupt state.
func (m *Manager) RenameSlot(index int, name string) {
	if index < 0 || index >= len(m.slots) {
		return
	}
	m.slots[index].Name = name
	m.persistState("rename slot")
}

// CreateBrew constructs a brew from the given fields and places it in the
// slot at index, replacing any existing occupant.
func (m *Manager) CreateBrew(index int, fields brew.Fields) (*brew.Brew, error) {
	if index < 0 || index >= len(m.slots) {
		return nil, validationErrf("create brew", "slot %d does not exist", index+1)
	}
	b := brew.New(fields, m.vocab)
	m.slots[index].Brew = b
	m.persistState("create brew")
	return b, nil
}

// UpdateBrew applies a mutation to the brew in the slot at index and persists
// the result. The slot must be occupied.
func (m *Manager) UpdateBrew(index int, apply func(*brew.Brew)) error {
	b, err := m.occupiedBrew("update brew", index)
	if err != nil {
		return err
	}
	apply(b)
	m.persistState("update brew")
	return nil
}

// AddLogEntry appends a timestamped event to the brew in the slot at index
// and persists the slot list.
func (m *Manager) AddLogEntry(index int, eventType, text string) error {
	b, err := m.occupiedBrew("add log entry", index)
	if err != nil {
		return err
	}
	b.AddEvent(eventType, text)
	m.persistState("add log entry")
	return nil
}

// DeleteLogEntry removes the log entry at entryIndex from the brew in the
// slot at slotIndex. Out-of-range indexes and empty slots are tolerated as
// no-ops.
func (m *Manager) DeleteLogEntry(slotIndex, entryIndex int) {
	if slotIndex < 0 || slotIndex >= len(m.slots) {
		return
	}
	b := m.slots[slotIndex].Brew
	if b == nil || entryIndex < 0 || entryIndex >= len(b.Log) {
		return
	}
	b.Log = append(b.Log[:entryIndex], b.Log[entryIndex+1:]...)
	m.persistState("delete log entry")
}

func (m *Manager) occupiedBrew(operation string, index int) (*brew.Brew, error) {
	if index < 0 || index >= len(m.slots) {
		return nil, validationErrf(operation, "slot %d does not exist", index+1)
	}
	b := m.slots[index].Brew
	if b == nil {
		return nil, validationErrf(operation, "slot %d is empty", index+1)
	}
	return b, nil
}

// persistState writes the slot list and logs failures instead of returning
// them. Slot mutations have already happened in memory at this point; the
// next successful mutation will write the current truth back out.
func (m *Manager) persistState(operation string) {
	if err := m.saveState(); err != nil {
		m.logger.Warn("failed to persist slot state",
			logging.String("operation", operation),
			logging.String(logging.FieldPath, m.statePath),
			logging.Error(err))
	}
}
