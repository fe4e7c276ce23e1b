package cellar

import (
	"fmt"

	"brewtrack/internal/brew"
	"brewtrack/internal/logging"
)

// Archive is a finished brew plus the name of the vessel it was archived
// from. The brew fields serialize inline, so an archive record is a brew
// record with one extra key.
type Archive struct {
	brew.Brew
	ArchivedFrom string `json:"archived_from"`
}

// ArchiveBrew moves the brew in the slot at index to the front of the
// history, newest first, stamping it with a final lifecycle event. The
// history write is atomic and happens before the slot is cleared, so a crash
// or write failure can duplicate a brew across the two files but never lose
// one. Archiving an empty or absent slot is a no-op.
func (m *Manager) ArchiveBrew(index int) error {
	if index < 0 || index >= len(m.slots) {
		return nil
	}
	slot := &m.slots[index]
	b := slot.Brew
	if b == nil {
		m.persistState("archive brew")
		return nil
	}

	b.AddEvent(brew.EventTypeLifecycle, "Archived to History")
	record := Archive{Brew: *b.Clone(), ArchivedFrom: slot.Name}
	m.history = append([]Archive{record}, m.history...)

	if err := m.saveHistory(); err != nil {
		m.history = m.history[1:]
		b.Log = b.Log[:len(b.Log)-1]
		return fmt.Errorf("persist brew history: %w", err)
	}

	slot.Brew = nil
	m.persistState("archive brew")
	m.logger.Info("archived brew",
		logging.String(logging.FieldBrewID, record.ID),
		logging.String(logging.FieldSlot, record.ArchivedFrom))
	return nil
}
