package cellar

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"strings"

	"brewtrack/internal/brew"
	"brewtrack/internal/fileutil"
	"brewtrack/internal/logging"
)

// slotRecord is the persisted shape of one slot. A nil Brew serializes as an
// explicit JSON null so the on-disk shape stays stable across versions.
type slotRecord struct {
	Name string     `json:"name"`
	Brew *brew.Brew `json:"brew"`
}

// loadState reads the slot file, migrating legacy layouts in place. Nothing
// here fails: a missing, corrupt, or unreadable file yields the default slot
// list and the next save rewrites the file in the current shape.
func (m *Manager) loadState() {
	data, err := os.ReadFile(m.statePath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			m.logger.Warn("failed to read slot state, starting with defaults",
				logging.String(logging.FieldPath, m.statePath),
				logging.Error(err))
		}
		m.slots = defaultSlots(m.defaultSlots)
		return
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		m.logger.Warn("slot state is not a JSON array, starting with defaults",
			logging.String(logging.FieldPath, m.statePath),
			logging.Error(err))
		m.slots = defaultSlots(m.defaultSlots)
		return
	}

	slots := make([]Slot, 0, len(elements))
	for i, element := range elements {
		slots = append(slots, m.decodeSlot(i, element))
	}
	m.slots = slots
}

// decodeSlot accepts both the current {"name", "brew"} wrapper and the legacy
// layout where each array element was a bare brew object or null. Legacy
// slots get positional default names.
func (m *Manager) decodeSlot(index int, element json.RawMessage) Slot {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(element, &fields); err == nil {
		nameRaw, hasName := fields["name"]
		brewRaw, hasBrew := fields["brew"]
		if hasName && hasBrew {
			var name string
			if err := json.Unmarshal(nameRaw, &name); err == nil {
				return Slot{Name: name, Brew: m.decodeBrew(brewRaw)}
			}
		}
	}
	return Slot{Name: DefaultSlotName(index), Brew: m.decodeBrew(element)}
}

func (m *Manager) decodeBrew(raw json.RawMessage) *brew.Brew {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	var b brew.Brew
	if err := json.Unmarshal(raw, &b); err != nil {
		m.logger.Warn("dropping undecodable brew payload",
			logging.String(logging.FieldPath, m.statePath),
			logging.Error(err))
		return nil
	}
	b.Normalize(m.vocab)
	return &b
}

// saveState writes the slot list in the current wrapper shape. The state file
// is written directly; the history file is the one that gets the atomic
// treatment, since archives are the only copy of finished brews.
func (m *Manager) saveState() error {
	records := make([]slotRecord, 0, len(m.slots))
	for _, slot := range m.slots {
		records = append(records, slotRecord{Name: slot.Name, Brew: slot.Brew})
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.statePath, data, 0o644)
}

// loadHistory reads the archive file. Missing or corrupt files yield an empty
// history rather than an error.
func (m *Manager) loadHistory() {
	m.history = []Archive{}
	data, err := os.ReadFile(m.historyPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			m.logger.Warn("failed to read brew history, starting empty",
				logging.String(logging.FieldPath, m.historyPath),
				logging.Error(err))
		}
		return
	}
	var history []Archive
	if err := json.Unmarshal(data, &history); err != nil {
		m.logger.Warn("brew history is corrupt, starting empty",
			logging.String(logging.FieldPath, m.historyPath),
			logging.Error(err))
		return
	}
	if history == nil {
		return
	}
	for i := range history {
		history[i].Normalize(m.vocab)
	}
	m.history = history
}

// saveHistory persists the archive list atomically. A failed write leaves the
// previous history file byte-for-byte intact.
func (m *Manager) saveHistory() error {
	data, err := json.MarshalIndent(m.history, "", "  ")
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(m.historyPath, data, 0o644)
}
