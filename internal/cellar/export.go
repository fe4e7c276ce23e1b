package cellar

import (
	"encoding/json"
	"fmt"
	"os"
)

// exportSnapshot is the full-backup document shape: the live slot list under
// "active" and the archive list under "history".
type exportSnapshot struct {
	Active  []slotRecord `json:"active"`
	History []Archive    `json:"history"`
}

// Export writes a combined snapshot of live and archived brews to path.
func (m *Manager) Export(path string) error {
	snapshot := exportSnapshot{
		Active:  make([]slotRecord, 0, len(m.slots)),
		History: m.History(),
	}
	for _, slot := range m.slots {
		snapshot.Active = append(snapshot.Active, slotRecord{Name: slot.Name, Brew: slot.Brew})
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
