package cellar

import (
	"fmt"

	"brewtrack/internal/brew"
)

// Slot is one named fermenter vessel position. Identity is positional: slots
// are only ever appended or truncated at the tail, never removed from the
// middle.
type Slot struct {
	Name string
	Brew *brew.Brew
}

// Occupied reports whether the slot currently holds a brew.
func (s Slot) Occupied() bool {
	return s.Brew != nil
}

// DefaultSlotName is the auto-generated label for the slot at the given
// zero-based position.
func DefaultSlotName(index int) string {
	return fmt.Sprintf("Fermenter %d", index+1)
}

func defaultSlots(count int) []Slot {
	slots := make([]Slot, 0, count)
	for i := 0; i < count; i++ {
		slots = append(slots, Slot{Name: DefaultSlotName(i)})
	}
	return slots
}
