package cellar

import (
	"fmt"
	"math"

	"brewtrack/internal/brew"
	"brewtrack/internal/logging"
)

// Transfer moves the brew from the slot at srcIndex into the slot at
// destIndex, recording the volume lost to trub and transfer. The destination
// is overwritten if occupied; the source is left empty. Loss must be between
// zero and the brew's current volume.
func (m *Manager) Transfer(srcIndex, destIndex int, loss float64) error {
	const op = "transfer"
	if srcIndex < 0 || srcIndex >= len(m.slots) {
		return validationErrf(op, "source slot %d does not exist", srcIndex+1)
	}
	if destIndex < 0 || destIndex >= len(m.slots) {
		return validationErrf(op, "destination slot %d does not exist", destIndex+1)
	}
	if srcIndex == destIndex {
		return validationErr(op, "source and destination are the same slot")
	}

	src := &m.slots[srcIndex]
	dest := &m.slots[destIndex]
	b := src.Brew
	if b == nil {
		return validationErrf(op, "slot %d has no brew to transfer", srcIndex+1)
	}
	if loss < 0 {
		return validationErr(op, "loss cannot be negative")
	}
	if loss > b.Volume {
		return validationErrf(op, "loss %sL exceeds brew volume %sL",
			brew.FormatVolume(loss), brew.FormatVolume(b.Volume))
	}

	oldVolume := b.Volume
	newVolume := math.Round((oldVolume-loss)*100) / 100
	lossPct := 0.0
	if oldVolume > 0 {
		lossPct = loss / oldVolume * 100
	}

	b.Volume = newVolume
	b.AddEvent(brew.EventTypeTransfer, fmt.Sprintf("Transferred %s -> %s. Loss: %sL (%.1f%%). New Vol: %sL",
		src.Name, dest.Name, brew.FormatVolume(loss), lossPct, brew.FormatVolume(newVolume)))

	dest.Brew = b
	src.Brew = nil
	m.persistState("transfer")
	m.logger.Info("transferred brew",
		logging.String(logging.FieldBrewID, b.ID),
		logging.String("from", src.Name),
		logging.String("to", dest.Name),
		logging.Float64("loss", loss))
	return nil
}
