// Package brew defines the fermentation batch entity: identity, metrics,
// free-text fields, and the append-only event log. Construction fills
// defaults from an explicit vocabulary value so partial caller input still
// produces a complete record, and the struct serializes losslessly to the
// flat JSON mapping used by the state and history files.
package brew
