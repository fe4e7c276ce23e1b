package logging

// Standardized attribute keys shared across components.
const (
	FieldComponent = "component"
	FieldSessionID = "session_id"
	FieldSlot      = "slot"
	FieldBrewID    = "brew_id"
	FieldPath      = "path"
)
