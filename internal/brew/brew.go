package brew

import (
	"fmt"
	"strconv"

	"brewtrack/internal/gravity"
	"brewtrack/internal/timeutil"
)

// Fallback defaults used when the configured vocabulary is empty.
const (
	FallbackCategory = "Beer"
	FallbackStage    = "Primary"
	FallbackName     = "Untitled"
)

// Event types stamped on synthesized log entries. Creation and archive use
// Lifecycle; vessel moves use Transfer.
const (
	EventTypeLifecycle = "Lifecycle"
	EventTypeTransfer  = "Transfer"
)

// LogEntry is a single timestamped event in a brew's append-only log.
type LogEntry struct {
	Time string `json:"time"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// Brew is a tracked fermentation batch. Field names map one-to-one onto the
// flat JSON shape used by the state and history files.
type Brew struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Category       string     `json:"category"`
	Recipe         string     `json:"recipe"`
	Notes          string     `json:"notes"`
	StartDate      string     `json:"start_date"`
	Stage          string     `json:"stage"`
	Volume         float64    `json:"volume"`
	OriginalVolume float64    `json:"original_volume"`
	OG             float64    `json:"og"`
	FG             float64    `json:"fg"`
	PH             float64    `json:"ph"`
	Temp           float64    `json:"temp"`
	Log            []LogEntry `json:"log"`
}

// Vocabulary carries the externally configured category/stage/event-type
// lists. The first category and stage entries act as construction defaults;
// membership is never enforced, any string is accepted and persisted.
type Vocabulary struct {
	Categories []string
	Stages     []string
	EventTypes []string
}

// DefaultCategory returns the first configured category, or the hardcoded
// fallback when the vocabulary is empty.
func (v Vocabulary) DefaultCategory() string {
	if len(v.Categories) > 0 {
		return v.Categories[0]
	}
	return FallbackCategory
}

// DefaultStage returns the first configured stage, or the hardcoded fallback
// when the vocabulary is empty.
func (v Vocabulary) DefaultStage() string {
	if len(v.Stages) > 0 {
		return v.Stages[0]
	}
	return FallbackStage
}

// Fields holds the caller-supplied subset of brew fields for construction.
// Zero values mean "not supplied" except for the metric floats, where zero is
// a legitimate reading; OriginalVolume uses a pointer so an absent value can
// inherit Volume.
type Fields struct {
	ID             string
	Name           string
	Category       string
	Recipe         string
	Notes          string
	StartDate      string
	Stage          string
	Volume         float64
	OriginalVolume *float64
	OG             float64
	FG             float64
	PH             float64
	Temp           float64
	Log            []LogEntry
}

// New constructs a brew from partial fields, filling defaults: a millisecond
// timestamp id, the current UTC start date, first-vocabulary-entry category
// and stage, and original volume inherited from volume. A brew created with
// no log entries gets exactly one synthesized creation event.
func New(f Fields, vocab Vocabulary) *Brew {
	b := &Brew{
		ID:        f.ID,
		Name:      f.Name,
		Category:  f.Category,
		Recipe:    f.Recipe,
		Notes:     f.Notes,
		StartDate: f.StartDate,
		Stage:     f.Stage,
		Volume:    f.Volume,
		OG:        f.OG,
		FG:        f.FG,
		PH:        f.PH,
		Temp:      f.Temp,
		Log:       append([]LogEntry(nil), f.Log...),
	}
	if f.OriginalVolume != nil {
		b.OriginalVolume = *f.OriginalVolume
	} else {
		b.OriginalVolume = f.Volume
	}
	b.fillDefaults(vocab)
	return b
}

// Normalize fills the same construction defaults on a brew reconstructed from
// persisted data. Records written by this program already carry every field,
// so this is a no-op for them; legacy payloads gain ids, start dates, and the
// creation log entry exactly as freshly constructed brews do.
func (b *Brew) Normalize(vocab Vocabulary) {
	b.fillDefaults(vocab)
}

func (b *Brew) fillDefaults(vocab Vocabulary) {
	if b.ID == "" {
		b.ID = NewID(timeutil.Now().UnixMilli())
	}
	if b.Name == "" {
		b.Name = FallbackName
	}
	if b.Category == "" {
		b.Category = vocab.DefaultCategory()
	}
	if b.Stage == "" {
		b.Stage = vocab.DefaultStage()
	}
	if b.StartDate == "" {
		b.StartDate = timeutil.FormatISO(timeutil.Now())
	}
	if len(b.Log) == 0 {
		b.AddEvent(EventTypeLifecycle, fmt.Sprintf("Created: %s. Start Vol: %sL", b.Name, FormatVolume(b.Volume)))
	}
}

// NewID derives a brew id from a creation time in milliseconds.
func NewID(unixMilli int64) string {
	return fmt.Sprintf("brew_%d", unixMilli)
}

// AddEvent appends a log entry stamped with the current UTC time. It mutates
// the log and never fails.
func (b *Brew) AddEvent(eventType, text string) {
	b.Log = append(b.Log, LogEntry{
		Time: timeutil.FormatISO(timeutil.Now()),
		Type: eventType,
		Text: text,
	})
}

// ABV returns the calculated percent alcohol and true when both gravities are
// recorded. ok=false means "no data", which displays differently from a
// computed zero.
func (b *Brew) ABV() (float64, bool) {
	if b.OG == 0 || b.FG == 0 {
		return 0, false
	}
	return gravity.ABV(b.OG, b.FG), true
}

// Clone returns a deep copy, including the log slice, so snapshots never
// alias the live brew.
func (b *Brew) Clone() *Brew {
	if b == nil {
		return nil
	}
	clone := *b
	clone.Log = append([]LogEntry(nil), b.Log...)
	return &clone
}

// FormatVolume renders a volume the way log messages and reports display it:
// a minimal decimal representation ("20", "18.5", "19.25").
func FormatVolume(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
