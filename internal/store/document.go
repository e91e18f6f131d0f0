package store

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// EntryType identifies one of the six belief kinds the engine tracks.
type EntryType string

const (
	TypePerception EntryType = "perception" // how the agent sees (lens changes from experience)
	TypeOverride   EntryType = "override"   // what it must/must not do (failure-learned)
	TypeProtection EntryType = "protection" // what works, preserve it (success-learned)
	TypeSelfObs    EntryType = "self_obs"   // what it notices about its own patterns
	TypeDecision   EntryType = "decision"   // what it chose, why, confidence, traced
	TypeCuriosity  EntryType = "curiosity"  // what it wants to know (active questions)
)

// EntryTypes lists all recognized types in display order.
var EntryTypes = []EntryType{
	TypePerception, TypeOverride, TypeProtection,
	TypeSelfObs, TypeDecision, TypeCuriosity,
}

var typeGlyphs = map[EntryType]string{
	TypePerception: "👁️",
	TypeOverride:   "🚨",
	TypeProtection: "🛡️",
	TypeSelfObs:    "🪞",
	TypeDecision:   "📍",
	TypeCuriosity:  "❓",
}

// Valid reports whether t is one of the six recognized entry types.
func (t EntryType) Valid() bool {
	_, ok := typeGlyphs[t]
	return ok
}

// Glyph returns the display glyph for the type, or "?" for unknown types.
func (t EntryType) Glyph() string {
	if g, ok := typeGlyphs[t]; ok {
		return g
	}
	return "?"
}

// Lifecycle is the curiosity state machine position. Empty for all other
// entry types.
type Lifecycle string

const (
	LifecycleNone     Lifecycle = ""
	LifecycleBorn     Lifecycle = "born"
	LifecycleActive   Lifecycle = "active"
	LifecycleEvolving Lifecycle = "evolving"
	LifecycleResolved Lifecycle = "resolved"
	LifecycleDormant  Lifecycle = "dormant"
)

// MaxContentLen caps entry content length. Longer content is truncated, not
// rejected.
const MaxContentLen = 500

// FeedbackRecord is one outcome signal applied to a single entry.
type FeedbackRecord struct {
	Time      time.Time `json:"time"`
	Direction int       `json:"direction"`
	Context   string    `json:"context,omitempty"`
}

// FeedbackEvent is the document-level audit record of one feedback call.
type FeedbackEvent struct {
	Time      time.Time `json:"time"`
	Direction int       `json:"direction"`
	Context   string    `json:"context,omitempty"`
	EntryIDs  []string  `json:"entry_ids,omitempty"`
}

// Entry is one persisted belief record. All six kinds share this shape;
// Lifecycle is only meaningful for curiosity entries.
type Entry struct {
	ID             string           `json:"id"`
	Type           EntryType        `json:"type"`
	Content        string           `json:"content"`
	Confidence     float64          `json:"confidence"` // immutable baseline, set at creation
	Evidence       []string         `json:"evidence"`
	Source         string           `json:"source,omitempty"`
	Domain         string           `json:"domain,omitempty"`
	Trace          []string         `json:"trace,omitempty"`
	Feedback       []FeedbackRecord `json:"feedback"`
	Reinforcements int              `json:"reinforcements"`
	Strength       float64          `json:"strength"` // current salience, recomputed by decay
	Created        time.Time        `json:"created"`
	LastTouched    time.Time        `json:"last_touched"`
	Resolved       bool             `json:"resolved"`
	Lifecycle      Lifecycle        `json:"lifecycle,omitempty"`
}

// Meta holds document-level aggregate counters.
type Meta struct {
	TotalDecisions   int                `json:"total_decisions"`
	TotalCorrections int                `json:"total_corrections"`
	AccuracyByDomain map[string]float64 `json:"accuracy_by_domain"`
}

// Document is the entire persisted belief database. It is loaded, mutated,
// and saved as one unit.
type Document struct {
	Version     int             `json:"version"`
	Created     time.Time       `json:"created"`
	Entries     []*Entry        `json:"entries"`
	FeedbackLog []FeedbackEvent `json:"feedback_log"`
	Meta        Meta            `json:"meta"`
}

// NewDocument returns an empty document template.
func NewDocument() *Document {
	return &Document{
		Version:     1,
		Created:     time.Now(),
		Entries:     []*Entry{},
		FeedbackLog: []FeedbackEvent{},
		Meta: Meta{
			AccuracyByDomain: map[string]float64{},
		},
	}
}

// normalize fills in any missing top-level keys so callers never see nil
// slices or maps, regardless of what was on disk.
func (d *Document) normalize() {
	if d.Version == 0 {
		d.Version = 1
	}
	if d.Created.IsZero() {
		d.Created = time.Now()
	}
	if d.Entries == nil {
		d.Entries = []*Entry{}
	}
	if d.FeedbackLog == nil {
		d.FeedbackLog = []FeedbackEvent{}
	}
	if d.Meta.AccuracyByDomain == nil {
		d.Meta.AccuracyByDomain = map[string]float64{}
	}
}

// ByID returns the entry with the given id, or nil.
func (d *Document) ByID(id string) *Entry {
	for _, e := range d.Entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Unresolved returns all entries not yet marked resolved, in insertion order.
func (d *Document) Unresolved() []*Entry {
	var out []*Entry
	for _, e := range d.Entries {
		if !e.Resolved {
			out = append(out, e)
		}
	}
	return out
}

// NewEntryID generates a type-prefixed unique entry id, e.g. "P-3f9c2a1b".
// Nothing depends on the id content beyond uniqueness.
func NewEntryID(t EntryType) string {
	prefix := "X"
	if t.Valid() {
		prefix = strings.ToUpper(string(t[0]))
	}
	return prefix + "-" + uuid.NewString()[:8]
}

// TruncateContent trims surrounding whitespace and caps content at
// MaxContentLen characters.
func TruncateContent(s string) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > MaxContentLen {
		s = string(r[:MaxContentLen])
	}
	return s
}
