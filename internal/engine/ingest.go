package engine

import (
	"go.uber.org/zap"

	"github.com/lazypower/metacog/internal/store"
)

// AddOptions carries the optional fields of a new observation.
type AddOptions struct {
	Evidence  []string
	Source    string
	Domain    string
	Trace     []string
	Lifecycle store.Lifecycle // override for curiosity entries
}

// Add ingests an observation. If an unresolved entry of the same type has
// >MergeThreshold word overlap with the new content, the existing entry is
// reinforced instead of a duplicate being created: reinforcements increment,
// strength gets MergeBoost (capped at 1.0), and new evidence is appended.
// Otherwise a new entry is created with strength equal to its confidence.
//
// Returns ErrInvalidType or ErrEmptyContent without touching the document.
func (e *Engine) Add(typ store.EntryType, content string, confidence float64, opts AddOptions) (*store.Entry, error) {
	if !typ.Valid() {
		return nil, ErrInvalidType
	}
	content = store.TruncateContent(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	confidence = clamp(confidence, 0, 1)

	doc := e.Store.Load()
	now := e.Now()

	// Deduplicate — reinforce instead of duplicate.
	for _, existing := range doc.Entries {
		if existing.Type != typ || existing.Resolved {
			continue
		}
		if wordJaccard(existing.Content, content) <= MergeThreshold {
			continue
		}

		existing.Reinforcements++
		existing.Strength = clamp(existing.Strength+MergeBoost, 0, 1)
		existing.LastTouched = now
		for _, ev := range opts.Evidence {
			if !contains(existing.Evidence, ev) {
				existing.Evidence = append(existing.Evidence, ev)
			}
		}

		if err := e.Store.Save(doc); err != nil {
			return nil, err
		}
		e.Log.Debug("reinforced existing entry",
			zap.String("id", existing.ID),
			zap.Int("reinforcements", existing.Reinforcements))
		return existing, nil
	}

	lifecycle := opts.Lifecycle
	if lifecycle == store.LifecycleNone && typ == store.TypeCuriosity {
		lifecycle = store.LifecycleBorn
	}

	entry := &store.Entry{
		ID:             store.NewEntryID(typ),
		Type:           typ,
		Content:        content,
		Confidence:     confidence,
		Evidence:       append([]string{}, opts.Evidence...),
		Source:         opts.Source,
		Domain:         opts.Domain,
		Trace:          append([]string{}, opts.Trace...),
		Feedback:       []store.FeedbackRecord{},
		Reinforcements: 1,
		Strength:       confidence,
		Created:        now,
		LastTouched:    now,
		Lifecycle:      lifecycle,
	}

	doc.Entries = append(doc.Entries, entry)
	if typ == store.TypeDecision {
		doc.Meta.TotalDecisions++
	}

	if err := e.Store.Save(doc); err != nil {
		return nil, err
	}
	e.Log.Debug("added entry", zap.String("id", entry.ID), zap.String("type", string(typ)))
	return entry, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
