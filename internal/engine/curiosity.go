package engine

import (
	"go.uber.org/zap"

	"github.com/lazypower/metacog/internal/store"
)

// EvolveCuriosity advances an open question through its lifecycle:
// born → active unconditionally, active → evolving only when evidence is
// supplied on this call. Evolving stays evolving. Content and evidence are
// appended when given, and the touch counts as a reinforcement.
//
// Fails with ErrNotFound for unknown ids and ErrNotCuriosity for entries of
// any other type; the document is left unchanged in both cases.
func (e *Engine) EvolveCuriosity(id, newContent, evidence string) (*store.Entry, error) {
	doc := e.Store.Load()

	entry := doc.ByID(id)
	if entry == nil {
		return nil, ErrNotFound
	}
	if entry.Type != store.TypeCuriosity {
		return nil, ErrNotCuriosity
	}

	if newContent != "" {
		entry.Content = store.TruncateContent(newContent)
	}
	if evidence != "" {
		entry.Evidence = append(entry.Evidence, evidence)
	}

	switch entry.Lifecycle {
	case store.LifecycleBorn:
		entry.Lifecycle = store.LifecycleActive
	case store.LifecycleActive:
		if evidence != "" {
			entry.Lifecycle = store.LifecycleEvolving
		}
	}

	entry.LastTouched = e.Now()
	entry.Reinforcements++

	if err := e.Store.Save(doc); err != nil {
		return nil, err
	}
	e.Log.Debug("curiosity evolved",
		zap.String("id", id),
		zap.String("lifecycle", string(entry.Lifecycle)))
	return entry, nil
}

// ResolveCuriosity closes an open question and converts what was learned
// into a belief of becomesType (perception when empty). The source entry is
// marked resolved; the successor inherits its accumulated evidence and
// domain, gets confidence 0.8, and traces back to the source id. The
// successor goes through standard ingestion, so it may merge into an
// existing similar entry.
func (e *Engine) ResolveCuriosity(id, resolution string, becomesType store.EntryType) (*store.Entry, error) {
	if becomesType == "" {
		becomesType = store.TypePerception
	}
	if !becomesType.Valid() {
		return nil, ErrInvalidType
	}

	doc := e.Store.Load()
	entry := doc.ByID(id)
	if entry == nil {
		return nil, ErrNotFound
	}

	entry.Resolved = true
	entry.Lifecycle = store.LifecycleResolved
	entry.LastTouched = e.Now()

	if err := e.Store.Save(doc); err != nil {
		return nil, err
	}

	return e.Add(becomesType, resolution, 0.8, AddOptions{
		Evidence: entry.Evidence,
		Source:   "resolved from " + id,
		Domain:   entry.Domain,
		Trace:    []string{id},
	})
}
