package engine

import (
	"math"

	"go.uber.org/zap"

	"github.com/lazypower/metacog/internal/store"
)

// Decay recomputes every unresolved, non-dormant entry's strength from its
// immutable confidence baseline and the time since it was last touched.
// Entries reinforced more often decay slower: the effective half-life is
// HalfLifeDays × (1 + reinforcements × ReinforceStretch).
//
// Strength is recomputed from confidence, not from the previous strength,
// so feedback boosts are overwritten unless last_touched was refreshed since
// (feedback always refreshes it, re-anchoring the decay curve).
//
// Curiosity entries that decay below ActiveThreshold go dormant. Returns
// the number of entries whose strength changed.
func (e *Engine) Decay() (int, error) {
	doc := e.Store.Load()
	now := e.Now()

	updated := 0
	for _, entry := range doc.Entries {
		if entry.Resolved || entry.Lifecycle == store.LifecycleDormant {
			continue
		}

		daysOld := now.Sub(entry.LastTouched).Hours() / 24
		if daysOld < DecayGraceDays {
			continue
		}

		effectiveHalfLife := HalfLifeDays * (1 + float64(entry.Reinforcements)*ReinforceStretch)
		decayFactor := math.Pow(0.5, daysOld/effectiveHalfLife)

		strength := entry.Confidence * decayFactor
		if strength < MinStrength {
			strength = MinStrength
		}
		if strength != entry.Strength {
			entry.Strength = strength
			updated++
		}

		if entry.Strength < ActiveThreshold && entry.Type == store.TypeCuriosity {
			entry.Lifecycle = store.LifecycleDormant
		}
	}

	if err := e.Store.Save(doc); err != nil {
		return 0, err
	}
	if updated > 0 {
		e.Log.Debug("decay applied", zap.Int("updated", updated))
	}
	return updated, nil
}
