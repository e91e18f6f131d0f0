package engine

import (
	"sort"

	"go.uber.org/zap"

	"github.com/lazypower/metacog/internal/store"
)

// Feedback applies an outcome signal to entries. direction is +1 (correct)
// or -1 (wrong). When ids are given, exactly those entries are targeted
// (unknown ids ignored); otherwise the DefaultFeedbackTargets unresolved
// entries with the most recent last_touched are targeted.
//
// Positive feedback raises strength by RewardBoost (capped 1.0) and counts
// as a reinforcement. Negative feedback drops strength by PenaltyDrop
// (floored at PenaltyFloor) without a reinforcement — errors are not
// reinforced — and bumps total_corrections once per call.
//
// Returns the number of entries affected.
func (e *Engine) Feedback(direction int, context string, ids []string) (int, error) {
	doc := e.Store.Load()
	now := e.Now()

	doc.FeedbackLog = append(doc.FeedbackLog, store.FeedbackEvent{
		Time:      now,
		Direction: direction,
		Context:   context,
		EntryIDs:  ids,
	})

	if direction < 0 {
		doc.Meta.TotalCorrections++
	}

	var targets []*store.Entry
	if len(ids) > 0 {
		for _, entry := range doc.Entries {
			if contains(ids, entry.ID) {
				targets = append(targets, entry)
			}
		}
	} else {
		targets = doc.Unresolved()
		sort.SliceStable(targets, func(i, j int) bool {
			return targets[i].LastTouched.After(targets[j].LastTouched)
		})
		if len(targets) > DefaultFeedbackTargets {
			targets = targets[:DefaultFeedbackTargets]
		}
	}

	for _, entry := range targets {
		entry.Feedback = append(entry.Feedback, store.FeedbackRecord{
			Time:      now,
			Direction: direction,
			Context:   context,
		})

		if direction > 0 {
			entry.Strength = clamp(entry.Strength+RewardBoost, 0, 1)
			entry.Reinforcements++
		} else {
			entry.Strength = entry.Strength - PenaltyDrop
			if entry.Strength < PenaltyFloor {
				entry.Strength = PenaltyFloor
			}
		}

		entry.LastTouched = now
	}

	if err := e.Store.Save(doc); err != nil {
		return 0, err
	}
	e.Log.Debug("feedback applied",
		zap.Int("direction", direction),
		zap.Int("targets", len(targets)))
	return len(targets), nil
}
