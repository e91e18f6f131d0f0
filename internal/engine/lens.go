package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lazypower/metacog/internal/store"
)

// lensBudgets caps how many entries of each type the compiled lens may
// surface. Decisions never inject — they trace.
var lensBudgets = map[store.EntryType]int{
	store.TypePerception: 5,
	store.TypeOverride:   5,
	store.TypeProtection: 4,
	store.TypeSelfObs:    3,
	store.TypeCuriosity:  3,
	store.TypeDecision:   0,
}

// Active returns up to limit unresolved entries of the given type with
// strength at or above ActiveThreshold, ranked by strength×reinforcements
// descending. Ties keep insertion order. An empty type matches all types.
func (e *Engine) Active(typ store.EntryType, limit int) []*store.Entry {
	return activeFrom(e.Store.Load(), typ, limit)
}

func activeFrom(doc *store.Document, typ store.EntryType, limit int) []*store.Entry {
	var out []*store.Entry
	for _, entry := range doc.Entries {
		if entry.Resolved || entry.Strength < ActiveThreshold {
			continue
		}
		if typ != "" && entry.Type != typ {
			continue
		}
		out = append(out, entry)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Strength*float64(out[i].Reinforcements) >
			out[j].Strength*float64(out[j].Reinforcements)
	})

	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CompileLens runs decay, then renders the strongest entries per type into
// the lens text block. Output is purely a function of the document state and
// the current time.
func (e *Engine) CompileLens() (string, error) {
	if _, err := e.Decay(); err != nil {
		return "", err
	}

	doc := e.Store.Load()
	now := e.Now()

	var b strings.Builder
	fmt.Fprintf(&b, "*Lens compiled: %s — self-evolving from every experience*\n\n", now.Format("15:04"))

	if perceptions := activeFrom(doc, store.TypePerception, lensBudgets[store.TypePerception]); len(perceptions) > 0 {
		b.WriteString("**👁️ Active lens** (apply before processing):\n")
		for _, p := range perceptions {
			glyphs := p.Reinforcements
			if glyphs > 5 {
				glyphs = 5
			}
			fmt.Fprintf(&b, "- %s %s\n", strings.Repeat("◈", glyphs), p.Content)
		}
		b.WriteString("\n")
	}

	if overrides := activeFrom(doc, store.TypeOverride, lensBudgets[store.TypeOverride]); len(overrides) > 0 {
		b.WriteString("**🚨 Override rules** (failure-learned, non-negotiable):\n")
		for _, o := range overrides {
			domain := o.Domain
			if domain == "" {
				domain = "?"
			}
			fmt.Fprintf(&b, "- **%s**: %s\n", domain, o.Content)
		}
		b.WriteString("\n")
	}

	if protections := activeFrom(doc, store.TypeProtection, lensBudgets[store.TypeProtection]); len(protections) > 0 {
		b.WriteString("**🛡️ Protected** (working, don't break):\n")
		for _, p := range protections {
			fmt.Fprintf(&b, "- %s\n", p.Content)
		}
		b.WriteString("\n")
	}

	if selfObs := activeFrom(doc, store.TypeSelfObs, lensBudgets[store.TypeSelfObs]); len(selfObs) > 0 {
		b.WriteString("**🪞 Self-model** (what I know about how I work):\n")
		for _, s := range selfObs {
			fmt.Fprintf(&b, "- [%d%%] %s\n", int(s.Confidence*100), s.Content)
		}
		b.WriteString("\n")
	}

	if curiosities := activeFrom(doc, store.TypeCuriosity, lensBudgets[store.TypeCuriosity]); len(curiosities) > 0 {
		b.WriteString("**❓ Active curiosities** (notice evidence during this interaction):\n")
		for _, c := range curiosities {
			lc := c.Lifecycle
			if lc == store.LifecycleNone {
				lc = store.LifecycleBorn
			}
			fmt.Fprintf(&b, "- [%s|%d evidence] %s\n", lc, len(c.Evidence), c.Content)
		}
		b.WriteString("\n")
	}

	totalActive := len(doc.Unresolved())
	accuracy := (1 - float64(doc.Meta.TotalCorrections)/float64(max(doc.Meta.TotalDecisions, 1))) * 100
	fmt.Fprintf(&b, "*%d active entries | %d decisions traced | %.0f%% uncorrected*",
		totalActive, doc.Meta.TotalDecisions, accuracy)

	return b.String(), nil
}
