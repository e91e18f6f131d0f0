package engine

import (
	"encoding/json"
	"os"

	"go.uber.org/zap"

	"github.com/lazypower/metacog/internal/store"
)

// Legacy document shapes consumed by Migrate.
type legacyGeometry struct {
	FailurePatterns []legacyFailure   `json:"failure_patterns"`
	SuccessPatterns []legacySuccess   `json:"success_patterns"`
	EmergenceLog    []legacyEmergence `json:"emergence_log"`
}

type legacyFailure struct {
	Counters []string `json:"counters"`
	Name     string   `json:"name"`
	Severity float64  `json:"severity"`
}

type legacySuccess struct {
	ProtectionRule string `json:"protection_rule"`
	Description    string `json:"description"`
	Name           string `json:"name"`
}

type legacyEmergence struct {
	Insight string `json:"insight"`
}

type legacyPerceptionDoc struct {
	Perceptions []legacyPerception `json:"perceptions"`
}

type legacyPerception struct {
	Shift          string  `json:"shift"`
	Intensity      float64 `json:"intensity"`
	Source         string  `json:"source"`
	Domain         string  `json:"domain"`
	Reinforcements int     `json:"reinforcements"`
	Decayed        bool    `json:"decayed"`
}

// Migrate imports entries from the legacy geometry and perception documents,
// best-effort. Missing legacy files are skipped. Safe to run repeatedly:
// standard dedup reinforces instead of duplicating, though legacy content
// that falls just under the merge threshold can still produce near-duplicate
// entries — an accepted approximation. Returns the number of records
// migrated.
func (e *Engine) Migrate() (int, error) {
	migrated := 0

	var geo legacyGeometry
	if readLegacyJSON(e.Cfg.Legacy.GeometryPath, &geo) {
		for _, fp := range geo.FailurePatterns {
			content := fp.Name
			if len(fp.Counters) > 0 {
				content = fp.Counters[0]
			}
			_, err := e.Add(store.TypeOverride, content, clamp(fp.Severity/5, 0, 1), AddOptions{
				Source: "migrated from geometry",
				Domain: orUnknown(fp.Name),
			})
			if err == nil {
				migrated++
			}
		}
		for _, sp := range geo.SuccessPatterns {
			content := sp.ProtectionRule
			if content == "" {
				content = sp.Description
			}
			_, err := e.Add(store.TypeProtection, content, 0.9, AddOptions{
				Source: "migrated from geometry",
				Domain: orUnknown(sp.Name),
			})
			if err == nil {
				migrated++
			}
		}
		for _, em := range geo.EmergenceLog {
			_, err := e.Add(store.TypeSelfObs, em.Insight, 0.7, AddOptions{
				Source: "migrated from geometry emergence log",
			})
			if err == nil {
				migrated++
			}
		}
	}

	var perc legacyPerceptionDoc
	if readLegacyJSON(e.Cfg.Legacy.PerceptionPath, &perc) {
		for _, p := range perc.Perceptions {
			if p.Decayed {
				continue
			}
			source := p.Source
			if source == "" {
				source = "migrated"
			}
			entry, err := e.Add(store.TypePerception, p.Shift, p.Intensity, AddOptions{
				Source: source,
				Domain: p.Domain,
			})
			if err != nil {
				continue
			}
			e.carryReinforcements(entry.ID, p.Reinforcements)
			migrated++
		}
	}

	e.Log.Info("legacy migration complete", zap.Int("migrated", migrated))
	return migrated, nil
}

// carryReinforcements preserves a legacy reinforcement count on a migrated
// entry. Counts only ever go up — a merge target that is already stronger
// keeps its own count.
func (e *Engine) carryReinforcements(id string, count int) {
	if count <= 1 {
		return
	}
	doc := e.Store.Load()
	entry := doc.ByID(id)
	if entry == nil || entry.Reinforcements >= count {
		return
	}
	entry.Reinforcements = count
	if err := e.Store.Save(doc); err != nil {
		e.Log.Warn("carry reinforcements", zap.String("id", id), zap.Error(err))
	}
}

// readLegacyJSON loads a legacy document, reporting false when the file is
// missing or unreadable (migration is best-effort).
func readLegacyJSON(path string, v any) bool {
	if path == "" {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
