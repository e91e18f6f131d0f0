package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lazypower/metacog/internal/store"
)

func writeLegacy(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

const geometryFixture = `{
  "failure_patterns": [
    {"counters": ["verify the diff before committing"], "name": "blind-commit", "severity": 4},
    {"counters": [], "name": "skipping tests entirely", "severity": 10}
  ],
  "success_patterns": [
    {"protection_rule": "keep the release script untouched", "name": "release-script"},
    {"description": "small reviewable commits", "name": ""}
  ],
  "emergence_log": [
    {"insight": "asks better questions after a break"}
  ]
}`

const perceptionFixture = `{
  "perceptions": [
    {"shift": "treats warnings as signal now", "intensity": 0.6, "source": "retro", "domain": "quality", "reinforcements": 4, "decayed": false},
    {"shift": "old forgotten habit", "intensity": 0.5, "reinforcements": 2, "decayed": true}
  ]
}`

func TestMigrateMapsLegacySchemas(t *testing.T) {
	e := testEngine(t)
	writeLegacy(t, e.Cfg.Legacy.GeometryPath, geometryFixture)
	writeLegacy(t, e.Cfg.Legacy.PerceptionPath, perceptionFixture)

	n, err := e.Migrate()
	if err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if n != 6 {
		t.Errorf("migrated = %d, want 6 (decayed perception skipped)", n)
	}

	doc := e.Store.Load()

	overrides := entriesOfType(doc, store.TypeOverride)
	if len(overrides) != 2 {
		t.Fatalf("overrides = %d, want 2", len(overrides))
	}
	if overrides[0].Content != "verify the diff before committing" {
		t.Errorf("override content = %q, want first counter", overrides[0].Content)
	}
	if !near(overrides[0].Confidence, 0.8) {
		t.Errorf("override confidence = %v, want severity/5 = 0.8", overrides[0].Confidence)
	}
	if overrides[0].Domain != "blind-commit" {
		t.Errorf("override domain = %q, want legacy name", overrides[0].Domain)
	}
	// Severity 10 clamps to confidence 1.0, and content falls back to name.
	if overrides[1].Content != "skipping tests entirely" || !near(overrides[1].Confidence, 1.0) {
		t.Errorf("override fallback = %q conf %v", overrides[1].Content, overrides[1].Confidence)
	}

	protections := entriesOfType(doc, store.TypeProtection)
	if len(protections) != 2 {
		t.Fatalf("protections = %d, want 2", len(protections))
	}
	if !near(protections[0].Confidence, 0.9) {
		t.Errorf("protection confidence = %v, want 0.9", protections[0].Confidence)
	}
	if protections[1].Content != "small reviewable commits" {
		t.Errorf("protection description fallback = %q", protections[1].Content)
	}
	if protections[1].Domain != "unknown" {
		t.Errorf("protection domain = %q, want unknown", protections[1].Domain)
	}

	selfObs := entriesOfType(doc, store.TypeSelfObs)
	if len(selfObs) != 1 || !near(selfObs[0].Confidence, 0.7) {
		t.Errorf("self_obs = %+v, want one at confidence 0.7", selfObs)
	}

	perceptions := entriesOfType(doc, store.TypePerception)
	if len(perceptions) != 1 {
		t.Fatalf("perceptions = %d, want 1 (decayed skipped)", len(perceptions))
	}
	if perceptions[0].Reinforcements != 4 {
		t.Errorf("Reinforcements = %d, want legacy count carried over", perceptions[0].Reinforcements)
	}
	if perceptions[0].Source != "retro" {
		t.Errorf("Source = %q, want retro", perceptions[0].Source)
	}
}

func TestMigrateMissingFiles(t *testing.T) {
	e := testEngine(t)
	n, err := e.Migrate()
	if err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if n != 0 {
		t.Errorf("migrated = %d, want 0 with no legacy files", n)
	}
}

func TestMigrateRerunReinforcesInsteadOfDuplicating(t *testing.T) {
	e := testEngine(t)
	writeLegacy(t, e.Cfg.Legacy.GeometryPath, geometryFixture)

	if _, err := e.Migrate(); err != nil {
		t.Fatal(err)
	}
	before := len(e.Store.Load().Entries)

	if _, err := e.Migrate(); err != nil {
		t.Fatal(err)
	}
	doc := e.Store.Load()
	if len(doc.Entries) != before {
		t.Errorf("rerun created entries: %d -> %d", before, len(doc.Entries))
	}

	overrides := entriesOfType(doc, store.TypeOverride)
	if overrides[0].Reinforcements != 2 {
		t.Errorf("Reinforcements = %d, want 2 after rerun merge", overrides[0].Reinforcements)
	}
}

func entriesOfType(doc *store.Document, typ store.EntryType) []*store.Entry {
	var out []*store.Entry
	for _, e := range doc.Entries {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}
