package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lazypower/metacog/internal/config"
	"github.com/lazypower/metacog/internal/store"
)

// testEngine creates an engine over a temp-dir workspace with a frozen clock.
func testEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := config.Default(t.TempDir())
	e := New(store.New(cfg.Database.Path, nil), cfg, nil)
	freeze(e, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))
	return e
}

func freeze(e *Engine, at time.Time) {
	e.Now = func() time.Time { return at }
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func mustAdd(t *testing.T, e *Engine, typ store.EntryType, content string, confidence float64, opts AddOptions) *store.Entry {
	t.Helper()
	entry, err := e.Add(typ, content, confidence, opts)
	if err != nil {
		t.Fatalf("Add(%s, %q): %v", typ, content, err)
	}
	return entry
}
