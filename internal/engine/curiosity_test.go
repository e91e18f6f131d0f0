package engine

import (
	"errors"
	"testing"

	"github.com/lazypower/metacog/internal/store"
)

func TestEvolveCuriosityLifecycle(t *testing.T) {
	e := testEngine(t)
	entry := mustAdd(t, e, store.TypeCuriosity, "why does the nightly job stall", 0.7, AddOptions{})

	// born → active, with or without evidence
	got, err := e.EvolveCuriosity(entry.ID, "", "")
	if err != nil {
		t.Fatalf("EvolveCuriosity: %v", err)
	}
	if got.Lifecycle != store.LifecycleActive {
		t.Errorf("Lifecycle = %q, want active", got.Lifecycle)
	}
	if got.Reinforcements != 2 {
		t.Errorf("Reinforcements = %d, want 2", got.Reinforcements)
	}

	// active stays active without evidence
	got, err = e.EvolveCuriosity(entry.ID, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if got.Lifecycle != store.LifecycleActive {
		t.Errorf("Lifecycle = %q, want active without evidence", got.Lifecycle)
	}

	// active → evolving only when evidence is supplied
	got, err = e.EvolveCuriosity(entry.ID, "", "stalls only on Mondays")
	if err != nil {
		t.Fatal(err)
	}
	if got.Lifecycle != store.LifecycleEvolving {
		t.Errorf("Lifecycle = %q, want evolving", got.Lifecycle)
	}
	if len(got.Evidence) != 1 {
		t.Errorf("Evidence = %v, want the supplied item", got.Evidence)
	}

	// evolving stays evolving
	got, err = e.EvolveCuriosity(entry.ID, "why does the job stall on Mondays", "second stall observed")
	if err != nil {
		t.Fatal(err)
	}
	if got.Lifecycle != store.LifecycleEvolving {
		t.Errorf("Lifecycle = %q, want evolving", got.Lifecycle)
	}
	if got.Content != "why does the job stall on Mondays" {
		t.Errorf("Content = %q, want updated", got.Content)
	}
}

func TestEvolveCuriosityFailures(t *testing.T) {
	e := testEngine(t)
	perception := mustAdd(t, e, store.TypePerception, "alpha one", 0.6, AddOptions{})

	if _, err := e.EvolveCuriosity("C-deadbeef", "", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id error = %v, want ErrNotFound", err)
	}
	if _, err := e.EvolveCuriosity(perception.ID, "", ""); !errors.Is(err, ErrNotCuriosity) {
		t.Errorf("wrong type error = %v, want ErrNotCuriosity", err)
	}

	// Document unchanged on failure.
	got := e.Store.Load().ByID(perception.ID)
	if got.Reinforcements != 1 {
		t.Error("failed evolve must not mutate the document")
	}
}

func TestResolveCuriosity(t *testing.T) {
	e := testEngine(t)
	entry := mustAdd(t, e, store.TypeCuriosity, "why does the nightly job stall", 0.7, AddOptions{
		Domain: "ops",
	})
	e.EvolveCuriosity(entry.ID, "", "stalls only on Mondays")

	successor, err := e.ResolveCuriosity(entry.ID, "nightly job stalls when the backup overlaps it", "")
	if err != nil {
		t.Fatalf("ResolveCuriosity: %v", err)
	}

	if successor.Type != store.TypePerception {
		t.Errorf("successor type = %q, want perception default", successor.Type)
	}
	if !near(successor.Confidence, 0.8) {
		t.Errorf("successor confidence = %v, want 0.8", successor.Confidence)
	}
	if successor.Domain != "ops" {
		t.Errorf("successor domain = %q, want inherited", successor.Domain)
	}
	if len(successor.Trace) != 1 || successor.Trace[0] != entry.ID {
		t.Errorf("successor trace = %v, want [%s]", successor.Trace, entry.ID)
	}
	if len(successor.Evidence) != 1 || successor.Evidence[0] != "stalls only on Mondays" {
		t.Errorf("successor evidence = %v, want inherited", successor.Evidence)
	}

	source := e.Store.Load().ByID(entry.ID)
	if !source.Resolved {
		t.Error("source must be marked resolved")
	}
	if source.Lifecycle != store.LifecycleResolved {
		t.Errorf("source lifecycle = %q, want resolved", source.Lifecycle)
	}
}

func TestResolveCuriosityUnknownID(t *testing.T) {
	e := testEngine(t)
	if _, err := e.ResolveCuriosity("C-deadbeef", "whatever", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestResolveCuriositySuccessorMayMerge(t *testing.T) {
	e := testEngine(t)
	existing := mustAdd(t, e, store.TypePerception, "backup overlap stalls the nightly job", 0.6, AddOptions{})
	curiosity := mustAdd(t, e, store.TypeCuriosity, "why does the nightly job stall", 0.7, AddOptions{})

	successor, err := e.ResolveCuriosity(curiosity.ID, "backup overlap stalls the nightly job", "")
	if err != nil {
		t.Fatal(err)
	}
	if successor.ID != existing.ID {
		t.Error("successor should merge into the existing similar perception")
	}
	if successor.Reinforcements != 2 {
		t.Errorf("Reinforcements = %d, want 2 after merge", successor.Reinforcements)
	}
}
