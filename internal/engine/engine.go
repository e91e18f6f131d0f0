// Package engine implements the metacognitive belief loop: ingestion with
// dedup-by-reinforcement, feedback-driven strength adjustment, time decay,
// the curiosity lifecycle, lens compilation, and boot-document injection.
//
// The loop:
//
//	Experience → Perception → Self-Model → Meta-Observation
//	→ Modified Lens → Next Experience → Feedback → Loop
package engine

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/lazypower/metacog/internal/config"
	"github.com/lazypower/metacog/internal/store"
)

// Failure modes surfaced to callers. All are non-fatal: the CLI converts
// them to printed status lines.
var (
	ErrInvalidType  = errors.New("invalid entry type")
	ErrEmptyContent = errors.New("entry content is empty")
	ErrNotFound     = errors.New("entry not found")
	ErrNotCuriosity = errors.New("entry is not a curiosity")
	ErrNoBootDoc    = errors.New("boot document does not exist")
)

// Tunables for merge, feedback, and decay policy.
const (
	// MergeThreshold is the word-set Jaccard similarity above which a new
	// observation reinforces an existing entry instead of creating one.
	MergeThreshold = 0.5

	// MergeBoost is added to strength on each dedup-merge.
	MergeBoost = 0.1

	// RewardBoost / PenaltyDrop are the asymmetric feedback magnitudes.
	// The penalty is larger so the system distrusts faster than it trusts.
	RewardBoost = 0.15
	PenaltyDrop = 0.25

	// PenaltyFloor is the strength floor after negative feedback.
	PenaltyFloor = 0.05

	// MinStrength is the decay floor; entries are never fully forgotten.
	MinStrength = 0.10

	// HalfLifeDays is the base decay half-life. Each reinforcement
	// stretches it by ReinforceStretch.
	HalfLifeDays     = 7.0
	ReinforceStretch = 0.3

	// DecayGraceDays skips decay for entries touched within the window,
	// avoiding decay-thrash on rapid successive touches.
	DecayGraceDays = 0.1

	// ActiveThreshold is the minimum strength for lens selection; curiosity
	// entries that decay below it go dormant.
	ActiveThreshold = 0.15

	// DefaultFeedbackTargets is how many recently-touched entries receive
	// untargeted feedback.
	DefaultFeedbackTargets = 5
)

// Engine runs the belief loop against a single persisted document. Every
// operation is a full load → mutate → save cycle; the Engine holds no
// document state between calls.
type Engine struct {
	Store *store.Store
	Cfg   config.Config
	Log   *zap.Logger

	// Now is the clock used for all timestamps. Tests freeze it.
	Now func() time.Time
}

// New creates an Engine over the given store. A nil logger is replaced with
// a no-op logger.
func New(st *store.Store, cfg config.Config, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		Store: st,
		Cfg:   cfg,
		Log:   log,
		Now:   time.Now,
	}
}
