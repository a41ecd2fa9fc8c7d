// Package engine orchestrates one evolution cycle: stimulus in, node
// updates through the interaction matrix, Φ recomputation, generation
// increment, history append. Evolve is the only mutating entry point;
// every other method is a non-mutating query.
package engine

import (
	"time"

	"github.com/kurohane/phenomenal-oracle/internal/coupling"
	"github.com/kurohane/phenomenal-oracle/internal/gating"
	"github.com/kurohane/phenomenal-oracle/internal/nodestate"
	"github.com/kurohane/phenomenal-oracle/internal/phi"
)

// #region engine-struct

// Engine owns the node store, interaction matrix, and generation
// controller. State is constructor-injected; there are no package-level
// singletons. Callers serialize Evolve: one evolution in flight at a time
// per instance.
type Engine struct {
	store  *nodestate.Store
	matrix *coupling.Matrix
	gen    *gating.Controller
	now    func() time.Time
}

// New wires an engine from injected components and applies the initial
// generation's gating to the store.
func New(store *nodestate.Store, matrix *coupling.Matrix, gen *gating.Controller) *Engine {
	e := &Engine{
		store:  store,
		matrix: matrix,
		gen:    gen,
		now:    time.Now,
	}
	e.store.SetActive(e.gen.ActiveFlags(e.gen.Generation()))
	return e
}

// NewDefault builds an engine with a zeroed store, the default
// phenomenological connectivity, and the standard unlock schedule.
func NewDefault() *Engine {
	return New(nodestate.NewStore(), coupling.DefaultMatrix(), gating.NewController(gating.DefaultUnlocks()))
}

// #endregion engine-struct

// #region evolve

// Evolve runs one complete cycle. Stimulus keys outside the fixed 27 node
// names are silently ignored to tolerate upstream noise; Evolve never
// fails. Returns the Φ result computed from the post-update state at the
// pre-increment generation.
func (e *Engine) Evolve(stimulus map[string]float64, description string) phi.Result {
	deltas := make(map[nodestate.NodeID]float64, len(stimulus))
	for name, d := range stimulus {
		id, err := nodestate.ParseNode(name)
		if err != nil {
			continue
		}
		deltas[id] = d
	}
	return e.EvolveDeltas(deltas, description)
}

// EvolveDeltas is the typed variant of Evolve for callers that already
// hold validated node ids. Invalid ids are ignored.
func (e *Engine) EvolveDeltas(deltas map[nodestate.NodeID]float64, description string) phi.Result {
	generation := e.gen.Generation()

	// Gate activation for this cycle; thresholds are monotonic so flags
	// only ever turn on.
	flags := e.gen.ActiveFlags(generation)
	e.store.SetActive(flags)

	known := make(map[nodestate.NodeID]float64, len(deltas))
	for id, d := range deltas {
		if id.Valid() {
			known[id] = d
		}
	}

	adjusted := e.matrix.Apply(known, e.store.Values(), flags)
	for id, d := range adjusted {
		// Set clamps to [0, 1].
		_ = e.store.Set(id, e.store.Value(id)+d)
	}

	result := phi.Compute(e.store.Values(), flags, e.matrix, generation)

	e.gen.Advance(result.Phi, gating.EditRecord{
		Description: description,
		AppliedAt:   e.now().UTC(),
	})
	return result
}

// #endregion evolve

// #region queries

// Generation returns the current generation counter.
func (e *Engine) Generation() int {
	return e.gen.Generation()
}

// PhiTrajectory returns a copy of all recorded Φ values.
func (e *Engine) PhiTrajectory() []float64 {
	return e.gen.PhiTrajectory()
}

// EditHistory returns a copy of all recorded edit records.
func (e *Engine) EditHistory() []gating.EditRecord {
	return e.gen.EditHistory()
}

// ActiveNodes returns the node set active under the current generation's
// gating. Does not mutate state.
func (e *Engine) ActiveNodes() []nodestate.NodeID {
	return e.gen.ActiveSet(e.gen.Generation())
}

// Current recomputes a Φ result from present state without changing it.
// Calling it twice in a row yields identical results.
func (e *Engine) Current() phi.Result {
	generation := e.gen.Generation()
	return phi.Compute(e.store.Values(), e.gen.ActiveFlags(generation), e.matrix, generation)
}

// NodeValue returns a node value by wire name.
// Returns UnknownNodeError for names outside the fixed 27.
func (e *Engine) NodeValue(name string) (float64, error) {
	id, err := nodestate.ParseNode(name)
	if err != nil {
		return 0, err
	}
	return e.store.Get(id)
}

// SetNodeValue sets a node value by wire name, clamped to [0, 1].
// Returns UnknownNodeError for names outside the fixed 27.
func (e *Engine) SetNodeValue(name string, value float64) error {
	id, err := nodestate.ParseNode(name)
	if err != nil {
		return err
	}
	return e.store.Set(id, value)
}

// Store exposes the node store for read-only reporting.
func (e *Engine) Store() *nodestate.Store {
	return e.store
}

// #endregion queries
