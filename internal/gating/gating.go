// Package gating tracks the monotonic generation counter, the Φ
// trajectory, the edit history, and which node subsets are active at a
// given generation.
package gating

import (
	"github.com/kurohane/phenomenal-oracle/internal/nodestate"
)

// #region controller

// Controller owns the generation counter and its append-only histories.
// The counter advances by exactly 1 per completed evolution cycle and
// never decreases. Not safe for concurrent use.
type Controller struct {
	generation    int
	phiTrajectory []float64
	editHistory   []EditRecord
	unlocks       []Unlock
}

// NewController starts a controller at generation 0 with empty histories
// and the given unlock schedule. Pass DefaultUnlocks() for the standard
// schedule.
func NewController(unlocks []Unlock) *Controller {
	return &Controller{unlocks: unlocks}
}

// #endregion controller

// #region queries

// Generation returns the current generation counter.
func (c *Controller) Generation() int {
	return c.generation
}

// PhiTrajectory returns a copy of the recorded Φ values, one per completed
// cycle, indexed by the generation they were computed at.
func (c *Controller) PhiTrajectory() []float64 {
	out := make([]float64, len(c.phiTrajectory))
	copy(out, c.phiTrajectory)
	return out
}

// EditHistory returns a copy of the recorded edit descriptions.
func (c *Controller) EditHistory() []EditRecord {
	out := make([]EditRecord, len(c.editHistory))
	copy(out, c.editHistory)
	return out
}

// #endregion queries

// #region active-set

// ActiveFlags returns the activation flags for a given generation: the
// union of every unlock whose threshold the generation has reached.
// Pure function of the counter and the fixed schedule.
func (c *Controller) ActiveFlags(generation int) [nodestate.NodeCount]bool {
	var flags [nodestate.NodeCount]bool
	for _, u := range c.unlocks {
		if generation < u.Threshold {
			continue
		}
		for _, n := range u.Nodes {
			if n.Valid() {
				flags[n] = true
			}
		}
	}
	return flags
}

// ActiveSet returns the ids of the nodes active at a given generation.
func (c *Controller) ActiveSet(generation int) []nodestate.NodeID {
	flags := c.ActiveFlags(generation)
	out := make([]nodestate.NodeID, 0, nodestate.NodeCount)
	for i, on := range flags {
		if on {
			out = append(out, nodestate.NodeID(i))
		}
	}
	return out
}

// UnlockedSubsets returns the names of the subsets unlocked at a
// generation, in threshold order.
func (c *Controller) UnlockedSubsets(generation int) []string {
	var names []string
	for _, u := range c.unlocks {
		if generation >= u.Threshold {
			names = append(names, u.Name)
		}
	}
	return names
}

// #endregion active-set

// #region advance

// Advance records one completed cycle: appends phi to the trajectory,
// appends the edit record tagged with the pre-increment generation, then
// increments the counter by exactly 1.
func (c *Controller) Advance(phi float64, rec EditRecord) {
	rec.Generation = c.generation
	c.phiTrajectory = append(c.phiTrajectory, phi)
	c.editHistory = append(c.editHistory, rec)
	c.generation++
}

// #endregion advance
