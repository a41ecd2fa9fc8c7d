// Package coupling holds the pairwise influence weights between nodes and
// applies them to incoming stimulus deltas. The matrix is immutable after
// construction; evolution only reads it.
package coupling

import (
	"github.com/kurohane/phenomenal-oracle/internal/nodestate"
)

// #region link

// Link is one directed influence weight used to construct a Matrix.
type Link struct {
	From   nodestate.NodeID
	To     nodestate.NodeID
	Weight float64 // clamped to [-1, 1] at construction
}

// #endregion link

// #region matrix

// Matrix maps (source, target) node pairs to signed weights. Most pairs
// are zero. A stimulus to one node propagates fractionally to coupled
// nodes in the same cycle via Apply.
type Matrix struct {
	weights  [nodestate.NodeCount][nodestate.NodeCount]float64
	coupling float64 // small positive constant damping propagation
}

// NewMatrix builds an immutable matrix from explicit links. Weights are
// clamped to [-1, 1]; links addressing invalid ids are dropped. The
// coupling constant is clamped to [0, 1] to prevent runaway amplification.
func NewMatrix(links []Link, couplingConstant float64) *Matrix {
	m := &Matrix{coupling: clamp(couplingConstant, 0, 1)}
	for _, l := range links {
		if !l.From.Valid() || !l.To.Valid() {
			continue
		}
		m.weights[l.From][l.To] = clamp(l.Weight, -1, 1)
	}
	return m
}

// DefaultCouplingConstant damps cross-node propagation per cycle.
const DefaultCouplingConstant = 0.1

// DefaultMatrix returns the standard phenomenological connectivity with
// the default coupling constant.
func DefaultMatrix() *Matrix {
	return NewMatrix(DefaultLinks(), DefaultCouplingConstant)
}

// DefaultLinks returns the standard phenomenological connectivity: nodes
// within a dimension reinforce each other at 0.8, appearance nodes reach
// every other dimension at 0.3, and intentional nodes reach the semantic
// and conceptual layers at 0.5.
func DefaultLinks() []Link {
	var links []Link

	for _, d := range nodestate.AllDimensions() {
		nodes := d.Nodes()
		for _, a := range nodes {
			for _, b := range nodes {
				if a != b {
					links = append(links, Link{From: a, To: b, Weight: 0.8})
				}
			}
		}
	}

	for _, a := range nodestate.DimAppearance.Nodes() {
		for _, b := range nodestate.AllNodes() {
			if b.Dimension() != nodestate.DimAppearance {
				links = append(links, Link{From: a, To: b, Weight: 0.3})
			}
		}
	}

	for _, a := range nodestate.DimIntentional.Nodes() {
		for _, d := range []nodestate.Dimension{nodestate.DimSemantic, nodestate.DimConceptual} {
			for _, b := range d.Nodes() {
				links = append(links, Link{From: a, To: b, Weight: 0.5})
			}
		}
	}

	return links
}

// #endregion matrix

// #region weight

// Weight returns the influence of node a on node b. Unspecified or
// invalid pairs return 0; Weight never fails.
func (m *Matrix) Weight(a, b nodestate.NodeID) float64 {
	if !a.Valid() || !b.Valid() {
		return 0
	}
	return m.weights[a][b]
}

// CouplingConstant returns the propagation damping factor.
func (m *Matrix) CouplingConstant() float64 {
	return m.coupling
}

// #endregion weight

// #region apply

// Apply adjusts raw stimulus deltas with cross-node propagation. For each
// active target n the adjusted delta is:
//
//	base[n] + Σ over active m≠n of Weight(m, n) · values[m] · coupling
//
// Inactive nodes receive no entry. Targets with a zero adjusted delta are
// still reported when they appeared in base, so callers can distinguish
// "collapsed to zero" from "never touched".
func (m *Matrix) Apply(
	base map[nodestate.NodeID]float64,
	values [nodestate.NodeCount]float64,
	active [nodestate.NodeCount]bool,
) map[nodestate.NodeID]float64 {
	adjusted := make(map[nodestate.NodeID]float64, len(base))

	for i := 0; i < nodestate.NodeCount; i++ {
		n := nodestate.NodeID(i)
		if !active[n] {
			continue
		}

		delta, stimulated := base[n]
		var prop float64
		for j := 0; j < nodestate.NodeCount; j++ {
			src := nodestate.NodeID(j)
			if src == n || !active[src] {
				continue
			}
			w := m.weights[src][n]
			if w == 0 {
				continue
			}
			prop += w * values[src] * m.coupling
		}

		if stimulated || prop != 0 {
			adjusted[n] = delta + prop
		}
	}
	return adjusted
}

// #endregion apply

// #region helpers

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// #endregion helpers
