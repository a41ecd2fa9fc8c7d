// Package phi computes the artistic Φ scalar from node state. This is an
// explicitly simplified aesthetic heuristic inspired by Integrated
// Information Theory, not Tononi's formal Φ.
package phi

import (
	"math"

	"github.com/kurohane/phenomenal-oracle/internal/coupling"
	"github.com/kurohane/phenomenal-oracle/internal/nodestate"
)

// #region constants

const (
	// PhiMax is the theoretical ceiling of the artistic Φ.
	PhiMax = 2.0

	// temporalBonusCap limits how much accumulated history alone can
	// raise Φ.
	temporalBonusCap  = 0.3
	temporalBonusRate = 0.05

	// crossWeight scales cross-dimension integration inside the tanh.
	crossWeight = 0.5

	// activationFloor is the value above which a node counts as present
	// for the existence axis.
	activationFloor = 0.1
)

// #endregion constants

// #region compute

// Compute aggregates node state into a Φ value, level, and axis scores.
// Pure: calling it any number of times for the same inputs yields the
// same result and mutates nothing.
func Compute(
	values [nodestate.NodeCount]float64,
	active [nodestate.NodeCount]bool,
	matrix *coupling.Matrix,
	generation int,
) Result {
	base := baseActivation(values, active)
	cross := crossDimensionIntegration(values, active, matrix)
	temporal := math.Min(temporalBonusCap, float64(generation)*temporalBonusRate)

	phi := math.Tanh(base+crossWeight*cross) + temporal
	if phi < 0 {
		phi = 0
	}
	if phi > PhiMax {
		phi = PhiMax
	}

	return Result{
		Phi:   phi,
		Level: Classify(phi),
		Axes: AxisScores{
			Existence:   existence(values, active),
			Intrinsic:   intrinsic(values),
			Information: information(values, active),
			Integration: cross,
			Exclusion:   exclusion(values),
		},
	}
}

// #endregion compute

// #region base-activation

// baseActivation is the arithmetic mean of active node values. An empty
// active set yields 0, not a division failure.
func baseActivation(values [nodestate.NodeCount]float64, active [nodestate.NodeCount]bool) float64 {
	var sum float64
	var count int
	for i, on := range active {
		if on {
			sum += values[i]
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// #endregion base-activation

// #region cross-integration

// crossDimensionIntegration measures co-activation of coupled nodes in
// different dimensions: matrix-weighted pairwise value products over
// active cross-dimension pairs, normalized by the total pair weight so the
// score stays in [0, 1]. The formula is an artistic approximation; the
// contract is only its boundedness.
func crossDimensionIntegration(
	values [nodestate.NodeCount]float64,
	active [nodestate.NodeCount]bool,
	matrix *coupling.Matrix,
) float64 {
	var weighted, total float64
	for i := 0; i < nodestate.NodeCount; i++ {
		a := nodestate.NodeID(i)
		if !active[a] {
			continue
		}
		for j := i + 1; j < nodestate.NodeCount; j++ {
			b := nodestate.NodeID(j)
			if !active[b] || a.Dimension() == b.Dimension() {
				continue
			}
			w := (math.Abs(matrix.Weight(a, b)) + math.Abs(matrix.Weight(b, a))) / 2
			if w == 0 {
				continue
			}
			weighted += w * values[a] * values[b]
			total += w
		}
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}

// #endregion cross-integration

// #region axes

// existence is the share of active nodes above the activation floor.
func existence(values [nodestate.NodeCount]float64, active [nodestate.NodeCount]bool) float64 {
	var present, count int
	for i, on := range active {
		if !on {
			continue
		}
		count++
		if values[i] > activationFloor {
			present++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(present) / float64(count)
}

// selfReferentialNodes carry the intrinsic-ness axis: focus, agency, and
// clarity are the system's self-directed registers.
var selfReferentialNodes = []nodestate.NodeID{
	nodestate.IntentionalFocus,
	nodestate.BeingAgency,
	nodestate.CertaintyClarity,
}

func intrinsic(values [nodestate.NodeCount]float64) float64 {
	var sum float64
	for _, n := range selfReferentialNodes {
		sum += values[n]
	}
	return sum / float64(len(selfReferentialNodes))
}

// information measures differentiation of the active values as their
// standard deviation, rescaled so a maximally split population scores 1.
func information(values [nodestate.NodeCount]float64, active [nodestate.NodeCount]bool) float64 {
	var sum float64
	var count int
	for i, on := range active {
		if on {
			sum += values[i]
			count++
		}
	}
	if count == 0 {
		return 0
	}
	mean := sum / float64(count)
	var variance float64
	for i, on := range active {
		if on {
			d := values[i] - mean
			variance += d * d
		}
	}
	std := math.Sqrt(variance / float64(count))
	// values in [0,1] bound std by 0.5
	score := std * 2
	if score > 1 {
		score = 1
	}
	return score
}

// exclusion scores the dominant dimension: the maximum priority-weighted
// dimension mean, normalized by the largest priority weight.
func exclusion(values [nodestate.NodeCount]float64) float64 {
	var maxWeight float64
	for _, d := range nodestate.AllDimensions() {
		if w := d.PriorityWeight(); w > maxWeight {
			maxWeight = w
		}
	}
	var best float64
	for _, d := range nodestate.AllDimensions() {
		var sum float64
		for _, n := range d.Nodes() {
			sum += values[n]
		}
		mean := sum / 3
		score := mean * d.PriorityWeight() / maxWeight
		if score > best {
			best = score
		}
	}
	return best
}

// #endregion axes
