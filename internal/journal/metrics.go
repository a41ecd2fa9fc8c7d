package journal

import (
	"math"
	"sort"

	"github.com/kurohane/phenomenal-oracle/internal/nodestate"
)

// #region generation-metrics

// GenerationMetrics summarize one journaled cycle for reporting.
type GenerationMetrics struct {
	Generation         int      `json:"generation"`
	Phi                float64  `json:"phi"`
	ActiveNodes        int      `json:"active_nodes"`
	DominantDimensions []string `json:"dominant_dimensions"`
	VisualImpact       float64  `json:"visual_impact"`
}

// presenceFloor is the value above which a node counts toward the active
// node tally in reporting.
const presenceFloor = 0.3

// MetricsFor derives reporting metrics from a cycle record: how many
// nodes carry real activation, the three strongest dimensions weighted by
// priority, and a visual-impact estimate of Φ scaled by coverage.
func MetricsFor(rec CycleRecord) GenerationMetrics {
	var active int
	for _, v := range rec.Values {
		if v > presenceFloor {
			active++
		}
	}

	type dimScore struct {
		name  string
		score float64
	}
	scores := make([]dimScore, 0, nodestate.DimensionCount)
	for _, d := range nodestate.AllDimensions() {
		var sum float64
		for _, n := range d.Nodes() {
			sum += rec.Values[n]
		}
		scores = append(scores, dimScore{
			name:  d.String(),
			score: (sum / 3) * d.PriorityWeight(),
		})
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

	dominant := make([]string, 0, 3)
	for _, s := range scores[:3] {
		dominant = append(dominant, s.name)
	}

	return GenerationMetrics{
		Generation:         rec.Generation,
		Phi:                rec.Phi,
		ActiveNodes:        active,
		DominantDimensions: dominant,
		VisualImpact:       rec.Phi * float64(active) / float64(nodestate.NodeCount),
	}
}

// #endregion generation-metrics

// #region trend

// Trend classifies the recent Φ trajectory as "stable", "converging"
// (falling), or "diverging" (rising), from the variability and slope of
// the last 5 generations.
func Trend(trajectory []float64) string {
	if len(trajectory) < 3 {
		return "stable"
	}
	recent := trajectory
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}

	var sum float64
	for _, p := range recent {
		sum += p
	}
	mean := sum / float64(len(recent))

	var variance float64
	for _, p := range recent {
		d := p - mean
		variance += d * d
	}
	std := math.Sqrt(variance / float64(len(recent)))

	// least-squares slope over generation index
	n := float64(len(recent))
	var sumX, sumXY, sumXX float64
	for i, p := range recent {
		x := float64(i)
		sumX += x
		sumXY += x * p
		sumXX += x * x
	}
	meanX := sumX / n
	denom := sumXX - n*meanX*meanX
	var slope float64
	if denom != 0 {
		slope = (sumXY - n*meanX*mean) / denom
	}

	switch {
	case std < 0.05:
		return "stable"
	case slope > 0.02:
		return "diverging"
	case slope < -0.02:
		return "converging"
	default:
		return "stable"
	}
}

// #endregion trend
