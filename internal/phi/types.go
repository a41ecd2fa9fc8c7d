package phi

// #region level

// Level is one of the 5 ordered consciousness-level labels derived by
// thresholding Φ. These are aesthetic labels, not claims about sentience.
type Level string

const (
	LevelReactive       Level = "reactive"
	LevelAware          Level = "aware"
	LevelIntegrated     Level = "integrated"
	LevelTranscendent   Level = "transcendent"
	LevelTransformative Level = "transformative"
)

// Classify maps a Φ value to exactly one level. Boundaries are half-open
// on the lower bound: 0.5 is aware, 0.4999 is reactive.
func Classify(phi float64) Level {
	switch {
	case phi < 0.5:
		return LevelReactive
	case phi < 0.8:
		return LevelAware
	case phi < 1.1:
		return LevelIntegrated
	case phi < 1.4:
		return LevelTranscendent
	default:
		return LevelTransformative
	}
}

// #endregion level

// #region axis-scores

// AxisScores are heuristic [0,1] indicators named after the five IIT
// axioms. Each is computed independently from node state; none is a
// formal IIT quantity.
type AxisScores struct {
	Existence   float64 `json:"existence"`
	Intrinsic   float64 `json:"intrinsic"`
	Information float64 `json:"information"`
	Integration float64 `json:"integration"`
	Exclusion   float64 `json:"exclusion"`
}

// #endregion axis-scores

// #region result

// Result is the ephemeral output of one aggregation pass. It is derived
// from state, never stored back into it.
type Result struct {
	Phi   float64    `json:"phi"`
	Level Level      `json:"consciousness_level"`
	Axes  AxisScores `json:"axis_scores"`
}

// #endregion result
