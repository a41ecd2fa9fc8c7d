package check

import "github.com/kurohane/phenomenal-oracle/internal/phi"

// #region config

// Config holds bounds for invariant validation.
type Config struct {
	PhiMax         float64 // upper bound on Φ
	MinActiveNodes int     // size of the always-active core subset
}

// DefaultConfig returns bounds matching the standard schedule.
func DefaultConfig() Config {
	return Config{
		PhiMax:         phi.PhiMax,
		MinActiveNodes: 9,
	}
}

// #endregion config

// #region metric

// Metric captures a single validation check result.
type Metric struct {
	Name  string
	Value float64
	Pass  bool
}

// #endregion metric

// #region result

// Result is the output of one validation pass.
type Result struct {
	Passed  bool
	Metrics []Metric
	Reason  string
}

// #endregion result
