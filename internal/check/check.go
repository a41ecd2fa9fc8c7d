// Package check runs lightweight post-cycle validation of the core's
// invariants: node range, Φ bounds, trajectory bookkeeping, and
// activation monotonicity.
package check

import (
	"fmt"

	"github.com/kurohane/phenomenal-oracle/internal/engine"
)

// #region checker

// Checker validates an engine's observable state against the core
// invariants. All checks are read-only.
type Checker struct {
	config Config
}

// NewChecker creates a checker with the given configuration.
func NewChecker(config Config) *Checker {
	return &Checker{config: config}
}

// Run validates the engine's present state. Returns pass/fail with
// per-check metrics.
func (c *Checker) Run(e *engine.Engine) Result {
	var metrics []Metric
	passed := true
	var failReasons []string

	record := func(name string, value float64, ok bool, reason string) {
		metrics = append(metrics, Metric{Name: name, Value: value, Pass: ok})
		if !ok {
			passed = false
			failReasons = append(failReasons, reason)
		}
	}

	// 1. Node range: every value stays in [0, 1]
	var worst float64
	for _, v := range e.Store().Values() {
		if v < 0 && -v > worst {
			worst = -v
		}
		if v > 1 && v-1 > worst {
			worst = v - 1
		}
	}
	record("node_range", worst, worst == 0,
		fmt.Sprintf("node value escaped [0,1] by %.6f", worst))

	// 2. Φ bounds over the whole trajectory
	trajectory := e.PhiTrajectory()
	var worstPhi float64
	for _, p := range trajectory {
		if p < 0 && -p > worstPhi {
			worstPhi = -p
		}
		if p > c.config.PhiMax && p-c.config.PhiMax > worstPhi {
			worstPhi = p - c.config.PhiMax
		}
	}
	record("phi_bounds", worstPhi, worstPhi == 0,
		fmt.Sprintf("phi escaped [0,%.1f] by %.6f", c.config.PhiMax, worstPhi))

	// 3. Generation bookkeeping: one trajectory entry and one history
	// entry per completed cycle
	gen := e.Generation()
	record("trajectory_length", float64(len(trajectory)), len(trajectory) == gen,
		fmt.Sprintf("trajectory has %d entries for generation %d", len(trajectory), gen))
	history := e.EditHistory()
	record("history_length", float64(len(history)), len(history) == gen,
		fmt.Sprintf("history has %d entries for generation %d", len(history), gen))

	// 4. Edit records tagged with strictly increasing generations
	tagged := true
	for i, rec := range history {
		if rec.Generation != i {
			tagged = false
			break
		}
	}
	record("history_tagging", boolMetric(tagged), tagged,
		"edit history generation tags out of order")

	// 5. Active set never shrinks as generations accumulate
	active := len(e.ActiveNodes())
	record("active_count", float64(active), active >= c.config.MinActiveNodes,
		fmt.Sprintf("active set %d below core size %d", active, c.config.MinActiveNodes))

	reason := "all checks passed"
	if !passed {
		reason = fmt.Sprintf("check failed: %s", failReasons[0])
		if len(failReasons) > 1 {
			reason = fmt.Sprintf("check failed: %d checks: %s", len(failReasons), failReasons[0])
		}
	}

	return Result{Passed: passed, Metrics: metrics, Reason: reason}
}

// #endregion checker

// #region helpers

func boolMetric(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// #endregion helpers
