package replay

import (
	"fmt"

	"github.com/kurohane/phenomenal-oracle/internal/check"
	"github.com/kurohane/phenomenal-oracle/internal/engine"
	"github.com/kurohane/phenomenal-oracle/internal/gating"
	"github.com/kurohane/phenomenal-oracle/internal/nodestate"
	"github.com/kurohane/phenomenal-oracle/internal/phi"
)

// #region outcome-types

// CycleOutcome records what one replayed generation produced and whether
// it matched the fixture's expectation.
type CycleOutcome struct {
	Generation int
	Phi        float64
	Level      phi.Level
	Pass       bool
	Reason     string
}

// RunResult is the outcome of replaying a full fixture.
type RunResult struct {
	Passed      bool
	Cycles      []CycleOutcome
	CheckResult check.Result
}

// #endregion outcome-types

// #region harness

// Run replays a fixture deterministically through a fresh engine and
// validates expectations plus the core invariants afterwards.
func Run(f *Fixture) (RunResult, error) {
	store := nodestate.NewStore()
	for name, v := range f.StartValues {
		id, err := nodestate.ParseNode(name)
		if err != nil {
			return RunResult{}, fmt.Errorf("fixture start value: %w", err)
		}
		if err := store.Set(id, v); err != nil {
			return RunResult{}, fmt.Errorf("fixture start value: %w", err)
		}
	}

	eng := engine.New(store, f.Matrix(), gating.NewController(gating.DefaultUnlocks()))

	expected := make(map[int]FixtureExpected, len(f.Expected))
	for _, exp := range f.Expected {
		expected[exp.Generation] = exp
	}

	result := RunResult{Passed: true}
	for i, cycle := range f.Cycles {
		res := eng.Evolve(cycle.Stimulus, cycle.Description)

		outcome := CycleOutcome{
			Generation: i,
			Phi:        res.Phi,
			Level:      res.Level,
			Pass:       true,
		}
		if exp, ok := expected[i]; ok {
			if exp.Level != "" && string(res.Level) != exp.Level {
				outcome.Pass = false
				outcome.Reason = fmt.Sprintf("level %s, expected %s", res.Level, exp.Level)
			}
			if res.Phi < exp.MinPhi {
				outcome.Pass = false
				outcome.Reason = fmt.Sprintf("phi %.4f below %.4f", res.Phi, exp.MinPhi)
			}
			if exp.MaxPhi > 0 && res.Phi > exp.MaxPhi {
				outcome.Pass = false
				outcome.Reason = fmt.Sprintf("phi %.4f above %.4f", res.Phi, exp.MaxPhi)
			}
		}
		if !outcome.Pass {
			result.Passed = false
		}
		result.Cycles = append(result.Cycles, outcome)
	}

	checker := check.NewChecker(check.DefaultConfig())
	result.CheckResult = checker.Run(eng)
	if !result.CheckResult.Passed {
		result.Passed = false
	}

	return result, nil
}

// #endregion harness
