package check

import (
	"testing"

	"github.com/kurohane/phenomenal-oracle/internal/engine"
)

func TestFreshEnginePasses(t *testing.T) {
	result := NewChecker(DefaultConfig()).Run(engine.NewDefault())
	if !result.Passed {
		t.Fatalf("fresh engine failed: %s", result.Reason)
	}
	if result.Reason != "all checks passed" {
		t.Fatalf("unexpected reason: %q", result.Reason)
	}
	if len(result.Metrics) != 6 {
		t.Fatalf("expected 6 metrics, got %d", len(result.Metrics))
	}
	for _, m := range result.Metrics {
		if !m.Pass {
			t.Fatalf("metric %s failed on a fresh engine", m.Name)
		}
	}
}

func TestEvolvedEnginePasses(t *testing.T) {
	eng := engine.NewDefault()
	for i := 0; i < 15; i++ {
		eng.Evolve(map[string]float64{
			"appearance_density": 0.8,
			"intentional_focus":  -0.5,
			"certainty_clarity":  0.3,
		}, "soak")
	}

	result := NewChecker(DefaultConfig()).Run(eng)
	if !result.Passed {
		t.Fatalf("evolved engine failed: %s", result.Reason)
	}
}

func TestMinActiveNodesEnforced(t *testing.T) {
	config := DefaultConfig()
	config.MinActiveNodes = 10 // fresh engine only has the 9-node core

	result := NewChecker(config).Run(engine.NewDefault())
	if result.Passed {
		t.Fatal("expected active_count to fail")
	}

	found := false
	for _, m := range result.Metrics {
		if m.Name == "active_count" {
			found = true
			if m.Pass {
				t.Fatal("active_count marked passing")
			}
			if m.Value != 9 {
				t.Fatalf("active_count value %f, want 9", m.Value)
			}
		}
	}
	if !found {
		t.Fatal("active_count metric missing")
	}
	if result.Reason == "all checks passed" {
		t.Fatal("reason not updated on failure")
	}
}
