package replay

import (
	"path/filepath"
	"testing"
)

func TestRunBasicFixture(t *testing.T) {
	f, err := LoadFixture(filepath.Join("testdata", "basic.json"))
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}

	result, err := Run(f)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !result.Passed {
		for _, c := range result.Cycles {
			if !c.Pass {
				t.Logf("generation %d: %s", c.Generation, c.Reason)
			}
		}
		t.Fatalf("fixture failed: %s", result.CheckResult.Reason)
	}
	if len(result.Cycles) != 2 {
		t.Fatalf("expected 2 cycle outcomes, got %d", len(result.Cycles))
	}
	for _, c := range result.Cycles {
		if c.Level != "reactive" {
			t.Fatalf("generation %d level %s, expected reactive", c.Generation, c.Level)
		}
	}
	if !result.CheckResult.Passed {
		t.Fatalf("invariant check failed: %s", result.CheckResult.Reason)
	}
}

func TestRunReportsExpectationMiss(t *testing.T) {
	f := &Fixture{
		Cycles: []FixtureCycle{
			{Stimulus: map[string]float64{"appearance_density": 0.2}},
		},
		Expected: []FixtureExpected{
			{Generation: 0, Level: "transformative", MinPhi: 1.9},
		},
	}

	result, err := Run(f)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Passed {
		t.Fatal("expected failure against an impossible expectation")
	}
	if result.Cycles[0].Pass || result.Cycles[0].Reason == "" {
		t.Fatalf("outcome not annotated: %+v", result.Cycles[0])
	}
}

func TestRunRejectsUnknownStartValue(t *testing.T) {
	f := &Fixture{
		StartValues: map[string]float64{"no_such_node": 0.5},
	}
	if _, err := Run(f); err == nil {
		t.Fatal("expected error for unknown start value node")
	}
}

func TestLoadFixtureMissingFile(t *testing.T) {
	if _, err := LoadFixture(filepath.Join("testdata", "absent.json")); err == nil {
		t.Fatal("expected error for missing fixture file")
	}
}

func TestMatrixDefaultsCouplingConstant(t *testing.T) {
	f := &Fixture{}
	m := f.Matrix()
	if m.CouplingConstant() != 0.1 {
		t.Fatalf("expected default coupling constant, got %f", m.CouplingConstant())
	}
}
