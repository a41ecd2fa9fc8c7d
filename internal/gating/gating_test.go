package gating

import (
	"testing"
	"time"

	"github.com/kurohane/phenomenal-oracle/internal/nodestate"
)

func TestDefaultUnlocksPartitionNodes(t *testing.T) {
	unlocks := DefaultUnlocks()
	seen := make(map[nodestate.NodeID]bool)
	for _, u := range unlocks {
		for _, n := range u.Nodes {
			if seen[n] {
				t.Fatalf("node %s appears in more than one unlock", n)
			}
			seen[n] = true
		}
	}
	if len(seen) != nodestate.NodeCount {
		t.Fatalf("unlocks cover %d nodes, expected %d", len(seen), nodestate.NodeCount)
	}
}

func TestActiveSetGrowsWithGeneration(t *testing.T) {
	c := NewController(DefaultUnlocks())

	cases := []struct {
		generation int
		count      int
	}{
		{0, 9},
		{1, 9},
		{2, 9},
		{3, 12},
		{4, 12},
		{5, 15},
		{9, 15},
		{10, 27},
		{100, 27},
	}
	for _, tc := range cases {
		got := len(c.ActiveSet(tc.generation))
		if got != tc.count {
			t.Fatalf("generation %d: %d active nodes, expected %d", tc.generation, got, tc.count)
		}
	}
}

func TestActivationMonotonic(t *testing.T) {
	c := NewController(DefaultUnlocks())
	prev := c.ActiveFlags(0)
	for gen := 1; gen <= 15; gen++ {
		flags := c.ActiveFlags(gen)
		for i := range prev {
			if prev[i] && !flags[i] {
				t.Fatalf("node %s deactivated at generation %d", nodestate.NodeID(i), gen)
			}
		}
		prev = flags
	}
}

func TestMetaCognitiveUnlockAtThree(t *testing.T) {
	c := NewController(DefaultUnlocks())

	before := c.ActiveFlags(2)
	if before[nodestate.CertaintyMultiplicity] {
		t.Fatal("meta-cognitive node active before generation 3")
	}
	after := c.ActiveFlags(3)
	for _, n := range []nodestate.NodeID{
		nodestate.CertaintyMultiplicity,
		nodestate.ConceptualSymbolic,
		nodestate.BeingAgency,
	} {
		if !after[n] {
			t.Fatalf("meta-cognitive node %s inactive at generation 3", n)
		}
	}
}

func TestAdvance(t *testing.T) {
	c := NewController(DefaultUnlocks())
	if c.Generation() != 0 {
		t.Fatalf("fresh controller at generation %d", c.Generation())
	}

	c.Advance(0.42, EditRecord{Description: "first edit", AppliedAt: time.Now()})
	c.Advance(0.58, EditRecord{Description: "second edit", AppliedAt: time.Now()})

	if c.Generation() != 2 {
		t.Fatalf("expected generation 2, got %d", c.Generation())
	}

	trajectory := c.PhiTrajectory()
	if len(trajectory) != 2 || trajectory[0] != 0.42 || trajectory[1] != 0.58 {
		t.Fatalf("unexpected trajectory %v", trajectory)
	}

	history := c.EditHistory()
	if len(history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(history))
	}
	// records are tagged with the pre-increment generation
	if history[0].Generation != 0 || history[1].Generation != 1 {
		t.Fatalf("history tags: %d, %d", history[0].Generation, history[1].Generation)
	}
}

func TestHistoryCopiesAreIndependent(t *testing.T) {
	c := NewController(DefaultUnlocks())
	c.Advance(0.3, EditRecord{Description: "edit"})

	trajectory := c.PhiTrajectory()
	trajectory[0] = 99

	if c.PhiTrajectory()[0] != 0.3 {
		t.Fatal("mutating the returned trajectory leaked into the controller")
	}
}

func TestUnlockedSubsets(t *testing.T) {
	c := NewController(DefaultUnlocks())
	names := c.UnlockedSubsets(5)
	want := []string{"core", "meta_cognitive", "temporal_integration"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}
