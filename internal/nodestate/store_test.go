package nodestate

import (
	"errors"
	"testing"
)

func TestFixedSchema(t *testing.T) {
	if len(AllNodes()) != NodeCount {
		t.Fatalf("expected %d nodes, got %d", NodeCount, len(AllNodes()))
	}
	if len(AllDimensions()) != DimensionCount {
		t.Fatalf("expected %d dimensions, got %d", DimensionCount, len(AllDimensions()))
	}

	// Union of all dimensions' node lists is exactly the 27 distinct ids.
	seen := make(map[NodeID]bool)
	for _, d := range AllDimensions() {
		for _, n := range d.Nodes() {
			if seen[n] {
				t.Fatalf("node %s owned by more than one dimension", n)
			}
			seen[n] = true
			if n.Dimension() != d {
				t.Fatalf("node %s reports dimension %s, expected %s", n, n.Dimension(), d)
			}
		}
	}
	if len(seen) != NodeCount {
		t.Fatalf("dimension union covers %d nodes, expected %d", len(seen), NodeCount)
	}
}

func TestParseNodeRoundTrip(t *testing.T) {
	for _, n := range AllNodes() {
		got, err := ParseNode(n.String())
		if err != nil {
			t.Fatalf("parse %s: %v", n, err)
		}
		if got != n {
			t.Fatalf("parse %s: got %d, expected %d", n, got, n)
		}
	}
}

func TestParseNodeUnknown(t *testing.T) {
	_, err := ParseNode("appearance_sparkle")
	if err == nil {
		t.Fatal("expected error for unknown node name")
	}
	var unknownErr *UnknownNodeError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownNodeError, got %T", err)
	}
	if unknownErr.Name != "appearance_sparkle" {
		t.Fatalf("error carries %q", unknownErr.Name)
	}
}

func TestSetClampsToUnitRange(t *testing.T) {
	s := NewStore()

	cases := []struct {
		in   float64
		want float64
	}{
		{0.5, 0.5},
		{-0.3, 0},
		{1.7, 1},
		{0, 0},
		{1, 1},
	}
	for _, c := range cases {
		if err := s.Set(AppearanceDensity, c.in); err != nil {
			t.Fatalf("set %f: %v", c.in, err)
		}
		got, err := s.Get(AppearanceDensity)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != c.want {
			t.Fatalf("set %f: got %f, expected %f", c.in, got, c.want)
		}
	}
}

func TestGetUnknownID(t *testing.T) {
	s := NewStore()
	if _, err := s.Get(NodeID(27)); err == nil {
		t.Fatal("expected error for id 27")
	}
	if err := s.Set(NodeID(-1), 0.5); err == nil {
		t.Fatal("expected error for id -1")
	}
}

func TestActiveNodes(t *testing.T) {
	s := NewStore()
	if len(s.ActiveNodes()) != 0 {
		t.Fatal("fresh store should have no active nodes")
	}

	var flags [NodeCount]bool
	flags[AppearanceDensity] = true
	flags[BeingAgency] = true
	s.SetActive(flags)

	active := s.ActiveNodes()
	if len(active) != 2 {
		t.Fatalf("expected 2 active nodes, got %d", len(active))
	}
	if !s.IsActive(AppearanceDensity) || !s.IsActive(BeingAgency) {
		t.Fatal("expected flagged nodes to report active")
	}
	if s.IsActive(TemporalMotion) {
		t.Fatal("unflagged node reports active")
	}
}

func TestDimensionMean(t *testing.T) {
	s := NewStore()
	s.Set(AppearanceDensity, 0.3)
	s.Set(AppearanceLuminosity, 0.6)
	s.Set(AppearanceChromaticity, 0.9)

	got := s.DimensionMean(DimAppearance)
	if diff := got - 0.6; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected mean 0.6, got %f", got)
	}
	if s.DimensionMean(DimCertainty) != 0 {
		t.Fatal("untouched dimension should have zero mean")
	}
}

func TestPriorityWeightsPositive(t *testing.T) {
	for _, d := range AllDimensions() {
		if d.PriorityWeight() <= 0 {
			t.Fatalf("dimension %s has non-positive priority weight", d)
		}
	}
}
