package journal

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/kurohane/phenomenal-oracle/internal/nodestate"
	"github.com/kurohane/phenomenal-oracle/internal/phi"
)

func openTemp(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestSessionRoundtrip(t *testing.T) {
	j := openTemp(t)

	id, err := j.BeginSession("evening run")
	if err != nil {
		t.Fatalf("begin session: %v", err)
	}
	if id == "" {
		t.Fatal("empty session id")
	}

	sessions, err := j.Sessions(10)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if sessions[0].ID != id || sessions[0].Description != "evening run" {
		t.Fatalf("unexpected session: %+v", sessions[0])
	}
	if sessions[0].StartedAt.IsZero() {
		t.Fatal("session timestamp not persisted")
	}
}

func TestCycleRoundtrip(t *testing.T) {
	j := openTemp(t)

	id, err := j.BeginSession("roundtrip")
	if err != nil {
		t.Fatalf("begin session: %v", err)
	}

	var values [nodestate.NodeCount]float64
	var active [nodestate.NodeCount]bool
	for i := range values {
		values[i] = float64(i) / float64(nodestate.NodeCount)
		active[i] = i%2 == 0
	}

	rec := CycleRecord{
		SessionID:    id,
		Generation:   4,
		Phi:          0.731,
		Level:        string(phi.LevelAware),
		Axes:         phi.AxisScores{Existence: 0.5, Intrinsic: 0.4, Information: 0.3, Integration: 0.2, Exclusion: 0.6},
		Values:       values,
		Active:       active,
		StimulusJSON: `{"appearance_density":0.2}`,
		Description:  "fourth cycle",
	}
	if err := j.Record(rec); err != nil {
		t.Fatalf("record: %v", err)
	}

	got, err := j.Cycles(id, 100)
	if err != nil {
		t.Fatalf("cycles: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 cycle, got %d", len(got))
	}

	c := got[0]
	if c.Generation != 4 || c.Phi != 0.731 || c.Level != string(phi.LevelAware) {
		t.Fatalf("unexpected cycle: %+v", c)
	}
	if c.Axes != rec.Axes {
		t.Fatalf("axes mangled: %+v", c.Axes)
	}
	if c.Values != values {
		t.Fatal("node values mangled")
	}
	if c.Active != active {
		t.Fatal("active flags mangled")
	}
	if c.StimulusJSON != rec.StimulusJSON || c.Description != rec.Description {
		t.Fatalf("text columns mangled: %+v", c)
	}
	if c.CreatedAt.IsZero() {
		t.Fatal("created_at not persisted")
	}
}

func TestTrajectoryOrdered(t *testing.T) {
	j := openTemp(t)

	id, err := j.BeginSession("ordering")
	if err != nil {
		t.Fatalf("begin session: %v", err)
	}

	// record out of order; Trajectory must come back by generation
	for _, g := range []int{2, 0, 1} {
		rec := CycleRecord{SessionID: id, Generation: g, Phi: float64(g) * 0.1, Level: string(phi.LevelReactive)}
		if err := j.Record(rec); err != nil {
			t.Fatalf("record gen %d: %v", g, err)
		}
	}

	trajectory, err := j.Trajectory(id)
	if err != nil {
		t.Fatalf("trajectory: %v", err)
	}
	want := []float64{0, 0.1, 0.2}
	if len(trajectory) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(trajectory))
	}
	for i := range want {
		if math.Abs(trajectory[i]-want[i]) > 1e-9 {
			t.Fatalf("trajectory[%d] = %f, want %f", i, trajectory[i], want[i])
		}
	}
}

func TestMetricsFor(t *testing.T) {
	var values [nodestate.NodeCount]float64
	for _, n := range nodestate.DimAppearance.Nodes() {
		values[n] = 1.0
	}

	m := MetricsFor(CycleRecord{Generation: 7, Phi: 0.9, Values: values})

	if m.Generation != 7 {
		t.Fatalf("generation %d", m.Generation)
	}
	if m.ActiveNodes != 3 {
		t.Fatalf("expected 3 nodes above the presence floor, got %d", m.ActiveNodes)
	}
	if len(m.DominantDimensions) != 3 {
		t.Fatalf("expected 3 dominant dimensions, got %v", m.DominantDimensions)
	}
	if m.DominantDimensions[0] != "appearance" {
		t.Fatalf("expected appearance dominant, got %v", m.DominantDimensions)
	}
	want := 0.9 * 3 / float64(nodestate.NodeCount)
	if math.Abs(m.VisualImpact-want) > 1e-9 {
		t.Fatalf("visual impact %f, want %f", m.VisualImpact, want)
	}
}

func TestTrend(t *testing.T) {
	cases := []struct {
		name       string
		trajectory []float64
		want       string
	}{
		{"too short", []float64{0.1, 0.9}, "stable"},
		{"flat", []float64{0.5, 0.5, 0.5, 0.5, 0.5}, "stable"},
		{"rising", []float64{0.1, 0.3, 0.5, 0.7, 0.9}, "diverging"},
		{"falling", []float64{0.9, 0.7, 0.5, 0.3, 0.1}, "converging"},
		{"only last five count", []float64{2.0, 2.0, 2.0, 0.5, 0.5, 0.5, 0.5, 0.5}, "stable"},
	}
	for _, tc := range cases {
		if got := Trend(tc.trajectory); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}
