// Command fixture-export turns a journaled session into a replay fixture:
// the recorded stimuli become the cycle list, and the recorded Φ values
// become the expected results with a small tolerance band.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/kurohane/phenomenal-oracle/internal/coupling"
	"github.com/kurohane/phenomenal-oracle/internal/journal"
	"github.com/kurohane/phenomenal-oracle/internal/replay"
)

// phiTolerance widens the expected Φ band so replays on slightly
// different float paths still pass.
const phiTolerance = 0.05

// #region main

func main() {
	dbPath := flag.String("db", "", "path to oracle journal database")
	sessionID := flag.String("session", "", "session id (default: most recent)")
	outPath := flag.String("out", "", "output fixture path (default: stdout)")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/oracle.db [--session id] [--out fixture.json]")
		os.Exit(2)
	}

	jnl, err := journal.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open journal: %v\n", err)
		os.Exit(1)
	}
	defer jnl.Close()

	id := *sessionID
	if id == "" {
		sessions, err := jnl.Sessions(1)
		if err != nil || len(sessions) == 0 {
			fmt.Fprintln(os.Stderr, "journal has no sessions")
			os.Exit(1)
		}
		id = sessions[0].ID
	}

	fixture, err := export(jnl, id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "export: %v\n", err)
		os.Exit(1)
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "create %s: %v\n", *outPath, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fixture); err != nil {
		fmt.Fprintf(os.Stderr, "write fixture: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

func export(jnl *journal.Journal, sessionID string) (*replay.Fixture, error) {
	cycles, err := jnl.Cycles(sessionID, 10000)
	if err != nil {
		return nil, err
	}
	if len(cycles) == 0 {
		return nil, fmt.Errorf("session %s has no cycles", sessionID)
	}

	fixture := &replay.Fixture{
		Description: fmt.Sprintf("exported from session %s", sessionID),
		Config: replay.FixtureConfig{
			CouplingConstant: coupling.DefaultCouplingConstant,
		},
	}

	for _, c := range cycles {
		var stim map[string]float64
		if c.StimulusJSON != "" {
			if err := json.Unmarshal([]byte(c.StimulusJSON), &stim); err != nil {
				return nil, fmt.Errorf("cycle %d stimulus: %w", c.Generation, err)
			}
		}
		fixture.Cycles = append(fixture.Cycles, replay.FixtureCycle{
			Stimulus:    stim,
			Description: c.Description,
		})
		minPhi := c.Phi - phiTolerance
		if minPhi < 0 {
			minPhi = 0
		}
		fixture.Expected = append(fixture.Expected, replay.FixtureExpected{
			Generation: c.Generation,
			Level:      c.Level,
			MinPhi:     minPhi,
			MaxPhi:     c.Phi + phiTolerance,
		})
	}
	return fixture, nil
}

// #endregion export
