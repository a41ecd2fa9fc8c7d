// Command inspect browses an oracle journal: sessions, per-cycle metrics,
// and the Φ trajectory trend. Read-only.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/kurohane/phenomenal-oracle/internal/journal"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to oracle journal database")
	sessionID := flag.String("session", "", "session id (default: most recent)")
	last := flag.Int("last", 50, "show at most N cycles")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/oracle.db [--session id] [--last N] [--json]")
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
		if err != nil {
			fmt.Fprintf(os.Stderr, "list sessions: %v\n", err)
			os.Exit(1)
		}
		if len(sessions) == 0 {
			fmt.Fprintln(os.Stderr, "journal has no sessions")
			os.Exit(1)
		}
		id = sessions[0].ID
	}

	if err := run(jnl, id, *last, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region report

type report struct {
	SessionID string                      `json:"session_id"`
	Trend     string                      `json:"trend"`
	Cycles    []journal.GenerationMetrics `json:"cycles"`
}

func run(jnl *journal.Journal, sessionID string, last int, jsonOut bool) error {
	cycles, err := jnl.Cycles(sessionID, last)
	if err != nil {
		return err
	}
	trajectory, err := jnl.Trajectory(sessionID)
	if err != nil {
		return err
	}

	rep := report{
		SessionID: sessionID,
		Trend:     journal.Trend(trajectory),
	}
	for _, c := range cycles {
		rep.Cycles = append(rep.Cycles, journal.MetricsFor(c))
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	fmt.Printf("session %s  (%d cycles, trend: %s)\n\n", sessionID, len(rep.Cycles), rep.Trend)
	fmt.Printf("%-5s %-8s %-7s %-8s %s\n", "gen", "phi", "active", "impact", "dominant dimensions")
	for _, m := range rep.Cycles {
		fmt.Printf("%-5d %-8.4f %-7d %-8.4f %s\n",
			m.Generation, m.Phi, m.ActiveNodes, m.VisualImpact,
			strings.Join(m.DominantDimensions, ", "))
	}
	return nil
}

// #endregion report
