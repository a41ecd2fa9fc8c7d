package journal

import (
	"time"

	"github.com/kurohane/phenomenal-oracle/internal/nodestate"
	"github.com/kurohane/phenomenal-oracle/internal/phi"
)

// #region session

// Session groups the cycles of one evolution run.
type Session struct {
	ID          string
	Description string
	StartedAt   time.Time
}

// #endregion session

// #region cycle-record

// CycleRecord is one journaled evolution cycle: the Φ result plus the
// full node snapshot after the update.
type CycleRecord struct {
	SessionID    string
	Generation   int
	Phi          float64
	Level        string
	Axes         phi.AxisScores
	Values       [nodestate.NodeCount]float64
	Active       [nodestate.NodeCount]bool
	StimulusJSON string
	Description  string
	CreatedAt    time.Time
}

// #endregion cycle-record
