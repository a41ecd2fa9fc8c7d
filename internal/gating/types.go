package gating

import (
	"time"

	"github.com/kurohane/phenomenal-oracle/internal/nodestate"
)

// #region edit-record

// EditRecord describes one externally-applied stimulus, tagged with the
// generation it was applied at (before the increment).
type EditRecord struct {
	Generation  int
	Description string
	AppliedAt   time.Time
}

// #endregion edit-record

// #region unlock

// Unlock names a node subset that becomes eligible for activation once the
// generation counter reaches its threshold. Activation is monotonic: a
// crossed threshold never reverts.
type Unlock struct {
	Name      string
	Threshold int
	Nodes     []nodestate.NodeID
}

// DefaultUnlocks returns the standard activation schedule, ordered by
// threshold. The core perceptual set is active from generation 0;
// meta-cognition, temporal integration, and complex synthesis unlock as
// the system accumulates editing history.
func DefaultUnlocks() []Unlock {
	return []Unlock{
		{
			Name:      "core",
			Threshold: 0,
			Nodes: []nodestate.NodeID{
				nodestate.AppearanceDensity,
				nodestate.AppearanceLuminosity,
				nodestate.AppearanceChromaticity,
				nodestate.IntentionalFocus,
				nodestate.IntentionalHorizon,
				nodestate.IntentionalDepth,
				nodestate.OntologicalPresence,
				nodestate.SemanticEntities,
				nodestate.CertaintyClarity,
			},
		},
		{
			Name:      "meta_cognitive",
			Threshold: 3,
			Nodes: []nodestate.NodeID{
				nodestate.CertaintyMultiplicity,
				nodestate.ConceptualSymbolic,
				nodestate.BeingAgency,
			},
		},
		{
			Name:      "temporal_integration",
			Threshold: 5,
			Nodes: []nodestate.NodeID{
				nodestate.TemporalDuration,
				nodestate.TemporalMotion,
				nodestate.SemanticRelations,
			},
		},
		{
			Name:      "complex_synthesis",
			Threshold: 10,
			Nodes: []nodestate.NodeID{
				nodestate.TemporalDecay,
				nodestate.SynestheticTemperature,
				nodestate.SynestheticWeight,
				nodestate.SynestheticTexture,
				nodestate.OntologicalBoundary,
				nodestate.OntologicalPlurality,
				nodestate.SemanticActions,
				nodestate.ConceptualCultural,
				nodestate.ConceptualFunctional,
				nodestate.BeingAnimacy,
				nodestate.BeingArtificiality,
				nodestate.CertaintyAmbiguity,
			},
		},
	}
}

// #endregion unlock
