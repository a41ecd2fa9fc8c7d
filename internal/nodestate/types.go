package nodestate

import "fmt"

// #region node-id

// NodeID identifies one of the 27 fixed phenomenological nodes.
// The numbering groups nodes by dimension: nodes 3d..3d+2 belong to
// Dimension d.
type NodeID int

const (
	// Mode of appearance
	AppearanceDensity NodeID = iota
	AppearanceLuminosity
	AppearanceChromaticity
	// Intentional structure
	IntentionalFocus
	IntentionalHorizon
	IntentionalDepth
	// Temporal implications
	TemporalMotion
	TemporalDecay
	TemporalDuration
	// Synesthetic qualities
	SynestheticTemperature
	SynestheticWeight
	SynestheticTexture
	// Ontological density
	OntologicalPresence
	OntologicalBoundary
	OntologicalPlurality
	// Semantic recognition
	SemanticEntities
	SemanticRelations
	SemanticActions
	// Conceptual horizon
	ConceptualCultural
	ConceptualSymbolic
	ConceptualFunctional
	// Modes of being
	BeingAnimacy
	BeingAgency
	BeingArtificiality
	// Recognition certainty
	CertaintyClarity
	CertaintyAmbiguity
	CertaintyMultiplicity

	// NodeCount is the fixed size of the node set.
	NodeCount = 27
)

var nodeNames = [NodeCount]string{
	"appearance_density",
	"appearance_luminosity",
	"appearance_chromaticity",
	"intentional_focus",
	"intentional_horizon",
	"intentional_depth",
	"temporal_motion",
	"temporal_decay",
	"temporal_duration",
	"synesthetic_temperature",
	"synesthetic_weight",
	"synesthetic_texture",
	"ontological_presence",
	"ontological_boundary",
	"ontological_plurality",
	"semantic_entities",
	"semantic_relations",
	"semantic_actions",
	"conceptual_cultural",
	"conceptual_symbolic",
	"conceptual_functional",
	"being_animacy",
	"being_agency",
	"being_artificiality",
	"certainty_clarity",
	"certainty_ambiguity",
	"certainty_multiplicity",
}

// String returns the wire name of the node, e.g. "appearance_density".
func (n NodeID) String() string {
	if n < 0 || n >= NodeCount {
		return fmt.Sprintf("node(%d)", int(n))
	}
	return nodeNames[n]
}

// Valid reports whether n is one of the 27 fixed node ids.
func (n NodeID) Valid() bool {
	return n >= 0 && n < NodeCount
}

// Dimension returns the dimension this node belongs to.
func (n NodeID) Dimension() Dimension {
	return Dimension(int(n) / nodesPerDimension)
}

// AllNodes returns the 27 node ids in canonical order.
func AllNodes() []NodeID {
	ids := make([]NodeID, NodeCount)
	for i := range ids {
		ids[i] = NodeID(i)
	}
	return ids
}

// ParseNode resolves a wire name to a NodeID.
// Returns UnknownNodeError for any name outside the fixed 27.
func ParseNode(name string) (NodeID, error) {
	for i, n := range nodeNames {
		if n == name {
			return NodeID(i), nil
		}
	}
	return -1, &UnknownNodeError{Name: name}
}

// #endregion node-id

// #region dimension

// Dimension is one of the 9 fixed phenomenological dimensions.
// Each dimension owns exactly 3 consecutive nodes.
type Dimension int

const (
	DimAppearance Dimension = iota
	DimIntentional
	DimTemporal
	DimSynesthetic
	DimOntological
	DimSemantic
	DimConceptual
	DimBeing
	DimCertainty

	// DimensionCount is the fixed number of dimensions.
	DimensionCount = 9

	nodesPerDimension = 3
)

var dimensionNames = [DimensionCount]string{
	"appearance",
	"intentional",
	"temporal",
	"synesthetic",
	"ontological",
	"semantic",
	"conceptual",
	"being",
	"certainty",
}

// priorityWeights bias dimension-level aggregation. The perceptual layers
// carry slightly more weight than the reflective ones; values are fixed
// configuration, not computed.
var priorityWeights = [DimensionCount]float64{
	1.2, // appearance
	1.1, // intentional
	1.0, // temporal
	1.0, // synesthetic
	1.1, // ontological
	1.0, // semantic
	0.9, // conceptual
	0.9, // being
	0.8, // certainty
}

// String returns the dimension's name, e.g. "appearance".
func (d Dimension) String() string {
	if d < 0 || d >= DimensionCount {
		return fmt.Sprintf("dimension(%d)", int(d))
	}
	return dimensionNames[d]
}

// Nodes returns the 3 nodes owned by this dimension.
func (d Dimension) Nodes() [nodesPerDimension]NodeID {
	base := int(d) * nodesPerDimension
	return [nodesPerDimension]NodeID{NodeID(base), NodeID(base + 1), NodeID(base + 2)}
}

// PriorityWeight returns the dimension's fixed aggregation weight.
func (d Dimension) PriorityWeight() float64 {
	if d < 0 || d >= DimensionCount {
		return 0
	}
	return priorityWeights[d]
}

// AllDimensions returns the 9 dimensions in canonical order.
func AllDimensions() []Dimension {
	dims := make([]Dimension, DimensionCount)
	for i := range dims {
		dims[i] = Dimension(i)
	}
	return dims
}

// #endregion dimension

// #region errors

// UnknownNodeError reports an id or name outside the fixed 27-node set.
type UnknownNodeError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("unknown node %q", e.Name)
}

// #endregion errors
