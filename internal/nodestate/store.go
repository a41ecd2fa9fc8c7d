package nodestate

// #region store-struct

// Store holds the 27 node values and their activation flags.
// Structure is fixed at construction; only values and flags change.
// Not safe for concurrent use; callers serialize access.
type Store struct {
	values [NodeCount]float64
	active [NodeCount]bool
}

// NewStore returns a store with all values at zero and no nodes active.
// The caller applies generation gating before the first read.
func NewStore() *Store {
	return &Store{}
}

// #endregion store-struct

// #region accessors

// Get returns the value of a node.
// Returns UnknownNodeError for ids outside the fixed 27.
func (s *Store) Get(id NodeID) (float64, error) {
	if !id.Valid() {
		return 0, &UnknownNodeError{Name: id.String()}
	}
	return s.values[id], nil
}

// Set stores a node value, clamped to [0, 1]. Out-of-range inputs are
// clamped rather than rejected.
// Returns UnknownNodeError for ids outside the fixed 27.
func (s *Store) Set(id NodeID, value float64) error {
	if !id.Valid() {
		return &UnknownNodeError{Name: id.String()}
	}
	s.values[id] = clamp01(value)
	return nil
}

// Value returns a node's value without the id check. Callers that already
// hold a validated NodeID use this on hot paths.
func (s *Store) Value(id NodeID) float64 {
	return s.values[id]
}

// Values returns a snapshot of all 27 node values in canonical order.
func (s *Store) Values() [NodeCount]float64 {
	return s.values
}

// #endregion accessors

// #region activation

// IsActive reports whether a node is active under the current gating.
func (s *Store) IsActive(id NodeID) bool {
	return id.Valid() && s.active[id]
}

// ActiveNodes returns the ids of all currently-active nodes.
func (s *Store) ActiveNodes() []NodeID {
	out := make([]NodeID, 0, NodeCount)
	for i := range s.active {
		if s.active[i] {
			out = append(out, NodeID(i))
		}
	}
	return out
}

// ActiveFlags returns a snapshot of all 27 activation flags.
func (s *Store) ActiveFlags() [NodeCount]bool {
	return s.active
}

// SetActive replaces the activation flags wholesale. The gating controller
// calls this once per cycle; flags for gated nodes never revert from true
// to false because gating thresholds are monotonic.
func (s *Store) SetActive(flags [NodeCount]bool) {
	s.active = flags
}

// #endregion activation

// #region dimension-means

// DimensionMean returns the mean value of a dimension's 3 nodes.
func (s *Store) DimensionMean(d Dimension) float64 {
	nodes := d.Nodes()
	var sum float64
	for _, n := range nodes {
		sum += s.values[n]
	}
	return sum / float64(len(nodes))
}

// #endregion dimension-means

// #region helpers

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion helpers
