package stimulus

// #region value-source

// ValueSource provides current node values by wire name. The engine
// satisfies this.
type ValueSource interface {
	NodeValue(name string) (float64, error)
}

// #endregion value-source

// #region observation

// Observation is one structured external stimulus: absolute target
// activations per node plus the human-readable description of what
// produced them.
type Observation struct {
	Targets     map[string]float64 `json:"node_targets"`
	Description string             `json:"description"`
}

// #endregion observation

// #region config

// Config holds blending and fallback parameters.
type Config struct {
	// BlendRate is how strongly an absolute target pulls the current
	// value toward it: delta = BlendRate · (target − current).
	BlendRate float64
	// KeywordDelta is the fixed bump applied per matched keyword group
	// in fallback mode.
	KeywordDelta float64
}

// DefaultConfig returns the standard blending parameters.
func DefaultConfig() Config {
	return Config{
		BlendRate:    0.7,
		KeywordDelta: 0.3,
	}
}

// #endregion config
