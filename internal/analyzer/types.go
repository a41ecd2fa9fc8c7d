package analyzer

// #region config

// Config holds model selection and sampling parameters.
type Config struct {
	Model             string
	VisionTemperature float32 // high: the vision text should wander
	RatingTemperature float32 // lower: node ratings should be steady
}

// DefaultConfig returns the standard analyzer parameters.
func DefaultConfig() Config {
	return Config{
		Model:             "gpt-4o",
		VisionTemperature: 0.95,
		RatingTemperature: 0.7,
	}
}

// #endregion config
