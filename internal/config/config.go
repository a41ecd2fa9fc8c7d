// Package config loads the optional YAML runtime configuration used by
// the cmd binaries. Absent file or absent fields fall back to defaults;
// environment variables and flags still win in the binaries themselves.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kurohane/phenomenal-oracle/internal/analyzer"
	"github.com/kurohane/phenomenal-oracle/internal/coupling"
	"github.com/kurohane/phenomenal-oracle/internal/stimulus"
)

// #region config

// Config is the on-disk runtime configuration.
type Config struct {
	Journal  JournalConfig  `yaml:"journal"`
	Engine   EngineConfig   `yaml:"engine"`
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Stimulus StimulusConfig `yaml:"stimulus"`
}

// JournalConfig locates the SQLite journal.
type JournalConfig struct {
	Path string `yaml:"path"`
}

// EngineConfig carries the evolution tunables.
type EngineConfig struct {
	CouplingConstant float64 `yaml:"coupling_constant"`
}

// AnalyzerConfig selects the model and sampling temperatures.
type AnalyzerConfig struct {
	Model             string  `yaml:"model"`
	VisionTemperature float32 `yaml:"vision_temperature"`
	RatingTemperature float32 `yaml:"rating_temperature"`
}

// StimulusConfig carries blending parameters.
type StimulusConfig struct {
	BlendRate    float64 `yaml:"blend_rate"`
	KeywordDelta float64 `yaml:"keyword_delta"`
}

// #endregion config

// #region defaults

// Default returns the configuration used when no file is present.
func Default() Config {
	ac := analyzer.DefaultConfig()
	sc := stimulus.DefaultConfig()
	return Config{
		Journal: JournalConfig{Path: "oracle.db"},
		Engine:  EngineConfig{CouplingConstant: coupling.DefaultCouplingConstant},
		Analyzer: AnalyzerConfig{
			Model:             ac.Model,
			VisionTemperature: ac.VisionTemperature,
			RatingTemperature: ac.RatingTemperature,
		},
		Stimulus: StimulusConfig{
			BlendRate:    sc.BlendRate,
			KeywordDelta: sc.KeywordDelta,
		},
	}
}

// #endregion defaults

// #region load

// Load reads a YAML config file over the defaults. A missing file is not
// an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// AnalyzerSettings converts to the analyzer package's config type.
func (c Config) AnalyzerSettings() analyzer.Config {
	return analyzer.Config{
		Model:             c.Analyzer.Model,
		VisionTemperature: c.Analyzer.VisionTemperature,
		RatingTemperature: c.Analyzer.RatingTemperature,
	}
}

// StimulusSettings converts to the stimulus package's config type.
func (c Config) StimulusSettings() stimulus.Config {
	return stimulus.Config{
		BlendRate:    c.Stimulus.BlendRate,
		KeywordDelta: c.Stimulus.KeywordDelta,
	}
}

// #endregion load
