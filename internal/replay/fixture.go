// Package replay runs recorded evolution sequences through a fresh engine
// and compares the outcome against expectations. Fixtures are JSON files,
// exportable from a journal with fixture-export.
package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kurohane/phenomenal-oracle/internal/coupling"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string             `json:"description"`
	StartValues map[string]float64 `json:"start_values,omitempty"`
	Config      FixtureConfig      `json:"config"`
	Cycles      []FixtureCycle     `json:"cycles"`
	Expected    []FixtureExpected  `json:"expected_results"`
}

// FixtureConfig holds the tunables a replay run honors. A zero coupling
// constant means "use the default".
type FixtureConfig struct {
	CouplingConstant float64 `json:"coupling_constant"`
}

// FixtureCycle is one recorded stimulus.
type FixtureCycle struct {
	Stimulus    map[string]float64 `json:"stimulus"`
	Description string             `json:"description"`
}

// FixtureExpected pins the outcome of one generation. An empty Level
// skips the label check; MaxPhi of 0 skips the upper-bound check.
type FixtureExpected struct {
	Generation int     `json:"generation"`
	Level      string  `json:"level,omitempty"`
	MinPhi     float64 `json:"min_phi"`
	MaxPhi     float64 `json:"max_phi"`
}

// #endregion fixture-types

// #region loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// Matrix builds the interaction matrix a fixture asks for.
func (f *Fixture) Matrix() *coupling.Matrix {
	c := f.Config.CouplingConstant
	if c == 0 {
		c = coupling.DefaultCouplingConstant
	}
	return coupling.NewMatrix(coupling.DefaultLinks(), c)
}

// #endregion loader
