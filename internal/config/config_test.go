package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.Journal.Path != "oracle.db" {
		t.Fatalf("default journal path %q", cfg.Journal.Path)
	}
	if cfg.Engine.CouplingConstant != 0.1 {
		t.Fatalf("default coupling constant %f", cfg.Engine.CouplingConstant)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oracle.yaml")
	body := `
journal:
  path: /tmp/other.db
engine:
  coupling_constant: 0.2
analyzer:
  model: gpt-4o-mini
stimulus:
  blend_rate: 0.5
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Journal.Path != "/tmp/other.db" {
		t.Fatalf("journal path %q", cfg.Journal.Path)
	}
	if cfg.Engine.CouplingConstant != 0.2 {
		t.Fatalf("coupling constant %f", cfg.Engine.CouplingConstant)
	}
	if cfg.Analyzer.Model != "gpt-4o-mini" {
		t.Fatalf("model %q", cfg.Analyzer.Model)
	}
	if cfg.Stimulus.BlendRate != 0.5 {
		t.Fatalf("blend rate %f", cfg.Stimulus.BlendRate)
	}

	// fields the file omits keep their defaults
	if cfg.Analyzer.VisionTemperature != Default().Analyzer.VisionTemperature {
		t.Fatalf("vision temperature %f", cfg.Analyzer.VisionTemperature)
	}
	if cfg.Stimulus.KeywordDelta != Default().Stimulus.KeywordDelta {
		t.Fatalf("keyword delta %f", cfg.Stimulus.KeywordDelta)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("journal: ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestSettingsConversion(t *testing.T) {
	cfg := Default()
	ac := cfg.AnalyzerSettings()
	if ac.Model != cfg.Analyzer.Model || ac.VisionTemperature != cfg.Analyzer.VisionTemperature {
		t.Fatalf("analyzer settings %+v", ac)
	}
	sc := cfg.StimulusSettings()
	if sc.BlendRate != cfg.Stimulus.BlendRate || sc.KeywordDelta != cfg.Stimulus.KeywordDelta {
		t.Fatalf("stimulus settings %+v", sc)
	}
}
