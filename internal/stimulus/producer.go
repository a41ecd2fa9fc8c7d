// Package stimulus turns external observations into per-node deltas for
// the engine. Parsing is lenient throughout: unknown node names and
// non-numeric values are dropped, never fatal, because the upstream
// producer is a non-deterministic language model.
package stimulus

import (
	"encoding/json"
	"fmt"
	"strings"
)

// #region producer

// Producer converts observations and raw text into engine stimuli.
type Producer struct {
	config Config
}

// NewProducer creates a Producer with the given configuration.
func NewProducer(config Config) *Producer {
	return &Producer{config: config}
}

// #endregion producer

// #region json

// ParseTargets extracts a node→activation map from model output. Accepts
// a fenced ```json block, a bare JSON object embedded in prose, or plain
// JSON. Non-numeric values are skipped; node names are not validated
// here (the engine ignores unknown keys).
func ParseTargets(text string) (map[string]float64, error) {
	raw := extractJSON(text)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object in model output")
	}

	var loose map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &loose); err != nil {
		return nil, fmt.Errorf("parse node targets: %w", err)
	}

	targets := make(map[string]float64, len(loose))
	for name, v := range loose {
		var f float64
		if err := json.Unmarshal(v, &f); err != nil {
			continue
		}
		targets[name] = f
	}
	return targets, nil
}

// extractJSON finds the JSON payload in model text: a ```json fence if
// present, otherwise the outermost brace pair.
func extractJSON(text string) string {
	if i := strings.Index(text, "```json"); i >= 0 {
		rest := text[i+len("```json"):]
		if j := strings.Index(rest, "```"); j >= 0 {
			return strings.TrimSpace(rest[:j])
		}
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return ""
}

// #endregion json

// #region blend

// BlendTargets converts absolute target activations into deltas that pull
// each node partway toward its target, avoiding abrupt jumps:
// delta = BlendRate · (target − current). Targets for unknown nodes are
// dropped.
func (p *Producer) BlendTargets(targets map[string]float64, source ValueSource) map[string]float64 {
	deltas := make(map[string]float64, len(targets))
	for name, target := range targets {
		current, err := source.NodeValue(name)
		if err != nil {
			continue
		}
		deltas[name] = p.config.BlendRate * (target - current)
	}
	return deltas
}

// #endregion blend

// #region keywords

// nodeKeywords backs the offline fallback: each node gains a fixed delta
// when any of its keywords appears in the text.
var nodeKeywords = map[string][]string{
	"appearance_density":      {"dense", "thick", "crowded", "packed"},
	"appearance_luminosity":   {"bright", "light", "glow", "luminous", "radiant"},
	"appearance_chromaticity": {"color", "colour", "hue", "saturated", "vivid"},
	"intentional_focus":       {"focus", "center", "sharp", "attention"},
	"intentional_horizon":     {"horizon", "open", "expanse", "beyond"},
	"intentional_depth":       {"depth", "deep", "layered", "recede"},
	"temporal_motion":         {"motion", "moving", "flow", "change", "drift"},
	"temporal_decay":          {"decay", "fading", "worn", "erode", "rust"},
	"temporal_duration":       {"lasting", "duration", "endure", "lingering"},
	"synesthetic_temperature": {"warm", "cold", "heat", "chill"},
	"synesthetic_weight":      {"heavy", "weight", "light-weight", "massive"},
	"synesthetic_texture":     {"texture", "rough", "smooth", "grain"},
	"ontological_presence":    {"presence", "present", "solid", "there"},
	"ontological_boundary":    {"boundary", "edge", "outline", "border"},
	"ontological_plurality":   {"many", "multiple", "plural", "crowd"},
	"semantic_entities":       {"object", "figure", "thing", "entity"},
	"semantic_relations":      {"between", "relation", "connect", "linked"},
	"semantic_actions":        {"action", "doing", "gesture", "activity"},
	"conceptual_cultural":     {"cultural", "tradition", "ritual", "history"},
	"conceptual_symbolic":     {"symbol", "symbolic", "sign", "emblem"},
	"conceptual_functional":   {"function", "useful", "tool", "purpose"},
	"being_animacy":           {"alive", "living", "organic", "breathing"},
	"being_agency":            {"agent", "intent", "will", "deliberate"},
	"being_artificiality":     {"artificial", "machine", "synthetic", "manufactured"},
	"certainty_clarity":       {"clear", "distinct", "legible", "crisp"},
	"certainty_ambiguity":     {"ambiguous", "vague", "unclear", "blurred"},
	"certainty_multiplicity":  {"multiplicity", "layered meaning", "polysemy", "polyvalent"},
}

// FromKeywords derives a stimulus from free text when no structured
// observation is available: every node whose keyword list matches gains a
// fixed positive delta.
func (p *Producer) FromKeywords(text string) map[string]float64 {
	lower := strings.ToLower(text)
	deltas := make(map[string]float64)
	for node, words := range nodeKeywords {
		for _, w := range words {
			if strings.Contains(lower, w) {
				deltas[node] = p.config.KeywordDelta
				break
			}
		}
	}
	return deltas
}

// #endregion keywords
