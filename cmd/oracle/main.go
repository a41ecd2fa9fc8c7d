// Command oracle is the interactive REPL: each line of input becomes one
// evolution cycle. Input is either a JSON object of per-node deltas, or
// free text handed to the LLM analyzer (keyword fallback without an API
// key). Every cycle is journaled.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/kurohane/phenomenal-oracle/internal/analyzer"
	"github.com/kurohane/phenomenal-oracle/internal/config"
	"github.com/kurohane/phenomenal-oracle/internal/coupling"
	"github.com/kurohane/phenomenal-oracle/internal/engine"
	"github.com/kurohane/phenomenal-oracle/internal/gating"
	"github.com/kurohane/phenomenal-oracle/internal/journal"
	"github.com/kurohane/phenomenal-oracle/internal/nodestate"
	"github.com/kurohane/phenomenal-oracle/internal/stimulus"
)

// #region main

func main() {
	configPath := flag.String("config", "oracle.yaml", "path to YAML config")
	dbPath := flag.String("db", "", "journal database path (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	journalPath := envOr("ORACLE_DB", cfg.Journal.Path)
	if *dbPath != "" {
		journalPath = *dbPath
	}

	jnl, err := journal.Open(journalPath)
	if err != nil {
		log.Fatalf("failed to open journal: %v", err)
	}
	defer jnl.Close()

	sessionID, err := jnl.BeginSession("interactive oracle session")
	if err != nil {
		log.Fatalf("failed to begin session: %v", err)
	}

	matrix := coupling.NewMatrix(coupling.DefaultLinks(), cfg.Engine.CouplingConstant)
	eng := engine.New(nodestate.NewStore(), matrix, gating.NewController(gating.DefaultUnlocks()))
	producer := stimulus.NewProducer(cfg.StimulusSettings())

	var an *analyzer.Analyzer
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		an = analyzer.NewAnalyzer(key, cfg.AnalyzerSettings())
	} else {
		log.Println("OPENAI_API_KEY not set, using keyword fallback")
	}

	fmt.Println("Phenomenological Oracle ready.")
	fmt.Printf("  Journal: %s | Session: %s\n", journalPath, sessionID)
	fmt.Println("Describe an image, or paste a JSON delta map (or 'quit' to exit):")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			break
		}

		deltas, err := resolveStimulus(input, an, producer, eng)
		if err != nil {
			log.Printf("stimulus error: %v", err)
			continue
		}

		result := eng.Evolve(deltas, input)

		fmt.Printf("\ngen=%d phi=%.4f level=%s\n", eng.Generation()-1, result.Phi, result.Level)
		fmt.Printf("axes: existence=%.2f intrinsic=%.2f information=%.2f integration=%.2f exclusion=%.2f\n",
			result.Axes.Existence, result.Axes.Intrinsic, result.Axes.Information,
			result.Axes.Integration, result.Axes.Exclusion)
		fmt.Printf("active dimensions: %s\n\n", strings.Join(activeDimensions(eng), ", "))

		stimJSON, _ := json.Marshal(deltas)
		err = jnl.Record(journal.CycleRecord{
			SessionID:    sessionID,
			Generation:   eng.Generation() - 1,
			Phi:          result.Phi,
			Level:        string(result.Level),
			Axes:         result.Axes,
			Values:       eng.Store().Values(),
			Active:       eng.Store().ActiveFlags(),
			StimulusJSON: string(stimJSON),
			Description:  input,
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			log.Printf("journal error: %v", err)
		}
	}
}

// #endregion main

// #region stimulus-resolution

// resolveStimulus turns one REPL line into per-node deltas: a JSON object
// is taken as raw deltas; free text goes through the analyzer when
// available, otherwise the keyword fallback.
func resolveStimulus(
	input string,
	an *analyzer.Analyzer,
	producer *stimulus.Producer,
	eng *engine.Engine,
) (map[string]float64, error) {
	if strings.HasPrefix(input, "{") {
		var deltas map[string]float64
		if err := json.Unmarshal([]byte(input), &deltas); err != nil {
			return nil, fmt.Errorf("parse delta map: %w", err)
		}
		return deltas, nil
	}

	if an == nil {
		return producer.FromKeywords(input), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	vision, err := an.Vision(ctx, input)
	if err != nil {
		return nil, err
	}
	obs, err := an.Observe(ctx, vision, input)
	if err != nil {
		return nil, err
	}
	return producer.BlendTargets(obs.Targets, eng), nil
}

// #endregion stimulus-resolution

// #region helpers

// activeDimensions lists dimensions with any node above 0.3, the same
// floor the journal metrics use.
func activeDimensions(eng *engine.Engine) []string {
	var dims []string
	for _, d := range nodestate.AllDimensions() {
		for _, n := range d.Nodes() {
			if eng.Store().Value(n) > 0.3 {
				dims = append(dims, d.String())
				break
			}
		}
	}
	if len(dims) == 0 {
		dims = append(dims, "none")
	}
	return dims
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
