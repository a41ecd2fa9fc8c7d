// Package analyzer talks to the LLM that produces phenomenological
// observations. It is the external stimulus producer: the core never
// blocks on it, and its failures surface to the caller for retry policy
// outside the core.
package analyzer

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/kurohane/phenomenal-oracle/internal/nodestate"
	"github.com/kurohane/phenomenal-oracle/internal/stimulus"
)

// #region chat-client

// ChatClient is the slice of the OpenAI client the analyzer uses.
// Satisfied by *openai.Client; tests inject a fake.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// #endregion chat-client

// #region analyzer-struct

// Analyzer wraps the chat model behind the two calls this system makes:
// generating a phenomenological vision and rating the 27 nodes.
type Analyzer struct {
	client ChatClient
	config Config
}

// NewAnalyzer creates an analyzer backed by the OpenAI API.
func NewAnalyzer(apiKey string, config Config) *Analyzer {
	return &Analyzer{client: openai.NewClient(apiKey), config: config}
}

// NewAnalyzerWithClient creates an Analyzer with an injected chat client.
// Used for testing without network access.
func NewAnalyzerWithClient(client ChatClient, config Config) *Analyzer {
	return &Analyzer{client: client, config: config}
}

// #endregion analyzer-struct

// #region vision

// Vision asks the model for a first-person phenomenological description of
// the image, before any node rating.
func (a *Analyzer) Vision(ctx context.Context, imageDescription string) (string, error) {
	prompt := fmt.Sprintf(`Describe, in the first person and the present tense, how this image appears to a perceiving system. Stay with what shows itself: density, light, depth, motion, weight, boundaries. No art criticism, no references to theories.

Image:
%s`, imageDescription)

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.config.Model,
		Temperature: a.config.VisionTemperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("vision completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("vision completion: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

// #endregion vision

// #region observe

// Observe asks the model to rate all 27 nodes from a vision text and
// returns the parsed observation. The reply must be a JSON object mapping
// node names to activations in [0, 1]; the parse tolerates fenced blocks
// and surrounding prose.
func (a *Analyzer) Observe(ctx context.Context, vision, imageDescription string) (stimulus.Observation, error) {
	names := make([]string, 0, nodestate.NodeCount)
	for _, n := range nodestate.AllNodes() {
		names = append(names, n.String())
	}
	nameList, err := json.Marshal(names)
	if err != nil {
		return stimulus.Observation{}, fmt.Errorf("marshal node names: %w", err)
	}

	prompt := fmt.Sprintf(`Rate how strongly each aspect appears in the experience below, from 0.0 to 1.0.

Experience:
%s

Image:
%s

Nodes to rate (all 27):
%s

Answer with a single JSON object: {"node_name": 0.0-1.0, ...}`, vision, imageDescription, nameList)

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.config.Model,
		Temperature: a.config.RatingTemperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "Answer in JSON."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return stimulus.Observation{}, fmt.Errorf("rating completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return stimulus.Observation{}, fmt.Errorf("rating completion: empty response")
	}

	targets, err := stimulus.ParseTargets(resp.Choices[0].Message.Content)
	if err != nil {
		return stimulus.Observation{}, fmt.Errorf("rating completion: %w", err)
	}

	return stimulus.Observation{
		Targets:     targets,
		Description: imageDescription,
	}, nil
}

// #endregion observe
