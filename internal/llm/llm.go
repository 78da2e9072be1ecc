// Package llm sends single-turn, schema-constrained prompts to a hosted
// model. The tutor is its only caller: one system prompt, one user message,
// one JSON object back.
package llm

import (
	"context"
	"encoding/json"
)

// Provider completes a prompt.
type Provider interface {
	Complete(ctx context.Context, p Prompt) (*Reply, error)

	// Model is the model ID requests are sent to.
	Model() string
}

// Prompt is one tutor request.
type Prompt struct {
	// Purpose labels the request in the journal, e.g. "explain".
	Purpose string

	System string
	User   string

	// Schema, when set, constrains the reply to one JSON object. Replies
	// that do not validate are rejected before they reach the caller.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Reply is a model's answer to a Prompt.
type Reply struct {
	Content json.RawMessage
	Model   string

	// Truncated is set when generation stopped at MaxTokens.
	Truncated bool

	Usage Usage
}

// Usage counts tokens for one request.
type Usage struct {
	Input  int
	Output int
}

func (u Usage) Total() int { return u.Input + u.Output }
