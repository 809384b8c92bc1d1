package model

import (
	"context"

	"github.com/louvorkit/louvor/core"
)

// Request captures the normalized inference input.
type Request struct {
	System    string                  `json:"system"`    // System prompt
	History   []core.ConversationTurn `json:"history"`   // Bounded conversation window
	Prompt    string                  `json:"prompt"`    // Current user prompt
	MaxTokens int64                   `json:"max_tokens"`
}

// Response is the inference outcome for a single call.
type Response struct {
	Content string     `json:"content"`
	Usage   core.Usage `json:"usage"`
}

// Info contains metadata about an inference implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", ...
}

// Inference is the minimal interface the responders and the batch
// orchestrator need to drive generation. Implementations must honor context
// cancellation and deadlines; a deadline overrun must surface as an error
// satisfying IsTimeout so the caller can take the degrade path.
type Inference interface {
	Infer(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the inference implementation.
	Info() Info
}
