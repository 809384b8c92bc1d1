// Package openai provides an implementation of model.Inference using the
// OpenAI Chat Completions API. It adapts the assistant's normalized
// Request/Response structures into the SDK's message format and back, and
// classifies SDK failures onto the model error taxonomy so the batch
// orchestrator can discriminate timeouts from transport errors.
package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"

	"github.com/louvorkit/louvor/core"
	"github.com/louvorkit/louvor/model"
)

// Options configure the OpenAI inference adapter. Fields mirror a subset of
// Chat Completion parameters intentionally kept minimal; extend via
// functional options without breaking callers.
type Options struct {
	Model       string
	Temperature float64
}

// Inference wraps the OpenAI Chat Completions API behind the generic
// model.Inference interface.
type Inference struct {
	client *openai.Client
	opts   Options
}

// New creates a new OpenAI inference adapter using the official client
// (API key read from the environment by the SDK).
func New(optFns ...func(o *Options)) *Inference {
	client := openai.NewClient()
	return NewFromClient(&client, optFns...)
}

// NewFromClient creates a new OpenAI inference adapter from an existing client.
func NewFromClient(client *openai.Client, optFns ...func(o *Options)) *Inference {
	opts := Options{
		Model:       openai.ChatModelGPT4oMini,
		Temperature: 0.7,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Inference{client: client, opts: opts}
}

// Infer implements model.Inference with a single non-streaming completion.
func (m *Inference) Infer(ctx context.Context, req model.Request) (*model.Response, error) {
	params := openai.ChatCompletionNewParams{
		Messages:    buildMessages(req),
		Model:       m.opts.Model,
		Temperature: openai.Float(m.opts.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(req.MaxTokens)
	}

	resp, err := m.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, classify(err)
	}
	if len(resp.Choices) == 0 {
		return nil, model.NewError(model.KindTransport, fmt.Errorf("no choices returned"))
	}

	return &model.Response{
		Content: resp.Choices[0].Message.Content,
		Usage: core.Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
	}, nil
}

// Info returns metadata describing this OpenAI inference implementation.
func (m *Inference) Info() model.Info {
	return model.Info{Name: m.opts.Model, Provider: "openai"}
}

// buildMessages converts the normalized request into OpenAI chat messages.
func buildMessages(req model.Request) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.History)+2)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	for _, turn := range req.History {
		switch turn.Role {
		case core.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(turn.Content))
		default:
			messages = append(messages, openai.UserMessage(turn.Content))
		}
	}
	messages = append(messages, openai.UserMessage(req.Prompt))
	return messages
}

// classify maps SDK errors onto the model error taxonomy.
func classify(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		if apierr.StatusCode == 429 {
			return model.NewError(model.KindRateLimited, err)
		}
		return model.NewError(model.KindTransport, err)
	}
	return model.Classify(fmt.Errorf("openai api error: %w", err))
}
