package model

import (
	"context"
	"fmt"
	"sync"

	"github.com/louvorkit/louvor/core"
)

type mockStep struct {
	content string
	usage   core.Usage
	err     error
}

// MockInference is a lightweight in-memory Inference useful for tests and
// examples. Outcomes enqueued via Enqueue / EnqueueError are consumed in
// order; once the script is exhausted every call yields a deterministic
// echo of its prompt.
type MockInference struct {
	mu     sync.Mutex
	script []mockStep
	calls  []Request
}

// NewMockInference constructs an empty mock.
func NewMockInference() *MockInference {
	return &MockInference{}
}

// Enqueue registers a canned successful completion.
func (m *MockInference) Enqueue(content string, usage core.Usage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, mockStep{content: content, usage: usage})
}

// EnqueueError registers a canned failure.
func (m *MockInference) EnqueueError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, mockStep{err: err})
}

// Infer implements Inference.
func (m *MockInference) Infer(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, Classify(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, req)

	if len(m.script) > 0 {
		step := m.script[0]
		m.script = m.script[1:]
		if step.err != nil {
			return nil, step.err
		}
		return &Response{Content: step.content, Usage: step.usage}, nil
	}

	return &Response{
		Content: fmt.Sprintf("Mock response to: %s", req.Prompt),
		Usage:   core.Usage{PromptTokens: 1, CompletionTokens: 1, TotalTokens: 2},
	}, nil
}

// Info implements Inference.
func (m *MockInference) Info() Info {
	return Info{Name: "mock", Provider: "mock"}
}

// CallCount returns how many Infer calls completed.
func (m *MockInference) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns a copy of the recorded requests in call order.
func (m *MockInference) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.calls))
	copy(out, m.calls)
	return out
}
