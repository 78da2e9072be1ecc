package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one canned MockProvider result.
type MockResponse struct {
	Content   json.RawMessage
	Usage     Usage
	Truncated bool
	Err       error
}

// MockProvider replays canned responses in order and records every prompt.
// An exhausted queue fails with FailureUnavailable.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	prompts   []Prompt
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

func (m *MockProvider) Complete(_ context.Context, p Prompt) (*Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prompts = append(m.prompts, p)
	if len(m.responses) == 0 {
		return nil, &Error{Kind: FailureUnavailable, Backend: BackendMock}
	}
	next := m.responses[0]
	m.responses = m.responses[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return &Reply{Content: next.Content, Model: "mock", Truncated: next.Truncated, Usage: next.Usage}, nil
}

func (m *MockProvider) Model() string { return "mock" }

// Prompts returns a copy of the prompts received so far.
func (m *MockProvider) Prompts() []Prompt {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Prompt(nil), m.prompts...)
}
