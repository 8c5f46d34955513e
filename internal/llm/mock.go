package llm

import (
	"context"
	"sync"
)

// MockClient is a test double that records every request it receives.
type MockClient struct {
	err      error
	judgment Judgment
	modelID  string
	calls    []Request
	mu       sync.Mutex
}

// NewMockClient creates a mock that always returns the given judgment.
func NewMockClient(judgment Judgment) *MockClient {
	return &MockClient{judgment: judgment, modelID: "mock-model"}
}

// NewFailingMockClient creates a mock that always returns err.
func NewFailingMockClient(err error) *MockClient {
	return &MockClient{err: err, modelID: "mock-model"}
}

// Judge records the request and returns the configured judgment or error.
func (m *MockClient) Judge(_ context.Context, req Request) (Judgment, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	if m.err != nil {
		return Judgment{}, m.err
	}
	j := m.judgment
	j.ModelID = m.modelID
	return j, nil
}

// ModelID identifies the mock.
func (m *MockClient) ModelID() string {
	return m.modelID
}

// CallCount returns how many judgments were requested.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns a copy of the recorded requests.
func (m *MockClient) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.calls))
	copy(out, m.calls)
	return out
}
