package utils

import (
	"context"
	"fmt"
	"sync"
)

// MockTextResponse is a canned reply for MockTextClient.
type MockTextResponse struct {
	Text string
	Err  error
}

// MockTextClient returns canned replies in FIFO order and records every
// request. It is safe for concurrent use.
type MockTextClient struct {
	mu        sync.Mutex
	responses []MockTextResponse
	Calls     []GenerationRequest
}

func NewMockTextClient(responses ...MockTextResponse) *MockTextClient {
	return &MockTextClient{responses: responses}
}

// GenerateText returns the next canned reply, or ErrProviderUnavailable
// once the queue is empty.
func (m *MockTextClient) GenerateText(_ context.Context, req GenerationRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return "", fmt.Errorf("mock: %w", ErrProviderUnavailable)
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]
	return resp.Text, resp.Err
}

func (m *MockTextClient) ModelID() string {
	return "mock"
}

func (m *MockTextClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
