package agent

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned response for the MockClient.
type MockResponse struct {
	Content  string
	ToolCall *ToolCall
	Err      error
}

// ToolCallResponse is a convenience constructor for a canned tool call
// with the given arguments object.
func ToolCallResponse(name string, args any) MockResponse {
	raw, _ := json.Marshal(args)
	return MockResponse{
		ToolCall: &ToolCall{ID: "call-" + name, Name: name, Arguments: raw},
	}
}

// MockClient is a deterministic Client for testing. It returns canned
// responses in FIFO order and records every request it receives.
type MockClient struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

// NewMockClient creates a MockClient with the given canned responses.
func NewMockClient(responses ...MockResponse) *MockClient {
	return &MockClient{responses: responses}
}

// CallWithTools returns the next canned response, or *ErrService if the
// queue is empty.
func (m *MockClient) CallWithTools(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return nil, &ErrService{Status: 503, Body: "mock: no responses queued"}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	finish := "stop"
	if resp.ToolCall != nil {
		finish = "tool_calls"
	}
	return &Response{
		Content:      resp.Content,
		ToolCall:     resp.ToolCall,
		Model:        "mock",
		FinishReason: finish,
	}, nil
}

// ModelID returns "mock".
func (m *MockClient) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockClient) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of CallWithTools calls made.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
