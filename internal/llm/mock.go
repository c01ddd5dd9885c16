package llm

import (
	"context"
	"fmt"
	"time"
)

// MockEngine is a scripted engine for tests and offline runs. Responses are
// returned in the order they were queued; when the queue is exhausted it
// falls back to a canned reply.
type MockEngine struct {
	modelID   string
	responses []string
	errs      []error
	calls     []*Request
}

// NewMockEngine creates a new mock engine.
func NewMockEngine(modelID string) *MockEngine {
	if modelID == "" {
		modelID = "mock-model"
	}
	return &MockEngine{modelID: modelID}
}

// QueueResponse appends a scripted response.
func (m *MockEngine) QueueResponse(text string) *MockEngine {
	m.responses = append(m.responses, text)
	m.errs = append(m.errs, nil)
	return m
}

// QueueError appends a scripted failure.
func (m *MockEngine) QueueError(err error) *MockEngine {
	m.responses = append(m.responses, "")
	m.errs = append(m.errs, err)
	return m
}

// Calls returns every request seen so far, in order.
func (m *MockEngine) Calls() []*Request {
	return m.calls
}

func (m *MockEngine) Initialize(ctx context.Context) error { return nil }

func (m *MockEngine) Complete(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()
	m.calls = append(m.calls, req)

	if len(m.responses) > 0 {
		text, err := m.responses[0], m.errs[0]
		m.responses, m.errs = m.responses[1:], m.errs[1:]
		if err != nil {
			return nil, err
		}
		return &Response{
			Text:       text,
			ModelID:    m.modelID,
			DurationMs: time.Since(start).Milliseconds(),
		}, nil
	}

	return &Response{
		Text:       fmt.Sprintf("Mock response for: %s", req.TaskID),
		ModelID:    m.modelID,
		DurationMs: time.Since(start).Milliseconds(),
	}, nil
}

func (m *MockEngine) Shutdown(ctx context.Context) error { return nil }
