package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewSelectsEngineByType(t *testing.T) {
	engine, err := New(EngineGemini, Options{APIKey: "k"})
	require.NoError(t, err)
	require.IsType(t, &GeminiEngine{}, engine)

	engine, err = New(EngineCopilot, Options{})
	require.NoError(t, err)
	require.IsType(t, &CopilotEngine{}, engine)

	engine, err = New(EngineMock, Options{})
	require.NoError(t, err)
	require.IsType(t, &MockEngine{}, engine)

	// Gemini is the default.
	engine, err = New("", Options{APIKey: "k"})
	require.NoError(t, err)
	require.IsType(t, &GeminiEngine{}, engine)

	_, err = New("clippy", Options{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "clippy")
}

func TestGeminiInitializeRequiresAPIKey(t *testing.T) {
	engine := NewGeminiEngine("", "")
	err := engine.Initialize(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestRequestTimeoutDefault(t *testing.T) {
	req := &Request{}
	require.Equal(t, DefaultTimeout, req.timeout())

	req.Timeout = 5 * time.Second
	require.Equal(t, 5*time.Second, req.timeout())
}

func TestMockEngineFallbackResponse(t *testing.T) {
	engine := NewMockEngine("")

	resp, err := engine.Complete(context.Background(), &Request{TaskID: "evaluate/x"})
	require.NoError(t, err)
	require.Contains(t, resp.Text, "evaluate/x")
	require.Equal(t, "mock-model", resp.ModelID)
	require.Len(t, engine.Calls(), 1)
}
