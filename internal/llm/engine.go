// Package llm abstracts the external model call behind the Engine interface
// so every deterministic piece of the evaluator can be tested without network
// access.
package llm

import (
	"context"
	"fmt"
	"time"
)

// DefaultTimeout bounds a single judgment call unless the request overrides it.
const DefaultTimeout = 120 * time.Second

// Engine is the interface for running judgment prompts against a model.
type Engine interface {
	// Initialize sets up the engine.
	Initialize(ctx context.Context) error

	// Complete sends one prompt and returns the model's text response.
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Shutdown cleans up resources.
	Shutdown(ctx context.Context) error
}

// Request is a single judgment call.
type Request struct {
	TaskID  string // identifies the unit of work, for logs and errors
	Prompt  string
	ModelID string // overrides the engine default when set
	Timeout time.Duration
}

// Response is the raw outcome of a judgment call.
type Response struct {
	Text       string
	ModelID    string
	DurationMs int64
}

func (r *Request) timeout() time.Duration {
	if r.Timeout > 0 {
		return r.Timeout
	}
	return DefaultTimeout
}

// Engine type names accepted in config and flags.
const (
	EngineGemini  = "gemini"
	EngineCopilot = "copilot-sdk"
	EngineMock    = "mock"
)

// Options carries engine construction parameters decoded from config.
type Options struct {
	APIKey  string `mapstructure:"api_key"`
	ModelID string `mapstructure:"model"`
}

// New builds an Engine by type name.
func New(engineType string, opts Options) (Engine, error) {
	switch engineType {
	case EngineGemini, "":
		return NewGeminiEngine(opts.APIKey, opts.ModelID), nil
	case EngineCopilot:
		return NewCopilotEngine(opts.ModelID), nil
	case EngineMock:
		return NewMockEngine(opts.ModelID), nil
	default:
		return nil, fmt.Errorf("unknown engine type %q: must be %s, %s, or %s",
			engineType, EngineGemini, EngineCopilot, EngineMock)
	}
}
