package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	copilot "github.com/github/copilot-sdk/go"
)

// CopilotEngine runs judgment prompts through the GitHub Copilot SDK using
// the logged-in user's credentials.
type CopilotEngine struct {
	defaultModelID string

	client    *copilot.Client
	startOnce sync.Once
}

// NewCopilotEngine creates a Copilot-backed engine.
//   - modelID can be blank, in which case the copilot CLI chooses its own
//     fallback model.
func NewCopilotEngine(modelID string) *CopilotEngine {
	return &CopilotEngine{
		defaultModelID: modelID,
		client: copilot.NewClient(&copilot.ClientOptions{
			LogLevel:        "error",
			AutoStart:       copilot.Bool(false),
			UseLoggedInUser: copilot.Bool(true),
		}),
	}
}

// Initialize implements [Engine].
func (e *CopilotEngine) Initialize(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// Complete implements [Engine].
func (e *CopilotEngine) Complete(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, errors.New("nil req was passed to CopilotEngine.Complete")
	}

	var startErr error
	e.startOnce.Do(func() {
		// The client has an autostart feature but it misbehaves when invoked
		// from separate goroutines, so start it explicitly once.
		startErr = e.client.Start(ctx)
	})
	if startErr != nil {
		return nil, fmt.Errorf("copilot failed to start: %w", startErr)
	}

	modelID := e.defaultModelID
	if req.ModelID != "" {
		modelID = req.ModelID
	}

	ctx, cancel := context.WithTimeout(ctx, req.timeout())
	defer cancel()

	start := time.Now()

	session, err := e.client.CreateSession(ctx, &copilot.SessionConfig{
		Model:     modelID,
		Streaming: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	var parts []string
	unsubscribe := session.On(func(event copilot.SessionEvent) {
		if event.Type == copilot.AssistantMessage && event.Data.Content != nil {
			parts = append(parts, *event.Data.Content)
		}
	})
	defer unsubscribe()

	if _, err := session.SendAndWait(ctx, copilot.MessageOptions{Prompt: req.Prompt}); err != nil {
		return nil, fmt.Errorf("copilot call for %s: %w", req.TaskID, err)
	}

	text := strings.TrimSpace(strings.Join(parts, "\n"))
	if text == "" {
		return nil, fmt.Errorf("copilot call for %s: empty response", req.TaskID)
	}

	return &Response{
		Text:       text,
		ModelID:    modelID,
		DurationMs: time.Since(start).Milliseconds(),
	}, nil
}

// Shutdown implements [Engine].
func (e *CopilotEngine) Shutdown(ctx context.Context) error {
	if err := e.client.Stop(); err != nil {
		// Log but continue; nothing actionable for the caller.
		slog.Info("failed to stop copilot client", "error", err)
	}
	return nil
}
