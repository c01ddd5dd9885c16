package llm

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiEngine runs judgment prompts against the Gemini API.
type GeminiEngine struct {
	apiKey         string
	defaultModelID string

	initOnce sync.Once
	client   *genai.Client
	initErr  error
}

// NewGeminiEngine creates a Gemini-backed engine. The client connection is
// established on first use.
func NewGeminiEngine(apiKey, modelID string) *GeminiEngine {
	if modelID == "" {
		modelID = DefaultGeminiModel
	}
	return &GeminiEngine{
		apiKey:         apiKey,
		defaultModelID: modelID,
	}
}

// Initialize validates configuration. The API client itself is created
// lazily because genai.NewClient needs a context.
func (e *GeminiEngine) Initialize(ctx context.Context) error {
	if e.apiKey == "" {
		return errors.New("gemini engine requires an API key (set GEMINI_API_KEY or api_key in config)")
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// Complete implements [Engine].
func (e *GeminiEngine) Complete(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, errors.New("nil req was passed to GeminiEngine.Complete")
	}

	e.initOnce.Do(func() {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  e.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			e.initErr = fmt.Errorf("creating gemini client: %w", err)
			return
		}
		e.client = client
	})
	if e.initErr != nil {
		return nil, e.initErr
	}

	modelID := e.defaultModelID
	if req.ModelID != "" {
		modelID = req.ModelID
	}

	ctx, cancel := context.WithTimeout(ctx, req.timeout())
	defer cancel()

	start := time.Now()
	resp, err := e.client.Models.GenerateContent(ctx, modelID, genai.Text(req.Prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("gemini call for %s: %w", req.TaskID, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("gemini call for %s: nil response", req.TaskID)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("gemini call for %s: no text content in response", req.TaskID)
	}

	return &Response{
		Text:       text,
		ModelID:    modelID,
		DurationMs: time.Since(start).Milliseconds(),
	}, nil
}

// Shutdown implements [Engine]. The genai client holds no long-lived
// connections that need explicit teardown.
func (e *GeminiEngine) Shutdown(ctx context.Context) error {
	return nil
}
