package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/katahira/mekiki/internal/config"
	"github.com/katahira/mekiki/internal/llm"
)

// newEngine builds the completion engine from config plus flag overrides.
// Swapped out in tests to inject a mock engine.
var newEngine = func(cfg *config.Config, engineType, modelID string) (llm.Engine, error) {
	if engineType == "" {
		engineType = cfg.Engine.Type
	}
	if modelID == "" {
		modelID = cfg.Engine.Model
	}

	opts := llm.Options{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		ModelID: modelID,
	}
	if err := cfg.DecodeEngineOptions(&opts); err != nil {
		return nil, err
	}
	if modelID != "" {
		opts.ModelID = modelID
	}

	engine, err := llm.New(engineType, opts)
	if err != nil {
		return nil, err
	}
	if err := engine.Initialize(context.Background()); err != nil {
		return nil, fmt.Errorf("initializing %s engine: %w", engineType, err)
	}
	return engine, nil
}

// shutdownEngine gives the engine a bounded window to release its resources.
func shutdownEngine(engine llm.Engine) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = engine.Shutdown(ctx)
}

func readSkillFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading skill file %q: %w", path, err)
	}
	return string(data), nil
}

// writeOutput prints text to stdout, or to a file when outputPath is set.
func writeOutput(text, outputPath string) error {
	if outputPath == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", outputPath, err)
	}
	return nil
}
