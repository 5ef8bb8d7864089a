// Package llm abstracts the text-completion providers used for identifier
// resolution and profile commentary. The pipeline only depends on Provider;
// which concrete model answers is a configuration concern.
package llm

import (
	"context"
)

// Provider is the interface for all completion providers.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
	// AdaptInstructions transforms raw instructions into model-specific formats.
	AdaptInstructions(rawInstructions string) string
}
