// Package ai wraps the hosted generative-text provider behind three
// fixed request/response adapters: petition drafting, court-status
// simulation and brief summarization. Each adapter validates its input
// schema, renders a fixed prompt, performs a single non-streaming call
// and maps any provider failure to ErrGenerationFailed. There are no
// retries and no caching.
package ai

import (
	"context"
	"errors"
)

var (
	// ErrInvalidInput marks a payload that fails an adapter's schema.
	ErrInvalidInput = errors.New("invalid generation input")
	// ErrGenerationFailed is the only error surfaced for provider
	// failures; provider internals never propagate past this package.
	ErrGenerationFailed = errors.New("text generation failed")
)

// Generator performs one prompt/response round trip against the hosted
// model using the given API credential. Implemented by GeminiGenerator
// in production and by fakes in tests.
type Generator interface {
	Generate(ctx context.Context, apiKey, prompt string) (string, error)
}
