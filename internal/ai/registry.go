package ai

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Registry owns one genai client per API key. Offices carry their own
// provider credential, so the registry is keyed by it; the registry is
// constructed once in the composition root and shared by reference —
// there is no ambient per-key client cache anywhere else.
type Registry struct {
	mu      sync.Mutex
	clients map[string]*genai.Client
}

// NewRegistry creates an empty client registry.
func NewRegistry() *Registry {
	return &Registry{clients: make(map[string]*genai.Client)}
}

// clientFor returns the cached client for the key, dialing one on
// first use.
func (r *Registry) clientFor(ctx context.Context, apiKey string) (*genai.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.clients[apiKey]; ok {
		return c, nil
	}
	c, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create generative client: %w", err)
	}
	r.clients[apiKey] = c
	return c, nil
}

// Close releases every client in the registry.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, c := range r.clients {
		c.Close()
		delete(r.clients, key)
	}
}

// GeminiGenerator implements Generator over the registry.
type GeminiGenerator struct {
	registry *Registry
	model    string
}

// NewGeminiGenerator creates a Generator that resolves clients through
// the registry and targets the given model.
func NewGeminiGenerator(registry *Registry, model string) *GeminiGenerator {
	return &GeminiGenerator{registry: registry, model: model}
}

// Generate performs a single generateContent call and returns the
// concatenated text parts of the first candidate.
func (g *GeminiGenerator) Generate(ctx context.Context, apiKey, prompt string) (string, error) {
	if apiKey == "" {
		return "", fmt.Errorf("%w: missing provider credential", ErrGenerationFailed)
	}

	client, err := g.registry.clientFor(ctx, apiKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	resp, err := client.GenerativeModel(g.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: empty response", ErrGenerationFailed)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", fmt.Errorf("%w: empty response", ErrGenerationFailed)
	}
	return out, nil
}
