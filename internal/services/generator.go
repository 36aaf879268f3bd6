package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"jobtrackr/internal/config"
)

// Upstream output at or below this trimmed length is treated as a failed
// generation and replaced by fallback output.
const minUsableLength = 30

const maxOutputTokens = 800

// GenerationService produces text for a prompt. The contract guarantees a
// usable result: upstream failures are absorbed and replaced by the
// deterministic fallback generator, never surfaced to the caller.
type GenerationService interface {
	Generate(ctx context.Context, kind TaskKind, prompt string, maxTokens int32) string
}

type generationGateway struct {
	client   *genai.Client
	model    string
	fallback *FallbackGenerator
}

// NewGenerationGateway builds the gateway from explicit configuration. An
// empty API key selects fallback-only mode: every call is served locally
// with no network attempt.
func NewGenerationGateway(cfg config.GeminiConfig, fallback *FallbackGenerator) (GenerationService, error) {
	if cfg.APIKey == "" {
		log.Println("⚠️  No generation API key configured, running in fallback-only mode")
		return &generationGateway{model: cfg.Model, fallback: fallback}, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	return &generationGateway{
		client:   client,
		model:    cfg.Model,
		fallback: fallback,
	}, nil
}

func (g *generationGateway) Generate(ctx context.Context, kind TaskKind, prompt string, maxTokens int32) string {
	if g.client == nil {
		return g.fallback.Generate(kind, prompt)
	}

	if maxTokens > maxOutputTokens {
		maxTokens = maxOutputTokens
	}

	temperature := float32(0.7)
	topP := float32(0.9)
	genConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		TopP:            &topP,
		MaxOutputTokens: maxTokens,
	}

	// Single attempt, no retry: any failure degrades to the fallback.
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), genConfig)
	if err != nil {
		log.Printf("⚠️  Generation API error for %s: %v. Using fallback.", kind, err)
		return g.fallback.Generate(kind, prompt)
	}
	if resp == nil {
		log.Printf("⚠️  Generation API returned nil response for %s. Using fallback.", kind)
		return g.fallback.Generate(kind, prompt)
	}

	text := strings.TrimSpace(resp.Text())
	if len(text) <= minUsableLength {
		log.Printf("⚠️  Generation output too short for %s (%d chars). Using fallback.", kind, len(text))
		return g.fallback.Generate(kind, prompt)
	}

	return text
}
