package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrackr/internal/config"
)

func TestNewGenerationGatewayFallbackOnly(t *testing.T) {
	fallback := newFallback()
	gateway, err := NewGenerationGateway(config.GeminiConfig{Model: "gemini-2.5-flash"}, fallback)
	require.NoError(t, err)
	require.NotNil(t, gateway)
}

func TestGenerateFallbackOnlyMode(t *testing.T) {
	fallback := newFallback()
	gateway, err := NewGenerationGateway(config.GeminiConfig{}, fallback)
	require.NoError(t, err)

	prompt := "POSITION: Engineer\nSkills: Go, SQL"

	t.Run("serves deterministic fallback output", func(t *testing.T) {
		output := gateway.Generate(context.Background(), TaskCoverLetter, prompt, 800)
		assert.Equal(t, fallback.Generate(TaskCoverLetter, prompt), output)
	})

	t.Run("every task kind yields usable output", func(t *testing.T) {
		kinds := []TaskKind{
			TaskGeneric, TaskResumeAnalysis, TaskCoverLetter,
			TaskInterviewQuestions, TaskSuccessProbability,
		}
		for _, kind := range kinds {
			output := gateway.Generate(context.Background(), kind, prompt, 800)
			assert.Greater(t, len(output), minUsableLength, "kind %s", kind)
		}
	})
}
