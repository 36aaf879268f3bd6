package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRequirements(t *testing.T) {
	t.Run("empty description yields nothing", func(t *testing.T) {
		assert.Nil(t, extractRequirements(""))
	})

	t.Run("keyword sentences are captured", func(t *testing.T) {
		description := "We build payment systems. Experience with Go is expected. " +
			"Strong communication skills matter here."
		requirements := extractRequirements(description)

		assert.Len(t, requirements, 2)
		assert.Contains(t, requirements[0], "Experience with Go")
		assert.Contains(t, requirements[1], "skills matter here")
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		requirements := extractRequirements("MUST HAVE strong SQL knowledge.")
		assert.Len(t, requirements, 1)
		assert.Contains(t, requirements[0], "MUST HAVE strong SQL")
	})

	t.Run("capped at five entries", func(t *testing.T) {
		description := "Experience one. Experience two. Experience three. " +
			"Skills four. Skills five. Required six. Must have seven. Proficient eight."
		requirements := extractRequirements(description)
		assert.Len(t, requirements, 5)
	})
}

func TestExtractTags(t *testing.T) {
	t.Run("empty description yields nothing", func(t *testing.T) {
		assert.Nil(t, extractTags(""))
	})

	t.Run("known skills surface with canonical casing", func(t *testing.T) {
		tags := extractTags("Looking for someone fluent in python, React and aws.")
		assert.Equal(t, []string{"Python", "React", "AWS"}, tags)
	})

	t.Run("capped at ten tags", func(t *testing.T) {
		description := "JavaScript Python Java React Node.js SQL MongoDB AWS " +
			"Docker Kubernetes Machine Learning DevOps Angular"
		tags := extractTags(description)
		assert.Len(t, tags, 10)
	})
}
