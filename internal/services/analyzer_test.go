package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	analyzer := NewContentAnalyzer()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "technical terms lowercased and deduplicated",
			input:    "We use Python and PYTHON with Docker. Python is great.",
			expected: []string{"python", "docker"},
		},
		{
			name:     "multi-word terms",
			input:    "Experience with machine learning and project management required.",
			expected: []string{"machine learning", "project management"},
		},
		{
			name:     "no keywords",
			input:    "We sell handmade wooden furniture.",
			expected: nil,
		},
		{
			name:     "order follows category then first appearance",
			input:    "leadership matters, also SQL and AWS knowledge",
			expected: []string{"sql", "aws", "leadership"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, analyzer.ExtractKeywords(tt.input))
		})
	}
}

func TestExtractKeywordsDeterministic(t *testing.T) {
	analyzer := NewContentAnalyzer()
	input := "Python, JavaScript, AWS, machine learning, leadership and agile teamwork"

	first := analyzer.ExtractKeywords(input)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, analyzer.ExtractKeywords(input))
	}
}

func TestCalculateSkillMatch(t *testing.T) {
	analyzer := NewContentAnalyzer()

	t.Run("partial match rounds to nearest percent", func(t *testing.T) {
		job := "Requires JavaScript, Python and AWS"
		resume := "Built services in JavaScript and Python"

		match := analyzer.CalculateSkillMatch(resume, job)
		assert.Equal(t, 3, match.TotalRequired)
		assert.Equal(t, 2, match.Matched)
		assert.Equal(t, 67, match.Percentage)
		assert.Equal(t, []string{"javascript", "python"}, match.MatchedSkills)
		assert.Equal(t, []string{"aws"}, match.MissingSkills)
	})

	t.Run("no extractable job keywords yields zero", func(t *testing.T) {
		match := analyzer.CalculateSkillMatch("Python expert", "We need a friendly barista")
		assert.Equal(t, 0, match.TotalRequired)
		assert.Equal(t, 0, match.Percentage)
		assert.Empty(t, match.MatchedSkills)
		assert.Empty(t, match.MissingSkills)
	})

	t.Run("full match", func(t *testing.T) {
		job := "Docker and Git required"
		resume := "Daily work with Docker and Git"

		match := analyzer.CalculateSkillMatch(resume, job)
		assert.Equal(t, 100, match.Percentage)
		assert.Empty(t, match.MissingSkills)
	})
}

func TestExtractCompanyInfo(t *testing.T) {
	analyzer := NewContentAnalyzer()

	tests := []struct {
		name           string
		jobDescription string
		wantIndustry   string
		wantValues     []string
	}{
		{
			name:           "healthcare takes priority over finance",
			jobDescription: "Medical software for banking-adjacent healthcare finance clients",
			wantIndustry:   "healthcare",
			wantValues:     []string{},
		},
		{
			name:           "defaults to technology",
			jobDescription: "Build cool software",
			wantIndustry:   "technology",
			wantValues:     []string{},
		},
		{
			name:           "at most three values in order",
			jobDescription: "We value innovation, collaboration, integrity and excellence",
			wantIndustry:   "technology",
			wantValues:     []string{"innovation", "collaboration", "integrity"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := analyzer.ExtractCompanyInfo("Acme", tt.jobDescription)
			assert.Equal(t, tt.wantIndustry, info.Industry)
			assert.Equal(t, tt.wantValues, info.Values)
		})
	}
}

func TestGenerateDynamicScore(t *testing.T) {
	analyzer := NewContentAnalyzer()
	job := "Looking for JavaScript and Python skills"

	t.Run("stays within bounds", func(t *testing.T) {
		score := analyzer.GenerateDynamicScore("", "", 0)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	})

	t.Run("quantifiable achievements raise the score", func(t *testing.T) {
		plain := analyzer.GenerateDynamicScore("JavaScript developer", job, 2)
		quantified := analyzer.GenerateDynamicScore("JavaScript developer, increased revenue by 30%", job, 2)
		assert.Greater(t, quantified, plain)
	})

	t.Run("experience years are monotone up to the cap", func(t *testing.T) {
		resume := "JavaScript and Python engineer"
		previous := -1
		for years := 0; years <= 7; years++ {
			score := analyzer.GenerateDynamicScore(resume, job, years)
			assert.GreaterOrEqual(t, score, previous)
			previous = score
		}

		capped := analyzer.GenerateDynamicScore(resume, job, 7)
		beyond := analyzer.GenerateDynamicScore(resume, job, 30)
		assert.Equal(t, capped, beyond)
	})

	t.Run("exact composition", func(t *testing.T) {
		// 100% match (40) + no quantifiables (5) + short text (5) + 2 years (6)
		resume := "JavaScript and Python engineer"
		assert.Equal(t, 56, analyzer.GenerateDynamicScore(resume, job, 2))
	})
}
