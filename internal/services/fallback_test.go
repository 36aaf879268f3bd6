package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newFallback() *FallbackGenerator {
	return NewFallbackGenerator(NewContentAnalyzer())
}

func TestTaskKindString(t *testing.T) {
	assert.Equal(t, "resume_analysis", TaskResumeAnalysis.String())
	assert.Equal(t, "cover_letter", TaskCoverLetter.String())
	assert.Equal(t, "interview_questions", TaskInterviewQuestions.String())
	assert.Equal(t, "success_probability", TaskSuccessProbability.String())
	assert.Equal(t, "generic", TaskGeneric.String())
}

func TestExtractPromptInfo(t *testing.T) {
	t.Run("fields mined from prompt", func(t *testing.T) {
		prompt := "POSITION: Backend Engineer\nWrite for company Initech\nSkills: Go, SQL\nExperience: 6 years backend"
		info := extractPromptInfo(prompt)
		assert.Equal(t, "Backend Engineer", info.jobTitle)
		assert.Equal(t, "Initech", info.company)
		assert.Equal(t, "Go, SQL", info.skills)
		assert.Equal(t, "6 years backend", info.experience)
	})

	t.Run("defaults when nothing matches", func(t *testing.T) {
		info := extractPromptInfo("completely unstructured text")
		assert.Equal(t, "the position", info.jobTitle)
		assert.Equal(t, "your company", info.company)
		assert.Equal(t, "professional skills", info.skills)
		assert.Equal(t, "relevant experience", info.experience)
	})
}

func TestFallbackDeterministic(t *testing.T) {
	g := newFallback()
	prompt := "POSITION: Engineer at Acme\nSkills: Python, AWS\nExperience: 4 years"

	kinds := []TaskKind{
		TaskGeneric, TaskResumeAnalysis, TaskCoverLetter,
		TaskInterviewQuestions, TaskSuccessProbability,
	}
	for _, kind := range kinds {
		first := g.Generate(kind, prompt)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, g.Generate(kind, prompt), "kind %s must be deterministic", kind)
		}
	}
}

func TestFallbackOutputExceedsMinimumLength(t *testing.T) {
	g := newFallback()

	kinds := []TaskKind{
		TaskGeneric, TaskResumeAnalysis, TaskCoverLetter,
		TaskInterviewQuestions, TaskSuccessProbability,
	}
	for _, kind := range kinds {
		output := g.Generate(kind, "")
		assert.Greater(t, len(strings.TrimSpace(output)), minUsableLength, "kind %s", kind)
	}
}

func TestFallbackCoverLetter(t *testing.T) {
	g := newFallback()
	prompt := "POSITION: Data Analyst\nfor company DataCorp\nSkills: SQL, Python"

	letter := g.Generate(TaskCoverLetter, prompt)
	assert.Contains(t, letter, "Dear Hiring Manager")
	assert.Contains(t, letter, "Data Analyst")
	assert.Contains(t, letter, "DataCorp")
	assert.Contains(t, letter, "SQL, Python")
	assert.Contains(t, letter, "[Your Name]")
}

func TestFallbackResumeAnalysis(t *testing.T) {
	g := newFallback()

	t.Run("quantifiable prompt scores higher", func(t *testing.T) {
		quantified := g.Generate(TaskResumeAnalysis, "Python developer who increased sales by 40%")
		assert.Contains(t, quantified, "78/100")
		assert.Contains(t, quantified, "ATS OPTIMIZATION SCORE: Good")

		plain := g.Generate(TaskResumeAnalysis, "Python developer")
		assert.Contains(t, plain, "65/100")
		assert.Contains(t, plain, "ATS OPTIMIZATION SCORE: Needs Improvement")
	})

	t.Run("sections present for parser consumption", func(t *testing.T) {
		output := g.Generate(TaskResumeAnalysis, "JavaScript and SQL role")
		assert.Contains(t, output, "KEY STRENGTHS:")
		assert.Contains(t, output, "AREAS FOR IMPROVEMENT:")
		assert.Contains(t, output, "RECOMMENDATIONS:")
	})
}

func TestFallbackInterviewQuestions(t *testing.T) {
	g := newFallback()
	output := g.Generate(TaskInterviewQuestions, "POSITION: Platform Engineer\nat CloudInc")

	assert.Contains(t, output, "PLATFORM ENGINEER")
	assert.Contains(t, output, "TECHNICAL QUESTIONS:")
	assert.Contains(t, output, "BEHAVIORAL QUESTIONS")
	assert.Contains(t, output, "STAR")
}

func TestFallbackSuccessAnalysis(t *testing.T) {
	g := newFallback()

	t.Run("probability capped at 85", func(t *testing.T) {
		prompt := "Experience: 20 years\nSkills: Python, JavaScript, AWS, Docker, SQL, Git, machine learning, leadership"
		output := g.Generate(TaskSuccessProbability, prompt)
		assert.Contains(t, output, "SUCCESS PROBABILITY: 85%")
	})

	t.Run("defaults to three years when prompt has none", func(t *testing.T) {
		output := g.Generate(TaskSuccessProbability, "no structured data here")
		// 50 + 3*8 + 0 keywords = 74
		assert.Contains(t, output, "SUCCESS PROBABILITY: 74%")
	})
}
