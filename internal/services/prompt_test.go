package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildResumeAnalysisPrompt(t *testing.T) {
	pb := NewPromptBuilder()

	t.Run("embeds both inputs", func(t *testing.T) {
		prompt := pb.BuildResumeAnalysisPrompt("my resume text", "the job description")
		assert.Contains(t, prompt, "my resume text")
		assert.Contains(t, prompt, "the job description")
		assert.Contains(t, prompt, "RESUME CONTENT:")
		assert.Contains(t, prompt, "JOB REQUIREMENTS:")
	})

	t.Run("truncates oversized inputs", func(t *testing.T) {
		longResume := strings.Repeat("r", 3000)
		longJob := strings.Repeat("j", 2000)
		prompt := pb.BuildResumeAnalysisPrompt(longResume, longJob)

		assert.Contains(t, prompt, strings.Repeat("r", 2000))
		assert.NotContains(t, prompt, strings.Repeat("r", 2001))
		assert.Contains(t, prompt, strings.Repeat("j", 1000))
		assert.NotContains(t, prompt, strings.Repeat("j", 1001))
	})
}

func TestBuildCoverLetterPrompt(t *testing.T) {
	pb := NewPromptBuilder()

	t.Run("full profile", func(t *testing.T) {
		prompt := pb.BuildCoverLetterPrompt("Engineer", "Acme", "build things", UserProfile{
			Name:       "Jane",
			Skills:     "Go, SQL",
			Experience: "5 years backend",
		})
		assert.Contains(t, prompt, "POSITION: Engineer at Acme")
		assert.Contains(t, prompt, "Name: Jane")
		assert.Contains(t, prompt, "Skills: Go, SQL")
		assert.Contains(t, prompt, "Experience: 5 years backend")
	})

	t.Run("placeholders for missing profile fields", func(t *testing.T) {
		prompt := pb.BuildCoverLetterPrompt("Engineer", "Acme", "build things", UserProfile{})
		assert.Contains(t, prompt, "[Your Name]")
		assert.Contains(t, prompt, "Professional skills and experience")
		assert.Contains(t, prompt, "Relevant professional background")
	})
}

func TestBuildInterviewQuestionsPrompt(t *testing.T) {
	pb := NewPromptBuilder()

	t.Run("defaults", func(t *testing.T) {
		prompt := pb.BuildInterviewQuestionsPrompt("Engineer", "Acme", "", "")
		assert.Contains(t, prompt, "Standard role requirements")
		assert.Contains(t, prompt, "Mid-level")
	})

	t.Run("explicit values", func(t *testing.T) {
		prompt := pb.BuildInterviewQuestionsPrompt("Engineer", "Acme", "distributed systems", "Senior")
		assert.Contains(t, prompt, "distributed systems")
		assert.Contains(t, prompt, "CANDIDATE LEVEL: Senior")
	})
}

func TestBuildSuccessAnalysisPrompt(t *testing.T) {
	pb := NewPromptBuilder()

	t.Run("zero years reported as not specified", func(t *testing.T) {
		prompt := pb.BuildSuccessAnalysisPrompt(CandidateProfile{}, "jd", "Engineer", "Acme")
		assert.Contains(t, prompt, "Resume: Not provided")
		assert.Contains(t, prompt, "Skills: Not specified")
		assert.Contains(t, prompt, "Experience: Not specified years")
		assert.Contains(t, prompt, "Education: Not specified")
	})

	t.Run("positive years embedded", func(t *testing.T) {
		profile := CandidateProfile{
			Resume:          "resume body",
			Skills:          "Go",
			ExperienceYears: 4,
			Education:       "BSc",
		}
		prompt := pb.BuildSuccessAnalysisPrompt(profile, "jd", "Engineer", "Acme")
		assert.Contains(t, prompt, "Experience: 4 years")
		assert.Contains(t, prompt, "ROLE: Engineer at Acme")
	})
}
