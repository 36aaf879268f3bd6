package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newAssembler() *ResponseAssembler {
	return NewResponseAssembler(NewContentAnalyzer())
}

func TestParseStrengths(t *testing.T) {
	ra := newAssembler()

	t.Run("mines bullets from a strengths section", func(t *testing.T) {
		text := `KEY STRENGTHS:
• Strong technical background with cloud platforms
• Demonstrated leadership across engineering teams
• Consistent record of delivering projects on time
• Extra item that should be dropped by the cap

AREAS FOR IMPROVEMENT:
• something else`

		strengths := ra.ParseStrengths(text)
		assert.Len(t, strengths, 3)
		assert.Contains(t, strengths[0], "technical background")
	})

	t.Run("default when section is absent", func(t *testing.T) {
		strengths := ra.ParseStrengths("no recognizable sections at all")
		assert.Equal(t, []string{"Professional experience aligns with role requirements"}, strengths)
	})

	t.Run("short fragments filtered out", func(t *testing.T) {
		text := "Strengths: ok\n- tiny\n- A genuinely substantial strength entry here"
		strengths := ra.ParseStrengths(text)
		for _, s := range strengths {
			assert.Greater(t, len(s), 10)
		}
	})
}

func TestParseImprovements(t *testing.T) {
	ra := newAssembler()

	t.Run("default when section is absent", func(t *testing.T) {
		improvements := ra.ParseImprovements("nothing useful")
		assert.Equal(t, []string{"Add more specific examples of achievements"}, improvements)
	})

	t.Run("strips list numbering", func(t *testing.T) {
		text := `AREAS FOR IMPROVEMENT:
1. Add measurable outcomes to experience bullets
2. Incorporate role-specific terminology

RECOMMENDATIONS:`
		improvements := ra.ParseImprovements(text)
		assert.NotEmpty(t, improvements)
		for _, item := range improvements {
			assert.NotRegexp(t, `^\d`, item)
		}
	})
}

func TestMatchLevel(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{95, "Excellent"},
		{80, "Excellent"},
		{79, "Good"},
		{65, "Good"},
		{64, "Fair"},
		{50, "Fair"},
		{49, "Needs Improvement"},
		{0, "Needs Improvement"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, matchLevel(tt.score), "score %d", tt.score)
	}
}

func TestBuildResumeAnalysis(t *testing.T) {
	ra := newAssembler()
	job := "Requires JavaScript, Python and AWS experience"
	resume := "Senior developer with JavaScript and Python, increased throughput by 40%"

	analysis := ra.BuildResumeAnalysis(resume, job, "raw generated analysis text")

	assert.Equal(t, 67, analysis.Summary.SkillMatchPercentage)
	assert.Equal(t, analysis.Summary.MatchLevel, matchLevel(analysis.Summary.OverallScore))
	assert.Equal(t, []string{"javascript", "python"}, analysis.SkillAnalysis.MatchedKeywords)
	assert.Equal(t, []string{"aws"}, analysis.SkillAnalysis.MissingKeywords)
	assert.Equal(t, "raw generated analysis text", analysis.RawAnalysis)
	assert.Len(t, analysis.Recommendations, 2)
	assert.NotEmpty(t, analysis.Strengths)
	assert.NotEmpty(t, analysis.ImprovementAreas)
}

func TestBuildResumeAnalysisKeyMessage(t *testing.T) {
	ra := newAssembler()

	t.Run("strong match message above threshold", func(t *testing.T) {
		analysis := ra.BuildResumeAnalysis(
			"JavaScript Python AWS developer",
			"JavaScript, Python and AWS needed",
			"",
		)
		assert.Contains(t, analysis.Summary.KeyMessage, "Strong match with 100%")
	})

	t.Run("generic message below threshold", func(t *testing.T) {
		analysis := ra.BuildResumeAnalysis(
			"JavaScript developer",
			"JavaScript, Python and AWS needed",
			"",
		)
		assert.Equal(t, "Good foundation with opportunities to strengthen skill alignment", analysis.Summary.KeyMessage)
	})
}

func TestBuildCoverLetter(t *testing.T) {
	ra := newAssembler()
	job := "We value innovation and collaboration. JavaScript and SQL in a fintech setting."

	result := ra.BuildCoverLetter("Engineer", "Acme", job, "generated letter body")

	assert.Equal(t, "generated letter body", result.CoverLetter)
	assert.Equal(t, "finance", result.CompanyInsights.Industry)
	assert.Equal(t, []string{"innovation", "collaboration"}, result.CompanyInsights.DetectedValues)
	assert.Len(t, result.KeyHighlights, 4)
	assert.Len(t, result.CustomizationTips, 4)
	assert.Contains(t, result.CustomizationTips[3], "innovation, collaboration")
}

func TestBuildInterviewPrep(t *testing.T) {
	ra := newAssembler()

	t.Run("defaults applied for empty level", func(t *testing.T) {
		prep := ra.BuildInterviewPrep("Engineer", "Acme", "JavaScript role", "", "questions text")
		assert.Equal(t, "mid-level", prep.PreparationFocus.ExperienceLevel)
		assert.Equal(t, "questions text", prep.InterviewQuestions)
	})

	t.Run("non-technology industry advice", func(t *testing.T) {
		prep := ra.BuildInterviewPrep("Nurse Coordinator", "CarePlus", "healthcare scheduling", "Senior", "q")
		assert.Equal(t, "healthcare", prep.PreparationFocus.IndustryContext)

		found := false
		for _, advice := range prep.CompanySpecificAdvice {
			if advice == "Understand healthcare industry trends and challenges" {
				found = true
			}
		}
		assert.True(t, found)
	})
}

func TestBuildSuccessAnalysis(t *testing.T) {
	ra := newAssembler()
	job := "Requires JavaScript and Python"
	resume := "JavaScript and Python engineer, improved deploy times"

	t.Run("probability averages fit score and skill match", func(t *testing.T) {
		analysis := ra.BuildSuccessAnalysis(resume, job, "Acme", "BSc", 10, "detail")
		assert.Equal(t, "93%", analysis.SuccessProbability)
		assert.Equal(t, "High", analysis.ConfidenceLevel)
		assert.Equal(t, "detail", analysis.DetailedAnalysis)
	})

	t.Run("zero experience maps to neutral relevance", func(t *testing.T) {
		analysis := ra.BuildSuccessAnalysis(resume, job, "Acme", "", 0, "")
		assert.Equal(t, "50%", analysis.ScoreBreakdown.ExperienceRelevance)
		assert.Equal(t, "Not specified", analysis.ScoreBreakdown.EducationAlignment)
	})

	t.Run("experience relevance capped at 100", func(t *testing.T) {
		analysis := ra.BuildSuccessAnalysis(resume, job, "Acme", "BSc", 9, "")
		assert.Equal(t, "100%", analysis.ScoreBreakdown.ExperienceRelevance)
		assert.Equal(t, "Good", analysis.ScoreBreakdown.EducationAlignment)
	})

	t.Run("empty company falls back in actions", func(t *testing.T) {
		analysis := ra.BuildSuccessAnalysis(resume, job, "", "", 2, "")
		found := false
		for _, action := range analysis.RecommendedActions {
			if action == "Network with professionals at the target company" {
				found = true
			}
		}
		assert.True(t, found)
	})
}
