package services

import "fmt"

// UserProfile carries the optional candidate fields embedded into cover
// letter prompts. Missing fields are replaced with readable placeholders.
type UserProfile struct {
	Name       string
	Skills     string
	Experience string
}

// CandidateProfile carries the candidate fields for success-probability
// prompts.
type CandidateProfile struct {
	Resume          string
	Skills          string
	ExperienceYears int
	Education       string
}

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// truncate bounds free-text inputs to a fixed rune count before they are
// embedded into a template.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func (pb *PromptBuilder) BuildResumeAnalysisPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`As an expert resume analyst, provide a detailed analysis of this resume against the job requirements.

RESUME CONTENT:
%s

JOB REQUIREMENTS:
%s

Analyze and provide:
1. Overall compatibility score (0-100)
2. Top 3 specific strengths with examples from the resume
3. Top 3 improvement areas with actionable suggestions
4. Missing keywords that should be incorporated
5. ATS optimization recommendations

Focus on specific, actionable feedback rather than generic advice.`,
		truncate(resumeText, 2000), truncate(jobDescription, 1000))
}

func (pb *PromptBuilder) BuildCoverLetterPrompt(jobTitle, companyName, jobDescription string, profile UserProfile) string {
	return fmt.Sprintf(`Write a personalized cover letter for this specific role:

POSITION: %s at %s
JOB DESCRIPTION: %s

CANDIDATE PROFILE:
Name: %s
Skills: %s
Experience: %s

Create a compelling, personalized cover letter that:
1. Opens with genuine enthusiasm for this specific role and company
2. Highlights 2-3 most relevant qualifications with specific examples
3. Shows knowledge of the company/role requirements
4. Closes with a confident call to action

Make it professional yet personable, and avoid generic phrases.`,
		jobTitle, companyName, truncate(jobDescription, 800),
		orDefault(profile.Name, "[Your Name]"),
		orDefault(profile.Skills, "Professional skills and experience"),
		orDefault(profile.Experience, "Relevant professional background"))
}

func (pb *PromptBuilder) BuildInterviewQuestionsPrompt(jobTitle, companyName, jobDescription, experienceLevel string) string {
	return fmt.Sprintf(`Generate tailored interview questions for: %s at %s

JOB DESCRIPTION: %s
CANDIDATE LEVEL: %s

Create specific questions in these categories:

TECHNICAL QUESTIONS (5):
- Role-specific technical skills and knowledge
- Problem-solving scenarios relevant to the position

BEHAVIORAL QUESTIONS (5):
- Past experience examples using STAR method
- Situation-based questions for this role level

COMPANY/ROLE FIT QUESTIONS (5):
- Motivation and company alignment
- Career goals and role expectations

For each question, briefly explain what the interviewer is assessing.`,
		jobTitle, companyName,
		orDefault(truncate(jobDescription, 600), "Standard role requirements"),
		orDefault(experienceLevel, "Mid-level"))
}

func (pb *PromptBuilder) BuildSuccessAnalysisPrompt(profile CandidateProfile, jobDescription, jobTitle, companyName string) string {
	experience := "Not specified"
	if profile.ExperienceYears > 0 {
		experience = fmt.Sprintf("%d", profile.ExperienceYears)
	}

	return fmt.Sprintf(`Analyze this candidate's success probability for the specific role:

ROLE: %s at %s
JOB REQUIREMENTS: %s

CANDIDATE:
Resume: %s
Skills: %s
Experience: %s years
Education: %s

Provide detailed assessment:
1. Success probability percentage with reasoning
2. Skill match analysis (technical and soft skills)
3. Experience relevance evaluation
4. Top 3 competitive strengths
5. Top 3 areas needing improvement
6. Specific action items to increase success rate

Be realistic and provide actionable insights.`,
		jobTitle, companyName, truncate(jobDescription, 800),
		orDefault(truncate(profile.Resume, 1500), "Not provided"),
		orDefault(profile.Skills, "Not specified"),
		experience,
		orDefault(profile.Education, "Not specified"))
}
