package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TaskKind identifies which generation task a prompt belongs to. It travels
// alongside the prompt so the fallback path never has to sniff its own
// prompt text to decide what to render.
type TaskKind int

const (
	TaskGeneric TaskKind = iota
	TaskResumeAnalysis
	TaskCoverLetter
	TaskInterviewQuestions
	TaskSuccessProbability
)

func (k TaskKind) String() string {
	switch k {
	case TaskResumeAnalysis:
		return "resume_analysis"
	case TaskCoverLetter:
		return "cover_letter"
	case TaskInterviewQuestions:
		return "interview_questions"
	case TaskSuccessProbability:
		return "success_probability"
	default:
		return "generic"
	}
}

var (
	promptJobTitleRe   = regexp.MustCompile(`(?i)(?:position|role|job):\s*([^\n]+)`)
	promptCompanyRe    = regexp.MustCompile(`(?i)(?:company|at)\s+([^\n\s,]+)`)
	promptSkillsRe     = regexp.MustCompile(`(?i)skills?:\s*([^\n]+)`)
	promptExperienceRe = regexp.MustCompile(`(?i)experience:\s*([^\n]+)`)
	promptYearsRe      = regexp.MustCompile(`(?i)(\d+)\s*years?`)
)

type promptInfo struct {
	jobTitle   string
	company    string
	skills     string
	experience string
}

// FallbackGenerator synthesizes plausible structured text from the prompt
// alone. It is pure string formatting: no randomness, no external calls, so
// identical input always produces identical output.
type FallbackGenerator struct {
	analyzer *ContentAnalyzer
}

func NewFallbackGenerator(analyzer *ContentAnalyzer) *FallbackGenerator {
	return &FallbackGenerator{analyzer: analyzer}
}

func extractPromptInfo(prompt string) promptInfo {
	info := promptInfo{
		jobTitle:   "the position",
		company:    "your company",
		skills:     "professional skills",
		experience: "relevant experience",
	}

	if m := promptJobTitleRe.FindStringSubmatch(prompt); m != nil {
		info.jobTitle = strings.TrimSpace(m[1])
	}
	if m := promptCompanyRe.FindStringSubmatch(prompt); m != nil {
		info.company = strings.TrimSpace(m[1])
	}
	if m := promptSkillsRe.FindStringSubmatch(prompt); m != nil {
		info.skills = strings.TrimSpace(m[1])
	}
	if m := promptExperienceRe.FindStringSubmatch(prompt); m != nil {
		info.experience = strings.TrimSpace(m[1])
	}

	return info
}

func (g *FallbackGenerator) Generate(kind TaskKind, prompt string) string {
	info := extractPromptInfo(prompt)

	switch kind {
	case TaskCoverLetter:
		return g.coverLetter(info)
	case TaskResumeAnalysis:
		return g.resumeAnalysis(prompt)
	case TaskInterviewQuestions:
		return g.interviewQuestions(info)
	case TaskSuccessProbability:
		return g.successAnalysis(prompt, info)
	default:
		return g.generic(info)
	}
}

func (g *FallbackGenerator) coverLetter(info promptInfo) string {
	return fmt.Sprintf(`Dear Hiring Manager,

I am excited to apply for the %s position at %s. After reviewing the role requirements, I am confident that my background and skills make me an ideal candidate for this opportunity.

In my professional experience, I have developed strong expertise in %s. My %s has equipped me with the practical knowledge and problem-solving abilities that directly align with what you're seeking. I am particularly drawn to %s because of your reputation for innovation and commitment to excellence.

What sets me apart is my ability to combine technical proficiency with strong collaborative skills. I thrive in dynamic environments where I can contribute to meaningful projects while continuing to grow professionally. I am eager to bring my passion and dedication to your team.

I would welcome the opportunity to discuss how my background and enthusiasm can contribute to %s's continued success. Thank you for considering my application.

Best regards,
[Your Name]`,
		info.jobTitle, info.company, info.skills, info.experience, info.company, info.company)
}

func (g *FallbackGenerator) resumeAnalysis(prompt string) string {
	skillKeywords := g.analyzer.ExtractKeywords(prompt)
	hasQuantifiable := quantifiableRe.MatchString(prompt)

	score := "65"
	assessment := "good"
	if hasQuantifiable {
		score = "78"
		assessment = "strong"
	}

	strengthSkills := "Solid foundation of core competencies"
	if len(skillKeywords) > 3 {
		strengthSkills = "Strong technical skill alignment with job requirements"
	}
	strengthQuant := "Clear presentation of work history and responsibilities"
	if hasQuantifiable {
		strengthQuant = "Includes quantifiable achievements that demonstrate impact"
	}

	improveKeywords := "Further optimize keyword density for ATS systems"
	if len(skillKeywords) < 5 {
		improveKeywords = "Incorporate more industry-specific keywords from the job description"
	}
	improveQuant := "Expand on current achievements with additional context"
	if !hasQuantifiable {
		improveQuant = "Add quantifiable results and metrics to strengthen impact statements"
	}

	atsScore := "Needs Improvement"
	if hasQuantifiable {
		atsScore = "Good"
	}

	missing := skillKeywords
	if len(missing) > 5 {
		missing = missing[:5]
	}

	return fmt.Sprintf(`RESUME ANALYSIS REPORT

OVERALL ASSESSMENT: %s/100
Your resume shows %s potential for this role with several areas for optimization.

KEY STRENGTHS:
• Professional experience demonstrates relevant background in required areas
• %s
• %s

AREAS FOR IMPROVEMENT:
• %s
• %s
• Enhance alignment between experience descriptions and specific job requirements

MISSING KEYWORDS TO CONSIDER:
%s

RECOMMENDATIONS:
1. Tailor your professional summary to mirror the job description language
2. Add 2-3 specific examples of measurable achievements
3. Optimize section headers for ATS compatibility
4. Include relevant certifications or training mentioned in the job posting

ATS OPTIMIZATION SCORE: %s
Focus on standard formatting, relevant keywords, and quantifiable achievements to improve ATS performance.`,
		score, assessment, strengthSkills, strengthQuant,
		improveKeywords, improveQuant,
		strings.Join(missing, ", "), atsScore)
}

func (g *FallbackGenerator) interviewQuestions(info promptInfo) string {
	return fmt.Sprintf(`INTERVIEW PREPARATION FOR %s

TECHNICAL QUESTIONS:
1. How would you approach the core challenges described in the job posting?
2. What experience do you have with %s?
3. Can you walk me through your process for handling complex projects?
4. What tools and methodologies do you prefer for this type of work?
5. How do you stay current with industry trends and best practices?

BEHAVIORAL QUESTIONS (Use STAR Method):
1. Tell me about a time you overcame a significant professional challenge
2. Describe a situation where you had to collaborate with a difficult team member
3. Give an example of when you had to learn a new skill quickly for a project
4. Tell me about a project you're particularly proud of and why
5. Describe how you handle competing priorities and tight deadlines

COMPANY/ROLE SPECIFIC:
1. Why are you interested in working for %s?
2. How do you see yourself contributing to our team's goals?
3. Where do you see your career progressing in this role?
4. What attracts you most about this particular position?
5. What questions do you have about our company culture and team?

PREPARATION TIPS:
• Research %s's recent projects, news, and company values
• Prepare specific examples using the STAR method (Situation, Task, Action, Result)
• Practice explaining your experience with %s
• Have thoughtful questions ready about the role and company
• Review the job description thoroughly and align your responses`,
		strings.ToUpper(info.jobTitle), info.skills, info.company, info.company, info.skills)
}

func (g *FallbackGenerator) successAnalysis(prompt string, info promptInfo) string {
	skillKeywords := g.analyzer.ExtractKeywords(prompt)

	years := 3
	if m := promptYearsRe.FindStringSubmatch(prompt); m != nil {
		if parsed, err := strconv.Atoi(m[1]); err == nil {
			years = parsed
		}
	}

	probability := min(50+years*8+len(skillKeywords)*5, 85)

	strength := "moderate"
	if probability >= 70 {
		strength = "strong"
	}

	skillsScore := min(60+len(skillKeywords)*8, 90)
	skillsNote := "Core skills present with room for growth"
	if len(skillKeywords) > 3 {
		skillsNote = "Good match with role requirements"
	}

	experienceScore := min(40+years*10, 85)
	experienceNote := "Growing experience base"
	if years >= 3 {
		experienceNote = "Solid experience level"
	}

	seniority := "Adaptability and eagerness to learn new technologies"
	if years >= 5 {
		seniority = "Senior-level experience brings valuable perspective"
	}

	topSkills := skillKeywords
	if len(topSkills) > 3 {
		topSkills = topSkills[:3]
	}

	return fmt.Sprintf(`JOB APPLICATION SUCCESS ANALYSIS

SUCCESS PROBABILITY: %d%%
Based on your profile analysis, you have a %s chance of success with targeted preparation.

SCORE BREAKDOWN:
• Skills Alignment: %d%% - %s
• Experience Relevance: %d%% - %s
• Profile Strength: %d%% - Overall competitive positioning

COMPETITIVE ADVANTAGES:
• %s experience aligns with role requirements
• Professional background demonstrates career progression
• %s

KEY IMPROVEMENT AREAS:
• Strengthen expertise in specific tools mentioned in job posting
• Build portfolio examples that demonstrate relevant capabilities
• Develop deeper knowledge of %s's industry and challenges
• Practice articulating value proposition clearly

RECOMMENDED ACTIONS:
1. Focus on highlighting your most relevant %s experience
2. Research %s's recent projects and industry positioning
3. Prepare compelling stories that demonstrate problem-solving abilities
4. Network with current employees to gain insider insights
5. Consider relevant online courses or certifications to fill skill gaps

MARKET INSIGHTS:
Industry demand for this role type is currently moderate to high, giving you good opportunities with proper preparation.`,
		probability, strength,
		skillsScore, skillsNote,
		experienceScore, experienceNote,
		probability,
		info.skills, seniority, info.company,
		strings.Join(topSkills, ", "), info.company)
}

func (g *FallbackGenerator) generic(info promptInfo) string {
	return fmt.Sprintf(`Based on the information provided, here is a comprehensive analysis tailored to your specific situation.

KEY FINDINGS:
Your profile shows strong potential for %s opportunities, particularly given your background in %s. The combination of your %s and professional capabilities creates a solid foundation for success.

STRATEGIC RECOMMENDATIONS:
1. Focus on highlighting transferable skills that directly relate to the role requirements
2. Quantify your achievements wherever possible to demonstrate concrete value
3. Research %s thoroughly to understand their specific needs and culture
4. Prepare examples that showcase both technical abilities and soft skills
5. Practice articulating your unique value proposition clearly and confidently

NEXT STEPS:
Continue to refine your approach based on specific job requirements, and consider additional skill development in areas that would strengthen your competitive position.

This analysis provides a foundation for your professional development strategy moving forward.`,
		info.jobTitle, info.skills, info.experience, info.company)
}
