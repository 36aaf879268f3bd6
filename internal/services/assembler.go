package services

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

var (
	strengthsSectionRe    = regexp.MustCompile(`(?is)strengths?:?\s*(.*?)(?:weaknesses?|improvements?|areas|missing|\n\n|$)`)
	improvementsSectionRe = regexp.MustCompile(`(?is)(?:improvement|weakness|areas?)[\s\S]*?:(.*?)(?:recommendation|keyword|ats|\n\n|$)`)
	bulletSplitRe         = regexp.MustCompile(`[•\-*\n]`)
	listNumberRe          = regexp.MustCompile(`^\d+\.?\s*`)
)

// ResumeAnalysis is the payload of the resume-analysis endpoint.
type ResumeAnalysis struct {
	Summary          AnalysisSummary  `json:"summary"`
	SkillAnalysis    SkillAnalysis    `json:"skillAnalysis"`
	Strengths        []string         `json:"strengths"`
	ImprovementAreas []string         `json:"improvementAreas"`
	Recommendations  []Recommendation `json:"recommendations"`
	RawAnalysis      string           `json:"rawAnalysis"`
}

type AnalysisSummary struct {
	OverallScore         int    `json:"overallScore"`
	MatchLevel           string `json:"matchLevel"`
	KeyMessage           string `json:"keyMessage"`
	SkillMatchPercentage int    `json:"skillMatchPercentage"`
}

type SkillAnalysis struct {
	TotalKeywordsFound int      `json:"totalKeywordsFound"`
	MatchedKeywords    []string `json:"matchedKeywords"`
	MissingKeywords    []string `json:"missingKeywords"`
	MatchPercentage    int      `json:"matchPercentage"`
}

type Recommendation struct {
	Category string   `json:"category"`
	Priority string   `json:"priority"`
	Items    []string `json:"items"`
}

// CoverLetterResult is the payload of the cover-letter endpoint.
type CoverLetterResult struct {
	CoverLetter       string          `json:"coverLetter"`
	KeyHighlights     []string        `json:"keyHighlights"`
	CustomizationTips []string        `json:"customizationTips"`
	CompanyInsights   CompanyInsights `json:"companyInsights"`
}

type CompanyInsights struct {
	Industry         string   `json:"industry"`
	DetectedValues   []string `json:"detectedValues"`
	RecommendedFocus []string `json:"recommendedFocus"`
}

// InterviewPrep is the payload of the interview-questions endpoint.
type InterviewPrep struct {
	InterviewQuestions    string           `json:"interviewQuestions"`
	PreparationFocus      PreparationFocus `json:"preparationFocus"`
	PreparationTips       []string         `json:"preparationTips"`
	CompanySpecificAdvice []string         `json:"companySpecificAdvice"`
}

type PreparationFocus struct {
	TechnicalAreas  []string `json:"technicalAreas"`
	IndustryContext string   `json:"industryContext"`
	ExperienceLevel string   `json:"experienceLevel"`
	CompanyValues   []string `json:"companyValues"`
}

// SuccessAnalysis is the payload of the success-probability endpoint.
type SuccessAnalysis struct {
	SuccessProbability string         `json:"successProbability"`
	ConfidenceLevel    string         `json:"confidenceLevel"`
	ScoreBreakdown     ScoreBreakdown `json:"scoreBreakdown"`
	KeyStrengths       []string       `json:"keyStrengths"`
	ImprovementAreas   []string       `json:"improvementAreas"`
	RecommendedActions []string       `json:"recommendedActions"`
	DetailedAnalysis   string         `json:"detailedAnalysis"`
}

type ScoreBreakdown struct {
	SkillsMatch         string `json:"skillsMatch"`
	ExperienceRelevance string `json:"experienceRelevance"`
	OverallFit          string `json:"overallFit"`
	EducationAlignment  string `json:"educationAlignment"`
}

// ResponseAssembler combines analyzer signals with generated text into the
// final endpoint payloads.
type ResponseAssembler struct {
	analyzer *ContentAnalyzer
}

func NewResponseAssembler(analyzer *ContentAnalyzer) *ResponseAssembler {
	return &ResponseAssembler{analyzer: analyzer}
}

// parseSection mines a bullet list out of free-form generated prose. This is
// best effort: when the section regex finds nothing usable, the caller's
// default is returned instead of an error.
func parseSection(text string, sectionRe *regexp.Regexp, fallback string) []string {
	match := sectionRe.FindStringSubmatch(text)
	if match == nil {
		return []string{fallback}
	}

	var items []string
	for _, fragment := range bulletSplitRe.Split(match[1], -1) {
		fragment = strings.TrimSpace(fragment)
		if len(fragment) <= 10 {
			continue
		}
		items = append(items, listNumberRe.ReplaceAllString(fragment, ""))
		if len(items) == 3 {
			break
		}
	}

	if len(items) == 0 {
		return []string{fallback}
	}
	return items
}

func (ra *ResponseAssembler) ParseStrengths(text string) []string {
	return parseSection(text, strengthsSectionRe, "Professional experience aligns with role requirements")
}

func (ra *ResponseAssembler) ParseImprovements(text string) []string {
	return parseSection(text, improvementsSectionRe, "Add more specific examples of achievements")
}

func matchLevel(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 65:
		return "Good"
	case score >= 50:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

func (ra *ResponseAssembler) BuildResumeAnalysis(resumeText, jobDescription, aiAnalysis string) ResumeAnalysis {
	skillMatch := ra.analyzer.CalculateSkillMatch(resumeText, jobDescription)
	overallScore := ra.analyzer.GenerateDynamicScore(resumeText, jobDescription, 0)

	keyMessage := "Good foundation with opportunities to strengthen skill alignment"
	if skillMatch.Percentage >= 70 {
		keyMessage = fmt.Sprintf("Strong match with %d%% of required skills present", skillMatch.Percentage)
	}

	missing := skillMatch.MissingSkills
	if len(missing) > 8 {
		missing = missing[:8]
	}

	skillPriority := "Medium"
	if skillMatch.Percentage < 60 {
		skillPriority = "High"
	}

	var skillItems []string
	for i, skill := range skillMatch.MissingSkills {
		if i == 3 {
			break
		}
		skillItems = append(skillItems, fmt.Sprintf("Incorporate %q into your experience descriptions", skill))
	}

	return ResumeAnalysis{
		Summary: AnalysisSummary{
			OverallScore:         overallScore,
			MatchLevel:           matchLevel(overallScore),
			KeyMessage:           keyMessage,
			SkillMatchPercentage: skillMatch.Percentage,
		},
		SkillAnalysis: SkillAnalysis{
			TotalKeywordsFound: skillMatch.TotalRequired,
			MatchedKeywords:    skillMatch.MatchedSkills,
			MissingKeywords:    missing,
			MatchPercentage:    skillMatch.Percentage,
		},
		Strengths:        ra.ParseStrengths(aiAnalysis),
		ImprovementAreas: ra.ParseImprovements(aiAnalysis),
		Recommendations: []Recommendation{
			{
				Category: "Skill Enhancement",
				Priority: skillPriority,
				Items:    skillItems,
			},
			{
				Category: "Content Optimization",
				Priority: "High",
				Items: []string{
					"Add quantifiable achievements (numbers, percentages, results)",
					"Use stronger action verbs to start bullet points",
					"Tailor content to mirror job description language",
				},
			},
		},
		RawAnalysis: aiAnalysis,
	}
}

func (ra *ResponseAssembler) BuildCoverLetter(jobTitle, companyName, jobDescription, letterText string) CoverLetterResult {
	companyInfo := ra.analyzer.ExtractCompanyInfo(companyName, jobDescription)
	jobKeywords := ra.analyzer.ExtractKeywords(jobDescription)

	topSkills := jobKeywords
	if len(topSkills) > 3 {
		topSkills = topSkills[:3]
	}
	focusSkills := jobKeywords
	if len(focusSkills) > 5 {
		focusSkills = focusSkills[:5]
	}

	valuesTip := "Research company values and incorporate them naturally"
	if len(companyInfo.Values) > 0 {
		valuesTip = fmt.Sprintf("Mention alignment with company values: %s", strings.Join(companyInfo.Values, ", "))
	}

	return CoverLetterResult{
		CoverLetter: letterText,
		KeyHighlights: []string{
			fmt.Sprintf("Tailored specifically for %s at %s", jobTitle, companyName),
			fmt.Sprintf("Emphasizes relevant skills: %s", strings.Join(topSkills, ", ")),
			fmt.Sprintf("Addresses %s industry requirements", companyInfo.Industry),
			"Professional tone with personalized content",
		},
		CustomizationTips: []string{
			fmt.Sprintf("Research %s's recent projects or company news to mention", companyName),
			"Replace placeholder examples with your specific achievements",
			"Add metrics or numbers to quantify your accomplishments",
			valuesTip,
		},
		CompanyInsights: CompanyInsights{
			Industry:         companyInfo.Industry,
			DetectedValues:   companyInfo.Values,
			RecommendedFocus: focusSkills,
		},
	}
}

func (ra *ResponseAssembler) BuildInterviewPrep(jobTitle, companyName, jobDescription, experienceLevel, questionsText string) InterviewPrep {
	technicalSkills := ra.analyzer.ExtractKeywords(jobDescription)
	companyInfo := ra.analyzer.ExtractCompanyInfo(companyName, jobDescription)

	focusAreas := technicalSkills
	if len(focusAreas) > 5 {
		focusAreas = focusAreas[:5]
	}
	practiceSkills := technicalSkills
	if len(practiceSkills) > 3 {
		practiceSkills = practiceSkills[:3]
	}

	level := experienceLevel
	if level == "" {
		level = "mid-level"
	}
	starLevel := experienceLevel
	if starLevel == "" {
		starLevel = "your"
	}

	industryAdvice := "Stay updated on latest technology trends"
	if companyInfo.Industry != "technology" {
		industryAdvice = fmt.Sprintf("Understand %s industry trends and challenges", companyInfo.Industry)
	}

	return InterviewPrep{
		InterviewQuestions: questionsText,
		PreparationFocus: PreparationFocus{
			TechnicalAreas:  focusAreas,
			IndustryContext: companyInfo.Industry,
			ExperienceLevel: level,
			CompanyValues:   companyInfo.Values,
		},
		PreparationTips: []string{
			fmt.Sprintf("Research %s's recent news, products, and company culture", companyName),
			fmt.Sprintf("Prepare STAR method examples for %s level experience", starLevel),
			fmt.Sprintf("Practice explaining your experience with: %s", strings.Join(practiceSkills, ", ")),
			fmt.Sprintf("Prepare thoughtful questions about the %s role and team structure", jobTitle),
		},
		CompanySpecificAdvice: []string{
			fmt.Sprintf("Study %s's mission and values", companyName),
			industryAdvice,
			"Connect with current employees on LinkedIn if possible",
			"Prepare examples that demonstrate cultural fit",
		},
	}
}

func (ra *ResponseAssembler) BuildSuccessAnalysis(resumeText, jobDescription, companyName, education string, experienceYears int, analysisText string) SuccessAnalysis {
	skillMatch := ra.analyzer.CalculateSkillMatch(resumeText, jobDescription)
	overallScore := ra.analyzer.GenerateDynamicScore(resumeText, jobDescription, experienceYears)

	probability := int(math.Round(float64(overallScore+skillMatch.Percentage) / 2))
	if probability > 95 {
		probability = 95
	}

	confidence := "Low"
	switch {
	case probability >= 80:
		confidence = "High"
	case probability >= 60:
		confidence = "Medium"
	}

	experienceRelevance := min(experienceYears*15, 100)
	if experienceRelevance == 0 {
		experienceRelevance = 50
	}

	educationAlignment := "Not specified"
	if education != "" {
		educationAlignment = "Good"
	}

	strengths := skillMatch.MatchedSkills
	if len(strengths) > 5 {
		strengths = strengths[:5]
	}
	gaps := skillMatch.MissingSkills
	if len(gaps) > 5 {
		gaps = gaps[:5]
	}

	skillAction := "Continue strengthening your existing skill set"
	if skillMatch.Percentage < 70 {
		developSkills := skillMatch.MissingSkills
		if len(developSkills) > 3 {
			developSkills = developSkills[:3]
		}
		skillAction = fmt.Sprintf("Develop skills in: %s", strings.Join(developSkills, ", "))
	}

	networkTarget := companyName
	if networkTarget == "" {
		networkTarget = "the target company"
	}

	return SuccessAnalysis{
		SuccessProbability: fmt.Sprintf("%d%%", probability),
		ConfidenceLevel:    confidence,
		ScoreBreakdown: ScoreBreakdown{
			SkillsMatch:         fmt.Sprintf("%d%%", skillMatch.Percentage),
			ExperienceRelevance: fmt.Sprintf("%d%%", experienceRelevance),
			OverallFit:          fmt.Sprintf("%d%%", overallScore),
			EducationAlignment:  educationAlignment,
		},
		KeyStrengths:     strengths,
		ImprovementAreas: gaps,
		RecommendedActions: []string{
			skillAction,
			"Gain specific experience mentioned in the job description",
			fmt.Sprintf("Network with professionals at %s", networkTarget),
			"Prepare compelling examples that demonstrate your value proposition",
		},
		DetailedAnalysis: analysisText,
	}
}
