package services

import (
	"math"
	"regexp"
	"strings"
)

// keywordPatterns are the fixed keyword categories mined from free text:
// tech stack, data/AI, process, and soft-skill terms.
var keywordPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:JavaScript|Python|Java|React|Node\.js|SQL|AWS|Docker|Git|HTML|CSS)\b`),
	regexp.MustCompile(`(?i)\b(?:machine learning|data science|AI|ML|analytics|automation)\b`),
	regexp.MustCompile(`(?i)\b(?:project management|agile|scrum|leadership|communication)\b`),
	regexp.MustCompile(`(?i)\b(?:problem solving|analytical|creative|innovative|strategic)\b`),
}

var quantifiableRe = regexp.MustCompile(`(?i)\d+%|\$\d+|increased|improved|reduced|achieved`)

var industryPatterns = []struct {
	industry string
	pattern  *regexp.Regexp
}{
	{"healthcare", regexp.MustCompile(`(?i)healthcare|medical|pharma`)},
	{"finance", regexp.MustCompile(`(?i)finance|banking|fintech`)},
	{"education", regexp.MustCompile(`(?i)education|learning|academic`)},
	{"retail", regexp.MustCompile(`(?i)retail|ecommerce|shopping`)},
}

var cultureValuesRe = regexp.MustCompile(`(?i)\b(?:innovation|collaboration|integrity|excellence|diversity|sustainability|growth|customer|quality)\b`)

// SkillMatch is the overlap between the keywords a job description requires
// and the keywords a resume contains. MatchedSkills and MissingSkills
// partition the job keyword set.
type SkillMatch struct {
	TotalRequired int      `json:"total_required"`
	Matched       int      `json:"matched"`
	Percentage    int      `json:"percentage"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

type CompanyInfo struct {
	Industry string   `json:"industry"`
	Values   []string `json:"values"`
}

type ContentAnalyzer struct{}

func NewContentAnalyzer() *ContentAnalyzer {
	return &ContentAnalyzer{}
}

// ExtractKeywords collects the distinct lowercase keyword matches in first-
// appearance order. Order is stable for a given input, which keeps the
// fallback generator deterministic.
func (a *ContentAnalyzer) ExtractKeywords(text string) []string {
	seen := make(map[string]struct{})
	var keywords []string

	for _, pattern := range keywordPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			lower := strings.ToLower(match)
			if _, ok := seen[lower]; ok {
				continue
			}
			seen[lower] = struct{}{}
			keywords = append(keywords, lower)
		}
	}

	return keywords
}

// CalculateSkillMatch treats the job description's keyword set as the
// required set and reports how much of it the resume covers. A job
// description with no extractable keywords yields a zero match.
func (a *ContentAnalyzer) CalculateSkillMatch(resumeText, jobDescription string) SkillMatch {
	jobKeywords := a.ExtractKeywords(jobDescription)
	resumeKeywords := a.ExtractKeywords(resumeText)

	inResume := make(map[string]struct{}, len(resumeKeywords))
	for _, keyword := range resumeKeywords {
		inResume[keyword] = struct{}{}
	}

	matched := []string{}
	missing := []string{}
	for _, keyword := range jobKeywords {
		if _, ok := inResume[keyword]; ok {
			matched = append(matched, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}

	percentage := 0
	if len(jobKeywords) > 0 {
		percentage = int(math.Round(float64(len(matched)) / float64(len(jobKeywords)) * 100))
	}

	return SkillMatch{
		TotalRequired: len(jobKeywords),
		Matched:       len(matched),
		Percentage:    percentage,
		MatchedSkills: matched,
		MissingSkills: missing,
	}
}

// ExtractCompanyInfo infers the industry from the job description and pulls
// out up to three culture values in order of first appearance.
func (a *ContentAnalyzer) ExtractCompanyInfo(companyName, jobDescription string) CompanyInfo {
	info := CompanyInfo{Industry: "technology", Values: []string{}}

	for _, candidate := range industryPatterns {
		if candidate.pattern.MatchString(jobDescription) {
			info.Industry = candidate.industry
			break
		}
	}

	seen := make(map[string]struct{})
	for _, match := range cultureValuesRe.FindAllString(jobDescription, -1) {
		lower := strings.ToLower(match)
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		info.Values = append(info.Values, lower)
		if len(info.Values) == 3 {
			break
		}
	}

	return info
}

// GenerateDynamicScore blends skill match, achievement quantification,
// content depth, and years of experience into a 0-100 fit score.
func (a *ContentAnalyzer) GenerateDynamicScore(resumeText, jobDescription string, experienceYears int) int {
	skillMatch := a.CalculateSkillMatch(resumeText, jobDescription)

	score := float64(skillMatch.Percentage) * 0.4

	if quantifiableRe.MatchString(resumeText) {
		score += 20
	} else {
		score += 5
	}

	if len(strings.Fields(resumeText)) > 300 {
		score += 15
	} else {
		score += 5
	}

	score += math.Min(float64(experienceYears)*3, 20)

	rounded := int(math.Round(score))
	if rounded > 100 {
		return 100
	}
	if rounded < 0 {
		return 0
	}
	return rounded
}
