package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"jobtrackr/internal/config"
	"jobtrackr/internal/models"
)

// JobSearchService queries the JSearch API for external job listings and
// salary estimates, mapping results into the local Job shape.
type JobSearchService interface {
	Search(ctx context.Context, params SearchParams) ([]models.Job, error)
	SalaryData(ctx context.Context, jobTitle, location string) (*SalaryReport, error)
	CompanyInfo(companyName string) CompanyReport
}

type SearchParams struct {
	Query      string
	Location   string
	Page       int
	JobType    string
	Skills     []string
	DatePosted string
	RemoteOnly bool
}

type SalaryReport struct {
	JobTitle        string      `json:"jobTitle"`
	Location        string      `json:"location"`
	Salary          SalaryRange `json:"salary"`
	Publisher       string      `json:"publisher,omitempty"`
	NegotiationTips []string    `json:"negotiationTips"`
}

type SalaryRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Currency string  `json:"currency"`
}

type CompanyReport struct {
	Name         string        `json:"name"`
	Overview     string        `json:"overview"`
	NewsInsights []NewsInsight `json:"newsInsights"`
	Reviews      []Review      `json:"reviews"`
}

type NewsInsight struct {
	Source      string    `json:"source"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
}

type Review struct {
	Source  string  `json:"source"`
	Rating  float64 `json:"rating"`
	Summary string  `json:"summary"`
}

type jobSearchService struct {
	apiKey string
	host   string
	client *http.Client
}

func NewJobSearchService(cfg config.JSearchConfig) JobSearchService {
	return &jobSearchService{
		apiKey: cfg.APIKey,
		host:   cfg.Host,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type jsearchResponse struct {
	Data []jsearchJob `json:"data"`
}

type jsearchJob struct {
	JobID             string   `json:"job_id"`
	JobTitle          string   `json:"job_title"`
	EmployerName      string   `json:"employer_name"`
	EmployerWebsite   string   `json:"employer_website"`
	JobCity           string   `json:"job_city"`
	JobCountry        string   `json:"job_country"`
	JobEmploymentType string   `json:"job_employment_type"`
	JobApplyLink      string   `json:"job_apply_link"`
	JobDescription    string   `json:"job_description"`
	JobIsRemote       bool     `json:"job_is_remote"`
	JobPostedAt       string   `json:"job_posted_at_datetime_utc"`
	JobMinSalary      float64  `json:"job_min_salary"`
	JobMaxSalary      float64  `json:"job_max_salary"`
	JobSalaryCurrency string   `json:"job_salary_currency"`
}

type jsearchSalaryResponse struct {
	Data []struct {
		MinSalary      float64 `json:"min_salary"`
		MaxSalary      float64 `json:"max_salary"`
		MedianSalary   float64 `json:"median_salary"`
		SalaryCurrency string  `json:"salary_currency"`
		PublisherName  string  `json:"publisher_name"`
	} `json:"data"`
}

func (s *jobSearchService) get(ctx context.Context, path string, params url.Values, target interface{}) error {
	if s.apiKey == "" {
		return fmt.Errorf("job search API key not configured")
	}

	endpoint := fmt.Sprintf("https://%s%s?%s", s.host, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build job search request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", s.apiKey)
	req.Header.Set("X-RapidAPI-Host", s.host)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("job search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("job search API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode job search response: %w", err)
	}

	return nil
}

func (s *jobSearchService) Search(ctx context.Context, params SearchParams) ([]models.Job, error) {
	query := params.Query
	if query == "" {
		query = "software engineer"
	}
	if len(params.Skills) > 0 {
		query += " " + strings.Join(params.Skills, " ")
	}
	if params.JobType != "" {
		query += " " + params.JobType
	}

	location := params.Location
	if location == "" {
		location = "remote"
	}

	page := params.Page
	if page < 1 {
		page = 1
	}

	datePosted := params.DatePosted
	if datePosted == "" {
		datePosted = "month"
	}

	values := url.Values{}
	values.Set("query", fmt.Sprintf("%s in %s", query, location))
	values.Set("page", fmt.Sprintf("%d", page))
	values.Set("num_pages", "1")
	values.Set("date_posted", datePosted)
	if params.RemoteOnly {
		values.Set("remote_jobs_only", "true")
	}

	var response jsearchResponse
	if err := s.get(ctx, "/search", values, &response); err != nil {
		return nil, err
	}

	jobs := make([]models.Job, 0, len(response.Data))
	for _, raw := range response.Data {
		jobs = append(jobs, mapAPIJob(raw))
	}

	return jobs, nil
}

func (s *jobSearchService) SalaryData(ctx context.Context, jobTitle, location string) (*SalaryReport, error) {
	if location == "" {
		location = "United States"
	}

	values := url.Values{}
	values.Set("job_title", jobTitle)
	values.Set("location", location)

	var response jsearchSalaryResponse
	if err := s.get(ctx, "/estimated-salary", values, &response); err != nil {
		return nil, err
	}

	report := &SalaryReport{
		JobTitle: jobTitle,
		Location: location,
		Salary:   SalaryRange{Currency: "USD"},
	}

	if len(response.Data) > 0 {
		data := response.Data[0]
		report.Salary = SalaryRange{
			Min:      data.MinSalary,
			Max:      data.MaxSalary,
			Median:   data.MedianSalary,
			Currency: data.SalaryCurrency,
		}
		if report.Salary.Currency == "" {
			report.Salary.Currency = "USD"
		}
		report.Publisher = data.PublisherName
	}

	report.NegotiationTips = negotiationTips(report.Salary)

	return report, nil
}

// CompanyInfo returns locally synthesized insight placeholders; dedicated
// news and review API integrations are not wired up.
func (s *jobSearchService) CompanyInfo(companyName string) CompanyReport {
	return CompanyReport{
		Name:     companyName,
		Overview: fmt.Sprintf("Information about %s", companyName),
		NewsInsights: []NewsInsight{
			{
				Source:      "TechCrunch",
				Title:       fmt.Sprintf("Latest news about %s", companyName),
				URL:         "#",
				PublishedAt: time.Now(),
			},
		},
		Reviews: []Review{
			{
				Source:  "Glassdoor",
				Rating:  4.2,
				Summary: fmt.Sprintf("Employee reviews for %s", companyName),
			},
		},
	}
}

var jobTypeMap = map[string]string{
	"FULLTIME":   "Full-time",
	"PARTTIME":   "Part-time",
	"CONTRACTOR": "Contract",
	"INTERN":     "Internship",
}

func mapJobType(apiJobType string) string {
	if mapped, ok := jobTypeMap[apiJobType]; ok {
		return mapped
	}
	return "Full-time"
}

func mapAPIJob(raw jsearchJob) models.Job {
	location := raw.JobCity
	if location == "" {
		location = raw.JobCountry
	}

	workMode := "On-site"
	if raw.JobIsRemote {
		workMode = "Remote"
	}

	currency := raw.JobSalaryCurrency
	if currency == "" {
		currency = "USD"
	}

	job := models.Job{
		Title:           raw.JobTitle,
		CompanyName:     raw.EmployerName,
		CompanyWebsite:  raw.EmployerWebsite,
		CompanyLocation: location,
		JobType:         mapJobType(raw.JobEmploymentType),
		Active:          true,
		Source:          "API",
		URL:             raw.JobApplyLink,
		Description:     raw.JobDescription,
		Requirements:    extractRequirements(raw.JobDescription),
		WorkMode:        workMode,
		Tags:            extractTags(raw.JobDescription),
		SalaryMin:       raw.JobMinSalary,
		SalaryMax:       raw.JobMaxSalary,
		SalaryCurrency:  currency,
	}

	if posted, err := time.Parse(time.RFC3339, raw.JobPostedAt); err == nil {
		job.PostedDate = &posted
	}

	return job
}

// requirementPatterns match requirement-looking sentence fragments, one
// pattern per trigger keyword, each running to the end of the sentence.
var requirementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)experience[^.]*`),
	regexp.MustCompile(`(?i)skills[^.]*`),
	regexp.MustCompile(`(?i)required[^.]*`),
	regexp.MustCompile(`(?i)must have[^.]*`),
	regexp.MustCompile(`(?i)proficient[^.]*`),
}

// extractRequirements pulls requirement-looking sentences out of a job
// description. Simple keyword heuristics, capped at five entries.
func extractRequirements(description string) []string {
	if description == "" {
		return nil
	}

	var requirements []string
	for _, re := range requirementPatterns {
		requirements = append(requirements, re.FindAllString(description, 3)...)
	}

	if len(requirements) > 5 {
		requirements = requirements[:5]
	}
	return requirements
}

var tagSkills = []string{
	"JavaScript", "Python", "Java", "React", "Node.js", "SQL", "MongoDB",
	"AWS", "Docker", "Kubernetes", "Machine Learning", "AI", "DevOps",
	"Angular", "Vue.js", "PHP", "C++", "C#", ".NET", "Ruby", "Go",
}

func extractTags(description string) []string {
	if description == "" {
		return nil
	}

	descriptionLower := strings.ToLower(description)
	var tags []string
	for _, skill := range tagSkills {
		if strings.Contains(descriptionLower, strings.ToLower(skill)) {
			tags = append(tags, skill)
			if len(tags) == 10 {
				break
			}
		}
	}
	return tags
}

func negotiationTips(salary SalaryRange) []string {
	tips := []string{
		"Research market rates for your role and location",
		"Highlight your unique skills and achievements",
		"Consider the total compensation package, not just base salary",
		"Practice your negotiation conversation beforehand",
		"Be prepared to justify your ask with concrete examples",
	}

	if salary.Median > 0 {
		tips = append([]string{
			fmt.Sprintf("The median salary for this role is %s %.0f", salary.Currency, salary.Median),
		}, tips...)
	}

	return tips
}
