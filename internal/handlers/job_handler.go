package handlers

import (
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobtrackr/internal/middleware"
	"jobtrackr/internal/models"
	"jobtrackr/internal/repositories"
	"jobtrackr/internal/services"
)

type JobHandler struct {
	jobs      repositories.JobRepository
	users     repositories.UserRepository
	search    services.JobSearchService
	validator *validator.Validate
}

func NewJobHandler(
	jobs repositories.JobRepository,
	users repositories.UserRepository,
	search services.JobSearchService,
) *JobHandler {
	return &JobHandler{
		jobs:      jobs,
		users:     users,
		search:    search,
		validator: validator.New(),
	}
}

type createJobRequest struct {
	Title            string   `json:"title" validate:"required"`
	CompanyName      string   `json:"company_name" validate:"required"`
	CompanyWebsite   string   `json:"company_website"`
	CompanyIndustry  string   `json:"company_industry"`
	CompanyLocation  string   `json:"company_location"`
	JobType          string   `json:"job_type"`
	URL              string   `json:"url"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
	SalaryMin        float64  `json:"salary_min"`
	SalaryMax        float64  `json:"salary_max"`
	SalaryCurrency   string   `json:"salary_currency"`
	WorkMode         string   `json:"work_mode"`
	Tags             []string `json:"tags"`
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req createJobRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	job := &models.Job{
		Title:            req.Title,
		CompanyName:      req.CompanyName,
		CompanyWebsite:   req.CompanyWebsite,
		CompanyIndustry:  req.CompanyIndustry,
		CompanyLocation:  req.CompanyLocation,
		JobType:          req.JobType,
		Active:           true,
		Source:           "Manual",
		URL:              req.URL,
		Description:      req.Description,
		Responsibilities: req.Responsibilities,
		Requirements:     req.Requirements,
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		SalaryCurrency:   req.SalaryCurrency,
		WorkMode:         req.WorkMode,
		Tags:             req.Tags,
	}

	if err := h.jobs.Create(job); err != nil {
		log.Printf("❌ Failed to create job: %v", err)
		return internalError(c, "Failed to create job")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"error": false,
		"job":   job,
	})
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	filter := repositories.JobFilter{
		Title:     c.Query("title"),
		Company:   c.Query("company"),
		Location:  c.Query("location"),
		JobType:   c.Query("job_type"),
		WorkMode:  c.Query("work_mode"),
		Source:    c.Query("source"),
		Tag:       c.Query("tag"),
		MinSalary: c.QueryFloat("min_salary"),
		MaxSalary: c.QueryFloat("max_salary"),
		Page:      c.QueryInt("page", 1),
		Limit:     c.QueryInt("limit", 20),
	}

	jobs, total, err := h.jobs.FindAll(filter)
	if err != nil {
		return internalError(c, "Failed to load jobs")
	}

	return c.JSON(fiber.Map{
		"error": false,
		"jobs":  jobs,
		"total": total,
		"page":  filter.Page,
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid job ID")
	}

	job, err := h.jobs.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return notFound(c, "Job not found")
		}
		return internalError(c, "Failed to load job")
	}

	return c.JSON(fiber.Map{
		"error": false,
		"job":   job,
	})
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid job ID")
	}

	if err := h.jobs.Delete(jobID); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return notFound(c, "Job not found")
		}
		return internalError(c, "Failed to delete job")
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Job deleted",
	})
}

// Search queries the external job board API with the caller's query
// parameters.
func (h *JobHandler) Search(c *fiber.Ctx) error {
	params := services.SearchParams{
		Query:      c.Query("query"),
		Location:   c.Query("location"),
		Page:       c.QueryInt("page", 1),
		JobType:    c.Query("job_type"),
		DatePosted: c.Query("date_posted"),
		RemoteOnly: c.Query("remote_only") == "true",
	}
	if skills := c.Query("skills"); skills != "" {
		params.Skills = strings.Split(skills, ",")
	}

	jobs, err := h.search.Search(c.UserContext(), params)
	if err != nil {
		log.Printf("❌ Job search failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":   true,
			"message": "Job search is currently unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"error": false,
		"jobs":  jobs,
		"count": len(jobs),
	})
}

// SearchByPreferences combines stored manual jobs with external search
// results, both seeded from the authenticated user's preferences, and ranks
// the merged set by relevance. An external API failure degrades to
// manual-only results instead of failing the request.
func (h *JobHandler) SearchByPreferences(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	user, err := h.users.FindByID(userID)
	if err != nil {
		return notFound(c, "User not found")
	}

	limit := c.QueryInt("limit", 20)
	if limit < 1 {
		limit = 20
	}

	params := services.SearchParams{
		Page:    c.QueryInt("page", 1),
		JobType: user.JobPreferences.JobType,
		Skills:  user.Skills,
	}
	manualFilter := repositories.JobFilter{
		JobType:  user.JobPreferences.JobType,
		WorkMode: user.JobPreferences.WorkMode,
		Limit:    limit / 2,
	}
	if len(user.JobPreferences.Titles) > 0 {
		params.Query = user.JobPreferences.Titles[0]
		manualFilter.Title = user.JobPreferences.Titles[0]
	}
	if len(user.JobPreferences.Locations) > 0 {
		params.Location = user.JobPreferences.Locations[0]
		manualFilter.Location = user.JobPreferences.Locations[0]
	}
	if user.JobPreferences.WorkMode == "Remote" {
		params.RemoteOnly = true
	}

	manualJobs, _, err := h.jobs.FindAll(manualFilter)
	if err != nil {
		return internalError(c, "Failed to load jobs")
	}

	apiJobs, err := h.search.Search(c.UserContext(), params)
	if err != nil {
		log.Printf("⚠️  Preference search API unavailable, serving manual jobs only: %v", err)
		apiJobs = nil
	}

	merged := rankJobsByRelevance(append(manualJobs, apiJobs...), user.JobPreferences, user.Skills)
	if len(merged) > limit {
		merged = merged[:limit]
	}

	return c.JSON(fiber.Map{
		"error": false,
		"jobs":  merged,
		"count": len(merged),
		"sources": fiber.Map{
			"manual": len(manualJobs),
			"api":    len(apiJobs),
		},
	})
}

// relevanceScore weighs a job against the user's preferences: title match
// 10, each mentioned skill 5, location match 3, job type and work mode 2
// each.
func relevanceScore(job models.Job, prefs models.JobPreferences, skills []string) int {
	score := 0

	titleLower := strings.ToLower(job.Title)
	for _, title := range prefs.Titles {
		if title != "" && strings.Contains(titleLower, strings.ToLower(title)) {
			score += 10
			break
		}
	}

	for _, skill := range skills {
		if skill == "" {
			continue
		}
		if sliceMentions(job.Tags, skill) || sliceMentions(job.Requirements, skill) {
			score += 5
		}
	}

	locationLower := strings.ToLower(job.CompanyLocation)
	for _, location := range prefs.Locations {
		if location != "" && strings.Contains(locationLower, strings.ToLower(location)) {
			score += 3
			break
		}
	}

	if prefs.JobType != "" && job.JobType == prefs.JobType {
		score += 2
	}
	if prefs.WorkMode != "" && job.WorkMode == prefs.WorkMode {
		score += 2
	}

	return score
}

func sliceMentions(items []string, target string) bool {
	targetLower := strings.ToLower(target)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item), targetLower) {
			return true
		}
	}
	return false
}

// rankJobsByRelevance orders jobs by descending relevance score, breaking
// ties with the most recent posting or creation date.
func rankJobsByRelevance(jobs []models.Job, prefs models.JobPreferences, skills []string) []models.Job {
	ranked := make([]models.Job, len(jobs))
	copy(ranked, jobs)

	sort.SliceStable(ranked, func(i, j int) bool {
		scoreI := relevanceScore(ranked[i], prefs, skills)
		scoreJ := relevanceScore(ranked[j], prefs, skills)
		if scoreI != scoreJ {
			return scoreI > scoreJ
		}
		return jobDate(ranked[i]).After(jobDate(ranked[j]))
	})

	return ranked
}

func jobDate(job models.Job) time.Time {
	if job.PostedDate != nil {
		return *job.PostedDate
	}
	return job.CreatedAt
}

// Recommendations returns stored jobs that overlap the user's skills or
// preferred titles.
func (h *JobHandler) Recommendations(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	user, err := h.users.FindByID(userID)
	if err != nil {
		return notFound(c, "User not found")
	}

	jobs, _, err := h.jobs.FindAll(repositories.JobFilter{Limit: 100})
	if err != nil {
		return internalError(c, "Failed to load jobs")
	}

	var recommended []models.Job
	for _, job := range jobs {
		if jobMatchesProfile(job, user) {
			recommended = append(recommended, job)
			if len(recommended) == 20 {
				break
			}
		}
	}

	return c.JSON(fiber.Map{
		"error": false,
		"jobs":  recommended,
		"count": len(recommended),
	})
}

func jobMatchesProfile(job models.Job, user *models.User) bool {
	titleLower := strings.ToLower(job.Title)
	for _, preferred := range user.JobPreferences.Titles {
		if preferred != "" && strings.Contains(titleLower, strings.ToLower(preferred)) {
			return true
		}
	}

	haystack := strings.ToLower(job.Description + " " + strings.Join(job.Tags, " "))
	for _, skill := range user.Skills {
		if skill != "" && strings.Contains(haystack, strings.ToLower(skill)) {
			return true
		}
	}
	return false
}

func (h *JobHandler) SalaryData(c *fiber.Ctx) error {
	jobTitle := c.Query("job_title")
	if jobTitle == "" {
		return badRequest(c, "job_title is required")
	}

	report, err := h.search.SalaryData(c.UserContext(), jobTitle, c.Query("location"))
	if err != nil {
		log.Printf("❌ Salary lookup failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":   true,
			"message": "Salary data is currently unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"error":  false,
		"salary": report,
	})
}

func (h *JobHandler) CompanyInsights(c *fiber.Ctx) error {
	companyName := c.Query("company")
	if companyName == "" {
		return badRequest(c, "company is required")
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"company": h.search.CompanyInfo(companyName),
	})
}
