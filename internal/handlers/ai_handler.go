package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"jobtrackr/internal/middleware"
	"jobtrackr/internal/models"
	"jobtrackr/internal/services"
)

// AIHandler serves the generation endpoints. Each request flows through the
// same pipeline: resolve resume text (inline or uploaded PDF), build a
// prompt, generate, then assemble the structured payload.
type AIHandler struct {
	extractor services.TextExtractor
	analyzer  *services.ContentAnalyzer
	prompts   *services.PromptBuilder
	generator services.GenerationService
	assembler *services.ResponseAssembler
	storage   services.StorageService
}

func NewAIHandler(
	extractor services.TextExtractor,
	analyzer *services.ContentAnalyzer,
	prompts *services.PromptBuilder,
	generator services.GenerationService,
	assembler *services.ResponseAssembler,
	storage services.StorageService,
) *AIHandler {
	return &AIHandler{
		extractor: extractor,
		analyzer:  analyzer,
		prompts:   prompts,
		generator: generator,
		assembler: assembler,
		storage:   storage,
	}
}

// resolveResumeText returns resume content from the inline form value or an
// uploaded PDF. The temporary upload is removed on every exit path. When the
// upload is rejected, the error response has already been written and handled
// is true; the caller must return without writing another response.
func (h *AIHandler) resolveResumeText(c *fiber.Ctx) (text string, handled bool) {
	if inline := strings.TrimSpace(c.FormValue("resumeText")); inline != "" {
		return inline, false
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return "", false
	}

	userID, ok := middleware.UserID(c)
	ownerID := "anonymous"
	if ok {
		ownerID = userID.String()
	}

	_, filePath, err := h.storage.SaveFile(file, ownerID, "temp_resume")
	if err != nil {
		badRequest(c, err.Error())
		return "", true
	}
	defer h.storage.Cleanup(filePath)

	result := h.extractor.ExtractText(filePath)
	if !result.Success {
		badRequest(c, result.Error)
		return "", true
	}

	validation := h.extractor.ValidateResumeContent(result.Text)
	if !validation.IsValid {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":      true,
			"message":    validation.Reason,
			"suggestion": validation.Suggestion,
		})
		return "", true
	}

	return result.Text, false
}

func (h *AIHandler) AnalyzeResume(c *fiber.Ctx) error {
	jobDescription := strings.TrimSpace(c.FormValue("jobDescription"))
	if jobDescription == "" {
		return badRequest(c, "Job description is required")
	}

	resumeText, handled := h.resolveResumeText(c)
	if handled {
		return nil
	}
	if resumeText == "" {
		return badRequest(c, "Resume content is required (inline text or PDF upload)")
	}

	prompt := h.prompts.BuildResumeAnalysisPrompt(resumeText, jobDescription)
	analysis := h.generator.Generate(c.UserContext(), services.TaskResumeAnalysis, prompt, 800)

	payload := h.assembler.BuildResumeAnalysis(resumeText, jobDescription, analysis)

	return c.JSON(fiber.Map{
		"error":    false,
		"analysis": payload,
	})
}

func (h *AIHandler) GenerateCoverLetter(c *fiber.Ctx) error {
	var req models.CoverLetterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if req.JobTitle == "" || req.CompanyName == "" {
		return badRequest(c, "jobTitle and companyName are required")
	}
	if req.JobDescription == "" {
		return badRequest(c, "Job description is required")
	}

	profile := services.UserProfile{
		Name:       req.UserName,
		Skills:     req.UserSkills,
		Experience: req.UserExperience,
	}

	prompt := h.prompts.BuildCoverLetterPrompt(req.JobTitle, req.CompanyName, req.JobDescription, profile)
	letter := h.generator.Generate(c.UserContext(), services.TaskCoverLetter, prompt, 800)

	payload := h.assembler.BuildCoverLetter(req.JobTitle, req.CompanyName, req.JobDescription, letter)

	return c.JSON(fiber.Map{
		"error":       false,
		"coverLetter": payload,
	})
}

func (h *AIHandler) GenerateInterviewQuestions(c *fiber.Ctx) error {
	var req models.InterviewQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if req.JobTitle == "" || req.CompanyName == "" {
		return badRequest(c, "jobTitle and companyName are required")
	}

	prompt := h.prompts.BuildInterviewQuestionsPrompt(
		req.JobTitle, req.CompanyName, req.JobDescription, req.ExperienceLevel)
	questions := h.generator.Generate(c.UserContext(), services.TaskInterviewQuestions, prompt, 800)

	payload := h.assembler.BuildInterviewPrep(
		req.JobTitle, req.CompanyName, req.JobDescription, req.ExperienceLevel, questions)

	return c.JSON(fiber.Map{
		"error":     false,
		"interview": payload,
	})
}

func (h *AIHandler) AnalyzeSuccessProbability(c *fiber.Ctx) error {
	jobDescription := strings.TrimSpace(c.FormValue("jobDescription"))
	if jobDescription == "" {
		return badRequest(c, "Job description is required")
	}

	jobTitle := c.FormValue("jobTitle", "the position")
	companyName := c.FormValue("companyName", "the company")
	skills := c.FormValue("skills")
	education := c.FormValue("education")

	experienceYears := 0
	if raw := c.FormValue("experienceYears"); raw != "" {
		years, err := strconv.Atoi(raw)
		if err != nil || years < 0 {
			return badRequest(c, "experienceYears must be a non-negative integer")
		}
		experienceYears = years
	}

	resumeText, handled := h.resolveResumeText(c)
	if handled {
		return nil
	}
	if resumeText == "" {
		return badRequest(c, "Resume content is required (inline text or PDF upload)")
	}

	profile := services.CandidateProfile{
		Resume:          resumeText,
		Skills:          skills,
		ExperienceYears: experienceYears,
		Education:       education,
	}

	prompt := h.prompts.BuildSuccessAnalysisPrompt(profile, jobDescription, jobTitle, companyName)
	analysis := h.generator.Generate(c.UserContext(), services.TaskSuccessProbability, prompt, 800)

	payload := h.assembler.BuildSuccessAnalysis(
		resumeText, jobDescription, companyName, education, experienceYears, analysis)

	return c.JSON(fiber.Map{
		"error":           false,
		"successAnalysis": payload,
	})
}
