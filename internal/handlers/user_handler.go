package handlers

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"jobtrackr/internal/middleware"
	"jobtrackr/internal/models"
	"jobtrackr/internal/repositories"
	"jobtrackr/internal/services"
)

type UserHandler struct {
	users     repositories.UserRepository
	storage   services.StorageService
	validator *validator.Validate
}

func NewUserHandler(users repositories.UserRepository, storage services.StorageService) *UserHandler {
	return &UserHandler{
		users:     users,
		storage:   storage,
		validator: validator.New(),
	}
}

func (h *UserHandler) currentUser(c *fiber.Ctx) (*models.User, error) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return nil, c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   true,
			"message": "Authentication required",
		})
	}

	user, err := h.users.FindByID(userID)
	if err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   true,
			"message": "User not found",
		})
	}
	return user, nil
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	user, err := h.currentUser(c)
	if user == nil {
		return err
	}

	return c.JSON(fiber.Map{
		"error": false,
		"user":  user,
	})
}

type updatePersonalInfoRequest struct {
	Name                string `json:"name"`
	Email               string `json:"email" validate:"omitempty,email"`
	ProfessionalSummary string `json:"professional_summary"`
	CurrentPassword     string `json:"current_password"`
	NewPassword         string `json:"new_password" validate:"omitempty,min=8"`
}

func (h *UserHandler) UpdatePersonalInfo(c *fiber.Ctx) error {
	user, errResp := h.currentUser(c)
	if user == nil {
		return errResp
	}

	var req updatePersonalInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": err.Error(),
		})
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.ProfessionalSummary != "" {
		user.ProfessionalSummary = req.ProfessionalSummary
	}

	if req.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   true,
				"message": "Current password is incorrect",
			})
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   true,
				"message": "Failed to process password",
			})
		}
		user.Password = string(hashed)
	}

	if err := h.users.Update(user); err != nil {
		log.Printf("❌ Failed to update user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to update profile",
		})
	}

	return c.JSON(fiber.Map{
		"error": false,
		"user":  user,
	})
}

type skillsRequest struct {
	Skills []string `json:"skills"`
	Skill  string   `json:"skill"`
}

func (h *UserHandler) SetSkills(c *fiber.Ctx) error {
	user, errResp := h.currentUser(c)
	if user == nil {
		return errResp
	}

	var req skillsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request body",
		})
	}

	user.Skills = req.Skills
	if err := h.users.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to update skills",
		})
	}

	return c.JSON(fiber.Map{
		"error":  false,
		"skills": user.Skills,
	})
}

func (h *UserHandler) AddSkill(c *fiber.Ctx) error {
	user, errResp := h.currentUser(c)
	if user == nil {
		return errResp
	}

	var req skillsRequest
	if err := c.BodyParser(&req); err != nil || req.Skill == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Skill is required",
		})
	}

	for _, existing := range user.Skills {
		if existing == req.Skill {
			return c.JSON(fiber.Map{
				"error":  false,
				"skills": user.Skills,
			})
		}
	}

	user.Skills = append(user.Skills, req.Skill)
	if err := h.users.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to add skill",
		})
	}

	return c.JSON(fiber.Map{
		"error":  false,
		"skills": user.Skills,
	})
}

func (h *UserHandler) RemoveSkill(c *fiber.Ctx) error {
	user, errResp := h.currentUser(c)
	if user == nil {
		return errResp
	}

	skill := c.Params("skill")
	filtered := make([]string, 0, len(user.Skills))
	for _, existing := range user.Skills {
		if existing != skill {
			filtered = append(filtered, existing)
		}
	}

	user.Skills = filtered
	if err := h.users.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to remove skill",
		})
	}

	return c.JSON(fiber.Map{
		"error":  false,
		"skills": user.Skills,
	})
}

type experienceRequest struct {
	JobTitle    string  `json:"job_title" validate:"required"`
	Company     string  `json:"company"`
	Years       float64 `json:"years_of_experience"`
	Description string  `json:"description"`
}

func (h *UserHandler) AddExperience(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   true,
			"message": "Authentication required",
		})
	}

	var req experienceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": err.Error(),
		})
	}

	experience := &models.Experience{
		UserID:      userID,
		JobTitle:    req.JobTitle,
		Company:     req.Company,
		Years:       req.Years,
		Description: req.Description,
	}

	if err := h.users.AddExperience(experience); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to add experience",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"error":      false,
		"experience": experience,
	})
}

func (h *UserHandler) DeleteExperience(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   true,
			"message": "Authentication required",
		})
	}

	experienceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid experience ID",
		})
	}

	if err := h.users.DeleteExperience(userID, experienceID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   true,
			"message": "Experience not found",
		})
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Experience deleted",
	})
}

func (h *UserHandler) UpdatePreferences(c *fiber.Ctx) error {
	user, errResp := h.currentUser(c)
	if user == nil {
		return errResp
	}

	var preferences models.JobPreferences
	if err := c.BodyParser(&preferences); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request body",
		})
	}

	user.JobPreferences = preferences
	if err := h.users.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to update preferences",
		})
	}

	return c.JSON(fiber.Map{
		"error":       false,
		"preferences": user.JobPreferences,
	})
}

type goalsRequest struct {
	WeeklyTarget int `json:"weekly_target" validate:"gte=0"`
}

func (h *UserHandler) UpdateGoals(c *fiber.Ctx) error {
	user, errResp := h.currentUser(c)
	if user == nil {
		return errResp
	}

	var req goalsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": err.Error(),
		})
	}

	user.JobGoals.WeeklyTarget = req.WeeklyTarget
	if err := h.users.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to update goals",
		})
	}

	return c.JSON(fiber.Map{
		"error": false,
		"goals": user.JobGoals,
	})
}

// ResetWeeklyGoal zeroes the weekly application counter. The dashboard calls
// this at the start of a new tracking week.
func (h *UserHandler) ResetWeeklyGoal(c *fiber.Ctx) error {
	user, errResp := h.currentUser(c)
	if user == nil {
		return errResp
	}

	user.JobGoals.CurrentWeekCount = 0
	user.JobGoals.LastReset = time.Now()
	if err := h.users.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to reset weekly goal",
		})
	}

	return c.JSON(fiber.Map{
		"error": false,
		"goals": user.JobGoals,
	})
}

func (h *UserHandler) UploadResume(c *fiber.Ctx) error {
	return h.uploadDocument(c, "resume")
}

func (h *UserHandler) UploadCoverLetter(c *fiber.Ctx) error {
	return h.uploadDocument(c, "cover_letter")
}

func (h *UserHandler) uploadDocument(c *fiber.Ctx, fileType string) error {
	user, errResp := h.currentUser(c)
	if user == nil {
		return errResp
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "No file uploaded",
		})
	}

	filename, _, err := h.storage.SaveFile(file, user.ID.String(), fileType)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": err.Error(),
		})
	}

	switch fileType {
	case "resume":
		user.Resumes = append(user.Resumes, filename)
	case "cover_letter":
		user.CoverLetters = append(user.CoverLetters, filename)
	}

	if err := h.users.Update(user); err != nil {
		h.storage.Cleanup(h.storage.GetFilePath(user.ID.String(), filename))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to save document reference",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"error":    false,
		"filename": filename,
	})
}

func (h *UserHandler) GetDocuments(c *fiber.Ctx) error {
	user, errResp := h.currentUser(c)
	if user == nil {
		return errResp
	}

	return c.JSON(fiber.Map{
		"error":         false,
		"resumes":       user.Resumes,
		"cover_letters": user.CoverLetters,
	})
}

func (h *UserHandler) DeleteDocument(c *fiber.Ctx) error {
	user, errResp := h.currentUser(c)
	if user == nil {
		return errResp
	}

	filename := c.Params("filename")

	removed := false
	filteredResumes := make([]string, 0, len(user.Resumes))
	for _, existing := range user.Resumes {
		if existing == filename {
			removed = true
			continue
		}
		filteredResumes = append(filteredResumes, existing)
	}
	filteredCoverLetters := make([]string, 0, len(user.CoverLetters))
	for _, existing := range user.CoverLetters {
		if existing == filename {
			removed = true
			continue
		}
		filteredCoverLetters = append(filteredCoverLetters, existing)
	}

	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   true,
			"message": "Document not found",
		})
	}

	user.Resumes = filteredResumes
	user.CoverLetters = filteredCoverLetters
	if err := h.users.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to delete document",
		})
	}

	if err := h.storage.DeleteFile(user.ID.String(), filename); err != nil {
		log.Printf("⚠️  Failed to remove document file %s: %v", filename, err)
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Document deleted",
	})
}

func (h *UserHandler) GetNotifications(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   true,
			"message": "Authentication required",
		})
	}

	unreadOnly := c.Query("unread") == "true"
	notifications, err := h.users.FindNotifications(userID, unreadOnly)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to load notifications",
		})
	}

	return c.JSON(fiber.Map{
		"error":         false,
		"notifications": notifications,
	})
}

func (h *UserHandler) MarkNotificationRead(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   true,
			"message": "Authentication required",
		})
	}

	notificationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid notification ID",
		})
	}

	if err := h.users.MarkNotificationRead(userID, notificationID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   true,
			"message": "Notification not found",
		})
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Notification marked as read",
	})
}
