package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobtrackr/internal/middleware"
	"jobtrackr/internal/models"
	"jobtrackr/internal/repositories"
	"jobtrackr/internal/services"
)

type ApplicationHandler struct {
	applications repositories.ApplicationRepository
	users        repositories.UserRepository
	analytics    *services.AnalyticsService
	validator    *validator.Validate
}

func NewApplicationHandler(
	applications repositories.ApplicationRepository,
	users repositories.UserRepository,
	analytics *services.AnalyticsService,
) *ApplicationHandler {
	return &ApplicationHandler{
		applications: applications,
		users:        users,
		analytics:    analytics,
		validator:    validator.New(),
	}
}

func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req models.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	now := time.Now()
	application := &models.Application{
		UserID:         userID,
		JobTitle:       req.JobTitle,
		Company:        req.Company,
		Location:       req.Location,
		JobLink:        req.JobLink,
		JobDescription: req.JobDescription,
		CurrentStatus:  models.StatusApplied,
		Salary:         req.Salary,
		Notes:          req.Notes,
		AppliedAt:      &now,
	}

	if err := h.applications.Create(application); err != nil {
		log.Printf("❌ Failed to create application: %v", err)
		return internalError(c, "Failed to create application")
	}

	change := &models.StatusChange{
		ApplicationID: application.ID,
		Status:        models.StatusApplied,
		Note:          "Application created",
		UpdatedBy:     "user",
	}
	if err := h.applications.AddStatusChange(change); err != nil {
		log.Printf("⚠️  Failed to record initial status: %v", err)
	}

	h.incrementWeeklyCount(userID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"error":       false,
		"application": application,
	})
}

// incrementWeeklyCount advances the user's weekly application goal counter.
// Counter failures never fail the application itself.
func (h *ApplicationHandler) incrementWeeklyCount(userID uuid.UUID) {
	user, err := h.users.FindByID(userID)
	if err != nil {
		return
	}
	user.JobGoals.CurrentWeekCount++
	if err := h.users.Update(user); err != nil {
		log.Printf("⚠️  Failed to update weekly goal counter: %v", err)
	}
}

func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	filter := repositories.ApplicationFilter{
		Status:  c.Query("status"),
		Company: c.Query("company"),
		SortBy:  c.Query("sort_by"),
		Order:   c.Query("order"),
	}

	applications, err := h.applications.FindByUser(userID, filter)
	if err != nil {
		return internalError(c, "Failed to load applications")
	}

	return c.JSON(fiber.Map{
		"error":        false,
		"applications": applications,
		"count":        len(applications),
	})
}

func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid application ID")
	}

	application, err := h.applications.FindByID(userID, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return notFound(c, "Application not found")
		}
		return internalError(c, "Failed to load application")
	}

	return c.JSON(fiber.Map{
		"error":       false,
		"application": application,
	})
}

func (h *ApplicationHandler) Timeline(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid application ID")
	}

	application, err := h.applications.FindByID(userID, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return notFound(c, "Application not found")
		}
		return internalError(c, "Failed to load application")
	}

	timeline := h.analytics.ApplicationTimeline(application, time.Now())

	return c.JSON(fiber.Map{
		"error":    false,
		"timeline": timeline,
	})
}

func (h *ApplicationHandler) Update(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req models.UpdateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	applicationID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return badRequest(c, "Invalid application ID")
	}

	application, err := h.applications.FindByID(userID, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return notFound(c, "Application not found")
		}
		return internalError(c, "Failed to load application")
	}

	if req.JobTitle != nil {
		application.JobTitle = *req.JobTitle
	}
	if req.Company != nil {
		application.Company = *req.Company
	}
	if req.Location != nil {
		application.Location = *req.Location
	}
	if req.JobLink != nil {
		application.JobLink = *req.JobLink
	}
	if req.JobDescription != nil {
		application.JobDescription = *req.JobDescription
	}
	if req.Salary != nil {
		application.Salary = *req.Salary
	}

	if err := h.applications.Update(application); err != nil {
		return internalError(c, "Failed to update application")
	}

	return c.JSON(fiber.Map{
		"error":       false,
		"application": application,
	})
}

func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req models.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	status := models.ApplicationStatus(req.Status)
	if !status.Valid() {
		return badRequest(c, "Invalid application status")
	}

	applicationID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return badRequest(c, "Invalid application ID")
	}

	application, err := h.applications.FindByID(userID, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return notFound(c, "Application not found")
		}
		return internalError(c, "Failed to load application")
	}

	application.CurrentStatus = status
	if err := h.applications.Update(application); err != nil {
		return internalError(c, "Failed to update status")
	}

	change := &models.StatusChange{
		ApplicationID: application.ID,
		Status:        status,
		Note:          req.Note,
		UpdatedBy:     "user",
	}
	if err := h.applications.AddStatusChange(change); err != nil {
		log.Printf("⚠️  Failed to record status change: %v", err)
	}

	return c.JSON(fiber.Map{
		"error":       false,
		"application": application,
	})
}

func (h *ApplicationHandler) AddNotes(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req models.AddNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	applicationID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return badRequest(c, "Invalid application ID")
	}

	application, err := h.applications.FindByID(userID, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return notFound(c, "Application not found")
		}
		return internalError(c, "Failed to load application")
	}

	application.Notes = req.Notes
	if err := h.applications.Update(application); err != nil {
		return internalError(c, "Failed to save notes")
	}

	return c.JSON(fiber.Map{
		"error":       false,
		"application": application,
	})
}

func (h *ApplicationHandler) AddReminder(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req models.AddReminderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	applicationID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return badRequest(c, "Invalid application ID")
	}

	if _, err := h.applications.FindByID(userID, applicationID); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return notFound(c, "Application not found")
		}
		return internalError(c, "Failed to load application")
	}

	reminder := &models.Reminder{
		ApplicationID: applicationID,
		DueDate:       req.DueDate,
		Title:         req.Title,
	}
	if err := h.applications.AddReminder(reminder); err != nil {
		return internalError(c, "Failed to add reminder")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"error":    false,
		"reminder": reminder,
	})
}

func (h *ApplicationHandler) UpdateReminderStatus(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid application ID")
	}

	var req models.UpdateReminderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	reminderID, err := uuid.Parse(req.ReminderID)
	if err != nil {
		return badRequest(c, "Invalid reminder ID")
	}

	if _, err := h.applications.FindByID(userID, applicationID); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return notFound(c, "Application not found")
		}
		return internalError(c, "Failed to load application")
	}

	if err := h.applications.UpdateReminder(applicationID, reminderID, req.IsCompleted); err != nil {
		if errors.Is(err, repositories.ErrReminderNotFound) {
			return notFound(c, "Reminder not found")
		}
		return internalError(c, "Failed to update reminder")
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Reminder updated",
	})
}

func (h *ApplicationHandler) Delete(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid application ID")
	}

	if err := h.applications.Delete(userID, applicationID); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return notFound(c, "Application not found")
		}
		return internalError(c, "Failed to delete application")
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Application deleted",
	})
}
