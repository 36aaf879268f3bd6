package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"jobtrackr/internal/middleware"
	"jobtrackr/internal/repositories"
	"jobtrackr/internal/services"
)

type AnalyticsHandler struct {
	applications repositories.ApplicationRepository
	users        repositories.UserRepository
	analytics    *services.AnalyticsService
}

func NewAnalyticsHandler(
	applications repositories.ApplicationRepository,
	users repositories.UserRepository,
	analytics *services.AnalyticsService,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		applications: applications,
		users:        users,
		analytics:    analytics,
	}
}

// Stats returns aggregate application statistics over an optional period
// (week, month, year, default all).
func (h *AnalyticsHandler) Stats(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	applications, err := h.applications.FindByUser(userID, repositories.ApplicationFilter{})
	if err != nil {
		return internalError(c, "Failed to load applications")
	}

	stats := h.analytics.ApplicationStats(applications, c.Query("period", "all"), time.Now())

	return c.JSON(fiber.Map{
		"error": false,
		"stats": stats,
	})
}

func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	user, err := h.users.FindByID(userID)
	if err != nil {
		return notFound(c, "User not found")
	}

	applications, err := h.applications.FindByUser(userID, repositories.ApplicationFilter{})
	if err != nil {
		return internalError(c, "Failed to load applications")
	}

	summary := h.analytics.DashboardSummary(applications, user.JobGoals, time.Now())

	return c.JSON(fiber.Map{
		"error":     false,
		"dashboard": summary,
	})
}
