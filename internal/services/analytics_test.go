package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrackr/internal/models"
)

func testApplication(status models.ApplicationStatus, company string, createdAt time.Time) models.Application {
	return models.Application{
		ID:            uuid.New(),
		JobTitle:      "Engineer",
		Company:       company,
		CurrentStatus: status,
		CreatedAt:     createdAt,
	}
}

func TestApplicationStats(t *testing.T) {
	analytics := NewAnalyticsService()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	applications := []models.Application{
		testApplication(models.StatusApplied, "Acme", now.AddDate(0, 0, -1)),
		testApplication(models.StatusInterviewScheduled, "Acme", now.AddDate(0, 0, -2)),
		testApplication(models.StatusOffered, "Initech", now.AddDate(0, 0, -3)),
		testApplication(models.StatusRejected, "Globex", time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)),
	}

	t.Run("all time", func(t *testing.T) {
		stats := analytics.ApplicationStats(applications, "all", now)
		assert.Equal(t, 4, stats.TotalApplications)
		assert.Equal(t, "all", stats.Period)
		assert.Equal(t, 1, stats.StatusBreakdown[string(models.StatusApplied)])
		assert.Equal(t, 1, stats.StatusBreakdown[string(models.StatusOffered)])

		// 2 of 4 reached interview or offer
		assert.Equal(t, 50.0, stats.InterviewRate)
		assert.Equal(t, 25.0, stats.OfferRate)
	})

	t.Run("week filter excludes old applications", func(t *testing.T) {
		stats := analytics.ApplicationStats(applications, "week", now)
		assert.Equal(t, 3, stats.TotalApplications)
		assert.Equal(t, 0, stats.StatusBreakdown[string(models.StatusRejected)])
	})

	t.Run("unknown period treated as all", func(t *testing.T) {
		stats := analytics.ApplicationStats(applications, "fortnight", now)
		assert.Equal(t, "all", stats.Period)
		assert.Equal(t, 4, stats.TotalApplications)
	})

	t.Run("top companies sorted by count", func(t *testing.T) {
		stats := analytics.ApplicationStats(applications, "all", now)
		require.NotEmpty(t, stats.TopCompanies)
		assert.Equal(t, "Acme", stats.TopCompanies[0].Company)
		assert.Equal(t, 2, stats.TopCompanies[0].Count)
	})

	t.Run("timeline grouped by month ascending", func(t *testing.T) {
		stats := analytics.ApplicationStats(applications, "all", now)
		require.Len(t, stats.Timeline, 2)
		assert.Equal(t, "2026-06", stats.Timeline[0].Month)
		assert.Equal(t, "2026-08", stats.Timeline[1].Month)
		assert.Equal(t, 3, stats.Timeline[1].Count)
	})

	t.Run("empty input", func(t *testing.T) {
		stats := analytics.ApplicationStats(nil, "all", now)
		assert.Equal(t, 0, stats.TotalApplications)
		assert.Equal(t, 0.0, stats.InterviewRate)
		assert.Equal(t, 0.0, stats.OfferRate)
	})
}

func TestDashboardSummary(t *testing.T) {
	analytics := NewAnalyticsService()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	active := testApplication(models.StatusApplied, "Acme", now.AddDate(0, 0, -2))
	active.Reminders = []models.Reminder{
		{ID: uuid.New(), Title: "Follow up", DueDate: now.AddDate(0, 0, 2)},
		{ID: uuid.New(), Title: "Missed call", DueDate: now.AddDate(0, 0, -1)},
		{ID: uuid.New(), Title: "Done already", DueDate: now.AddDate(0, 0, -3), IsCompleted: true},
		{ID: uuid.New(), Title: "Far future", DueDate: now.AddDate(0, 1, 0)},
	}

	interview := testApplication(models.StatusInterviewScheduled, "Initech", now.AddDate(0, 0, -10))
	closed := testApplication(models.StatusOffered, "Globex", now.AddDate(0, 0, -20))

	applications := []models.Application{active, interview, closed}
	goals := models.JobGoals{WeeklyTarget: 5, CurrentWeekCount: 2}

	summary := analytics.DashboardSummary(applications, goals, now)

	assert.Equal(t, 3, summary.TotalApplications)
	assert.Equal(t, 2, summary.ActiveApplications)
	assert.Equal(t, 1, summary.RecentApplications)
	assert.Equal(t, 1, summary.InterviewsScheduled)

	assert.Equal(t, 1, summary.UpcomingReminders)
	assert.Equal(t, 1, summary.OverdueReminders)
	require.Len(t, summary.UpcomingRemindersLst, 1)
	assert.Equal(t, "Follow up", summary.UpcomingRemindersLst[0].Title)
	require.Len(t, summary.OverdueRemindersLst, 1)
	assert.Equal(t, "Missed call", summary.OverdueRemindersLst[0].Title)

	assert.Equal(t, 5, summary.WeeklyGoal.Target)
	assert.Equal(t, 2, summary.WeeklyGoal.Current)
	assert.Equal(t, 40, summary.WeeklyGoal.Progress)
}

func TestDashboardSummaryZeroTarget(t *testing.T) {
	analytics := NewAnalyticsService()
	summary := analytics.DashboardSummary(nil, models.JobGoals{}, time.Now())
	assert.Equal(t, 0, summary.WeeklyGoal.Progress)
}

func TestApplicationTimeline(t *testing.T) {
	analytics := NewAnalyticsService()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	application := testApplication(models.StatusInterviewScheduled, "Acme", now.AddDate(0, 0, -5))
	application.StatusHistory = []models.StatusChange{
		{Status: models.StatusApplied, Note: "Application created", UpdatedBy: "user", UpdatedAt: now.AddDate(0, 0, -5)},
		{Status: models.StatusInterviewScheduled, UpdatedBy: "user", UpdatedAt: now.AddDate(0, 0, -1)},
	}
	application.Reminders = []models.Reminder{
		{Title: "Prep for interview", DueDate: now.AddDate(0, 0, -2)},
		{Title: "Send thank-you note", DueDate: now.AddDate(0, 0, 1)},
	}

	timeline := analytics.ApplicationTimeline(&application, now)
	require.Len(t, timeline, 4)

	for i := 1; i < len(timeline); i++ {
		assert.False(t, timeline[i].Date.Before(timeline[i-1].Date), "timeline must be date ordered")
	}

	assert.Equal(t, "status_change", timeline[0].Type)
	assert.Contains(t, timeline[0].Title, "applied")

	var reminderEvent *TimelineEvent
	for i := range timeline {
		if timeline[i].Type == "reminder" && timeline[i].Description == "Prep for interview" {
			reminderEvent = &timeline[i]
		}
	}
	require.NotNil(t, reminderEvent)
	require.NotNil(t, reminderEvent.IsPast)
	assert.True(t, *reminderEvent.IsPast)
}
