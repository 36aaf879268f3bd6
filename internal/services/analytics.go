package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"jobtrackr/internal/models"
)

// AnalyticsService computes application statistics, dashboard summaries, and
// per-application timelines. All methods are pure computations over already-
// loaded records.
type AnalyticsService struct{}

func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{}
}

type ApplicationStats struct {
	TotalApplications int            `json:"totalApplications"`
	StatusBreakdown   map[string]int `json:"statusBreakdown"`
	InterviewRate     float64        `json:"interviewRate"`
	OfferRate         float64        `json:"offerRate"`
	TopCompanies      []CompanyCount `json:"topCompanies"`
	Timeline          []MonthCount   `json:"timeline"`
	Period            string         `json:"period"`
}

type CompanyCount struct {
	Company string `json:"company"`
	Count   int    `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type DashboardSummary struct {
	TotalApplications    int                `json:"totalApplications"`
	ActiveApplications   int                `json:"activeApplications"`
	RecentApplications   int                `json:"recentApplications"`
	InterviewsScheduled  int                `json:"interviewsScheduled"`
	UpcomingReminders    int                `json:"upcomingReminders"`
	OverdueReminders     int                `json:"overdueReminders"`
	WeeklyGoal           WeeklyGoalProgress `json:"weeklyGoal"`
	UpcomingRemindersLst []ReminderSummary  `json:"upcomingRemindersList"`
	OverdueRemindersLst  []ReminderSummary  `json:"overdueRemindersList"`
}

type WeeklyGoalProgress struct {
	Target   int `json:"target"`
	Current  int `json:"current"`
	Progress int `json:"progress"`
}

type ReminderSummary struct {
	ReminderID    uuid.UUID `json:"reminder_id"`
	ApplicationID uuid.UUID `json:"application_id"`
	JobTitle      string    `json:"job_title"`
	Company       string    `json:"company"`
	Title         string    `json:"title"`
	DueDate       time.Time `json:"due_date"`
}

type TimelineEvent struct {
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	UpdatedBy   string    `json:"updatedBy,omitempty"`
	IsCompleted *bool     `json:"isCompleted,omitempty"`
	IsPast      *bool     `json:"isPast,omitempty"`
}

func periodStart(period string, now time.Time) (time.Time, bool) {
	switch period {
	case "week":
		return now.AddDate(0, 0, -7), true
	case "month":
		return now.AddDate(0, -1, 0), true
	case "year":
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

func (s *AnalyticsService) ApplicationStats(applications []models.Application, period string, now time.Time) ApplicationStats {
	if start, ok := periodStart(period, now); ok {
		var filtered []models.Application
		for _, app := range applications {
			if !app.CreatedAt.Before(start) {
				filtered = append(filtered, app)
			}
		}
		applications = filtered
	} else {
		period = "all"
	}

	statusCounts := map[string]int{
		string(models.StatusApplied):            0,
		string(models.StatusUnderReview):        0,
		string(models.StatusInterviewScheduled): 0,
		string(models.StatusOffered):            0,
		string(models.StatusRejected):           0,
	}
	companyCounts := make(map[string]int)
	monthlyCounts := make(map[string]int)

	for _, app := range applications {
		statusCounts[string(app.CurrentStatus)]++
		companyCounts[app.Company]++
		monthlyCounts[app.CreatedAt.Format("2006-01")]++
	}

	total := len(applications)
	interviewRate := 0.0
	offerRate := 0.0
	if total > 0 {
		interviews := statusCounts[string(models.StatusInterviewScheduled)] + statusCounts[string(models.StatusOffered)]
		interviewRate = roundRate(float64(interviews) / float64(total) * 100)
		offerRate = roundRate(float64(statusCounts[string(models.StatusOffered)]) / float64(total) * 100)
	}

	topCompanies := make([]CompanyCount, 0, len(companyCounts))
	for company, count := range companyCounts {
		topCompanies = append(topCompanies, CompanyCount{Company: company, Count: count})
	}
	sort.Slice(topCompanies, func(i, j int) bool {
		if topCompanies[i].Count != topCompanies[j].Count {
			return topCompanies[i].Count > topCompanies[j].Count
		}
		return topCompanies[i].Company < topCompanies[j].Company
	})
	if len(topCompanies) > 10 {
		topCompanies = topCompanies[:10]
	}

	timeline := make([]MonthCount, 0, len(monthlyCounts))
	for month, count := range monthlyCounts {
		timeline = append(timeline, MonthCount{Month: month, Count: count})
	}
	sort.Slice(timeline, func(i, j int) bool {
		return timeline[i].Month < timeline[j].Month
	})

	return ApplicationStats{
		TotalApplications: total,
		StatusBreakdown:   statusCounts,
		InterviewRate:     interviewRate,
		OfferRate:         offerRate,
		TopCompanies:      topCompanies,
		Timeline:          timeline,
		Period:            period,
	}
}

func (s *AnalyticsService) DashboardSummary(applications []models.Application, goals models.JobGoals, now time.Time) DashboardSummary {
	weekAgo := now.AddDate(0, 0, -7)
	nextWeek := now.AddDate(0, 0, 7)

	summary := DashboardSummary{
		TotalApplications:    len(applications),
		UpcomingRemindersLst: []ReminderSummary{},
		OverdueRemindersLst:  []ReminderSummary{},
	}

	var upcoming, overdue []ReminderSummary

	for _, app := range applications {
		if !app.CreatedAt.Before(weekAgo) {
			summary.RecentApplications++
		}
		if app.CurrentStatus != models.StatusRejected && app.CurrentStatus != models.StatusOffered {
			summary.ActiveApplications++
		}
		if app.CurrentStatus == models.StatusInterviewScheduled {
			summary.InterviewsScheduled++
		}

		for _, reminder := range app.Reminders {
			if reminder.IsCompleted {
				continue
			}
			entry := ReminderSummary{
				ReminderID:    reminder.ID,
				ApplicationID: app.ID,
				JobTitle:      app.JobTitle,
				Company:       app.Company,
				Title:         reminder.Title,
				DueDate:       reminder.DueDate,
			}
			switch {
			case reminder.DueDate.Before(now):
				overdue = append(overdue, entry)
			case !reminder.DueDate.After(nextWeek):
				upcoming = append(upcoming, entry)
			}
		}
	}

	summary.UpcomingReminders = len(upcoming)
	summary.OverdueReminders = len(overdue)
	if len(upcoming) > 5 {
		upcoming = upcoming[:5]
	}
	if len(overdue) > 5 {
		overdue = overdue[:5]
	}
	summary.UpcomingRemindersLst = append(summary.UpcomingRemindersLst, upcoming...)
	summary.OverdueRemindersLst = append(summary.OverdueRemindersLst, overdue...)

	progress := 0
	if goals.WeeklyTarget > 0 {
		progress = int(math.Round(float64(goals.CurrentWeekCount) / float64(goals.WeeklyTarget) * 100))
	}
	summary.WeeklyGoal = WeeklyGoalProgress{
		Target:   goals.WeeklyTarget,
		Current:  goals.CurrentWeekCount,
		Progress: progress,
	}

	return summary
}

// ApplicationTimeline merges an application's status history and reminders
// into a single date-ordered event stream.
func (s *AnalyticsService) ApplicationTimeline(application *models.Application, now time.Time) []TimelineEvent {
	var timeline []TimelineEvent

	for _, change := range application.StatusHistory {
		timeline = append(timeline, TimelineEvent{
			Type:        "status_change",
			Date:        change.UpdatedAt,
			Title:       fmt.Sprintf("Status changed to: %s", change.Status),
			Description: change.Note,
			UpdatedBy:   change.UpdatedBy,
		})
	}

	for _, reminder := range application.Reminders {
		completed := reminder.IsCompleted
		past := reminder.DueDate.Before(now)
		timeline = append(timeline, TimelineEvent{
			Type:        "reminder",
			Date:        reminder.DueDate,
			Title:       "Follow-up reminder",
			Description: reminder.Title,
			IsCompleted: &completed,
			IsPast:      &past,
		})
	}

	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].Date.Before(timeline[j].Date)
	})

	return timeline
}

func roundRate(v float64) float64 {
	return math.Round(v*100) / 100
}
