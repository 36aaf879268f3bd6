package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name                string         `gorm:"type:text;not null" json:"name"`
	Email               string         `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Password            string         `gorm:"type:text;not null" json:"-"`
	Skills              []string       `gorm:"serializer:json" json:"skills"`
	ProfessionalSummary string         `gorm:"type:text" json:"professional_summary"`
	JobPreferences      JobPreferences `gorm:"embedded;embeddedPrefix:pref_" json:"job_preferences"`
	JobGoals            JobGoals       `gorm:"embedded;embeddedPrefix:goal_" json:"job_goals"`
	Resumes             []string       `gorm:"serializer:json" json:"resumes"`
	CoverLetters        []string       `gorm:"serializer:json" json:"cover_letters"`
	CreatedAt           time.Time      `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"type:timestamp;default:now()" json:"updated_at"`

	// Relations
	Experience    []Experience   `gorm:"foreignKey:UserID" json:"experience"`
	Notifications []Notification `gorm:"foreignKey:UserID" json:"notifications,omitempty"`
	Applications  []Application  `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

type JobPreferences struct {
	Titles         []string `gorm:"serializer:json" json:"titles"`
	Locations      []string `gorm:"serializer:json" json:"locations"`
	JobType        string   `gorm:"type:text" json:"job_type"`
	Industries     []string `gorm:"serializer:json" json:"industries"`
	ExpectedSalary string   `gorm:"type:text" json:"expected_salary"`
	WorkMode       string   `gorm:"type:text" json:"work_mode"`
	Relocate       bool     `json:"relocate"`
}

type JobGoals struct {
	WeeklyTarget     int       `json:"weekly_target"`
	CurrentWeekCount int       `json:"current_week_count"`
	LastReset        time.Time `gorm:"type:timestamp;default:now()" json:"last_reset"`
}

type Experience struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	JobTitle    string    `gorm:"type:text;not null" json:"job_title"`
	Company     string    `gorm:"type:text" json:"company"`
	Years       float64   `json:"years_of_experience"`
	Description string    `gorm:"type:text" json:"description"`
}

func (Experience) TableName() string {
	return "experiences"
}

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

type Notification struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"-"`
	Message   string           `gorm:"type:text;not null" json:"message"`
	Type      NotificationType `gorm:"type:text;default:'info'" json:"type"`
	IsRead    bool             `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time        `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
