package models

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	StatusApplied            ApplicationStatus = "applied"
	StatusUnderReview        ApplicationStatus = "under review"
	StatusInterviewScheduled ApplicationStatus = "interview scheduled"
	StatusOffered            ApplicationStatus = "offered"
	StatusRejected           ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusUnderReview, StatusInterviewScheduled, StatusOffered, StatusRejected:
		return true
	}
	return false
}

type Application struct {
	ID             uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID         `gorm:"type:uuid;not null;index" json:"-"`
	JobTitle       string            `gorm:"type:text;not null" json:"job_title"`
	Company        string            `gorm:"type:text;not null" json:"company"`
	Location       string            `gorm:"type:text" json:"location"`
	JobLink        string            `gorm:"type:text" json:"job_link"`
	JobDescription string            `gorm:"type:text" json:"job_description"`
	CurrentStatus  ApplicationStatus `gorm:"type:text;not null;default:'applied'" json:"current_status"`
	Salary         float64           `json:"salary"`
	Notes          string            `gorm:"type:text;default:''" json:"notes"`
	AppliedAt      *time.Time        `gorm:"type:timestamp" json:"applied_at,omitempty"`
	CreatedAt      time.Time         `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"type:timestamp;default:now()" json:"updated_at"`

	// Relations
	StatusHistory []StatusChange `gorm:"foreignKey:ApplicationID" json:"status_history"`
	Reminders     []Reminder     `gorm:"foreignKey:ApplicationID" json:"reminders"`
}

func (Application) TableName() string {
	return "applications"
}

type StatusChange struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ApplicationID uuid.UUID         `gorm:"type:uuid;not null;index" json:"-"`
	Status        ApplicationStatus `gorm:"type:text;not null" json:"status"`
	Note          string            `gorm:"type:text" json:"note"`
	UpdatedBy     string            `gorm:"type:text" json:"updated_by"`
	UpdatedAt     time.Time         `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (StatusChange) TableName() string {
	return "status_changes"
}

type Reminder struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ApplicationID uuid.UUID `gorm:"type:uuid;not null;index" json:"application_id"`
	DueDate       time.Time `gorm:"type:timestamp;not null" json:"due_date"`
	Title         string    `gorm:"type:text" json:"title"`
	IsCompleted   bool      `gorm:"default:false" json:"is_completed"`
	CreatedAt     time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (Reminder) TableName() string {
	return "reminders"
}
