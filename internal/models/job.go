package models

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title            string     `gorm:"type:text;not null" json:"title"`
	CompanyName      string     `gorm:"type:text;not null" json:"company_name"`
	CompanyWebsite   string     `gorm:"type:text" json:"company_website"`
	CompanyIndustry  string     `gorm:"type:text" json:"company_industry"`
	CompanyLocation  string     `gorm:"type:text" json:"company_location"`
	JobType          string     `gorm:"type:text;default:'Full-time'" json:"job_type"`
	Active           bool       `gorm:"default:true" json:"active"`
	Source           string     `gorm:"type:text;default:'Manual'" json:"source"`
	URL              string     `gorm:"type:text" json:"url"`
	Description      string     `gorm:"type:text" json:"description"`
	Responsibilities []string   `gorm:"serializer:json" json:"responsibilities"`
	Requirements     []string   `gorm:"serializer:json" json:"requirements"`
	SalaryMin        float64    `json:"salary_min"`
	SalaryMax        float64    `json:"salary_max"`
	SalaryCurrency   string     `gorm:"type:text;default:'USD'" json:"salary_currency"`
	WorkMode         string     `gorm:"type:text;default:'On-site'" json:"work_mode"`
	PostedDate       *time.Time `gorm:"type:timestamp" json:"posted_date,omitempty"`
	Tags             []string   `gorm:"serializer:json" json:"tags"`
	CreatedAt        time.Time  `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (Job) TableName() string {
	return "jobs"
}
