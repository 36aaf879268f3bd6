package models

import "time"

// Auth

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Applications

type CreateApplicationRequest struct {
	JobTitle       string  `json:"job_title" validate:"required"`
	Company        string  `json:"company" validate:"required"`
	Location       string  `json:"location"`
	JobLink        string  `json:"job_link"`
	JobDescription string  `json:"job_description"`
	Salary         float64 `json:"salary"`
	Notes          string  `json:"notes"`
}

type UpdateApplicationRequest struct {
	ApplicationID  string   `json:"application_id" validate:"required,uuid"`
	JobTitle       *string  `json:"job_title"`
	Company        *string  `json:"company"`
	Location       *string  `json:"location"`
	JobLink        *string  `json:"job_link"`
	JobDescription *string  `json:"job_description"`
	Salary         *float64 `json:"salary"`
}

type UpdateStatusRequest struct {
	ApplicationID string `json:"application_id" validate:"required,uuid"`
	Status        string `json:"status" validate:"required"`
	Note          string `json:"note"`
}

type AddNotesRequest struct {
	ApplicationID string `json:"application_id" validate:"required,uuid"`
	Notes         string `json:"notes"`
}

type AddReminderRequest struct {
	ApplicationID string    `json:"application_id" validate:"required,uuid"`
	DueDate       time.Time `json:"due_date" validate:"required"`
	Title         string    `json:"title"`
}

type UpdateReminderStatusRequest struct {
	ReminderID  string `json:"reminder_id" validate:"required,uuid"`
	IsCompleted bool   `json:"is_completed"`
}

// Generation endpoints. Resume content may arrive inline or as an uploaded
// PDF; the handlers treat the two interchangeably.

type CoverLetterRequest struct {
	JobTitle       string `json:"jobTitle" form:"jobTitle"`
	JobDescription string `json:"jobDescription" form:"jobDescription"`
	CompanyName    string `json:"companyName" form:"companyName"`
	UserName       string `json:"userName" form:"userName"`
	UserSkills     string `json:"userSkills" form:"userSkills"`
	UserExperience string `json:"userExperience" form:"userExperience"`
}

type InterviewQuestionsRequest struct {
	CompanyName     string `json:"companyName" form:"companyName"`
	JobTitle        string `json:"jobTitle" form:"jobTitle"`
	JobDescription  string `json:"jobDescription" form:"jobDescription"`
	ExperienceLevel string `json:"experienceLevel" form:"experienceLevel"`
}
