package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobtrackr/internal/models"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrReminderNotFound    = errors.New("reminder not found")
)

// ApplicationFilter narrows FindByUser results. Zero values mean no filter.
type ApplicationFilter struct {
	Status  string
	Company string
	SortBy  string
	Order   string
}

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByUser(userID uuid.UUID, filter ApplicationFilter) ([]models.Application, error)
	FindByID(userID, applicationID uuid.UUID) (*models.Application, error)
	Update(application *models.Application) error
	Delete(userID, applicationID uuid.UUID) error
	AddStatusChange(change *models.StatusChange) error
	AddReminder(reminder *models.Reminder) error
	UpdateReminder(applicationID, reminderID uuid.UUID, isCompleted bool) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

var sortableColumns = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"company":    "company",
	"job_title":  "job_title",
}

func (r *applicationRepository) Create(application *models.Application) error {
	if err := r.db.Create(application).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

func (r *applicationRepository) FindByUser(userID uuid.UUID, filter ApplicationFilter) ([]models.Application, error) {
	query := r.db.Where("user_id = ?", userID).
		Preload("StatusHistory").
		Preload("Reminders")

	if filter.Status != "" {
		query = query.Where("current_status = ?", filter.Status)
	}
	if filter.Company != "" {
		query = query.Where("company ILIKE ?", "%"+filter.Company+"%")
	}

	column, ok := sortableColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if filter.Order == "asc" {
		direction = "ASC"
	}

	var applications []models.Application
	if err := query.Order(column + " " + direction).Find(&applications).Error; err != nil {
		return nil, fmt.Errorf("failed to find applications: %w", err)
	}
	return applications, nil
}

func (r *applicationRepository) FindByID(userID, applicationID uuid.UUID) (*models.Application, error) {
	var application models.Application
	err := r.db.Where("id = ? AND user_id = ?", applicationID, userID).
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("updated_at ASC")
		}).
		Preload("Reminders", func(db *gorm.DB) *gorm.DB {
			return db.Order("due_date ASC")
		}).
		First(&application).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return &application, nil
}

func (r *applicationRepository) Update(application *models.Application) error {
	if err := r.db.Save(application).Error; err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}
	return nil
}

func (r *applicationRepository) Delete(userID, applicationID uuid.UUID) error {
	result := r.db.Delete(&models.Application{}, "id = ? AND user_id = ?", applicationID, userID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *applicationRepository) AddStatusChange(change *models.StatusChange) error {
	if err := r.db.Create(change).Error; err != nil {
		return fmt.Errorf("failed to record status change: %w", err)
	}
	return nil
}

func (r *applicationRepository) AddReminder(reminder *models.Reminder) error {
	if err := r.db.Create(reminder).Error; err != nil {
		return fmt.Errorf("failed to add reminder: %w", err)
	}
	return nil
}

func (r *applicationRepository) UpdateReminder(applicationID, reminderID uuid.UUID, isCompleted bool) error {
	result := r.db.Model(&models.Reminder{}).
		Where("id = ? AND application_id = ?", reminderID, applicationID).
		Update("is_completed", isCompleted)
	if result.Error != nil {
		return fmt.Errorf("failed to update reminder: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReminderNotFound
	}
	return nil
}
