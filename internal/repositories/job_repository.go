package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobtrackr/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter narrows FindAll results. Zero values mean no filter, page and
// limit default to 1 and 20. When both salary bounds are set, a job matches
// if either its minimum clears MinSalary or its maximum stays under
// MaxSalary.
type JobFilter struct {
	Title     string
	Company   string
	Location  string
	JobType   string
	WorkMode  string
	Source    string
	Tag       string
	MinSalary float64
	MaxSalary float64
	Page      int
	Limit     int
}

// apply adds the filter's where clauses to a jobs query.
func (f JobFilter) apply(query *gorm.DB) *gorm.DB {
	if f.Title != "" {
		query = query.Where("title ILIKE ?", "%"+f.Title+"%")
	}
	if f.Company != "" {
		query = query.Where("company_name ILIKE ?", "%"+f.Company+"%")
	}
	if f.Location != "" {
		query = query.Where("company_location ILIKE ?", "%"+f.Location+"%")
	}
	if f.JobType != "" {
		query = query.Where("job_type = ?", f.JobType)
	}
	if f.WorkMode != "" {
		query = query.Where("work_mode = ?", f.WorkMode)
	}
	if f.Source != "" {
		query = query.Where("source = ?", f.Source)
	}
	if f.Tag != "" {
		// Tags are stored as a JSON array; match the quoted element.
		query = query.Where("tags LIKE ?", `%"`+f.Tag+`"%`)
	}

	switch {
	case f.MinSalary > 0 && f.MaxSalary > 0:
		query = query.Where("salary_min >= ? OR salary_max <= ?", f.MinSalary, f.MaxSalary)
	case f.MinSalary > 0:
		query = query.Where("salary_min >= ?", f.MinSalary)
	case f.MaxSalary > 0:
		query = query.Where("salary_max <= ?", f.MaxSalary)
	}

	return query
}

type JobRepository interface {
	Create(job *models.Job) error
	FindAll(filter JobFilter) ([]models.Job, int64, error)
	FindByID(id uuid.UUID) (*models.Job, error)
	Update(job *models.Job) error
	Delete(id uuid.UUID) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *models.Job) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

func (r *jobRepository) FindAll(filter JobFilter) ([]models.Job, int64, error) {
	query := filter.apply(r.db.Model(&models.Job{}).Where("active = ?", true))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var jobs []models.Job
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find jobs: %w", err)
	}

	return jobs, total, nil
}

func (r *jobRepository) FindByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return &job, nil
}

func (r *jobRepository) Update(job *models.Job) error {
	if err := r.db.Save(job).Error; err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	return nil
}

func (r *jobRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}
