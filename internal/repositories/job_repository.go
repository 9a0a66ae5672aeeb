package repositories

import (
	"context"
	"strconv"

	"github.com/placementcell/backend/internal/models"
	"gorm.io/gorm"
)

// JobRepository defines the interface for job posting operations. Its
// JobExists method also serves the forum service as its job registry.
type JobRepository interface {
	Create(job *models.Job) error
	GetByID(id uint) (*models.Job, error)
	List(offset, limit int) ([]models.Job, error)
	Update(job *models.Job) error
	Delete(id uint) error
	JobExists(ctx context.Context, jobID string) (bool, error)
}

// ApplicationRepository defines the interface for job application operations
type ApplicationRepository interface {
	Create(application *models.Application) error
	HasApplied(jobID uint, roll string) (bool, error)
	ListByJob(jobID uint) ([]models.Application, error)
}

// PostgresJobRepository implements JobRepository for PostgreSQL
type PostgresJobRepository struct {
	db *gorm.DB
}

// NewPostgresJobRepository creates a new PostgresJobRepository
func NewPostgresJobRepository(db *gorm.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

// Create creates a new job posting in PostgreSQL
func (r *PostgresJobRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

// GetByID retrieves a job posting by id
func (r *PostgresJobRepository) GetByID(id uint) (*models.Job, error) {
	var job models.Job
	if err := r.db.First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// List retrieves a page of job postings, newest first
func (r *PostgresJobRepository) List(offset, limit int) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Update updates an existing job posting
func (r *PostgresJobRepository) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

// Delete deletes a job posting by id
func (r *PostgresJobRepository) Delete(id uint) error {
	return r.db.Delete(&models.Job{}, id).Error
}

// JobExists reports whether a job posting exists for the given string id.
// Forum documents carry job ids as strings, so the id is parsed here.
func (r *PostgresJobRepository) JobExists(ctx context.Context, jobID string) (bool, error) {
	id, err := strconv.ParseUint(jobID, 10, 64)
	if err != nil {
		return false, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Job{}).Where("id = ?", uint(id)).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// PostgresApplicationRepository implements ApplicationRepository for PostgreSQL
type PostgresApplicationRepository struct {
	db *gorm.DB
}

// NewPostgresApplicationRepository creates a new PostgresApplicationRepository
func NewPostgresApplicationRepository(db *gorm.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

// Create records a student's application to a job
func (r *PostgresApplicationRepository) Create(application *models.Application) error {
	return r.db.Create(application).Error
}

// HasApplied reports whether the student already applied to the job
func (r *PostgresApplicationRepository) HasApplied(jobID uint, roll string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Application{}).
		Where("job_id = ? AND student_roll = ?", jobID, roll).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByJob retrieves every application filed against one job
func (r *PostgresApplicationRepository) ListByJob(jobID uint) ([]models.Application, error) {
	var applications []models.Application
	if err := r.db.Where("job_id = ?", jobID).Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}
