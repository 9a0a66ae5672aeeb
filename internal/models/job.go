package models

import (
	"time"

	"gorm.io/gorm"
)

// Job represents a job posting stored in PostgreSQL, created by staff.
type Job struct {
	gorm.Model  `json:"-"`
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description"`
	CTC         float64   `json:"ctc"`
	Location    string    `json:"location"`
	Deadline    time.Time `json:"deadline"`
	PostedBy    string    `json:"posted_by" gorm:"index"` // staff employee id
}

// Application represents a student's application to a job.
type Application struct {
	gorm.Model  `json:"-"`
	ID          uint      `json:"id" gorm:"primaryKey"`
	JobID       uint      `json:"job_id" gorm:"index;uniqueIndex:idx_job_student"`
	StudentRoll string    `json:"student_roll" gorm:"index;uniqueIndex:idx_job_student"`
	Status      string    `json:"status" gorm:"type:varchar(20);default:'applied'"`
	AppliedAt   time.Time `json:"applied_at"`
}

// CreateJobRequest defines the request body for posting a new job
type CreateJobRequest struct {
	Title       string    `json:"title" validate:"required,min=2,max=200"`
	Company     string    `json:"company" validate:"required,min=1,max=120"`
	Description string    `json:"description" validate:"required,max=5000"`
	CTC         float64   `json:"ctc" validate:"min=0"`
	Location    string    `json:"location" validate:"omitempty,max=120"`
	Deadline    time.Time `json:"deadline" validate:"required"`
}

// UpdateJobRequest defines the request body for editing a job posting
type UpdateJobRequest struct {
	Title       string     `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Description string     `json:"description,omitempty" validate:"omitempty,max=5000"`
	CTC         *float64   `json:"ctc,omitempty" validate:"omitempty,min=0"`
	Location    string     `json:"location,omitempty" validate:"omitempty,max=120"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}
