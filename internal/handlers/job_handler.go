package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/placementcell/backend/internal/middleware"
	"github.com/placementcell/backend/internal/models"
	"github.com/placementcell/backend/internal/repositories"
	"gorm.io/gorm"
)

const defaultJobPageSize = 10

// JobHandler handles HTTP requests related to job postings and applications
type JobHandler struct {
	jobs         repositories.JobRepository
	applications repositories.ApplicationRepository
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(jobs repositories.JobRepository, applications repositories.ApplicationRepository) *JobHandler {
	return &JobHandler{jobs: jobs, applications: applications}
}

// RegisterJobRoutes registers job-related routes
func (h *JobHandler) RegisterJobRoutes(g *echo.Group) {
	g.POST("/jobs", h.CreateJob)
	g.GET("/jobs", h.ListJobs)
	g.GET("/jobs/:id", h.GetJob)
	g.PUT("/jobs/:id", h.UpdateJob)
	g.DELETE("/jobs/:id", h.DeleteJob)
	g.POST("/jobs/:id/apply", h.Apply)
	g.GET("/jobs/:id/applications", h.ListApplications)
}

// CreateJob creates a new job posting. Staff only.
func (h *JobHandler) CreateJob(c echo.Context) error {
	actor := middleware.Actor(c)
	if !actor.IsStaff() {
		return echo.NewHTTPError(http.StatusForbidden, "Only staff may post jobs")
	}

	var req models.CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job := &models.Job{
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		CTC:         req.CTC,
		Location:    req.Location,
		Deadline:    req.Deadline,
		PostedBy:    actor.ID,
	}
	if err := h.jobs.Create(job); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
	}
	return respond(c, http.StatusCreated, job)
}

// ListJobs retrieves a page of job postings
func (h *JobHandler) ListJobs(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = defaultJobPageSize
	}

	jobs, err := h.jobs.List((page-1)*limit, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
	}
	return respond(c, http.StatusOK, jobs)
}

// GetJob retrieves a job posting by ID
func (h *JobHandler) GetJob(c echo.Context) error {
	id, err := h.jobID(c)
	if err != nil {
		return err
	}
	job, err := h.jobs.GetByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Job not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
	}
	return respond(c, http.StatusOK, job)
}

// UpdateJob edits a job posting. Staff only.
func (h *JobHandler) UpdateJob(c echo.Context) error {
	actor := middleware.Actor(c)
	if !actor.IsStaff() {
		return echo.NewHTTPError(http.StatusForbidden, "Only staff may edit jobs")
	}

	id, err := h.jobID(c)
	if err != nil {
		return err
	}

	var req models.UpdateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := h.jobs.GetByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Job not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
	}

	if req.Title != "" {
		job.Title = req.Title
	}
	if req.Description != "" {
		job.Description = req.Description
	}
	if req.CTC != nil {
		job.CTC = *req.CTC
	}
	if req.Location != "" {
		job.Location = req.Location
	}
	if req.Deadline != nil {
		job.Deadline = *req.Deadline
	}

	if err := h.jobs.Update(job); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
	}
	return respond(c, http.StatusOK, job)
}

// DeleteJob removes a job posting. Staff only.
func (h *JobHandler) DeleteJob(c echo.Context) error {
	actor := middleware.Actor(c)
	if !actor.IsStaff() {
		return echo.NewHTTPError(http.StatusForbidden, "Only staff may delete jobs")
	}

	id, err := h.jobID(c)
	if err != nil {
		return err
	}
	if err := h.jobs.Delete(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
	}
	return respondMsg(c, http.StatusOK, "job deleted")
}

// Apply records the acting student's application to a job
func (h *JobHandler) Apply(c echo.Context) error {
	actor := middleware.Actor(c)
	if actor.Kind != models.KindStudent {
		return echo.NewHTTPError(http.StatusForbidden, "Only students may apply")
	}

	id, err := h.jobID(c)
	if err != nil {
		return err
	}
	if _, err := h.jobs.GetByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Job not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
	}

	applied, err := h.applications.HasApplied(id, actor.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
	}
	if applied {
		return echo.NewHTTPError(http.StatusConflict, "Already applied to this job")
	}

	application := &models.Application{
		JobID:       id,
		StudentRoll: actor.ID,
		AppliedAt:   time.Now(),
	}
	if err := h.applications.Create(application); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
	}
	return respond(c, http.StatusCreated, application)
}

// ListApplications retrieves every application for one job. Staff only.
func (h *JobHandler) ListApplications(c echo.Context) error {
	actor := middleware.Actor(c)
	if !actor.IsStaff() {
		return echo.NewHTTPError(http.StatusForbidden, "Only staff may view applications")
	}

	id, err := h.jobID(c)
	if err != nil {
		return err
	}
	applications, err := h.applications.ListByJob(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
	}
	return respond(c, http.StatusOK, applications)
}

func (h *JobHandler) jobID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid job ID")
	}
	return uint(id), nil
}
