package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/placementcell/backend/internal/forum"
	"github.com/placementcell/backend/internal/middleware"
	"github.com/placementcell/backend/internal/models"
)

const defaultReportPageSize = 5

// ReportHandler handles HTTP requests for the report/moderation workflow
type ReportHandler struct {
	forum *forum.Service
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(svc *forum.Service) *ReportHandler {
	return &ReportHandler{forum: svc}
}

// RegisterReportRoutes registers report-related routes
func (h *ReportHandler) RegisterReportRoutes(g *echo.Group) {
	g.POST("/reports", h.FileReport)
	g.GET("/reports", h.ListReports)
	g.GET("/reports/:id", h.GetReport)
	g.POST("/reports/:id/resolve", h.ResolveReport)
	g.PUT("/reports/:id/status", h.UpdateStatus)
}

// FileReport records a complaint against a post, comment or reply
func (h *ReportHandler) FileReport(c echo.Context) error {
	actor := middleware.Actor(c)

	var req models.FileReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	report, err := h.forum.FileReport(c.Request().Context(), actor,
		models.TargetKind(req.TargetKind), req.TargetID, req.Reason)
	if err != nil {
		return forumError(err)
	}
	return respond(c, http.StatusCreated, report)
}

// ListReports retrieves a page of reports for moderators
func (h *ReportHandler) ListReports(c echo.Context) error {
	actor := middleware.Actor(c)
	status := models.ReportStatus(c.QueryParam("status"))

	reports, err := h.forum.ListReports(c.Request().Context(), actor, status, pageOptions(c, defaultReportPageSize))
	if err != nil {
		return forumError(err)
	}
	return respond(c, http.StatusOK, reports)
}

// GetReport retrieves a single report for moderators
func (h *ReportHandler) GetReport(c echo.Context) error {
	actor := middleware.Actor(c)
	report, err := h.forum.GetReport(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return forumError(err)
	}
	return respond(c, http.StatusOK, report)
}

// ResolveReport deletes the reported entity through the cascade engine and
// removes the report record
func (h *ReportHandler) ResolveReport(c echo.Context) error {
	actor := middleware.Actor(c)
	if err := h.forum.ResolveReport(c.Request().Context(), actor, c.Param("id")); err != nil {
		return forumError(err)
	}
	return respondMsg(c, http.StatusOK, "report resolved")
}

// UpdateStatus marks a report reviewed or resolved without deleting content
func (h *ReportHandler) UpdateStatus(c echo.Context) error {
	actor := middleware.Actor(c)

	var req models.UpdateReportStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	report, err := h.forum.UpdateReportStatus(c.Request().Context(), actor, c.Param("id"), models.ReportStatus(req.Status))
	if err != nil {
		return forumError(err)
	}
	return respond(c, http.StatusOK, report)
}
