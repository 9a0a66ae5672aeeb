package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/placementcell/backend/internal/middleware"
	"github.com/placementcell/backend/internal/models"
	"github.com/placementcell/backend/internal/repositories"
)

// ProfileHandler handles HTTP requests for the acting user's own profile
type ProfileHandler struct {
	students repositories.StudentRepository
	staff    repositories.StaffRepository
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(students repositories.StudentRepository, staff repositories.StaffRepository) *ProfileHandler {
	return &ProfileHandler{students: students, staff: staff}
}

// RegisterProfileRoutes registers profile routes
func (h *ProfileHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profile", h.GetProfile)
	g.PUT("/profile", h.UpdateProfile)
}

// GetProfile returns the acting user's profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	actor := middleware.Actor(c)

	switch actor.Kind {
	case models.KindStudent:
		student, err := h.students.GetByRoll(actor.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "Profile not found")
		}
		return respond(c, http.StatusOK, student)
	case models.KindStaff:
		staff, err := h.staff.GetByEmployeeID(actor.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "Profile not found")
		}
		return respond(c, http.StatusOK, staff)
	}
	return echo.NewHTTPError(http.StatusUnauthorized, "Unknown identity kind")
}

// UpdateProfile applies name and avatar edits to the acting user's profile
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	actor := middleware.Actor(c)

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	switch actor.Kind {
	case models.KindStudent:
		student, err := h.students.GetByRoll(actor.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "Profile not found")
		}
		if req.Name != "" {
			student.Name = req.Name
		}
		if req.AvatarURL != "" {
			student.AvatarURL = req.AvatarURL
		}
		if err := h.students.Update(student); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
		}
		return respond(c, http.StatusOK, student)
	case models.KindStaff:
		staff, err := h.staff.GetByEmployeeID(actor.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "Profile not found")
		}
		if req.Name != "" {
			staff.Name = req.Name
		}
		if req.AvatarURL != "" {
			staff.AvatarURL = req.AvatarURL
		}
		if err := h.staff.Update(staff); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
		}
		return respond(c, http.StatusOK, staff)
	}
	return echo.NewHTTPError(http.StatusUnauthorized, "Unknown identity kind")
}
