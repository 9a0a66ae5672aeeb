package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/placementcell/backend/internal/forum"
	"github.com/placementcell/backend/internal/middleware"
	"github.com/placementcell/backend/internal/models"
)

// ReplyHandler handles HTTP requests related to replies
type ReplyHandler struct {
	forum *forum.Service
}

// NewReplyHandler creates a new ReplyHandler
func NewReplyHandler(svc *forum.Service) *ReplyHandler {
	return &ReplyHandler{forum: svc}
}

// RegisterReplyRoutes registers reply-related routes
func (h *ReplyHandler) RegisterReplyRoutes(g *echo.Group) {
	g.PUT("/replies/:id", h.UpdateReply)
	g.DELETE("/replies/:id", h.DeleteReply)
	g.POST("/replies/:id/like", h.ToggleLike)
}

// UpdateReply applies an author-only edit to a reply
func (h *ReplyHandler) UpdateReply(c echo.Context) error {
	actor := middleware.Actor(c)

	var req models.UpdateReplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reply, err := h.forum.UpdateReply(c.Request().Context(), actor, c.Param("id"), req.Text)
	if err != nil {
		return forumError(err)
	}
	return respond(c, http.StatusOK, reply)
}

// DeleteReply removes a reply
func (h *ReplyHandler) DeleteReply(c echo.Context) error {
	actor := middleware.Actor(c)
	if err := h.forum.DeleteReply(c.Request().Context(), actor, c.Param("id")); err != nil {
		return forumError(err)
	}
	return respondMsg(c, http.StatusOK, "reply deleted")
}

// ToggleLike flips the acting user's like on a reply
func (h *ReplyHandler) ToggleLike(c echo.Context) error {
	actor := middleware.Actor(c)
	result, err := h.forum.ToggleLike(c.Request().Context(), actor, models.TargetReply, c.Param("id"))
	if err != nil {
		return forumError(err)
	}
	return respond(c, http.StatusOK, result)
}
