package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/placementcell/backend/internal/forum"
	"github.com/placementcell/backend/internal/middleware"
	"github.com/placementcell/backend/internal/models"
)

// CommentHandler handles HTTP requests related to comments and their replies
type CommentHandler struct {
	forum *forum.Service
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(svc *forum.Service) *CommentHandler {
	return &CommentHandler{forum: svc}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.PUT("/comments/:id", h.UpdateComment)
	g.DELETE("/comments/:id", h.DeleteComment)
	g.POST("/comments/:id/like", h.ToggleLike)
	g.GET("/comments/:id/replies", h.ListReplies)
	g.POST("/comments/:id/replies", h.CreateReply)
}

// UpdateComment applies an author-only edit to a comment
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	actor := middleware.Actor(c)

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.forum.UpdateComment(c.Request().Context(), actor, c.Param("id"), req.Text)
	if err != nil {
		return forumError(err)
	}
	return respond(c, http.StatusOK, comment)
}

// DeleteComment removes a comment and all its replies
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	actor := middleware.Actor(c)
	if err := h.forum.DeleteComment(c.Request().Context(), actor, c.Param("id")); err != nil {
		return forumError(err)
	}
	return respondMsg(c, http.StatusOK, "comment deleted")
}

// ToggleLike flips the acting user's like on a comment
func (h *CommentHandler) ToggleLike(c echo.Context) error {
	actor := middleware.Actor(c)
	result, err := h.forum.ToggleLike(c.Request().Context(), actor, models.TargetComment, c.Param("id"))
	if err != nil {
		return forumError(err)
	}
	return respond(c, http.StatusOK, result)
}

// ListReplies retrieves a page of a comment's replies
func (h *CommentHandler) ListReplies(c echo.Context) error {
	replies, err := h.forum.ListCommentReplies(c.Request().Context(), c.Param("id"), pageOptions(c, defaultReplyPageSize))
	if err != nil {
		return forumError(err)
	}
	return respond(c, http.StatusOK, replies)
}

// CreateReply creates a new reply under a comment
func (h *CommentHandler) CreateReply(c echo.Context) error {
	actor := middleware.Actor(c)

	var req models.CreateReplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reply, err := h.forum.CreateReply(c.Request().Context(), actor, c.Param("id"), req.Text)
	if err != nil {
		return forumError(err)
	}
	return respond(c, http.StatusCreated, reply)
}
