package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/placementcell/backend/internal/forum"
	"github.com/placementcell/backend/internal/middleware"
	"github.com/placementcell/backend/internal/models"
)

const defaultForumPageSize = 10

// ForumHandler handles HTTP requests related to job forums
type ForumHandler struct {
	forum *forum.Service
}

// NewForumHandler creates a new ForumHandler
func NewForumHandler(svc *forum.Service) *ForumHandler {
	return &ForumHandler{forum: svc}
}

// RegisterForumRoutes registers job forum routes
func (h *ForumHandler) RegisterForumRoutes(g *echo.Group) {
	g.POST("/forums", h.CreateForum)
	g.GET("/forums", h.ListForums)
	g.GET("/forums/:id", h.GetForum)
	g.POST("/forums/:id/join", h.JoinForum)
	g.GET("/forums/:id/posts", h.ListForumPosts)
	g.DELETE("/forums/:id", h.DeleteForum)
}

// CreateForum opens a discussion forum for a job posting
func (h *ForumHandler) CreateForum(c echo.Context) error {
	actor := middleware.Actor(c)

	var req models.CreateForumRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	f, err := h.forum.CreateForum(c.Request().Context(), actor, req)
	if err != nil {
		return forumError(err)
	}
	return respond(c, http.StatusCreated, f)
}

// ListForums retrieves a page of job forums
func (h *ForumHandler) ListForums(c echo.Context) error {
	forums, err := h.forum.ListForums(c.Request().Context(), pageOptions(c, defaultForumPageSize))
	if err != nil {
		return forumError(err)
	}
	return respond(c, http.StatusOK, forums)
}

// GetForum retrieves a job forum by ID
func (h *ForumHandler) GetForum(c echo.Context) error {
	f, err := h.forum.GetForum(c.Request().Context(), c.Param("id"))
	if err != nil {
		return forumError(err)
	}
	return respond(c, http.StatusOK, f)
}

// JoinForum adds the acting user to the forum's member list
func (h *ForumHandler) JoinForum(c echo.Context) error {
	actor := middleware.Actor(c)
	f, err := h.forum.JoinForum(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return forumError(err)
	}
	return respond(c, http.StatusOK, f)
}

// ListForumPosts retrieves a page of the forum's posts
func (h *ForumHandler) ListForumPosts(c echo.Context) error {
	posts, err := h.forum.ListForumPosts(c.Request().Context(), c.Param("id"), pageOptions(c, defaultPostPageSize))
	if err != nil {
		return forumError(err)
	}
	return respond(c, http.StatusOK, posts)
}

// DeleteForum removes a forum and every post it owns
func (h *ForumHandler) DeleteForum(c echo.Context) error {
	actor := middleware.Actor(c)
	if err := h.forum.DeleteForum(c.Request().Context(), actor, c.Param("id")); err != nil {
		return forumError(err)
	}
	return respondMsg(c, http.StatusOK, "forum deleted")
}
