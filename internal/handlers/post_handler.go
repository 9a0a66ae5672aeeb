package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/placementcell/backend/internal/forum"
	"github.com/placementcell/backend/internal/middleware"
	"github.com/placementcell/backend/internal/models"
)

const (
	defaultPostPageSize    = 10
	defaultCommentPageSize = 25
	defaultReplyPageSize   = 25
)

// PostHandler handles HTTP requests related to forum posts
type PostHandler struct {
	forum *forum.Service
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(svc *forum.Service) *PostHandler {
	return &PostHandler{forum: svc}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts", h.ListPosts)
	g.GET("/posts/:id", h.GetPost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
	g.POST("/posts/:id/like", h.ToggleLike)
	g.GET("/posts/:id/comments", h.ListComments)
	g.POST("/posts/:id/comments", h.CreateComment)
}

// CreatePost creates a new post
func (h *PostHandler) CreatePost(c echo.Context) error {
	actor := middleware.Actor(c)

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.forum.CreatePost(c.Request().Context(), actor, forum.CreatePostInput{
		Title:    req.Title,
		Body:     req.Body,
		ImageURL: req.ImageURL,
		JobID:    req.JobID,
	})
	if err != nil {
		return forumError(err)
	}
	return respond(c, http.StatusCreated, post)
}

// ListPosts retrieves a page of posts
func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.forum.ListPosts(c.Request().Context(), pageOptions(c, defaultPostPageSize))
	if err != nil {
		return forumError(err)
	}
	return respond(c, http.StatusOK, posts)
}

// GetPost retrieves a post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.forum.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return forumError(err)
	}
	return respond(c, http.StatusOK, post)
}

// UpdatePost applies an author-only edit to a post
func (h *PostHandler) UpdatePost(c echo.Context) error {
	actor := middleware.Actor(c)

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.forum.UpdatePost(c.Request().Context(), actor, c.Param("id"), req)
	if err != nil {
		return forumError(err)
	}
	return respond(c, http.StatusOK, post)
}

// DeletePost removes a post and everything beneath it
func (h *PostHandler) DeletePost(c echo.Context) error {
	actor := middleware.Actor(c)
	if err := h.forum.DeletePost(c.Request().Context(), actor, c.Param("id")); err != nil {
		return forumError(err)
	}
	return respondMsg(c, http.StatusOK, "post deleted")
}

// ToggleLike flips the acting user's like on a post
func (h *PostHandler) ToggleLike(c echo.Context) error {
	actor := middleware.Actor(c)
	result, err := h.forum.ToggleLike(c.Request().Context(), actor, models.TargetPost, c.Param("id"))
	if err != nil {
		return forumError(err)
	}
	return respond(c, http.StatusOK, result)
}

// ListComments retrieves a page of a post's comments
func (h *PostHandler) ListComments(c echo.Context) error {
	comments, err := h.forum.ListPostComments(c.Request().Context(), c.Param("id"), pageOptions(c, defaultCommentPageSize))
	if err != nil {
		return forumError(err)
	}
	return respond(c, http.StatusOK, comments)
}

// CreateComment creates a new comment under a post
func (h *PostHandler) CreateComment(c echo.Context) error {
	actor := middleware.Actor(c)

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.forum.CreateComment(c.Request().Context(), actor, c.Param("id"), req.Text)
	if err != nil {
		return forumError(err)
	}
	return respond(c, http.StatusCreated, comment)
}
