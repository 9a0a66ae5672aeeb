package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/placementcell/backend/internal/forum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestForumErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("title is required: %w", forum.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("not yours: %w", forum.ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("post x: %w", forum.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("already reported: %w", forum.ErrConflict), http.StatusConflict},
		{errors.New("mongo timeout"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		he := forumError(tc.err)
		assert.Equal(t, tc.status, he.Code, "for %v", tc.err)
	}

	// Storage detail must not leak into the client message.
	he := forumError(errors.New("mongo timeout"))
	assert.Equal(t, "something went wrong", he.Message)
	assert.EqualError(t, he.Internal, "mongo timeout")
}

func TestHTTPErrorHandlerEnvelope(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zap.NewNop())

	req := httptest.NewRequest(http.MethodDelete, "/posts/x", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(forumError(fmt.Errorf("post x: %w", forum.ErrNotFound)), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, "post x: not found", env.Message)
}

func TestHTTPErrorHandlerOpaque(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(forumError(errors.New("dial tcp: connection refused")), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, "something went wrong", env.Message)
	assert.NotContains(t, rec.Body.String(), "dial tcp")
}

func TestPageOptions(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/posts?page=2&limit=5&sort=most-liked", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	opts := pageOptions(c, defaultPostPageSize)
	assert.Equal(t, int64(2), opts.Page)
	assert.Equal(t, int64(5), opts.Limit)
	assert.Equal(t, forum.SortMostLiked, opts.Sort)

	req = httptest.NewRequest(http.MethodGet, "/posts?page=junk&limit=-3", nil)
	c = e.NewContext(req, httptest.NewRecorder())
	opts = pageOptions(c, defaultPostPageSize)
	assert.Equal(t, int64(1), opts.Page)
	assert.Equal(t, int64(defaultPostPageSize), opts.Limit)
	assert.Equal(t, forum.SortNewest, opts.Sort)
}
