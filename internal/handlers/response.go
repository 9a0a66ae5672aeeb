package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/placementcell/backend/internal/forum"
	"go.uber.org/zap"
)

// Envelope is the uniform response shape for every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// respond writes a success envelope.
func respond(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

// respondMsg writes a success envelope carrying only a message.
func respondMsg(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: true, Message: message})
}

// forumError converts a forum service error into the matching HTTP error.
// Unmatched errors surface as opaque 500s; the error handler logs them.
func forumError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, forum.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, forum.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, forum.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, forum.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
	}
}

// NewHTTPErrorHandler renders every error as the failure envelope.
// Internal errors are logged with full detail and surfaced opaquely.
func NewHTTPErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "something went wrong"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			}
			if he.Internal != nil {
				log.Error("internal error",
					zap.String("method", c.Request().Method),
					zap.String("path", c.Path()),
					zap.Error(he.Internal))
			}
		} else {
			log.Error("unhandled error",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err))
		}

		if err := c.JSON(status, Envelope{Success: false, Message: message}); err != nil {
			log.Error("failed writing error response", zap.Error(err))
		}
	}
}

// pageOptions reads page, limit and sort query parameters, applying the
// listing's default limit.
func pageOptions(c echo.Context, defaultLimit int64) forum.ListOptions {
	page, _ := strconv.ParseInt(c.QueryParam("page"), 10, 64)
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	return forum.NewListOptions(page, limit, c.QueryParam("sort"), defaultLimit)
}
