package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/iustudy/blog-platform/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// categories maps each domain error category to its HTTP status. Order
// matters only in that every domain error wraps exactly one category.
var categories = []struct {
	err  error
	code int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrConflict, http.StatusBadRequest},
	{domain.ErrAuthentication, http.StatusUnauthorized},
	{domain.ErrAuthorization, http.StatusForbidden},
	{domain.ErrNotFound, http.StatusNotFound},
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain error categories to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (unknown route, method not allowed, body limit, ...).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	for _, cat := range categories {
		if errors.Is(err, cat.err) {
			return cat.code, publicMessage(err, cat.err)
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

// publicMessage strips the category prefix so clients see "post not found"
// rather than "not found: post not found".
func publicMessage(err, category error) string {
	msg := err.Error()
	if trimmed := strings.TrimPrefix(msg, category.Error()+": "); trimmed != "" {
		return trimmed
	}
	return msg
}
