package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/iustudy/blog-platform/internal/core/domain"
)

func runErrorHandler(t *testing.T, log zerolog.Logger, err error) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(log)(err, c)

	var body errorResponse
	if jerr := json.Unmarshal(rec.Body.Bytes(), &body); jerr != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), jerr)
	}
	return rec, body
}

func TestErrorHandler_Categories(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrInvalidEmailDomain, http.StatusBadRequest, "email domain is not allowed"},
		{domain.ErrMalformedAuthHeader, http.StatusBadRequest, "invalid token format"},
		{domain.ErrUsernameTaken, http.StatusBadRequest, "username is already taken"},
		{domain.ErrEmailTaken, http.StatusBadRequest, "email is already registered"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrUserNotFound, http.StatusUnauthorized, "user not found"},
		{domain.ErrTokenRevoked, http.StatusUnauthorized, "token has been revoked"},
		{domain.ErrNotAuthor, http.StatusForbidden, "only the author may modify this resource"},
		{domain.ErrPostNotFound, http.StatusNotFound, "post not found"},
		{fmt.Errorf("%w: title is required", domain.ErrValidation), http.StatusBadRequest, "title is required"},
	}
	for _, tc := range cases {
		rec, body := runErrorHandler(t, zerolog.Nop(), tc.err)
		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if body.Error != tc.msg {
			t.Errorf("%v: expected message %q, got %q", tc.err, tc.msg, body.Error)
		}
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := runErrorHandler(t, zerolog.Nop(), echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"))
	if rec.Code != http.StatusMethodNotAllowed || body.Error != "method not allowed" {
		t.Fatalf("unexpected response %d %q", rec.Code, body.Error)
	}
}

func TestErrorHandler_UnexpectedErrorIsNotLeaked(t *testing.T) {
	var logs bytes.Buffer
	rec, body := runErrorHandler(t, zerolog.New(&logs), fmt.Errorf("insert post: %w", errors.New("connection refused")))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body.Error != "internal server error" {
		t.Fatalf("internal detail leaked: %q", body.Error)
	}
	if !strings.Contains(logs.String(), "connection refused") {
		t.Fatalf("expected cause to be logged, got %q", logs.String())
	}
}
