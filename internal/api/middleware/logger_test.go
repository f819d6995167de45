package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(RequestLogger(zerolog.New(&buf)))
	e.GET("/api/posts/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/posts/42?page=1", nil)
	req.Header.Set("Authorization", "Bearer secret-token-value")
	e.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one JSON entry, got %q: %v", buf.String(), err)
	}
	if entry["route"] != "/api/posts/:id" || entry["path"] != "/api/posts/42" {
		t.Fatalf("unexpected route fields: %v", entry)
	}
	if entry["status"] != float64(http.StatusOK) || entry["level"] != "info" {
		t.Fatalf("unexpected status or level: %v", entry)
	}
	if strings.Contains(buf.String(), "secret-token-value") {
		t.Fatal("bearer token leaked into request log")
	}
}

func TestRequestLogger_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(RequestLogger(zerolog.New(&buf)))
	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "nope")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(buf.String(), `"level":"warn"`) {
		t.Fatalf("expected warn entry, got %q", buf.String())
	}
}
