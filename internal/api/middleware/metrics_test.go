package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"

	"github.com/iustudy/blog-platform/internal/api/metrics"
)

func TestMetrics_UsesRoutePatternAndRenderedStatus(t *testing.T) {
	e := echo.New()
	e.Use(Metrics())
	e.Use(RequestLogger(zerolog.Nop()))
	e.GET("/api/comments/post/:postId", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/comments/post/abc", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/comments/post/def", nil))

	h := metrics.HTTPRequestDuration.WithLabelValues(http.MethodGet, "/api/comments/post/:postId", "418").(prometheus.Histogram)
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("read histogram: %v", err)
	}
	if n := m.GetHistogram().GetSampleCount(); n != 2 {
		t.Fatalf("expected both requests under the route pattern with status 418, got %d", n)
	}
}
