// Package metrics defines and registers the custom Prometheus metrics of the
// blog API. It is the single source of truth for metric names, labels, and
// help strings. All metrics register with the default registry at package
// init and are served by the /metrics route.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iustudy/blog-platform/internal/core/domain"
)

const namespace = "blog"

// ── Auth metrics ─────────────────────────────────────────────────────────────

// SignupsTotal counts signup attempts.
// Label:
//   - result: "success", "invalid_email_domain", "username_taken", "email_taken", "invalid", "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "user_not_found", "invalid", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokensRevokedTotal counts successful logouts.
var TokensRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_revoked_total",
		Help:      "Total number of tokens added to the revocation set.",
	},
)

// TokenDecodesTotal counts bearer token checks on protected routes.
// Label:
//   - result: "valid", "missing", "revoked", "expired", "signature_invalid", "malformed", "error"
var TokenDecodesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_decodes_total",
		Help:      "Total number of bearer token validations, by result.",
	},
	[]string{"result"},
)

// ── Content metrics ──────────────────────────────────────────────────────────

var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)

var CommentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Total number of comments created.",
	},
)

// ── HTTP metrics ─────────────────────────────────────────────────────────────

// HTTPRequestDuration measures handler latency.
// Labels:
//   - method: HTTP method
//   - route: the registered route pattern (e.g. "/api/posts/:id"), never the raw path
//   - status: response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests, by method, route and status.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"method", "route", "status"},
)

// TokenResult maps a token validation outcome to the result label of
// TokenDecodesTotal.
func TokenResult(err error) string {
	switch {
	case err == nil:
		return "valid"
	case errors.Is(err, domain.ErrMissingToken), errors.Is(err, domain.ErrMalformedAuthHeader):
		return "missing"
	case errors.Is(err, domain.ErrTokenRevoked):
		return "revoked"
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenSignatureInvalid):
		return "signature_invalid"
	case errors.Is(err, domain.ErrTokenMalformed):
		return "malformed"
	default:
		return "error"
	}
}

// SignupResult maps a signup outcome to the result label of SignupsTotal.
func SignupResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrInvalidEmailDomain):
		return "invalid_email_domain"
	case errors.Is(err, domain.ErrUsernameTaken):
		return "username_taken"
	case errors.Is(err, domain.ErrEmailTaken):
		return "email_taken"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	default:
		return "error"
	}
}

// LoginResult maps a login outcome to the result label of LoginsTotal.
func LoginResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	default:
		return "error"
	}
}
