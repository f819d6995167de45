package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/iustudy/blog-platform/internal/api/metrics"
	"github.com/iustudy/blog-platform/internal/core/domain"
	"github.com/iustudy/blog-platform/internal/core/ports"
)

const claimsKey = "identity_claims"

// Auth validates the bearer token through the token service and stores the
// resulting claims in the echo context. Any failure rejects the request with
// an authentication error.
func Auth(tokens ports.TokenService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := authenticate(c, tokens)
			metrics.TokenDecodesTotal.WithLabelValues(metrics.TokenResult(err)).Inc()
			if err != nil {
				log.Debug().Err(err).Str("path", c.Path()).Msg("request not authenticated")
				return err
			}

			SetClaims(c, *claims)
			return next(c)
		}
	}
}

func authenticate(c echo.Context, tokens ports.TokenService) (*domain.IdentityClaims, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return nil, domain.ErrMissingToken
	}
	token, err := domain.BearerToken(header)
	if err != nil || token == "" {
		// Protected routes fail closed: a header without the Bearer scheme or
		// without a credential is treated as no credential at all.
		return nil, domain.ErrMissingToken
	}
	return tokens.DecodeClaims(c.Request().Context(), token)
}

// SetClaims stores the caller identity for the rest of the request.
func SetClaims(c echo.Context, claims domain.IdentityClaims) {
	c.Set(claimsKey, claims)
}

// Claims returns the identity stored by Auth. ok is false on routes that are
// not behind Auth.
func Claims(c echo.Context) (domain.IdentityClaims, bool) {
	claims, ok := c.Get(claimsKey).(domain.IdentityClaims)
	return claims, ok
}
