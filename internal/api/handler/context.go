package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/iustudy/blog-platform/internal/api/middleware"
	"github.com/iustudy/blog-platform/internal/core/domain"
)

// caller returns the identity the Auth middleware stored for this request.
// Reaching a protected handler without it means the route was registered
// without Auth, so the request fails closed.
func caller(c echo.Context) (domain.IdentityClaims, error) {
	claims, ok := middleware.Claims(c)
	if !ok {
		return domain.IdentityClaims{}, domain.ErrMissingToken
	}
	return claims, nil
}
