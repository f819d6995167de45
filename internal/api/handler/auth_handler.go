package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iustudy/blog-platform/internal/api/metrics"
	"github.com/iustudy/blog-platform/internal/core/domain"
	"github.com/iustudy/blog-platform/internal/core/ports"
)

const (
	signupSuccessMessage = "User registered successfully!"
	logoutSuccessMessage = "Logged out successfully"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Signup registers a new account. Field checks happen in the auth service so
// that the email domain is always reported first.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		metrics.SignupsTotal.WithLabelValues(metrics.SignupResult(domain.ErrInvalidPayload)).Inc()
		return domain.ErrInvalidPayload
	}

	err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	metrics.SignupsTotal.WithLabelValues(metrics.SignupResult(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: signupSuccessMessage})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues(metrics.LoginResult(domain.ErrInvalidPayload)).Inc()
		return domain.ErrInvalidPayload
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	metrics.LoginsTotal.WithLabelValues(metrics.LoginResult(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Logout revokes the presented bearer token. Expired or invalid tokens are
// revoked too; only a missing Bearer scheme is rejected.
//
// @Summary      Logout
// @Tags         auth
// @Produce      plain
// @Param        Authorization  header    string  true  "Bearer <token>"
// @Success      200            {string}  string  "Logged out successfully"
// @Failure      400            {object}  map[string]string
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), c.Request().Header.Get(echo.HeaderAuthorization)); err != nil {
		return err
	}
	metrics.TokensRevokedTotal.Inc()
	return c.String(http.StatusOK, logoutSuccessMessage)
}
