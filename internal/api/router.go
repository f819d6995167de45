package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/iustudy/blog-platform/internal/api/handler"
	"github.com/iustudy/blog-platform/internal/api/middleware"
	"github.com/iustudy/blog-platform/internal/core/ports"
)

const bodyLimit = "1M"

// Dependencies are the use cases and settings the HTTP layer is built from.
type Dependencies struct {
	Auth     ports.AuthService
	Posts    ports.PostService
	Comments ports.CommentService
	Tokens   ports.TokenService

	AllowedOrigins []string
	Logger         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all blog routes
// registered. Operational routes are mounted separately.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.Metrics())
	e.Use(middleware.RequestLogger(deps.Logger))
	// AllowHeaders stays empty: preflight requests get their requested
	// headers reflected back.
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowCredentials: true,
	}))
	e.Use(echomiddleware.BodyLimit(bodyLimit))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	postHandler := handler.NewPostHandler(deps.Posts)
	commentHandler := handler.NewCommentHandler(deps.Comments)
	requireAuth := middleware.Auth(deps.Tokens, deps.Logger)

	api := e.Group("/api")

	// --- Auth routes ---
	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	// --- Post routes ---
	posts := api.Group("/posts")
	posts.GET("", postHandler.List)
	posts.GET("/my-posts", postHandler.Mine, requireAuth)
	posts.GET("/:id", postHandler.Get)
	posts.POST("", postHandler.Create, requireAuth)
	posts.PUT("/:id", postHandler.Update, requireAuth)
	posts.DELETE("/:id", postHandler.Delete, requireAuth)

	// --- Comment routes ---
	comments := api.Group("/comments")
	comments.POST("", commentHandler.Create, requireAuth)
	comments.GET("/post/:postId", commentHandler.ListByPost)
	comments.GET("/my-comments", commentHandler.Mine, requireAuth)
	comments.DELETE("/:commentId", commentHandler.Delete, requireAuth)

	return e
}
