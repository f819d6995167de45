// @title                       IU Study Blog API
// @version                     1.0
// @description                 Blog backend with domain-restricted signup, bearer-token sessions and author-only mutation.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/iustudy/blog-platform/internal/api"
	"github.com/iustudy/blog-platform/internal/core/domain"
	"github.com/iustudy/blog-platform/internal/core/ports"
	"github.com/iustudy/blog-platform/internal/core/service"
	mongodb "github.com/iustudy/blog-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/iustudy/blog-platform/internal/infrastructure/db/redis"
	ophttp "github.com/iustudy/blog-platform/internal/infrastructure/http"
	"github.com/iustudy/blog-platform/internal/infrastructure/http/handlers"
	"github.com/iustudy/blog-platform/internal/infrastructure/revocation"
	"github.com/iustudy/blog-platform/internal/infrastructure/security"
	"github.com/iustudy/blog-platform/internal/pkg/config"
	"github.com/iustudy/blog-platform/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "blog-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "blog-api",
	})
	log.Info().Str("env", cfg.Env).Str("revocation_backend", cfg.Auth.RevocationBackend).Msg("starting blog api")

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	repos := mongodb.NewRepositories(db)
	if err := repos.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}
	checks := []handlers.Check{handlers.MongoCheck(db)}

	// --- Revocation set ---
	var revoked ports.RevocationStore
	switch cfg.Auth.RevocationBackend {
	case config.RevocationRedis:
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		revoked = redisdb.NewRevocationStore(rdb, redisdb.DefaultRevocationKey)
		checks = append(checks, handlers.RedisCheck(rdb))
	default:
		revoked = revocation.NewMemoryStore()
		log.Warn().Msg("using in-process revocation set; logouts are forgotten on restart and not shared between instances")
	}

	// --- Services ---
	tokens, err := service.NewTokenService([]byte(cfg.Auth.JWTSecret), revoked, service.WithTTL(cfg.Auth.TokenTTL))
	if err != nil {
		return err
	}
	authService := service.NewAuthService(
		repos.Users,
		security.NewBcryptHasher(cfg.Auth.BcryptCost),
		tokens,
		domain.NewEmailDomainRule(cfg.Auth.AllowedEmailDomain),
		logger.For("auth"),
	)
	postService := service.NewPostService(repos.Posts, repos.Comments, logger.For("posts"))
	commentService := service.NewCommentService(repos.Comments, repos.Posts, logger.For("comments"))

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		Auth:           authService,
		Posts:          postService,
		Comments:       commentService,
		Tokens:         tokens,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         logger.For("http"),
	})
	ophttp.RegisterOperationalRoutes(e, checks...)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	return shutdown(srv, cfg.ShutdownTimeout, log)
}

func shutdown(srv *http.Server, timeout time.Duration, log zerolog.Logger) error {
	log.Info().Dur("timeout", timeout).Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("server exited gracefully")
	return nil
}
