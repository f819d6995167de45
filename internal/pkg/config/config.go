package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
	"golang.org/x/crypto/bcrypt"
)

// MinJWTSecretBytes is the shortest accepted HS256 signing secret.
const MinJWTSecretBytes = 32

const (
	RevocationMemory = "memory"
	RevocationRedis  = "redis"
)

type Config struct {
	Port            string        `env:"PORT,             default=8080"`
	Env             string        `env:"ENV,              default=development"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Auth  AuthConfig
	CORS  CORSConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type AuthConfig struct {
	JWTSecret          string        `env:"JWT_SECRET, required"`
	TokenTTL           time.Duration `env:"TOKEN_TTL,            default=24h"`
	BcryptCost         int           `env:"BCRYPT_COST,          default=10"`
	AllowedEmailDomain string        `env:"ALLOWED_EMAIL_DOMAIN, default=iu-study.org"`
	// RevocationBackend selects where logged-out tokens are kept: memory or redis.
	RevocationBackend string `env:"REVOCATION_BACKEND, default=memory"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS, default=http://localhost:3000"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=blog"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Load reads configuration from environment variables using go-envconfig and
// validates the result.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the values envconfig cannot express as tags.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Auth.JWTSecret) < MinJWTSecretBytes {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes", MinJWTSecretBytes))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if strings.TrimSpace(c.Auth.AllowedEmailDomain) == "" {
		errs = append(errs, errors.New("ALLOWED_EMAIL_DOMAIN must not be empty"))
	}
	switch c.Auth.RevocationBackend {
	case RevocationMemory, RevocationRedis:
	default:
		errs = append(errs, fmt.Errorf("REVOCATION_BACKEND must be %q or %q, got %q", RevocationMemory, RevocationRedis, c.Auth.RevocationBackend))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}

	return errors.Join(errs...)
}

// IsDevelopment reports whether the service runs with developer defaults,
// which enables pretty console logging.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev" || c.Env == "local"
}
