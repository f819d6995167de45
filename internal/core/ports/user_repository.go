package ports

import (
	"context"

	"github.com/iustudy/blog-platform/internal/core/domain"
)

// UserRepository is the Credential Store. Find methods return
// domain.ErrUserNotFound when no record matches; Create returns
// domain.ErrUsernameTaken or domain.ErrEmailTaken on a uniqueness violation.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
