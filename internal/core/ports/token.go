package ports

import (
	"context"

	"github.com/iustudy/blog-platform/internal/core/domain"
)

// TokenService issues and validates bearer tokens.
type TokenService interface {
	Issue(email, username string) (string, error)
	// DecodeClaims checks revocation before the signature, then expiry.
	DecodeClaims(ctx context.Context, token string) (*domain.IdentityClaims, error)
	ExtractEmail(ctx context.Context, token string) (string, error)
	ExtractUsername(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// RevocationStore holds revoked token strings. Membership only grows.
// Implementations must be safe for concurrent use.
type RevocationStore interface {
	Add(ctx context.Context, token string) error
	Contains(ctx context.Context, token string) (bool, error)
}

// PasswordHasher wraps a one-way adaptive hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}
