package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iustudy/blog-platform/internal/core/domain"
	"github.com/iustudy/blog-platform/internal/core/ports"
)

// MinSigningKeyBytes is the smallest accepted HMAC key (256 bits).
const MinSigningKeyBytes = 32

// DefaultTokenTTL is the lifetime of an issued token.
const DefaultTokenTTL = 24 * time.Hour

var signingMethod = jwt.SigningMethodHS256

// identityClaims is the JWT body. The subject and the email claim both carry
// the account email.
type identityClaims struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 bearer tokens and consults a
// RevocationStore before any cryptographic check.
type TokenService struct {
	key     []byte
	ttl     time.Duration
	revoked ports.RevocationStore
	now     func() time.Time
}

// TokenOption customises a TokenService.
type TokenOption func(*TokenService)

// WithClock replaces time.Now, for issuing and for expiry checks.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) { s.now = now }
}

// WithTTL overrides DefaultTokenTTL.
func WithTTL(ttl time.Duration) TokenOption {
	return func(s *TokenService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewTokenService copies key, so later mutation of the caller's slice has no
// effect on signing.
func NewTokenService(key []byte, revoked ports.RevocationStore, opts ...TokenOption) (*TokenService, error) {
	if len(key) < MinSigningKeyBytes {
		return nil, fmt.Errorf("token service: signing key must be at least %d bytes, got %d", MinSigningKeyBytes, len(key))
	}
	if revoked == nil {
		return nil, errors.New("token service: revocation store is required")
	}

	s := &TokenService{
		key:     append([]byte(nil), key...),
		ttl:     DefaultTokenTTL,
		revoked: revoked,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue returns a signed token for the given identity, valid for the
// configured TTL.
func (s *TokenService) Issue(email, username string) (string, error) {
	now := s.now()
	claims := identityClaims{
		Email:    email,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// DecodeClaims validates token and returns its identity. A revoked token
// fails with domain.ErrTokenRevoked even when it is otherwise well formed.
func (s *TokenService) DecodeClaims(ctx context.Context, token string) (*domain.IdentityClaims, error) {
	revoked, err := s.revoked.Contains(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, domain.ErrTokenRevoked
	}

	claims := &identityClaims{}
	_, err = s.parser().ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.key, nil
	})
	if err != nil {
		return nil, s.classify(token, err)
	}

	email := claims.Email
	if email == "" {
		email = claims.Subject
	}
	if email == "" || claims.Username == "" {
		return nil, domain.ErrTokenMalformed
	}

	return &domain.IdentityClaims{
		Email:     email,
		Username:  claims.Username,
		IssuedAt:  numericTime(claims.IssuedAt),
		ExpiresAt: numericTime(claims.ExpiresAt),
	}, nil
}

// ExtractEmail applies the same rules as DecodeClaims.
func (s *TokenService) ExtractEmail(ctx context.Context, token string) (string, error) {
	claims, err := s.DecodeClaims(ctx, token)
	if err != nil {
		return "", err
	}
	return claims.Email, nil
}

// ExtractUsername applies the same rules as DecodeClaims.
func (s *TokenService) ExtractUsername(ctx context.Context, token string) (string, error) {
	claims, err := s.DecodeClaims(ctx, token)
	if err != nil {
		return "", err
	}
	return claims.Username, nil
}

// Revoke adds token to the revocation store. Any string is accepted; only a
// store failure produces an error.
func (s *TokenService) Revoke(ctx context.Context, token string) error {
	if err := s.revoked.Add(ctx, token); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether token is in the revocation store. It does not
// look at the token's signature or expiry.
func (s *TokenService) IsRevoked(ctx context.Context, token string) (bool, error) {
	return s.revoked.Contains(ctx, token)
}

func (s *TokenService) parser() *jwt.Parser {
	return jwt.NewParser(
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(s.now),
	)
}

// classify maps a jwt parse failure onto the domain token errors. A token
// whose header and payload decode but whose signature segment does not is a
// forgery, not a malformed token.
func (s *TokenService) classify(token string, err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenMalformed):
		if s.onlySignatureDamaged(token) {
			return domain.ErrTokenSignatureInvalid
		}
		return domain.ErrTokenMalformed
	default:
		return domain.ErrTokenMalformed
	}
}

// onlySignatureDamaged reports whether the header and payload segments still
// parse. Everything after the second dot belongs to the signature, including
// any further dots.
func (s *TokenService) onlySignatureDamaged(token string) bool {
	parts := strings.SplitN(token, ".", 3)
	if len(parts) != 3 {
		return false
	}
	_, _, err := s.parser().ParseUnverified(parts[0]+"."+parts[1]+".", &identityClaims{})
	return err == nil
}

func numericTime(d *jwt.NumericDate) time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time.UTC()
}
