package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/iustudy/blog-platform/internal/core/domain"
	"github.com/iustudy/blog-platform/internal/core/ports"
)

// AuthService implements signup, login and logout.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	emails *domain.EmailDomainRule
	log    zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	emails *domain.EmailDomainRule,
	log zerolog.Logger,
) *AuthService {
	if emails == nil {
		emails = domain.NewEmailDomainRule(domain.DefaultEmailDomain)
	}
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, emails: emails, log: log}
}

// Signup registers a new account. Checks run in a fixed order: email
// domain, username, username uniqueness, email uniqueness, password. The
// repository's unique indexes catch registrations racing past the lookups.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) error {
	if !s.emails.Allows(in.Email) {
		return domain.ErrInvalidEmailDomain
	}
	if strings.TrimSpace(in.Username) == "" {
		return domain.ErrMissingField
	}

	if _, err := s.repo.FindByUsername(ctx, in.Username); err == nil {
		return domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	if strings.TrimSpace(in.Password) == "" {
		return domain.ErrInvalidPassword
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return err
	}

	user, err := s.repo.Create(ctx, &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return nil
}

// Login verifies the credentials and returns a token carrying the stored
// username.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrMissingField
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if s.hasher.Compare(user.PasswordHash, password) != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email, user.Username)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("username", user.Username).Msg("user logged in")
	return token, nil
}

// Logout revokes whatever token the header carries. It does not validate the
// token, so expired or forged tokens are revoked just the same.
func (s *AuthService) Logout(ctx context.Context, authHeader string) error {
	token, err := domain.BearerToken(authHeader)
	if err != nil {
		return err
	}
	if err := s.tokens.Revoke(ctx, token); err != nil {
		return err
	}

	s.log.Debug().Msg("token revoked")
	return nil
}
