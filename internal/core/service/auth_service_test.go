package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/iustudy/blog-platform/internal/core/domain"
	"github.com/iustudy/blog-platform/internal/core/ports"
	"github.com/iustudy/blog-platform/internal/infrastructure/security"
)

type stubUserRepo struct {
	mu      sync.Mutex
	users   map[string]*domain.User // by username
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = "id-" + user.Username
	}
	r.users[copy.Username] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func newAuthSvc(t *testing.T, repo *stubUserRepo) (*AuthService, *TokenService) {
	t.Helper()
	tokens := newTokenSvc(t)
	svc := NewAuthService(repo, security.NewBcryptHasher(bcrypt.MinCost), tokens, domain.NewEmailDomainRule("iu-study.org"), zerolog.Nop())
	return svc, tokens
}

func signup(username, email, password string) ports.SignupInput {
	return ports.SignupInput{Username: username, Email: email, Password: password}
}

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthSvc(t, repo)

	if err := svc.Signup(context.Background(), signup("alice", "alice@iu-study.org", "secret")); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}

	stored := repo.users["alice"]
	if stored == nil {
		t.Fatal("expected user to be stored")
	}
	if stored.PasswordHash == "secret" {
		t.Fatal("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if stored.Email != "alice@iu-study.org" || stored.CreatedAt.IsZero() {
		t.Fatalf("unexpected stored user: %+v", stored)
	}
}

func TestAuthService_Signup_Scenario(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthSvc(t, repo)
	ctx := context.Background()

	if err := svc.Signup(ctx, signup("alice", "alice@iu-study.org", "secret")); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	if err := svc.Signup(ctx, signup("alice", "other@iu-study.org", "secret")); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if err := svc.Signup(ctx, signup("alice2", "alice@iu-study.org", "secret")); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if err := svc.Signup(ctx, signup("carol", "alice@gmail.com", "secret")); !errors.Is(err, domain.ErrInvalidEmailDomain) {
		t.Fatalf("expected ErrInvalidEmailDomain, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one stored user, got %d", len(repo.users))
	}
}

func TestAuthService_Signup_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthSvc(t, repo)
	ctx := context.Background()

	cases := []struct {
		name  string
		input ports.SignupInput
		want  error
	}{
		{"empty password", signup("bob", "bob@iu-study.org", ""), domain.ErrInvalidPassword},
		{"blank password", signup("bob", "bob@iu-study.org", "   "), domain.ErrInvalidPassword},
		{"blank username", signup("  ", "bob@iu-study.org", "pw"), domain.ErrMissingField},
		{"empty email", signup("bob", "", "pw"), domain.ErrInvalidEmailDomain},
		{"domain checked first", signup("", "bob@example.com", ""), domain.ErrInvalidEmailDomain},
	}
	for _, tc := range cases {
		err := svc.Signup(ctx, tc.input)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("%s: expected validation category, got %v", tc.name, err)
		}
	}
	if len(repo.users) != 0 {
		t.Fatalf("no user must be stored on validation failure")
	}
}

func TestAuthService_Signup_RaceCaughtByRepository(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthSvc(t, repo)

	// Simulate a concurrent registration landing between the lookups and the insert.
	repo.users["alice"] = &domain.User{Username: "alice", Email: "alice@iu-study.org"}
	lookupsMiss := &raceRepo{stubUserRepo: repo}
	svc.repo = lookupsMiss

	err := svc.Signup(context.Background(), signup("alice", "alice@iu-study.org", "secret"))
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict from the insert, got %v", err)
	}
}

type raceRepo struct {
	*stubUserRepo
}

func (r *raceRepo) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *raceRepo) FindByUsername(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func TestAuthService_Signup_RepoError(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = errors.New("mongo unavailable")
	svc, _ := newAuthSvc(t, repo)

	err := svc.Signup(context.Background(), signup("alice", "alice@iu-study.org", "secret"))
	if err == nil || errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected infrastructure error to surface, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, tokens := newAuthSvc(t, repo)
	ctx := context.Background()

	if err := svc.Signup(ctx, signup("alice", "alice@iu-study.org", "secret")); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	token, err := svc.Login(ctx, "alice@iu-study.org", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected token, got empty")
	}

	claims, err := tokens.DecodeClaims(ctx, token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Username != "alice" || claims.Email != "alice@iu-study.org" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthSvc(t, repo)
	ctx := context.Background()

	_ = svc.Signup(ctx, signup("dave", "dave@iu-study.org", "goodpass"))
	_, err := svc.Login(ctx, "dave@iu-study.org", "badpass")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if !errors.Is(err, domain.ErrAuthentication) {
		t.Fatalf("expected authentication category, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc, _ := newAuthSvc(t, newStubUserRepo())

	if _, err := svc.Login(context.Background(), "ghost@iu-study.org", "pass"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc, _ := newAuthSvc(t, newStubUserRepo())
	ctx := context.Background()

	if _, err := svc.Login(ctx, "", "pass"); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField for empty email, got %v", err)
	}
	if _, err := svc.Login(ctx, "a@iu-study.org", ""); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField for empty password, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	repo := newStubUserRepo()
	svc, tokens := newAuthSvc(t, repo)
	ctx := context.Background()

	_ = svc.Signup(ctx, signup("alice", "alice@iu-study.org", "secret"))
	token, _ := svc.Login(ctx, "alice@iu-study.org", "secret")

	if err := svc.Logout(ctx, "Bearer "+token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := tokens.DecodeClaims(ctx, token); !errors.Is(err, domain.ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked after logout, got %v", err)
	}
}

func TestAuthService_Logout_NeverFailsOnBadTokens(t *testing.T) {
	svc, tokens := newAuthSvc(t, newStubUserRepo())
	ctx := context.Background()

	for _, tok := range []string{"garbage", "a.b.c", "eyJhbGciOiJub25lIn0.e30."} {
		if err := svc.Logout(ctx, "Bearer "+tok); err != nil {
			t.Fatalf("logout of %q must succeed, got %v", tok, err)
		}
		if ok, _ := tokens.IsRevoked(ctx, tok); !ok {
			t.Fatalf("expected %q to be revoked", tok)
		}
	}
}

func TestAuthService_Logout_EmptyCredentialIsRevoked(t *testing.T) {
	svc, tokens := newAuthSvc(t, newStubUserRepo())
	ctx := context.Background()

	for _, h := range []string{"Bearer ", "Bearer"} {
		if err := svc.Logout(ctx, h); err != nil {
			t.Fatalf("header %q: logout must succeed, got %v", h, err)
		}
	}
	if ok, _ := tokens.IsRevoked(ctx, ""); !ok {
		t.Fatal("expected the empty credential to be revoked")
	}
}

func TestAuthService_Logout_MalformedHeader(t *testing.T) {
	svc, _ := newAuthSvc(t, newStubUserRepo())

	for _, h := range []string{"", "token-without-scheme", "Basic abc"} {
		if err := svc.Logout(context.Background(), h); !errors.Is(err, domain.ErrMalformedAuthHeader) {
			t.Fatalf("header %q: expected ErrMalformedAuthHeader, got %v", h, err)
		}
	}
}

func TestAuthService_Logout_StoreFailure(t *testing.T) {
	storeErr := errors.New("redis down")
	tokens, _ := NewTokenService(testKey, failingStore{err: storeErr})
	svc := NewAuthService(newStubUserRepo(), security.NewBcryptHasher(bcrypt.MinCost), tokens, nil, zerolog.Nop())

	if err := svc.Logout(context.Background(), "Bearer abc"); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}
