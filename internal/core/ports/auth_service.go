package ports

import "context"

// SignupInput carries the candidate account fields.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) error
	// Login returns a signed bearer token for the account matching email.
	Login(ctx context.Context, email, password string) (string, error)
	// Logout revokes the token carried by an Authorization header value.
	Logout(ctx context.Context, authHeader string) error
}
