package domain

import "time"

// IdentityClaims is the verified identity carried by a bearer token.
type IdentityClaims struct {
	Email     string
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
