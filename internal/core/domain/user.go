package domain

import (
	"regexp"
	"time"
)

// DefaultEmailDomain is the only mailbox domain accepted at signup unless
// configured otherwise.
const DefaultEmailDomain = "iu-study.org"

// User models a registered author. Only the password hash is persisted.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// EmailDomainRule matches addresses of the form local@<domain>, where local
// is limited to the characters [A-Za-z0-9._%+-].
type EmailDomainRule struct {
	domain  string
	pattern *regexp.Regexp
}

// NewEmailDomainRule compiles the rule for a single allowed domain suffix.
func NewEmailDomainRule(domain string) *EmailDomainRule {
	if domain == "" {
		domain = DefaultEmailDomain
	}
	return &EmailDomainRule{
		domain:  domain,
		pattern: regexp.MustCompile(`^[A-Za-z0-9._%+-]+@` + regexp.QuoteMeta(domain) + `$`),
	}
}

// Domain returns the allowed domain suffix.
func (r *EmailDomainRule) Domain() string { return r.domain }

// Allows reports whether email belongs to the allowed domain.
func (r *EmailDomainRule) Allows(email string) bool {
	return r.pattern.MatchString(email)
}
