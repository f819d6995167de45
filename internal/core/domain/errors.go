package domain

import (
	"errors"
	"fmt"
)

// Error categories. Every specific error below wraps exactly one of them so
// the transport layer can classify with errors.Is.
var (
	ErrAuthentication = errors.New("authentication failed")
	ErrAuthorization  = errors.New("not authorized")
	ErrValidation     = errors.New("invalid input")
	ErrConflict       = errors.New("already exists")
	ErrNotFound       = errors.New("not found")
)

// Token and session errors.
var (
	ErrMissingToken          = fmt.Errorf("%w: missing bearer token", ErrAuthentication)
	ErrTokenRevoked          = fmt.Errorf("%w: token has been revoked", ErrAuthentication)
	ErrTokenMalformed        = fmt.Errorf("%w: token is malformed", ErrAuthentication)
	ErrTokenSignatureInvalid = fmt.Errorf("%w: token signature is invalid", ErrAuthentication)
	ErrTokenExpired          = fmt.Errorf("%w: token has expired", ErrAuthentication)
	ErrInvalidCredentials    = fmt.Errorf("%w: invalid credentials", ErrAuthentication)
	ErrUserNotFound          = fmt.Errorf("%w: user not found", ErrAuthentication)
)

// Input errors.
var (
	ErrInvalidEmailDomain  = fmt.Errorf("%w: email domain is not allowed", ErrValidation)
	ErrInvalidPassword     = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrMissingField        = fmt.Errorf("%w: required field is missing", ErrValidation)
	ErrMalformedAuthHeader = fmt.Errorf("%w: invalid token format", ErrValidation)
	ErrInvalidPayload      = fmt.Errorf("%w: invalid payload", ErrValidation)
)

var (
	ErrUsernameTaken = fmt.Errorf("%w: username is already taken", ErrConflict)
	ErrEmailTaken    = fmt.Errorf("%w: email is already registered", ErrConflict)
)

var (
	ErrPostNotFound    = fmt.Errorf("%w: post not found", ErrNotFound)
	ErrCommentNotFound = fmt.Errorf("%w: comment not found", ErrNotFound)
)

var ErrNotAuthor = fmt.Errorf("%w: only the author may modify this resource", ErrAuthorization)
