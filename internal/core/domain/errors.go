package domain

import (
	"errors"
	"fmt"
)

// Authentication and authorization failures. Each maps to exactly one HTTP
// status in the API error handler; none carries internal detail.
var (
	ErrUnauthenticated     = errors.New("no credential provided")
	ErrMalformedCredential = errors.New("malformed credential")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrMalformedToken      = errors.New("malformed token")
	ErrStaleToken          = errors.New("token invalidated by password change")
	ErrIdentityNotFound    = errors.New("identity not found")
	ErrForbidden           = errors.New("insufficient permissions")
	ErrWebhookSignature    = errors.New("invalid webhook signature")
)

// Resource errors.
var (
	ErrUserExists        = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrRoleNotFound      = errors.New("role not found")
	ErrAPIKeyExists      = errors.New("api key name already in use")
	ErrAPIKeyNotFound    = errors.New("api key not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrPasswordUnchanged = errors.New("new password must differ from the current one")
)

// RateLimitError is returned when a login identifier exceeds its window.
// RetryAfterSeconds is always in (0, window] and is surfaced to the client.
type RateLimitError struct {
	RetryAfterSeconds int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("too many login attempts, retry in %ds", e.RetryAfterSeconds)
}
