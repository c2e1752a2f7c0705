package domain

import "time"

// Built-in role names seeded at startup.
const (
	RoleAdmin   = "ADMIN"
	RolePremium = "PREMIUM"
	RoleUser    = "USER"
	RoleBan     = "BAN"
)

// User models an account holder. PasswordChangedAt drives stateless token
// revocation: any token issued before it is rejected.
type User struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	PasswordHash      string     `json:"-"`
	RoleID            string     `json:"role_id,omitempty"`
	PasswordChangedAt *time.Time `json:"-"`
	LastLoginAttempt  *time.Time `json:"-"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	// Role is populated during authentication; nil when the account has no
	// role assigned, in which case every capability check fails.
	Role *Role `json:"role,omitempty"`
}
