package domain

import "time"

// APIKey is a static credential bound to a user. Only the SHA-256 digest of
// the key is stored; the plaintext exists once, at creation time, and is
// never persisted or retrievable again.
type APIKey struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	HashedKey  string     `json:"-"`
	UserID     string     `json:"user_id"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
