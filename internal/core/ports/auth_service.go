package ports

import (
	"context"

	"github.com/shopsync/commerce-api/internal/core/domain"
)

type AuthService interface {
	// Register creates an account with the default USER role and returns a
	// freshly minted token alongside the created user.
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)

	// Login verifies credentials and mints a token. Unknown email and wrong
	// password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// ChangePassword verifies the current password, rejects an unchanged
	// one, and stamps passwordChangedAt so prior tokens go stale.
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error

	// AuthenticateToken verifies a bearer token, rejects tokens issued
	// before the account's last password change, and returns the identity
	// with its role loaded.
	AuthenticateToken(ctx context.Context, token string) (*domain.User, error)
}
