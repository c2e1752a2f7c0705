package ports

import (
	"context"
	"time"

	"github.com/shopsync/commerce-api/internal/core/domain"
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)

	// UpdatePassword replaces the stored hash and stamps passwordChangedAt,
	// retroactively invalidating every token issued before changedAt.
	UpdatePassword(ctx context.Context, id, passwordHash string, changedAt time.Time) error

	// RecordLoginAttempt stamps lastLoginAttempt. Best effort: callers log
	// failures but never fail the login on them.
	RecordLoginAttempt(ctx context.Context, id string, at time.Time) error
}
