package ports

import (
	"context"

	"github.com/shopsync/commerce-api/internal/core/domain"
)

type APIKeyService interface {
	// Create mints a new key for the user. The returned string is the raw
	// key, shown exactly once; only its digest is persisted.
	Create(ctx context.Context, userID, name string) (*domain.APIKey, string, error)

	List(ctx context.Context, userID string) ([]domain.APIKey, error)
	Delete(ctx context.Context, userID, id string) error

	// Authenticate resolves a raw key to its owner with the role loaded,
	// recording usage as a non-blocking side effect.
	Authenticate(ctx context.Context, rawKey string) (*domain.User, error)
}
