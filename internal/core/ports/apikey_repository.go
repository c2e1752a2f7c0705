package ports

import (
	"context"
	"time"

	"github.com/shopsync/commerce-api/internal/core/domain"
)

// APIKeyRepository defines the interface for API key persistence. Keys are
// stored and looked up exclusively by their SHA-256 digest.
type APIKeyRepository interface {
	Insert(ctx context.Context, key *domain.APIKey) (*domain.APIKey, error)
	FindByHash(ctx context.Context, hashedKey string) (*domain.APIKey, error)
	ListByUser(ctx context.Context, userID string) ([]domain.APIKey, error)
	Delete(ctx context.Context, id, userID string) error

	// RecordUsage stamps lastUsedAt. Fire-and-forget: a failure here must
	// never fail the authentication decision.
	RecordUsage(ctx context.Context, id string, at time.Time) error
}
