package ports

import (
	"context"

	"github.com/shopsync/commerce-api/internal/core/domain"
)

// RoleRepository defines the interface for role lookups. Roles are static:
// created once by seeding, then read-only.
type RoleRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)

	// Ensure inserts the role if no role with the same name exists.
	Ensure(ctx context.Context, role *domain.Role) error
}
