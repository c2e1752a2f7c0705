package ports

import (
	"context"

	"github.com/shopsync/commerce-api/internal/core/domain"
)

// CreateProductInput is the service-layer DTO for product creation.
type CreateProductInput struct {
	Name  string
	Price float64
	Image string
}

type ProductService interface {
	// Create pushes the product to Shopify and persists the local mirror.
	// The caller is responsible for capability checks on user.
	Create(ctx context.Context, user *domain.User, in CreateProductInput) (*domain.Product, error)

	ListAll(ctx context.Context) ([]domain.Product, error)
	ListMine(ctx context.Context, userID string) ([]domain.Product, error)
	ListBestsellers(ctx context.Context, userID string) ([]domain.Product, error)
}
