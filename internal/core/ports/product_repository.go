package ports

import (
	"context"

	"github.com/shopsync/commerce-api/internal/core/domain"
)

// ProductRepository defines the interface for product persistence.
type ProductRepository interface {
	Insert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByCreator(ctx context.Context, userID string) ([]domain.Product, error)
	FindBestsellers(ctx context.Context, userID string) ([]domain.Product, error)
	FindByShopifyID(ctx context.Context, shopifyID string) (*domain.Product, error)
	IncrementSales(ctx context.Context, id string, quantity int) error
}
