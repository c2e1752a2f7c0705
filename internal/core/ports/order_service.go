package ports

import (
	"context"

	"github.com/shopsync/commerce-api/internal/core/domain"
)

// OrderResult summarises the outcome of processing one order webhook.
type OrderResult struct {
	Processed int      `json:"processed_products"`
	Skipped   []string `json:"skipped,omitempty"`
}

type OrderService interface {
	// ProcessOrder increments sales counters for every line item that maps
	// to a known product. Unknown products are skipped and reported, never
	// fatal.
	ProcessOrder(ctx context.Context, order *domain.ShopifyOrder) (*OrderResult, error)
}
