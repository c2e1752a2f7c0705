package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/shopsync/commerce-api/internal/core/domain"
	"github.com/shopsync/commerce-api/internal/core/ports"
)

type orderService struct {
	products ports.ProductRepository
	log      zerolog.Logger
}

// NewOrderService returns an OrderService implementation.
func NewOrderService(products ports.ProductRepository, log zerolog.Logger) ports.OrderService {
	return &orderService{products: products, log: log}
}

// ProcessOrder applies one verified order webhook: each line item that maps
// to a known product bumps its sales counter by the purchased quantity.
// Per-item failures are skipped and reported, never fatal for the order.
func (s *orderService) ProcessOrder(ctx context.Context, order *domain.ShopifyOrder) (*ports.OrderResult, error) {
	res := &ports.OrderResult{}

	for _, item := range order.LineItems {
		if item.ProductID == nil {
			continue
		}
		shopifyID := strconv.FormatInt(*item.ProductID, 10)

		product, err := s.products.FindByShopifyID(ctx, shopifyID)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				s.log.Warn().Str("shopify_id", shopifyID).Msg("order references unknown product")
			} else {
				s.log.Error().Err(err).Str("shopify_id", shopifyID).Msg("product lookup failed")
			}
			res.Skipped = append(res.Skipped, shopifyID)
			continue
		}

		if err := s.products.IncrementSales(ctx, product.ID, item.Quantity); err != nil {
			s.log.Error().Err(err).Str("product_id", product.ID).Msg("sales update failed")
			res.Skipped = append(res.Skipped, shopifyID)
			continue
		}
		res.Processed++
	}

	s.log.Info().
		Int64("order_id", order.ID).
		Int("processed", res.Processed).
		Int("skipped", len(res.Skipped)).
		Msg("order webhook processed")

	return res, nil
}
