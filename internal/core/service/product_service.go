package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopsync/commerce-api/internal/core/domain"
	"github.com/shopsync/commerce-api/internal/core/ports"
)

// ShopifyClient abstracts the outbound Admin API call.
type ShopifyClient interface {
	CreateProduct(ctx context.Context, name string, price float64) (string, error)
}

type productService struct {
	repo    ports.ProductRepository
	shopify ShopifyClient
	log     zerolog.Logger
}

// NewProductService returns a ProductService implementation.
func NewProductService(repo ports.ProductRepository, shopify ShopifyClient, log zerolog.Logger) ports.ProductService {
	return &productService{repo: repo, shopify: shopify, log: log}
}

// Create pushes the product to Shopify first, then mirrors it locally.
// A Shopify failure leaves no local record behind.
func (s *productService) Create(ctx context.Context, user *domain.User, in ports.CreateProductInput) (*domain.Product, error) {
	shopifyID, err := s.shopify.CreateProduct(ctx, in.Name, in.Price)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	product := &domain.Product{
		ShopifyID: shopifyID,
		CreatedBy: user.ID,
		Image:     in.Image,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info().
		Str("product_id", created.ID).
		Str("shopify_id", created.ShopifyID).
		Str("created_by", user.ID).
		Msg("product created")

	return created, nil
}

func (s *productService) ListAll(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *productService) ListMine(ctx context.Context, userID string) ([]domain.Product, error) {
	return s.repo.FindByCreator(ctx, userID)
}

func (s *productService) ListBestsellers(ctx context.Context, userID string) ([]domain.Product, error) {
	return s.repo.FindBestsellers(ctx, userID)
}
