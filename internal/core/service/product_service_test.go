package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shopsync/commerce-api/internal/core/domain"
	"github.com/shopsync/commerce-api/internal/core/ports"
)

type stubProductRepo struct {
	products map[string]*domain.Product
	nextID   int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Insert(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.nextID++
	copy := *product
	copy.ID = fmt.Sprintf("prod_%d", r.nextID)
	r.products[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubProductRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) FindByCreator(_ context.Context, userID string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if p.CreatedBy == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) FindBestsellers(_ context.Context, userID string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if p.CreatedBy == userID && p.SalesCount > 0 {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) FindByShopifyID(_ context.Context, shopifyID string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ShopifyID == shopifyID {
			out := *p
			return &out, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) IncrementSales(_ context.Context, id string, quantity int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.SalesCount += quantity
	return nil
}

type stubShopifyClient struct {
	nextID int64
	err    error
	calls  int
}

func (c *stubShopifyClient) CreateProduct(_ context.Context, _ string, _ float64) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	c.nextID++
	return fmt.Sprintf("%d", 7000000+c.nextID), nil
}

func TestProductService_Create(t *testing.T) {
	repo := newStubProductRepo()
	client := &stubShopifyClient{}
	svc := NewProductService(repo, client, zerolog.Nop())

	user := &domain.User{ID: "user_1"}
	created, err := svc.Create(context.Background(), user, ports.CreateProductInput{Name: "mug", Price: 9.99})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ShopifyID == "" {
		t.Fatalf("expected shopify id to be set")
	}
	if created.CreatedBy != "user_1" {
		t.Fatalf("unexpected creator: %s", created.CreatedBy)
	}
	if client.calls != 1 {
		t.Fatalf("expected one shopify call, got %d", client.calls)
	}
}

func TestProductService_Create_ShopifyFailure(t *testing.T) {
	repo := newStubProductRepo()
	client := &stubShopifyClient{err: errors.New("admin api unavailable")}
	svc := NewProductService(repo, client, zerolog.Nop())

	_, err := svc.Create(context.Background(), &domain.User{ID: "user_1"}, ports.CreateProductInput{Name: "mug", Price: 9.99})
	if err == nil {
		t.Fatalf("expected error when shopify rejects the product")
	}
	if len(repo.products) != 0 {
		t.Fatalf("no local record may exist after a shopify failure")
	}
}

func TestProductService_ListMine(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, &stubShopifyClient{}, zerolog.Nop())

	_, _ = repo.Insert(context.Background(), &domain.Product{ShopifyID: "1", CreatedBy: "user_1"})
	_, _ = repo.Insert(context.Background(), &domain.Product{ShopifyID: "2", CreatedBy: "user_2"})

	mine, err := svc.ListMine(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("ListMine returned error: %v", err)
	}
	if len(mine) != 1 || mine[0].ShopifyID != "1" {
		t.Fatalf("unexpected products: %+v", mine)
	}
}

func TestProductService_ListBestsellers(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, &stubShopifyClient{}, zerolog.Nop())

	sold, _ := repo.Insert(context.Background(), &domain.Product{ShopifyID: "1", CreatedBy: "user_1"})
	_, _ = repo.Insert(context.Background(), &domain.Product{ShopifyID: "2", CreatedBy: "user_1"})
	_ = repo.IncrementSales(context.Background(), sold.ID, 3)

	best, err := svc.ListBestsellers(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("ListBestsellers returned error: %v", err)
	}
	if len(best) != 1 || best[0].ShopifyID != "1" {
		t.Fatalf("unexpected bestsellers: %+v", best)
	}
}
