package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shopsync/commerce-api/internal/api/middleware"
	"github.com/shopsync/commerce-api/internal/core/domain"
	"github.com/shopsync/commerce-api/internal/core/ports"
)

type stubProductService struct {
	createFn func(ctx context.Context, user *domain.User, in ports.CreateProductInput) (*domain.Product, error)
	all      []domain.Product
	mine     []domain.Product
	best     []domain.Product
}

func (s *stubProductService) Create(ctx context.Context, user *domain.User, in ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, user, in)
}

func (s *stubProductService) ListAll(_ context.Context) ([]domain.Product, error) {
	return s.all, nil
}

func (s *stubProductService) ListMine(_ context.Context, _ string) ([]domain.Product, error) {
	return s.mine, nil
}

func (s *stubProductService) ListBestsellers(_ context.Context, _ string) ([]domain.Product, error) {
	return s.best, nil
}

func testRole(t *testing.T, name string) *domain.Role {
	t.Helper()
	for _, r := range domain.DefaultRoles() {
		if r.Name == name {
			role := r
			return &role
		}
	}
	t.Fatalf("unknown role %s", name)
	return nil
}

func newProductContext(t *testing.T, body, roleName string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := newJSONContext(http.MethodPost, "/products", body)
	c.Set(middleware.ContextUserKey, &domain.User{ID: "user_1", Role: testRole(t, roleName)})
	return c, rec
}

func TestProductHandler_Create(t *testing.T) {
	stub := &stubProductService{
		createFn: func(_ context.Context, user *domain.User, in ports.CreateProductInput) (*domain.Product, error) {
			if user.ID != "user_1" || in.Name != "mug" || in.Price != 9.99 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Product{ID: "prod_1", ShopifyID: "7000001", CreatedBy: user.ID}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newProductContext(t, `{"name":"mug","price":9.99}`, domain.RoleAdmin)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "7000001") {
		t.Fatalf("shopify id missing from response: %s", rec.Body.String())
	}
}

// PREMIUM may create products but not attach images; only ADMIN carries
// canPostProductsWithImage.
func TestProductHandler_Create_ImageCapability(t *testing.T) {
	created := false
	stub := &stubProductService{
		createFn: func(_ context.Context, user *domain.User, in ports.CreateProductInput) (*domain.Product, error) {
			created = true
			return &domain.Product{ID: "prod_1", ShopifyID: "7000001", Image: in.Image}, nil
		},
	}
	handler := NewProductHandler(stub)

	body := `{"name":"mug","price":9.99,"image":"https://cdn.example.com/mug.png"}`

	c, _ := newProductContext(t, body, domain.RolePremium)
	if err := handler.Create(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for premium with image, got %v", err)
	}
	if created {
		t.Fatalf("product must not be created when the image capability is missing")
	}

	c, rec := newProductContext(t, body, domain.RoleAdmin)
	if err := handler.Create(c); err != nil {
		t.Fatalf("admin with image should pass: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestProductHandler_Create_Validation(t *testing.T) {
	stub := &stubProductService{
		createFn: func(_ context.Context, _ *domain.User, _ ports.CreateProductInput) (*domain.Product, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	for _, body := range []string{
		`{"price":9.99}`,
		`{"name":"mug"}`,
		`{"name":"mug","price":0}`,
		`{"name":"mug","price":-1}`,
	} {
		c, _ := newProductContext(t, body, domain.RoleAdmin)
		err := handler.Create(c)
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %v", body, err)
		}
	}
}

func TestProductHandler_Create_NoIdentity(t *testing.T) {
	handler := NewProductHandler(&stubProductService{})

	c, _ := newJSONContext(http.MethodPost, "/products", `{"name":"mug","price":9.99}`)
	if err := handler.Create(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestProductHandler_ListMine(t *testing.T) {
	stub := &stubProductService{
		mine: []domain.Product{{ID: "prod_1", ShopifyID: "1", CreatedBy: "user_1"}},
	}
	handler := NewProductHandler(stub)

	c, rec := newJSONContext(http.MethodGet, "/my-products", "")
	c.Set(middleware.ContextUserKey, &domain.User{ID: "user_1", Role: testRole(t, domain.RoleUser)})

	if err := handler.ListMine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "prod_1") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
