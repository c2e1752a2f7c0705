package handler

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopsync/commerce-api/internal/core/domain"
	"github.com/shopsync/commerce-api/internal/core/ports"
	"github.com/shopsync/commerce-api/internal/pkg/shopify"
)

type stubOrderService struct {
	res *ports.OrderResult
	err error
	got *domain.ShopifyOrder
}

func (s *stubOrderService) ProcessOrder(_ context.Context, order *domain.ShopifyOrder) (*ports.OrderResult, error) {
	s.got = order
	return s.res, s.err
}

func signBody(body, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func newWebhookContext(body, signature string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/shopify-sales", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if signature != "" {
		req.Header.Set(shopify.HmacHeader, signature)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestWebhookHandler_ShopifySales(t *testing.T) {
	orders := &stubOrderService{res: &ports.OrderResult{Processed: 2, Skipped: []string{"9999999"}}}
	handler := NewWebhookHandler(orders, "whsecret", zerolog.Nop())

	body := `{"id":42,"line_items":[{"product_id":7000001,"quantity":1},{"product_id":7000002,"quantity":3},{"product_id":9999999,"quantity":1}]}`
	c, rec := newWebhookContext(body, signBody(body, "whsecret"))

	if err := handler.ShopifySales(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if orders.got == nil || orders.got.ID != 42 {
		t.Fatalf("order not passed to service: %+v", orders.got)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["processed_products"] != float64(2) {
		t.Fatalf("unexpected processed count: %v", resp["processed_products"])
	}
}

func TestWebhookHandler_InvalidSignature(t *testing.T) {
	orders := &stubOrderService{res: &ports.OrderResult{}}
	handler := NewWebhookHandler(orders, "whsecret", zerolog.Nop())

	body := `{"id":42,"line_items":[{"product_id":7000001,"quantity":1}]}`
	c, _ := newWebhookContext(body, signBody(body, "wrong-secret"))

	if err := handler.ShopifySales(c); !errors.Is(err, domain.ErrWebhookSignature) {
		t.Fatalf("expected ErrWebhookSignature, got %v", err)
	}
	if orders.got != nil {
		t.Fatalf("order must not be processed on a bad signature")
	}
}

func TestWebhookHandler_MissingSignature(t *testing.T) {
	handler := NewWebhookHandler(&stubOrderService{}, "whsecret", zerolog.Nop())

	body := `{"id":42}`
	c, _ := newWebhookContext(body, "")

	if err := handler.ShopifySales(c); !errors.Is(err, domain.ErrWebhookSignature) {
		t.Fatalf("expected ErrWebhookSignature, got %v", err)
	}
}

// The signature covers the exact raw bytes; a payload altered after signing
// must be rejected even though it is valid JSON.
func TestWebhookHandler_TamperedPayload(t *testing.T) {
	handler := NewWebhookHandler(&stubOrderService{}, "whsecret", zerolog.Nop())

	signed := `{"id":42,"total_price":"10.00"}`
	tampered := `{"id":42,"total_price":"99.00"}`
	c, _ := newWebhookContext(tampered, signBody(signed, "whsecret"))

	if err := handler.ShopifySales(c); !errors.Is(err, domain.ErrWebhookSignature) {
		t.Fatalf("expected ErrWebhookSignature, got %v", err)
	}
}

func TestWebhookHandler_InvalidJSON(t *testing.T) {
	handler := NewWebhookHandler(&stubOrderService{}, "whsecret", zerolog.Nop())

	body := `not json at all`
	c, _ := newWebhookContext(body, signBody(body, "whsecret"))

	err := handler.ShopifySales(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestWebhookHandler_EmptyOrder(t *testing.T) {
	orders := &stubOrderService{res: &ports.OrderResult{}}
	handler := NewWebhookHandler(orders, "whsecret", zerolog.Nop())

	body := `{"id":42,"line_items":[]}`
	c, rec := newWebhookContext(body, signBody(body, "whsecret"))

	if err := handler.ShopifySales(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if orders.got != nil {
		t.Fatalf("empty orders must not reach the service")
	}
}
