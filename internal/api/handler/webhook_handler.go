package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopsync/commerce-api/internal/api/metrics"
	"github.com/shopsync/commerce-api/internal/core/domain"
	"github.com/shopsync/commerce-api/internal/core/ports"
	"github.com/shopsync/commerce-api/internal/pkg/shopify"
)

// WebhookHandler receives Shopify order webhooks. These requests bypass the
// auth pipeline: authenticity comes from the HMAC signature alone.
type WebhookHandler struct {
	orders ports.OrderService
	secret string
	log    zerolog.Logger
}

func NewWebhookHandler(orders ports.OrderService, webhookSecret string, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{orders: orders, secret: webhookSecret, log: log}
}

// ShopifySales handles the orders/create webhook. The raw body is read
// before any decoding: the signature was computed over those exact bytes,
// and echo's binder would consume the stream.
//
// @Summary      Shopify order webhook
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-Shopify-Hmac-Sha256  header    string  true  "Base64 HMAC-SHA256 of the raw body"
// @Success      200  {object}  webhookResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /webhooks/shopify-sales [post]
func (h *WebhookHandler) ShopifySales(c echo.Context) error {
	rawBody, err := io.ReadAll(c.Request().Body)
	if err != nil || len(rawBody) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "missing request body")
	}

	header := c.Request().Header.Get(shopify.HmacHeader)
	if !shopify.VerifyWebhook(rawBody, header, h.secret) {
		metrics.WebhookVerificationsTotal.WithLabelValues("invalid").Inc()
		h.log.Warn().Str("path", c.Path()).Msg("webhook signature verification failed")
		return domain.ErrWebhookSignature
	}
	metrics.WebhookVerificationsTotal.WithLabelValues("valid").Inc()

	var order domain.ShopifyOrder
	if err := json.Unmarshal(rawBody, &order); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json payload")
	}

	if len(order.LineItems) == 0 {
		return c.JSON(http.StatusOK, webhookResponse{
			Success: true,
			Message: "no products to process",
		})
	}

	res, err := h.orders.ProcessOrder(c.Request().Context(), &order)
	if err != nil {
		return err
	}
	metrics.WebhookProductsUpdatedTotal.Add(float64(res.Processed))

	return c.JSON(http.StatusOK, webhookResponse{
		Success:           true,
		Message:           "webhook processed successfully",
		ProcessedProducts: res.Processed,
		Skipped:           res.Skipped,
	})
}
