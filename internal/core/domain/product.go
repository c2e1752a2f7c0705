package domain

import "time"

// Product mirrors a product created in Shopify. SalesCount is incremented
// by inbound order webhooks.
type Product struct {
	ID         string    `json:"id"`
	ShopifyID  string    `json:"shopify_id"`
	CreatedBy  string    `json:"created_by"`
	SalesCount int       `json:"sales_count"`
	Image      string    `json:"image,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
