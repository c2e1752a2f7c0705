package domain

// ShopifyLineItem is one purchased item inside an order webhook. ProductID
// is nil for custom line items that reference no catalogue product.
type ShopifyLineItem struct {
	ID        int64  `json:"id"`
	ProductID *int64 `json:"product_id"`
	VariantID int64  `json:"variant_id"`
	Quantity  int    `json:"quantity"`
	Title     string `json:"title"`
	Price     string `json:"price"`
}

// ShopifyOrder is the payload of the orders/create webhook, decoded only
// after its HMAC signature has been verified against the raw body.
type ShopifyOrder struct {
	ID            int64             `json:"id"`
	Email         string            `json:"email"`
	CreatedAt     string            `json:"created_at"`
	TotalPrice    string            `json:"total_price"`
	SubtotalPrice string            `json:"subtotal_price"`
	LineItems     []ShopifyLineItem `json:"line_items"`
}
