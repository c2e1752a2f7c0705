// Package shopify holds the two integration primitives this service needs
// from Shopify: inbound webhook signature verification and outbound product
// creation through the Admin REST API.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

const apiVersion = "2025-10"

// Client calls the Shopify Admin REST API for a single shop.
type Client struct {
	shopName    string
	accessToken string
	http        *http.Client

	// baseURL overrides the shop URL in tests.
	baseURL string
}

// NewClient returns a Client for the given shop. shopName is the subdomain
// of *.myshopify.com.
func NewClient(shopName, accessToken string) *Client {
	return &Client{
		shopName:    shopName,
		accessToken: accessToken,
		http:        &http.Client{Timeout: 10 * time.Second},
	}
}

type productRequest struct {
	Product struct {
		Title    string `json:"title"`
		Variants []struct {
			Price string `json:"price"`
		} `json:"variants"`
	} `json:"product"`
}

type productResponse struct {
	Product struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	} `json:"product"`
}

// CreateProduct creates a product with a single variant and returns its
// Shopify id as a string.
func (c *Client) CreateProduct(ctx context.Context, name string, price float64) (string, error) {
	var body productRequest
	body.Product.Title = name
	body.Product.Variants = make([]struct {
		Price string `json:"price"`
	}, 1)
	body.Product.Variants[0].Price = strconv.FormatFloat(price, 'f', 2, 64)

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("shopify create product: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.productsURL(), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("shopify create product: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("shopify create product: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("shopify create product: unexpected status %d", resp.StatusCode)
	}

	var out productResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("shopify create product: decode response: %w", err)
	}
	if out.Product.ID == 0 {
		return "", fmt.Errorf("shopify create product: response missing product id")
	}

	return strconv.FormatInt(out.Product.ID, 10), nil
}

func (c *Client) productsURL() string {
	if c.baseURL != "" {
		return c.baseURL + "/admin/api/" + apiVersion + "/products.json"
	}
	return fmt.Sprintf("https://%s.myshopify.com/admin/api/%s/products.json", c.shopName, apiVersion)
}
