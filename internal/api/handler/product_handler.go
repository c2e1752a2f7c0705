package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopsync/commerce-api/internal/core/domain"
	"github.com/shopsync/commerce-api/internal/core/ports"
)

type ProductHandler struct {
	products ports.ProductService
}

func NewProductHandler(products ports.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// Create creates a product in Shopify and mirrors it locally. The route
// carries the role allowlist and canPostProducts; attaching an image
// additionally requires canPostProductsWithImage, checked here because it
// depends on the payload.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  productCreatedResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.Image != "" && !user.Role.Can(domain.CapPostProductsWithImage) {
		return domain.ErrForbidden
	}

	product, err := h.products.Create(c.Request().Context(), user, ports.CreateProductInput{
		Name:  req.Name,
		Price: req.Price,
		Image: req.Image,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, productCreatedResponse{
		ID:        product.ID,
		ShopifyID: product.ShopifyID,
		Message:   "product created successfully",
	})
}

// List returns every product.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Product
// @Failure      401  {object}  errorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.products.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// ListMine returns the caller's products, newest first.
//
// @Summary      List my products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Product
// @Failure      401  {object}  errorResponse
// @Router       /my-products [get]
func (h *ProductHandler) ListMine(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	products, err := h.products.ListMine(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// ListBestsellers returns the caller's products by sales count, best first.
//
// @Summary      List my bestsellers
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Product
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /my-bestsellers [get]
func (h *ProductHandler) ListBestsellers(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	products, err := h.products.ListBestsellers(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}
