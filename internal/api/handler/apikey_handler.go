package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopsync/commerce-api/internal/core/ports"
)

type APIKeyHandler struct {
	keys ports.APIKeyService
}

func NewAPIKeyHandler(keys ports.APIKeyService) *APIKeyHandler {
	return &APIKeyHandler{keys: keys}
}

// Create mints a new API key. The raw key appears in this response and
// nowhere else, ever.
//
// @Summary      Create an API key
// @Tags         api-keys
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAPIKeyRequest  true  "Key name"
// @Success      201   {object}  apiKeyCreatedResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api-keys [post]
func (h *APIKeyHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createAPIKeyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	key, rawKey, err := h.keys.Create(c.Request().Context(), user.ID, req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, apiKeyCreatedResponse{
		ID:      key.ID,
		Name:    key.Name,
		Key:     rawKey,
		Message: "api key created successfully, save it now: it won't be shown again",
	})
}

// List returns the caller's API keys, digests excluded.
//
// @Summary      List my API keys
// @Tags         api-keys
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   apiKeyResponse
// @Failure      401  {object}  errorResponse
// @Router       /api-keys [get]
func (h *APIKeyHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	keys, err := h.keys.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	resp := make([]apiKeyResponse, 0, len(keys))
	for _, k := range keys {
		resp = append(resp, apiKeyResponse{
			ID:         k.ID,
			Name:       k.Name,
			LastUsedAt: k.LastUsedAt,
			CreatedAt:  k.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete removes one of the caller's API keys.
//
// @Summary      Delete an API key
// @Tags         api-keys
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "API key id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api-keys/{id} [delete]
func (h *APIKeyHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.keys.Delete(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "api key deleted successfully"})
}
