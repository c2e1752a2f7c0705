package handler

import (
	"time"

	"github.com/shopsync/commerce-api/internal/core/domain"
)

type registerRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=255"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=128"`
}

type authResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Role != nil {
		resp.Role = u.Role.Name
	}
	return resp
}

type usersResponse struct {
	Users []userResponse `json:"users"`
	Count int            `json:"count"`
}

type createAPIKeyRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// apiKeyCreatedResponse is the only place a raw key ever appears.
type apiKeyCreatedResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Key     string `json:"key"`
	Message string `json:"message"`
}

type apiKeyResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type createProductRequest struct {
	Name  string  `json:"name"  validate:"required,min=1,max=255"`
	Price float64 `json:"price" validate:"required,gt=0"`
	Image string  `json:"image"`
}

type productCreatedResponse struct {
	ID        string `json:"id"`
	ShopifyID string `json:"shopify_id"`
	Message   string `json:"message"`
}

type webhookResponse struct {
	Success           bool     `json:"success"`
	Message           string   `json:"message"`
	ProcessedProducts int      `json:"processed_products"`
	Skipped           []string `json:"skipped,omitempty"`
}
