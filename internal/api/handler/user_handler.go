package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopsync/commerce-api/internal/core/ports"
)

type UserHandler struct {
	users       ports.UserRepository
	roles       ports.RoleRepository
	authService ports.AuthService
}

func NewUserHandler(users ports.UserRepository, roles ports.RoleRepository, authService ports.AuthService) *UserHandler {
	return &UserHandler{users: users, roles: roles, authService: authService}
}

// Me returns the authenticated user's own profile.
//
// @Summary      Get my user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// List returns all user accounts.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.users.List(ctx)
	if err != nil {
		return err
	}

	resp := usersResponse{Users: make([]userResponse, 0, len(users)), Count: len(users)}
	for i := range users {
		u := users[i]
		if u.RoleID != "" {
			if role, err := h.roles.FindByID(ctx, u.RoleID); err == nil {
				u.Role = role
			}
		}
		resp.Users = append(resp.Users, toUserResponse(&u))
	}
	return c.JSON(http.StatusOK, resp)
}

// ChangePassword rotates the caller's password. Every token issued before
// the change stops working immediately.
//
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /users/change-password [post]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ChangePassword(c.Request().Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "password changed successfully"})
}
