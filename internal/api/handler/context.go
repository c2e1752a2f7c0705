package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/shopsync/commerce-api/internal/api/middleware"
	"github.com/shopsync/commerce-api/internal/core/domain"
)

// ctxUser extracts the identity injected by the Auth middleware. Its
// presence proves the middleware ran; handlers behind Auth must fail closed
// when it is missing.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.ContextUserKey).(*domain.User)
	if !ok || user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}
