package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/shopsync/commerce-api/internal/core/domain"
)

// RequireRoles enforces a route-level role allowlist. Fail closed: a
// missing identity is unauthenticated, a missing role or a role outside the
// set is forbidden. Routes without a RequireRoles middleware skip this
// check entirely.
func RequireRoles(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextUserKey).(*domain.User)
			if !ok || user == nil {
				return domain.ErrUnauthenticated
			}
			if user.Role == nil {
				return domain.ErrForbidden
			}
			if _, ok := allowed[user.Role.Name]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// RequireCapability enforces a single action-level capability flag on the
// identity's role. A missing role record means all capabilities are false.
func RequireCapability(cap domain.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextUserKey).(*domain.User)
			if !ok || user == nil {
				return domain.ErrUnauthenticated
			}
			if !user.Role.Can(cap) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
