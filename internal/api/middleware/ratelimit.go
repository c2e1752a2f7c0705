package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopsync/commerce-api/internal/api/metrics"
	"github.com/shopsync/commerce-api/internal/core/domain"
	"github.com/shopsync/commerce-api/internal/pkg/ratelimit"
)

// LoginRateLimit bounds login attempts per email, not per network origin.
// The body is buffered to extract the identifier and restored so the
// handler can bind it again.
func LoginRateLimit(limiter ratelimit.Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			body, err := io.ReadAll(c.Request().Body)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
			}
			c.Request().Body = io.NopCloser(bytes.NewReader(body))

			var probe struct {
				Email string `json:"email"`
			}
			if err := json.Unmarshal(body, &probe); err != nil || probe.Email == "" {
				return echo.NewHTTPError(http.StatusBadRequest, "email is required")
			}

			res, err := limiter.Attempt(c.Request().Context(), probe.Email)
			if err != nil {
				// A limiter backend outage must not lock every account out.
				log.Warn().Err(err).Msg("rate limiter unavailable, allowing attempt")
				return next(c)
			}
			if !res.Allowed {
				metrics.LoginAttemptsTotal.WithLabelValues("rate_limited").Inc()
				return &domain.RateLimitError{RetryAfterSeconds: res.RetryAfterSeconds}
			}

			return next(c)
		}
	}
}
