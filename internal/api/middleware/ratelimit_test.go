package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopsync/commerce-api/internal/core/domain"
	"github.com/shopsync/commerce-api/internal/pkg/ratelimit"
)

type stubLimiter struct {
	res ratelimit.Result
	err error
	got string
}

func (s *stubLimiter) Attempt(_ context.Context, identifier string) (ratelimit.Result, error) {
	s.got = identifier
	return s.res, s.err
}

func newLoginContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestLoginRateLimit_Allowed(t *testing.T) {
	limiter := &stubLimiter{res: ratelimit.Result{Allowed: true}}

	called := false
	handler := LoginRateLimit(limiter, zerolog.Nop())(func(c echo.Context) error {
		called = true
		// The handler must still be able to read the body the middleware
		// consumed.
		body, err := io.ReadAll(c.Request().Body)
		if err != nil || !strings.Contains(string(body), "a@example.com") {
			t.Fatalf("body not restored: %q err=%v", body, err)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(newLoginContext(`{"email":"a@example.com","password":"x"}`)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if limiter.got != "a@example.com" {
		t.Fatalf("unexpected identifier: %s", limiter.got)
	}
}

func TestLoginRateLimit_Denied(t *testing.T) {
	limiter := &stubLimiter{res: ratelimit.Result{RetryAfterSeconds: 4}}

	handler := LoginRateLimit(limiter, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(newLoginContext(`{"email":"a@example.com","password":"x"}`))
	var rle *domain.RateLimitError
	if !errors.As(err, &rle) {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rle.RetryAfterSeconds != 4 {
		t.Fatalf("expected retry after 4s, got %d", rle.RetryAfterSeconds)
	}
}

func TestLoginRateLimit_MissingEmail(t *testing.T) {
	handler := LoginRateLimit(&stubLimiter{}, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	for _, body := range []string{`{}`, `{"password":"x"}`, `not json`} {
		err := handler(newLoginContext(body))
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %v", body, err)
		}
	}
}

// A limiter outage fails open: locking every account out is worse than
// briefly losing throttling.
func TestLoginRateLimit_BackendOutage(t *testing.T) {
	limiter := &stubLimiter{err: errors.New("redis: connection refused")}

	called := false
	handler := LoginRateLimit(limiter, zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(newLoginContext(`{"email":"a@example.com","password":"x"}`)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("attempt must be allowed when the limiter is down")
	}
}
