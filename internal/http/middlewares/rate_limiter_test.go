package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_FixedWindow(t *testing.T) {
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewMemoryLimiter(2, time.Minute)
	limiter.now = func() time.Time { return current }

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, _ := limiter.Allow(ctx, "10.0.0.1")
	assert.False(t, allowed, "third request in the window must be rejected")

	allowed, _ = limiter.Allow(ctx, "10.0.0.2")
	assert.True(t, allowed, "other clients have their own budget")

	current = current.Add(time.Minute)
	allowed, _ = limiter.Allow(ctx, "10.0.0.1")
	assert.True(t, allowed, "budget resets with the next window")
}

func TestRedisLimiter_WindowKey(t *testing.T) {
	limiter := NewRedisLimiter(nil, "quicktask:ratelimit", 10, time.Minute)
	limiter.now = func() time.Time { return time.Unix(120, 0) }

	assert.Equal(t, "quicktask:ratelimit:10.0.0.1:2", limiter.windowKey("10.0.0.1"))

	limiter.now = func() time.Time { return time.Unix(179, 0) }
	assert.Equal(t, "quicktask:ratelimit:10.0.0.1:2", limiter.windowKey("10.0.0.1"))

	limiter.now = func() time.Time { return time.Unix(180, 0) }
	assert.Equal(t, "quicktask:ratelimit:10.0.0.1:3", limiter.windowKey("10.0.0.1"))
}

type stubLimiter struct {
	allowed bool
	err     error
}

func (s stubLimiter) Allow(context.Context, string) (bool, error) {
	return s.allowed, s.err
}

func TestRateLimiter_Middleware(t *testing.T) {
	tests := []struct {
		name    string
		limiter Limiter
		want    int
	}{
		{name: "allowed", limiter: stubLimiter{allowed: true}, want: http.StatusOK},
		{name: "rejected", limiter: stubLimiter{allowed: false}, want: http.StatusTooManyRequests},
		{name: "limiter failure lets the request through", limiter: stubLimiter{err: errors.New("connection refused")}, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(RateLimiter(tt.limiter))
			e.GET("/health", func(c echo.Context) error {
				return c.String(http.StatusOK, "ok")
			})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
