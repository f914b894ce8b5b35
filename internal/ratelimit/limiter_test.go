package ratelimit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/transitbook/internal/metrics"
)

func TestClientLimiter_BurstPerClient(t *testing.T) {
	l := NewClientLimiter(RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 2})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i)
	}
	ok, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, ok, "other clients keep their own bucket")
}

func TestClientLimiter_SetClientLimit(t *testing.T) {
	l := NewClientLimiterWithDefaults()
	l.SetClientLimit("partner", 0.001, 1)

	ok, _ := l.Allow(context.Background(), "partner")
	assert.True(t, ok)
	ok, _ = l.Allow(context.Background(), "partner")
	assert.False(t, ok)

	assert.Same(t, l.GetLimiter("anyone"), l.GetLimiter("anyone"))
}

func newRedisLimiter(t *testing.T, limit int) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisLimiter(client, limit, time.Hour), mr
}

func TestRedisLimiter_FixedWindow(t *testing.T) {
	l, mr := newRedisLimiter(t, 3)
	defer l.Close()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i)
	}
	ok, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, ok)

	keys := mr.Keys()
	require.Len(t, keys, 2)
	assert.True(t, mr.TTL(keys[0]) > 0, "window keys expire")
}

func TestRedisLimiter_BackendDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	l := NewRedisLimiter(redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1}), 3, time.Hour)
	defer l.Close()
	mr.Close()

	_, err = l.Allow(context.Background(), "10.0.0.1")
	assert.Error(t, err)
}

func TestNewRedisClient_PingFailure(t *testing.T) {
	_, err := NewRedisClient(RedisConfig{Host: "127.0.0.1", Port: "1"})
	assert.Error(t, err)
}

type brokenLimiter struct{}

func (brokenLimiter) Allow(context.Context, string) (bool, error) {
	return false, errors.New("backend down")
}

func serve(e *echo.Echo) int {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "192.0.2.10:4321"
	e.ServeHTTP(rec, req)
	return rec.Code
}

func TestMiddleware(t *testing.T) {
	m := metrics.NewRegistry()
	e := echo.New()
	e.Use(Middleware(NewClientLimiter(RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1}), m))
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	assert.Equal(t, http.StatusOK, serve(e))
	assert.Equal(t, http.StatusTooManyRequests, serve(e))
}

func TestMiddleware_FailsOpen(t *testing.T) {
	e := echo.New()
	e.Use(Middleware(brokenLimiter{}, nil))
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	assert.Equal(t, http.StatusOK, serve(e))
	assert.Equal(t, http.StatusOK, serve(e))
}
