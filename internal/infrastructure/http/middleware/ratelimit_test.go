package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/infrastructure/cache"
)

func newLimitedEcho(limit int, window time.Duration) *echo.Echo {
	e := echo.New()
	rl := NewRateLimiter(NewMemoryCounter(cache.NewMemoryStore()), limit, window, nil)
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	}, rl.Limit)
	return e
}

func doRequest(e *echo.Echo, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	e := newLimitedEcho(3, time.Minute)

	for i := 0; i < 3; i++ {
		rec := doRequest(e, "10.0.0.1")
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	e := newLimitedEcho(2, time.Minute)

	doRequest(e, "10.0.0.2")
	doRequest(e, "10.0.0.2")
	rec := doRequest(e, "10.0.0.2")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimiter_SetsHeaders(t *testing.T) {
	e := newLimitedEcho(5, time.Minute)

	rec := doRequest(e, "10.0.0.3")
	assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
}

func TestRateLimiter_IsolatesClients(t *testing.T) {
	e := newLimitedEcho(1, time.Minute)

	require.Equal(t, http.StatusOK, doRequest(e, "10.0.0.4").Code)
	require.Equal(t, http.StatusTooManyRequests, doRequest(e, "10.0.0.4").Code)
	require.Equal(t, http.StatusOK, doRequest(e, "10.0.0.5").Code)
}

func TestMemoryCounter_WindowReset(t *testing.T) {
	store := cache.NewMemoryStore()
	counter := NewMemoryCounter(store)

	n, _, err := counter.Increment(nil, "k", 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, _, err = counter.Increment(nil, "k", 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	time.Sleep(15 * time.Millisecond)

	n, _, err = counter.Increment(nil, "k", 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
