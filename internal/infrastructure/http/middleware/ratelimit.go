package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/jayantelango/ai-driven-meeting-summarizer/errors"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/infrastructure/cache"
)

// Counter tracks request counts per key within a rolling window
type Counter interface {
	// Increment bumps the counter for key and returns the new count and
	// the time at which the current window resets.
	Increment(ctx context.Context, key string, window time.Duration) (int64, time.Time, error)
}

// RedisCounter counts requests in redis so limits hold across instances
type RedisCounter struct {
	client *redis.Client
}

// NewRedisCounter creates a redis-backed counter
func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

// Increment bumps the key and sets the window expiry on first hit
func (r *RedisCounter) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	ttl := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, err
	}
	remaining := ttl.Val()
	if remaining < 0 {
		remaining = window
	}
	return incr.Val(), time.Now().Add(remaining), nil
}

// MemoryCounter counts requests in process memory, for single-instance
// deployments and tests.
type MemoryCounter struct {
	store *cache.MemoryStore
}

// NewMemoryCounter creates an in-memory counter
func NewMemoryCounter(store *cache.MemoryStore) *MemoryCounter {
	return &MemoryCounter{store: store}
}

// Increment bumps the key in the backing store
func (m *MemoryCounter) Increment(_ context.Context, key string, window time.Duration) (int64, time.Time, error) {
	count, resetAt := m.store.Increment(key, window)
	return count, resetAt, nil
}

// RateLimiter throttles requests per client IP
type RateLimiter struct {
	counter Counter
	limit   int
	window  time.Duration
	logger  *zap.Logger
}

// NewRateLimiter creates a rate limiting middleware
func NewRateLimiter(counter Counter, limit int, window time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		counter: counter,
		limit:   limit,
		window:  window,
		logger:  logger,
	}
}

// Limit enforces the per-IP request limit and sets the standard
// X-RateLimit headers on every response.
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := fmt.Sprintf("ratelimit:%s", c.RealIP())

		count, resetAt, err := rl.counter.Increment(c.Request().Context(), key, rl.window)
		if err != nil {
			// Fail open, a broken counter should not take the API down
			if rl.logger != nil {
				rl.logger.Warn("⚠️ Rate limit counter unavailable", zap.Error(err))
			}
			return next(c)
		}

		remaining := int64(rl.limit) - count
		if remaining < 0 {
			remaining = 0
		}

		h := c.Response().Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		h.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if count > int64(rl.limit) {
			retryAfter := time.Until(resetAt)
			if retryAfter < 0 {
				retryAfter = 0
			}
			h.Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
			appErr := errors.ErrRateLimited(retryAfter)
			return c.JSON(appErr.HTTPCode, map[string]interface{}{
				"error": appErr.Message,
				"code":  appErr.Code.String(),
			})
		}
		return next(c)
	}
}
