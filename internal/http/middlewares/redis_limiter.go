package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

// RedisLimiter shares fixed-window counters between service instances.
// Each window has its own key; the TTL only bounds how long stale windows linger.
type RedisLimiter struct {
	client rueidis.Client
	prefix string
	limit  int64
	window time.Duration
	now    func() time.Time
}

func NewRedisLimiter(client rueidis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  int64(limit),
		window: window,
		now:    time.Now,
	}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowKey := r.windowKey(key)

	results := r.client.DoMulti(
		ctx,
		r.client.B().Incr().Key(windowKey).Build(),
		r.client.B().Expire().Key(windowKey).Seconds(int64(r.window/time.Second)).Build(),
	)

	count, err := results[0].AsInt64()
	if err != nil {
		return false, fmt.Errorf("incr %s: %w", windowKey, err)
	}
	if err := results[1].Error(); err != nil {
		return false, fmt.Errorf("expire %s: %w", windowKey, err)
	}

	return count <= r.limit, nil
}

func (r *RedisLimiter) windowKey(key string) string {
	slot := r.now().UnixNano() / int64(r.window)
	return fmt.Sprintf("%s:%s:%d", r.prefix, key, slot)
}
