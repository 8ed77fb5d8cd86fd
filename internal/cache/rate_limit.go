package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter counts hits per key in a fixed window.
type RateLimiter interface {
	// Hit records one request for key and returns the count in the current
	// window and the time until the window resets.
	Hit(ctx context.Context, key string) (count int64, reset time.Duration, err error)
}

// incrExpireScript increments the counter and starts the window on the first hit.
var incrExpireScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {current, redis.call("PTTL", KEYS[1])}
`)

type redisRateLimiter struct {
	rdb    *redis.Client
	window time.Duration
}

func NewRedisRateLimiter(rdb *redis.Client, window time.Duration) RateLimiter {
	return &redisRateLimiter{rdb: rdb, window: window}
}

func (l *redisRateLimiter) Hit(ctx context.Context, key string) (int64, time.Duration, error) {
	res, err := incrExpireScript.Run(ctx, l.rdb, []string{keyPrefix + "rl:" + key}, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		return 0, 0, err
	}
	var reset time.Duration
	if len(res) > 1 && res[1] > 0 {
		reset = time.Duration(res[1]) * time.Millisecond
	}
	return res[0], reset, nil
}
