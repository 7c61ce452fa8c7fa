package interceptor

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "rate_limit:"

// allowScript ensures atomicity of INCR + EXPIRE and heals keys left without TTL.
// KEYS[1]: The rate limit key
// ARGV[1]: Window duration in seconds
// ARGV[2]: Max limit count
var allowScript = redis.NewScript(`
local key = KEYS[1]
local window = ARGV[1]
local limit = tonumber(ARGV[2])

local current = redis.call("INCR", key)

if current == 1 then
    redis.call("EXPIRE", key, window)
else
    if redis.call("TTL", key) == -1 then
        redis.call("EXPIRE", key, window)
    end
end

if current > limit then
    return 0
end
return 1
`)

// Interceptor is a fixed window counter stored in redis.
type Interceptor struct {
	rdb    redis.Scripter
	window time.Duration
	limit  int64
}

func NewInterceptor(rdb redis.Scripter, windowSeconds int, limit int64) *Interceptor {
	return &Interceptor{
		rdb:    rdb,
		window: time.Duration(windowSeconds) * time.Second,
		limit:  limit,
	}
}

// Key returns the redis key used for the given logical key.
func Key(key string) string {
	return keyPrefix + key
}

func (i *Interceptor) Allow(ctx context.Context, key string) (bool, error) {
	allowed, err := allowScript.Run(ctx, i.rdb, []string{Key(key)}, int(i.window.Seconds()), i.limit).Int64()
	if err != nil {
		return false, err
	}
	return allowed == 1, nil
}
