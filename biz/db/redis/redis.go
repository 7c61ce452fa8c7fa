package redis

import (
	"context"
	"fmt"

	"blog_api/biz/config"

	"github.com/redis/go-redis/v9"
)

func NewClient(conf config.RedisConf) *redis.Client {
	port := conf.Port
	if port == 0 {
		port = 6379
	}
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", conf.IP, port),
		Password: conf.Password,
		DB:       conf.DB,
	})
}

// Open creates the client and fails when the server cannot be reached.
func Open(ctx context.Context, conf config.RedisConf) (*redis.Client, error) {
	rdb := NewClient(conf)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}
