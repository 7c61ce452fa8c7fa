package middleware

import (
	"blog_api/biz/config"
	"blog_api/biz/middleware/accesslog"
	"blog_api/biz/middleware/cors"
	"blog_api/biz/middleware/ratelimit"
	"blog_api/biz/middleware/recovery"
	"blog_api/biz/middleware/trace"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/redis/go-redis/v9"
)

// Suite returns the global middleware chain. Rate limiting needs redis and
// is left out when rdb is nil.
func Suite(rdb *redis.Client) []app.HandlerFunc {
	suite := []app.HandlerFunc{
		recovery.New(),                 // panic handler
		trace.New(),                    // 链路ID
		accesslog.New(),                // 接口日志
		cors.New(config.GetCORSConf()), // 跨域请求
	}
	if rdb != nil {
		suite = append(suite, ratelimit.New(rdb, config.GetRateLimitConf())) // 限流
	}
	return suite
}
