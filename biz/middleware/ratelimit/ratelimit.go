package ratelimit

import (
	"context"

	"blog_api/biz/config"
	"blog_api/biz/model/errs"
	"blog_api/biz/util/interceptor"
	"blog_api/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

// New limits requests per client IP and path. Paths without a rule share
// the default window.
func New(rdb redis.Scripter, confList []config.RateLimitConf) app.HandlerFunc {
	rules := make(map[string]*interceptor.Interceptor)
	for _, conf := range confList {
		if conf.Path != "" && conf.WindowSeconds > 0 && conf.Limit > 0 {
			rules[conf.Path] = interceptor.NewInterceptor(rdb, conf.WindowSeconds, conf.Limit)
		}
	}

	// 默认规则: 1秒10次
	defaultRule := interceptor.NewInterceptor(rdb, 1, 10)

	return func(ctx context.Context, c *app.RequestContext) {
		path := string(c.Request.URI().Path())

		r, ok := rules[path]
		if !ok {
			r = defaultRule
		}

		key := path + ":" + c.ClientIP()
		allowed, err := r.Allow(ctx, key)
		if err != nil {
			// redis 故障时放行
			hlog.CtxErrorf(ctx, "Rate limit error for key %s: %v", key, err)
			c.Next(ctx)
			return
		}

		if !allowed {
			resp.AbortWithErr(ctx, c, errs.TooManyRequest)
			return
		}

		c.Next(ctx)
	}
}
