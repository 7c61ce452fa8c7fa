package ratelimit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"blog_api/biz/config"
	"blog_api/biz/model/dto"
	"blog_api/biz/model/errs"
	"blog_api/biz/util/interceptor"
	"blog_api/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

const (
	keyRegisterBlock = "register_block:"
)

// NewRegisterProtection blocks an IP from registering again for a while
// after it registered successfully.
func NewRegisterProtection(rdb redis.Cmdable, conf config.RegisterProtectionConf) app.HandlerFunc {
	blockMinutes := conf.BlockMinutes
	if blockMinutes <= 0 {
		blockMinutes = 10
	}
	blockDuration := time.Duration(blockMinutes) * time.Minute
	blockedErr := errs.RequestBlocked.SetMsg(
		fmt.Sprintf("Registration is temporarily blocked. Please try again after %v minutes", blockMinutes))

	return func(ctx context.Context, c *app.RequestContext) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		key := interceptor.Key(keyRegisterBlock + ip)

		if n, _ := rdb.Exists(ctx, key).Result(); n > 0 {
			resp.AbortWithErr(ctx, c, blockedErr)
			return
		}

		c.Next(ctx)

		var body dto.CommonResp
		if err := json.Unmarshal(c.Response.Body(), &body); err != nil {
			hlog.CtxErrorf(ctx, "Failed to parse response body in RegisterProtection: %v", err)
			return
		}
		if !body.Success {
			return
		}

		if err := rdb.Set(ctx, key, "1", blockDuration).Err(); err != nil {
			hlog.CtxErrorf(ctx, "Failed to set register block key: %v", err)
			return
		}
		hlog.CtxInfof(ctx, "Register protection: IP %s blocked for %v after successful registration", ip, blockDuration)
	}
}
