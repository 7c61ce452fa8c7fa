package trace

import (
	"context"

	"blog_api/biz/util/id_gen"
	"blog_api/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/app"
)

func New() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		logID := c.Request.Header.Get(trace_info.HeaderLogID)
		if logID == "" {
			logID = id_gen.NewID()
		}
		ctx = trace_info.WithLogId(ctx, logID)
		// 先写header, 避免被中途abort的响应丢掉
		c.Header(trace_info.HeaderLogID, logID)
		c.Next(ctx)
	}
}
