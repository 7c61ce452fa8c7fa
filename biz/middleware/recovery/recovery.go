package recovery

import (
	"context"
	"fmt"

	"blog_api/biz/model/errs"
	"blog_api/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// New turns a panic into the regular 500 body.
func New() app.HandlerFunc {
	return recovery.Recovery(recovery.WithRecoveryHandler(handle))
}

func handle(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
	hlog.CtxErrorf(ctx, "panic recovered: %v\n%s", err, stack)
	resp.AbortWithErr(ctx, c, errs.ServerError.SetErr(fmt.Errorf("panic: %v", err)))
}
