package handler

import (
	"context"
	"net/http"
	"time"

	"blog_api/biz/model/dto"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db        Pinger
	startedAt time.Time
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, startedAt: time.Now()}
}

// Index 服务信息
//
//	@Tags		system
//	@Summary	服务信息
//	@Produce	json
//	@Success	200	{object}	dto.IndexResp
//	@Router		/ [GET]
func (h *HealthHandler) Index(ctx context.Context, c *app.RequestContext) {
	c.JSON(http.StatusOK, &dto.IndexResp{
		Message: "Blog API is running",
		Status:  "ok",
		Endpoints: map[string]string{
			"register": "POST /api/users/register",
			"user":     "GET /api/users/:id",
			"health":   "GET /health",
		},
	})
}

// Health 健康检查
//
//	@Tags		system
//	@Summary	健康检查
//	@Produce	json
//	@Success	200	{object}	dto.HealthResp
//	@Failure	503	{object}	dto.HealthResp
//	@Router		/health [GET]
func (h *HealthHandler) Health(ctx context.Context, c *app.RequestContext) {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	status, code, database := "healthy", http.StatusOK, "connected"
	if err := h.db.Ping(pingCtx); err != nil {
		hlog.CtxWarnf(ctx, "health ping failed: %v", err)
		status, code, database = "degraded", http.StatusServiceUnavailable, "disconnected"
	}

	c.JSON(code, &dto.HealthResp{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startedAt).Seconds(),
		Database:  database,
	})
}
