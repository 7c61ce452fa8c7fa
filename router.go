package blogapi

import (
	"blog_api/biz/config"
	"blog_api/biz/handler"
	"blog_api/biz/middleware/ratelimit"
	_ "blog_api/docs"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/swagger"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
)

type routes struct {
	users  *handler.UserHandler
	health *handler.HealthHandler
	// nil disables register protection
	redis *redis.Client
}

func register(r *server.Hertz, rt routes) {
	r.GET("/", rt.health.Index)
	r.GET("/health", rt.health.Health)

	userGroup := r.Group("/api/users")
	{
		registerChain := []app.HandlerFunc{}
		if rt.redis != nil {
			registerChain = append(registerChain,
				ratelimit.NewRegisterProtection(rt.redis, config.GetRegisterProtectionConf()))
		}
		userGroup.POST("/register", append(registerChain, rt.users.Register)...)
		userGroup.GET("/:id", rt.users.GetUser)
	}

	r.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler, swagger.URL("/swagger/doc.json")))
}
