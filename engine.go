package blogapi

import (
	"time"

	"blog_api/biz/config"
	"blog_api/biz/db"
	"blog_api/biz/handler"
	"blog_api/biz/middleware"
	"blog_api/biz/service/user"
	"blog_api/biz/util/encode"
	"blog_api/biz/util/validate"

	"github.com/cloudwego/hertz/pkg/app/server"
	hertzconfig "github.com/cloudwego/hertz/pkg/common/config"
)

const maxRequestBodySize = 10 << 20

// NewEngine builds the http server on top of an opened store. The caller owns
// the store and closes it on shutdown.
func NewEngine(store *db.Store, opts ...hertzconfig.Option) *server.Hertz {
	serverConf := config.GetServerConf()
	h := server.New(append([]hertzconfig.Option{
		server.WithHostPorts(serverConf.Addr()),
		server.WithMaxRequestBodySize(maxRequestBodySize),
		server.WithExitWaitTime(time.Duration(serverConf.ExitWaitTime) * time.Second),
	}, opts...)...)

	h.Use(middleware.Suite(store.Redis)...)

	pwdConf := config.GetPasswordConf()
	svc := user.New(store.Users, encode.NewBcryptHasher(pwdConf.Cost), validate.New(pwdConf.MinLength))

	register(h, routes{
		users:  handler.NewUserHandler(svc),
		health: handler.NewHealthHandler(store),
		redis:  store.Redis,
	})
	return h
}
