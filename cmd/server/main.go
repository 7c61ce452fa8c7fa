package main

import (
	"context"
	"flag"

	blogapi "blog_api"
	"blog_api/biz/config"
	"blog_api/biz/db"
	"blog_api/biz/util/logger"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

//	@title			blog_api
//	@version		1.0
//	@description	User registration service.
//	@BasePath		/
func main() {
	confPath := flag.String("conf", "conf/deploy.yml", "config file path")
	flag.Parse()

	config.Init(*confPath)
	logger.Init()

	ctx := context.Background()
	store, err := db.Open(ctx, config.Get())
	if err != nil {
		hlog.Fatalf("open store: %v", err)
	}

	h := blogapi.NewEngine(store)
	h.OnShutdown = append(h.OnShutdown, func(ctx context.Context) {
		if err := store.Close(ctx); err != nil {
			hlog.CtxErrorf(ctx, "close store: %v", err)
			return
		}
		hlog.CtxInfof(ctx, "store closed")
	})

	hlog.Infof("server listening on %s, env=%s", config.GetServerConf().Addr(), config.GetEnv())
	h.Spin()
}
