package cors

import (
	"context"
	"testing"

	"blog_api/biz/config"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/stretchr/testify/assert"
)

func newEngine(conf config.CORSConf) *route.Engine {
	engine := server.New().Engine
	engine.Use(New(conf))
	engine.GET("/ping", func(ctx context.Context, c *app.RequestContext) {
		c.String(200, "pong")
	})
	return engine
}

func TestCORS(t *testing.T) {
	origin := ut.Header{Key: "Origin", Value: "http://blog.example"}

	t.Run("open by default", func(t *testing.T) {
		w := ut.PerformRequest(newEngine(config.CORSConf{}), "GET", "/ping", nil, origin)
		assert.Equal(t, "http://blog.example", w.Result().Header.Get("Access-Control-Allow-Origin"))
	})

	t.Run("allow list", func(t *testing.T) {
		engine := newEngine(config.CORSConf{AllowOrigins: []string{"http://other.example"}})
		w := ut.PerformRequest(engine, "GET", "/ping", nil, origin)
		assert.Empty(t, w.Result().Header.Get("Access-Control-Allow-Origin"))
	})
}
