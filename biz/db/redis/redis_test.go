package redis

import (
	"context"
	"strconv"
	"testing"

	"blog_api/biz/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
)

func TestOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	port, _ := strconv.Atoi(mr.Port())

	rdb, err := Open(context.Background(), config.RedisConf{IP: mr.Host(), Port: port})
	assert.NoError(t, err)
	defer rdb.Close()

	assert.NoError(t, rdb.Set(context.Background(), "k", "v", 0).Err())
	v, _ := mr.Get("k")
	assert.Equal(t, "v", v)
}

func TestOpen_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	port, _ := strconv.Atoi(mr.Port())
	mr.Close()

	_, err := Open(context.Background(), config.RedisConf{IP: "127.0.0.1", Port: port})
	assert.Error(t, err)
}
