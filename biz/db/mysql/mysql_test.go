package mysql

import (
	"testing"

	"blog_api/biz/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	assert.Equal(t,
		"root:pwd@tcp(127.0.0.1:3306)/blog?charset=utf8mb4&parseTime=True&loc=Local",
		dsn(config.MySQLConf{IP: "127.0.0.1", DBName: "blog", Username: "root", Password: "pwd"}),
	)

	assert.Equal(t, "custom", dsn(config.MySQLConf{DSN: "custom", IP: "ignored"}))
}
