package db

import (
	"context"
	"errors"
	"testing"

	"blog_api/biz/config"
	"blog_api/biz/model/storage"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewGormStore(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&storage.UserRecord{}))

	s := NewGormStore(gdb)
	assert.NotNil(t, s.Users)
	assert.Nil(t, s.Redis)
	assert.NoError(t, s.Ping(context.Background()))
	assert.NoError(t, s.Close(context.Background()))
}

func TestStore_PingNotConnected(t *testing.T) {
	s := NewStore(nil, nil)
	assert.Error(t, s.Ping(context.Background()))
}

func TestStore_CloseOrder(t *testing.T) {
	var order []int
	s := &Store{}
	for i := 0; i < 3; i++ {
		i := i
		s.closers = append(s.closers, func(context.Context) error {
			order = append(order, i)
			if i == 1 {
				return errors.New("boom")
			}
			return nil
		})
	}

	err := s.Close(context.Background())
	assert.ErrorContains(t, err, "boom")
	assert.Equal(t, []int{2, 1, 0}, order)
	assert.NoError(t, s.Close(context.Background()))
}

func TestOpen_UnknownDriver(t *testing.T) {
	s, err := Open(context.Background(), config.ServiceConf{Storage: config.StorageConf{Driver: "cassandra"}})
	assert.Nil(t, s)
	assert.Error(t, err)
}
