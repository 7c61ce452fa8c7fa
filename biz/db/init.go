package db

import (
	"context"
	"errors"
	"fmt"

	"blog_api/biz/config"
	"blog_api/biz/dal/repo"
	"blog_api/biz/db/mongodb"
	"blog_api/biz/db/mysql"
	"blog_api/biz/db/postgres"
	rediscli "blog_api/biz/db/redis"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Store owns every connection the service opens. It is created once at
// startup and closed on shutdown.
type Store struct {
	Users repo.UserRepository
	// nil when redis is not configured
	Redis *redis.Client

	ping    func(ctx context.Context) error
	closers []func(ctx context.Context) error
}

// NewStore wraps an already opened repository, mainly for tests.
func NewStore(users repo.UserRepository, ping func(ctx context.Context) error) *Store {
	return &Store{Users: users, ping: ping}
}

// NewGormStore wraps a gorm connection whose schema is already migrated.
func NewGormStore(gdb *gorm.DB) *Store {
	return NewStore(repo.NewGormUserRepository(gdb), gormPing(gdb))
}

// Open connects the configured storage driver and the optional redis.
// Any failure is returned after closing what was already opened.
func Open(ctx context.Context, conf config.ServiceConf) (s *Store, err error) {
	s = &Store{}
	defer func() {
		if err != nil {
			_ = s.Close(context.Background())
			s = nil
		}
	}()

	switch conf.Storage.Driver {
	case config.DriverMongo:
		client, err := mongodb.Open(ctx, conf.Mongo)
		if err != nil {
			return s, err
		}
		s.closers = append(s.closers, client.Disconnect)

		users := repo.NewMongoUserRepository(client.Database(conf.Mongo.Database))
		if err := users.EnsureIndexes(ctx); err != nil {
			return s, err
		}
		s.Users = users
		s.ping = func(ctx context.Context) error { return mongodb.Ping(ctx, client) }

	case config.DriverMySQL:
		gdb, err := mysql.Open(conf.MySQL)
		if err != nil {
			return s, err
		}
		s.closers = append(s.closers, gormClose(gdb))
		s.Users = repo.NewGormUserRepository(gdb)
		s.ping = gormPing(gdb)

	case config.DriverPostgres:
		pool, err := postgres.Open(ctx, conf.Postgres)
		if err != nil {
			return s, err
		}
		s.closers = append(s.closers, func(context.Context) error {
			pool.Close()
			return nil
		})
		s.Users = repo.NewPostgresUserRepository(pool)
		s.ping = pool.Ping

	default:
		return s, fmt.Errorf("unknown storage driver %q", conf.Storage.Driver)
	}

	if conf.Redis.Enabled() {
		rdb, err := rediscli.Open(ctx, conf.Redis)
		if err != nil {
			return s, err
		}
		s.Redis = rdb
		s.closers = append(s.closers, func(context.Context) error { return rdb.Close() })
	}

	hlog.CtxInfof(ctx, "store opened, driver=%s redis=%t", conf.Storage.Driver, s.Redis != nil)
	return s, nil
}

// Ping checks the persistence connection.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return errors.New("store not connected")
	}
	return s.ping(ctx)
}

// Close releases connections in reverse order of opening.
func (s *Store) Close(ctx context.Context) error {
	var errList []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			errList = append(errList, err)
		}
	}
	s.closers = nil
	return errors.Join(errList...)
}

func gormPing(gdb *gorm.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := gdb.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

func gormClose(gdb *gorm.DB) func(ctx context.Context) error {
	return func(context.Context) error {
		sqlDB, err := gdb.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
}
