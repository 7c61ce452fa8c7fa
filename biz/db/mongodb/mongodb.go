package mongodb

import (
	"context"
	"fmt"
	"time"

	"blog_api/biz/config"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Open connects to mongo and verifies the connection with a ping so that an
// unreachable server fails startup instead of the first request.
func Open(ctx context.Context, conf config.MongoConf) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(conf.URI).
		SetServerSelectionTimeout(seconds(conf.ServerSelectionTimeout, 10)).
		SetTimeout(seconds(conf.SocketTimeout, 45))

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	hlog.CtxInfof(ctx, "mongo connected, database=%s", conf.Database)
	return client, nil
}

func Ping(ctx context.Context, client *mongo.Client) error {
	return client.Ping(ctx, readpref.Primary())
}

func seconds(v, def int) time.Duration {
	if v <= 0 {
		v = def
	}
	return time.Duration(v) * time.Second
}
