package db

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

const SessionKeyPrefix = "consultant:session:"

// ConnectRedis accepts either a redis:// URL or a bare host:port.
func ConnectRedis(redisURL string) error {
	if redisURL == "" {
		return errors.New("redis url is empty")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		slog.Warn("redis url not parseable, using as address", "url", redisURL)
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(Ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}
