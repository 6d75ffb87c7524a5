package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Rdb *redis.Client

// ErrNotConfigured is returned when Redis was never initialized.
var ErrNotConfigured = errors.New("redis: not configured")

func InitRedis(redisAddress string, redisUsername string, redisPassword string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})
}

func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if Rdb == nil {
		return ErrNotConfigured
	}
	if err := Rdb.Set(ctx, key, value, expiration).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("redis set failed")
		return err
	}
	return nil
}

// Get returns the string value for key. A missing key is returned as
// redis.Nil so callers can distinguish absence from failure.
func Get(ctx context.Context, key string) (string, error) {
	if Rdb == nil {
		return "", ErrNotConfigured
	}
	val, err := Rdb.Get(ctx, key).Result()
	if err != nil && err != redis.Nil {
		log.Error().Err(err).Str("key", key).Msg("redis get failed")
	}
	return val, err
}

func Delete(ctx context.Context, key string) error {
	if Rdb == nil {
		return ErrNotConfigured
	}
	if err := Rdb.Del(ctx, key).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("redis del failed")
		return err
	}
	return nil
}

// IsNil reports whether err is the missing-key sentinel.
func IsNil(err error) bool { return err == redis.Nil }
