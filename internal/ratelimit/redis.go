package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type RedisLimiter struct {
	rdb *redis.Client
}

func NewRedisLimiter(rdb *redis.Client) *RedisLimiter {
	return &RedisLimiter{rdb: rdb}
}

// NewRedisClient parses REDIS_URL and checks the server answers.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

func (l *RedisLimiter) Allow(ctx context.Context, rule Rule, key string) (Result, error) {
	k := bucketKey(rule, key)

	count, err := l.rdb.Incr(ctx, k).Result()
	if err != nil {
		return Result{}, fmt.Errorf("incr %s: %w", k, err)
	}
	if count == 1 {
		if err := l.rdb.PExpire(ctx, k, rule.Window).Err(); err != nil {
			return Result{}, fmt.Errorf("expire %s: %w", k, err)
		}
	}

	var ttl time.Duration
	if count > int64(rule.Limit) {
		ttl, err = l.rdb.PTTL(ctx, k).Result()
		if err != nil {
			return Result{}, fmt.Errorf("pttl %s: %w", k, err)
		}
		if ttl < 0 {
			// Key lost its expiry; start a fresh window.
			_ = l.rdb.PExpire(ctx, k, rule.Window).Err()
			ttl = rule.Window
		}
	}

	return result(rule, count, ttl), nil
}

var _ Limiter = (*RedisLimiter)(nil)
