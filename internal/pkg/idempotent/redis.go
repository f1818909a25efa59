package idempotent

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ Service = (*RedisIdempotencyService)(nil)

type RedisIdempotencyService struct {
	client redis.Cmdable
	expiry time.Duration
}

func (c *RedisIdempotencyService) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := c.client.SetNX(ctx, c.getKey(key), "1", c.expiry).Result()
	if err != nil {
		return false, err
	}
	return !ok, nil
}

func (c *RedisIdempotencyService) getKey(key string) string {
	return fmt.Sprintf("goods-return:idempotency:%s", key)
}

// NewRedisIdempotencyService key 在 expiry 之后过期
func NewRedisIdempotencyService(client redis.Cmdable, expiry time.Duration) *RedisIdempotencyService {
	return &RedisIdempotencyService{
		client: client,
		expiry: expiry,
	}
}
