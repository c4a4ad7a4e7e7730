package geocode

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache хранит результаты геокодера в Redis
type RedisCache struct {
	redisClient *redis.Client
}

// NewRedisCache создает кэш результатов геокодирования в Redis
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{redisClient: client}
}

// Get возвращает закэшированное значение, nil при промахе
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get geocode result from cache: %w", err)
	}
	return val, nil
}

// Set сохраняет значение в Redis с временем жизни ttl
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.redisClient.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set geocode result in cache: %w", err)
	}
	return nil
}
