package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationCache — минимальный контракт кэша деклиста токенов.
// Наличие ключа означает, что токен отозван; TTL ключа совпадает с
// expires_at записи, так что просроченные отзывы исчезают сами.
type RevocationCache interface {
	// Contains сообщает, есть ли хэш токена в кэше.
	Contains(ctx context.Context, hash string) (bool, error)
	// Add сохраняет хэш с причиной отзыва и TTL.
	Add(ctx context.Context, hash, reason string, ttl time.Duration) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "rh:revoked:".
func NewRedisCache(redisURL, prefix string) (RevocationCache, error) {
	if prefix == "" {
		prefix = "rh:revoked:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

func (c *redisCache) key(hash string) string { return c.prefix + hash }

func (c *redisCache) Contains(ctx context.Context, hash string) (bool, error) {
	n, err := c.rdb.Exists(ctx, c.key(hash)).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (c *redisCache) Add(ctx context.Context, hash, reason string, ttl time.Duration) error {
	if ttl <= 0 {
		// Токен уже истёк — кэшировать нечего.
		return nil
	}

	return c.rdb.Set(ctx, c.key(hash), reason, ttl).Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }
