package twoiplib

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisCacheKeyPrefix = "twoip:"
	redisCacheOpTimeout = time.Second
)

type redisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func (r redisCache) Add(key string, value []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), redisCacheOpTimeout)
	defer cancel()

	r.client.Set(ctx, redisCacheKeyPrefix+key, value, r.ttl)
}

func (r redisCache) Get(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisCacheOpTimeout)
	defer cancel()

	value, err := r.client.Get(ctx, redisCacheKeyPrefix+key).Bytes()
	if err != nil {
		return nil, false
	}

	return value, true
}

// NewRedisCache returns a Cache backed by a redis instance so several
// processes can share lookup records. Records expire after the given
// ttl, zero ttl keeps them forever.
func NewRedisCache(client redis.UniversalClient, ttl time.Duration) Cache {
	return redisCache{client: client, ttl: ttl}
}
