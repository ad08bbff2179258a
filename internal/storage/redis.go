package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps slots in Redis so several storefront instances can share
// the same session state. Slot values never expire; the storefront owns
// their lifecycle.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Read(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	return data, err
}

func (r *RedisStore) Write(key string, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *RedisStore) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return r.client.Del(ctx, key).Err()
}
