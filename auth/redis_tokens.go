package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisTokenStore keeps the token under a single Redis key so several CLI
// sessions or workers on different hosts share one login.
type RedisTokenStore struct {
	client redis.Cmdable
	key    string
}

// NewRedisTokenStore stores the token under key ("" selects DefaultTokenKey).
func NewRedisTokenStore(client redis.Cmdable, key string) *RedisTokenStore {
	if key == "" {
		key = DefaultTokenKey
	}
	return &RedisTokenStore{client: client, key: key}
}

// NewRedisTokenStoreFromURL dials redisURL (redis://[:pass@]host:port/db).
// The caller owns the returned client and should Close it.
func NewRedisTokenStoreFromURL(redisURL, key string) (*RedisTokenStore, *redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}
	rc := redis.NewClient(opts)
	return NewRedisTokenStore(rc, key), rc, nil
}

func (r *RedisTokenStore) Load(ctx context.Context) (string, error) {
	token, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", r.key, err)
	}
	return token, nil
}

func (r *RedisTokenStore) Save(ctx context.Context, token string) error {
	if token == "" {
		return r.Clear(ctx)
	}
	if err := r.client.Set(ctx, r.key, token, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}

func (r *RedisTokenStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", r.key, err)
	}
	return nil
}
