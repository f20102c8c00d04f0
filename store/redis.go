package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var _ Store = (*RedisStore)(nil)

// RedisStore is an optional shared backend. All keys are namespaced with a
// prefix so several applications can share one Redis database.
//
// The Store contract is synchronous and non-cancellable, so the client holds
// its own background context instead of threading one through every call.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	ctx    context.Context
}

// NewRedisStore creates a Redis-backed store from the given connection
// options. The prefix may be empty, in which case keys are stored as-is.
func NewRedisStore(redisOpts *redis.Options, prefix string) *RedisStore {
	return &RedisStore{
		rdb:    redis.NewClient(redisOpts),
		prefix: prefix,
		ctx:    context.Background(),
	}
}

// Ping verifies Redis connectivity. Useful for startup health checks.
func (s *RedisStore) Ping() error {
	return s.rdb.Ping(s.ctx).Err()
}

// Close closes the Redis connection. Implements io.Closer.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

func (s *RedisStore) namespaced(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

// Read implements the Store interface.
func (s *RedisStore) Read(key string) (string, bool, error) {
	value, err := s.rdb.Get(s.ctx, s.namespaced(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading key %s: %w", key, err)
	}

	return value, true, nil
}

// Write implements the Store interface. Values never expire.
func (s *RedisStore) Write(key, value string) error {
	err := s.rdb.Set(s.ctx, s.namespaced(key), value, 0).Err()
	if err != nil {
		return fmt.Errorf("writing key %s: %w", key, err)
	}

	return nil
}

// Remove implements the Store interface.
func (s *RedisStore) Remove(key string) error {
	err := s.rdb.Del(s.ctx, s.namespaced(key)).Err()
	if err != nil {
		return fmt.Errorf("removing key %s: %w", key, err)
	}

	return nil
}
