package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisTokenStore keeps live session ids in Redis so every server
// instance agrees on which sessions are still open. Sessions do not
// survive their TTL; they are not meant to.
type RedisTokenStore struct {
	Redis *redis.Client
	Ctx   context.Context
}

// NewRedisTokenStore wraps the shared Redis client.
func NewRedisTokenStore(rdb *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{Redis: rdb, Ctx: context.Background()}
}

func sessionKey(jti string) string {
	return "session:" + jti
}

func (s *RedisTokenStore) Put(jti string, ttl time.Duration) error {
	return s.Redis.Set(s.Ctx, sessionKey(jti), "1", ttl).Err()
}

func (s *RedisTokenStore) Exists(jti string) (bool, error) {
	_, err := s.Redis.Get(s.Ctx, sessionKey(jti)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *RedisTokenStore) Delete(jti string) error {
	return s.Redis.Del(s.Ctx, sessionKey(jti)).Err()
}
