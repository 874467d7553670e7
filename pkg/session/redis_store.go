package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of go-redis commands RedisStore needs.
// *redis.Client and redis.UniversalClient satisfy it.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore keeps flags as "<prefix><session id>:<flag>" string keys that
// expire after ttl (0 keeps them forever).
type RedisStore struct {
	client RedisClient
	prefix string
	ttl    time.Duration
}

// DefaultRedisPrefix namespaces flag keys.
const DefaultRedisPrefix = "proapp:session:"

func NewRedisStore(client RedisClient, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) key(sessionID, flag string) string {
	return s.prefix + sessionID + ":" + flag
}

func (s *RedisStore) Get(ctx context.Context, sessionID, flag string) (bool, error) {
	if err := checkArgs(sessionID, flag); err != nil {
		return false, err
	}
	val, err := s.client.Get(ctx, s.key(sessionID, flag)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Join(ErrStoreUnavailable, err)
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, nil
	}
	return b, nil
}

func (s *RedisStore) Set(ctx context.Context, sessionID, flag string, value bool) error {
	if err := checkArgs(sessionID, flag); err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(sessionID, flag), strconv.FormatBool(value), s.ttl).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID, flag string) error {
	if err := checkArgs(sessionID, flag); err != nil {
		return err
	}
	if err := s.client.Del(ctx, s.key(sessionID, flag)).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
