package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrFieldNotFound is returned by HGet when the field does not exist.
var ErrFieldNotFound = errors.New("field not found")

// redisStore implements Store on a Redis connection.
type redisStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedis creates a Store from a redis:// URL. The connection is not
// verified here; call Ping before serving traffic.
func NewRedis(url string, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	return &redisStore{
		client: redis.NewClient(opts),
		logger: logger,
	}, nil
}

func (s *redisStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	res, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w", key, err)
	}
	return res, nil
}

func (s *redisStore) HGet(ctx context.Context, key, field string) (string, error) {
	res, err := s.client.HGet(ctx, key, field).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrFieldNotFound
	}
	if err != nil {
		return "", fmt.Errorf("hget %s %s: %w", key, field, err)
	}
	return res, nil
}

func (s *redisStore) HSet(ctx context.Context, key, field, value string) error {
	if err := s.client.HSet(ctx, key, field, value).Err(); err != nil {
		return fmt.Errorf("hset %s %s: %w", key, field, err)
	}
	return nil
}

func (s *redisStore) HDel(ctx context.Context, key, field string) (int64, error) {
	n, err := s.client.HDel(ctx, key, field).Result()
	if err != nil {
		return 0, fmt.Errorf("hdel %s %s: %w", key, field, err)
	}
	return n, nil
}

func (s *redisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
