package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisStorage struct {
	redisClient *redis.Client
	keyPrefix   string
	ttl         time.Duration
}

// NewRedisStorage stores values under "redlenic:state:<key>"; ttl 0 means no expiration
func NewRedisStorage(redisClient *redis.Client, ttl time.Duration) Storage {
	return &redisStorage{
		redisClient: redisClient,
		keyPrefix:   "redlenic:state:",
		ttl:         ttl,
	}
}

func (s *redisStorage) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.redisClient.Get(ctx, s.keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Nothing saved yet
		}
		return nil, fmt.Errorf("failed to get state %s: %w", key, err)
	}
	return val, nil
}

func (s *redisStorage) Set(ctx context.Context, key string, value []byte) error {
	err := s.redisClient.Set(ctx, s.keyPrefix+key, value, s.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set state %s: %w", key, err)
	}
	return nil
}
