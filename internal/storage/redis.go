package storage

import (
	"context"
	stderrors "errors"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-encounters/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-encounters/internal/redis"
)

// DefaultRedisKey is the key the catalog document is stored under
const DefaultRedisKey = "rpg-encounters:monsters"

// RedisConfig configures a Redis-backed store
type RedisConfig struct {
	Client redisclient.Client
	Key    string
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

type redisStore struct {
	client redisclient.Client
	key    string
}

// NewRedisStore creates a store keeping the document under a single key
func NewRedisStore(cfg *RedisConfig) (Store, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid redis store config")
	}

	key := cfg.Key
	if key == "" {
		key = DefaultRedisKey
	}
	return &redisStore{client: cfg.Client, key: key}, nil
}

func (s *redisStore) Read(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to get %s", s.key)
	}
	return data, nil
}

// Write replaces the key with SET, which redis applies atomically
func (s *redisStore) Write(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to set %s", s.key)
	}
	return nil
}
