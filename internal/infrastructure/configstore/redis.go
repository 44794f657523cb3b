package configstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/consignly/backend/internal/domain/consignment"
	"github.com/consignly/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

const priorityKey = "attribution:config:priority"

// RedisConfigStore implements consignment.ConfigStore using Redis. The
// allocation priority is shared state read on every attribution, so it lives
// in a store all instances see immediately after a write.
type RedisConfigStore struct {
	client *redis.Client
}

// NewRedisConfigStore creates a new Redis-based config store
func NewRedisConfigStore(cfg config.RedisConfig) (*RedisConfigStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisConfigStore{client: client}, nil
}

// NewRedisConfigStoreWithClient creates a store with an existing Redis client
func NewRedisConfigStoreWithClient(client *redis.Client) *RedisConfigStore {
	return &RedisConfigStore{client: client}
}

// GetPriority returns the configured allocation priority. An unset key means
// the default.
func (s *RedisConfigStore) GetPriority(ctx context.Context) (consignment.AllocationPriority, error) {
	value, err := s.client.Get(ctx, priorityKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return consignment.DefaultPriority, nil
		}
		return "", fmt.Errorf("failed to read allocation priority: %w", err)
	}

	priority := consignment.AllocationPriority(value)
	if !priority.IsValid() {
		return consignment.DefaultPriority, nil
	}
	return priority, nil
}

// SetPriority stores the allocation priority. The key has no TTL; the setting
// persists until changed.
func (s *RedisConfigStore) SetPriority(ctx context.Context, priority consignment.AllocationPriority) error {
	if err := s.client.Set(ctx, priorityKey, priority.String(), 0).Err(); err != nil {
		return fmt.Errorf("failed to store allocation priority: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (s *RedisConfigStore) Close() error {
	return s.client.Close()
}

var _ consignment.ConfigStore = (*RedisConfigStore)(nil)
