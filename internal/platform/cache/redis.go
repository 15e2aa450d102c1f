package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by JSONStore.Get when the key is absent.
var ErrMiss = errors.New("platform/cache: miss")

// New creates a new Redis client.
func New(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("platform/cache: ping: %w", err)
	}

	return client, nil
}

// JSONStore caches JSON encoded values under a key prefix.
type JSONStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewJSONStore builds a store. A nil client disables caching.
func NewJSONStore(client *redis.Client, prefix string, ttl time.Duration) *JSONStore {
	return &JSONStore{client: client, prefix: prefix, ttl: ttl}
}

// Get decodes the cached value into dst.
func (s *JSONStore) Get(ctx context.Context, key string, dst any) error {
	if s == nil || s.client == nil {
		return ErrMiss
	}
	raw, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return fmt.Errorf("platform/cache: get: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("platform/cache: decode: %w", err)
	}
	return nil
}

// Set encodes and stores value with the store TTL.
func (s *JSONStore) Set(ctx context.Context, key string, value any) error {
	if s == nil || s.client == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("platform/cache: encode: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("platform/cache: set: %w", err)
	}
	return nil
}

// DeletePrefix removes every key beginning with prefix+sub.
func (s *JSONStore) DeletePrefix(ctx context.Context, sub string) (int, error) {
	if s == nil || s.client == nil {
		return 0, nil
	}
	var (
		cursor  uint64
		removed int
	)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.prefix+sub+"*", 200).Result()
		if err != nil {
			return removed, fmt.Errorf("platform/cache: scan: %w", err)
		}
		if len(keys) > 0 {
			n, err := s.client.Del(ctx, keys...).Result()
			if err != nil {
				return removed, fmt.Errorf("platform/cache: del: %w", err)
			}
			removed += int(n)
		}
		if next == 0 {
			return removed, nil
		}
		cursor = next
	}
}
