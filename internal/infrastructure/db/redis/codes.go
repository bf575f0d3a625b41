package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const codeTTL = 10 * time.Minute

// CodeStore keeps one-time verification codes in Redis with a TTL.
// Key format: verify:<phone>
type CodeStore struct {
	client *redis.Client
}

// NewCodeStore creates a CodeStore wrapping the given Redis client.
func NewCodeStore(client *redis.Client) *CodeStore {
	return &CodeStore{client: client}
}

// Put stores the code, replacing any previous one and restarting the TTL.
func (s *CodeStore) Put(ctx context.Context, key, code string) error {
	if err := s.client.Set(ctx, s.key(key), code, codeTTL).Err(); err != nil {
		return fmt.Errorf("store code: %w", err)
	}
	return nil
}

// Get returns the stored code, or "" when absent or expired.
func (s *CodeStore) Get(ctx context.Context, key string) (string, error) {
	code, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("load code: %w", err)
	}
	return code, nil
}

// Delete consumes the code so it cannot be replayed.
func (s *CodeStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("delete code: %w", err)
	}
	return nil
}

func (s *CodeStore) key(k string) string {
	return "verify:" + k
}
