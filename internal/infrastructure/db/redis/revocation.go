package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRevocationKey is the Redis set holding revoked tokens.
const DefaultRevocationKey = "auth:revoked_tokens"

// RevocationStore keeps revoked tokens in a single Redis set shared by every
// instance. Members never expire.
type RevocationStore struct {
	client *redis.Client
	key    string
}

// NewRevocationStore wraps client. An empty key selects DefaultRevocationKey.
func NewRevocationStore(client *redis.Client, key string) *RevocationStore {
	if key == "" {
		key = DefaultRevocationKey
	}
	return &RevocationStore{client: client, key: key}
}

func (s *RevocationStore) Add(ctx context.Context, token string) error {
	if err := s.client.SAdd(ctx, s.key, token).Err(); err != nil {
		return fmt.Errorf("revocation add: %w", err)
	}
	return nil
}

func (s *RevocationStore) Contains(ctx context.Context, token string) (bool, error) {
	ok, err := s.client.SIsMember(ctx, s.key, token).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return ok, nil
}
