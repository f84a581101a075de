package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces refresh-token keys; the full key is
// refresh_token:<userID>.
const keyPrefix = "refresh_token:"

// RefreshStore implements refresh.Store over a Redis client.
type RefreshStore struct {
	client *redis.Client
}

// NewRefreshStore creates a refresh-token store over an established client.
func NewRefreshStore(client *redis.Client) *RefreshStore {
	return &RefreshStore{client: client}
}

// Replace atomically makes jti the user's only live refresh token. SET
// overwrites the previous value in one operation, so concurrent rotations
// resolve to the last writer's jti.
func (s *RefreshStore) Replace(ctx context.Context, jti, userID string) error {
	return s.client.Set(ctx, keyPrefix+userID, jti, 0).Err()
}

// Exists reports whether {jti, userID} is the user's current refresh record.
func (s *RefreshStore) Exists(ctx context.Context, jti, userID string) (bool, error) {
	current, err := s.client.Get(ctx, keyPrefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return current == jti, nil
}

// DeleteByUser removes the user's refresh record. Idempotent.
func (s *RefreshStore) DeleteByUser(ctx context.Context, userID string) error {
	return s.client.Del(ctx, keyPrefix+userID).Err()
}
