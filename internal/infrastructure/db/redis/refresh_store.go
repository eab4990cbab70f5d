package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RefreshStore is the refresh-token allowlist backed by Redis.
// Key format: refresh:<jti> → account id, expiring with the token.
type RefreshStore struct {
	client *redis.Client
}

// NewRefreshStore creates a RefreshStore wrapping the given Redis client.
func NewRefreshStore(client *redis.Client) *RefreshStore {
	return &RefreshStore{client: client}
}

// Allow records the JTI as valid for ttl (the refresh token lifetime).
func (s *RefreshStore) Allow(ctx context.Context, jti string, accountID int64, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(jti), strconv.FormatInt(accountID, 10), ttl).Err()
}

// IsAllowed reports whether the JTI is still on the allowlist.
func (s *RefreshStore) IsAllowed(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("refresh allowlist check: %w", err)
	}
	return n > 0, nil
}

// Revoke drops the JTI, invalidating the refresh token immediately.
func (s *RefreshStore) Revoke(ctx context.Context, jti string) error {
	return s.client.Del(ctx, s.key(jti)).Err()
}

func (s *RefreshStore) key(jti string) string {
	return "refresh:" + jti
}
