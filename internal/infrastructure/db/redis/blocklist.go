package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Blocklist stores revoked session token IDs backed by Redis.
// Key format: revoked:<token_id>, expiring at the token's natural expiry so
// the set never outgrows the number of live revoked sessions.
type Blocklist struct {
	client *redis.Client
}

// NewBlocklist creates a Blocklist wrapping the given Redis client.
func NewBlocklist(client *redis.Client) *Blocklist {
	return &Blocklist{client: client}
}

// Revoke marks the token ID as revoked until the token would expire anyway.
// Tokens already past expiry need no entry.
func (b *Blocklist) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return b.client.Set(ctx, b.key(tokenID), "1", ttl).Err()
}

// IsRevoked reports whether the token ID has been revoked.
func (b *Blocklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := b.client.Exists(ctx, b.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("blocklist check: %w", err)
	}
	return n > 0, nil
}

func (b *Blocklist) key(tokenID string) string {
	return "revoked:" + tokenID
}
