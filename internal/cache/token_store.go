package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist remembers revoked token IDs until they would have expired anyway.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type redisTokenDenylist struct {
	rdb *redis.Client
	now func() time.Time
}

func NewRedisTokenDenylist(rdb *redis.Client) TokenDenylist {
	return &redisTokenDenylist{rdb: rdb, now: time.Now}
}

func revokedKey(tokenID string) string {
	return keyPrefix + "revoked:" + tokenID
}

func (d *redisTokenDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(d.now())
	if ttl <= 0 {
		// Already expired; the JWT check rejects it on its own.
		return nil
	}
	return d.rdb.Set(ctx, revokedKey(tokenID), 1, ttl).Err()
}

func (d *redisTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.rdb.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
