package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Denylist invalidates tokens at logout before their expiry. It is
// backed by redis and entirely optional: a nil *Denylist never
// revokes anything, which matches the original stateless logout.
type Denylist struct {
	client *redis.Client
}

func NewDenylist(client *redis.Client) *Denylist {
	if client == nil {
		return nil
	}
	return &Denylist{client: client}
}

func (d *Denylist) Revoke(ctx context.Context, token string, expiry time.Time) error {
	if d == nil {
		return nil
	}
	ttl := time.Until(expiry)
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, denyKey(token), "1", ttl).Err()
}

func (d *Denylist) IsRevoked(ctx context.Context, token string) bool {
	if d == nil {
		return false
	}
	n, err := d.client.Exists(ctx, denyKey(token)).Result()
	return err == nil && n > 0
}

func denyKey(token string) string {
	return "denylist:" + token
}
