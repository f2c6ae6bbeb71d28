package dedupe

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const dedupeKeyPrefix = "dedupe:"

// RedisGuard records message IDs with SETNX so the check-and-insert is a
// single atomic round trip.
type RedisGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGuard(client *redis.Client, ttl time.Duration) *RedisGuard {
	return &RedisGuard{client: client, ttl: ttl}
}

func (g *RedisGuard) MarkSeen(ctx context.Context, messageID string) (bool, error) {
	if messageID == "" {
		return false, nil
	}
	inserted, err := g.client.SetNX(ctx, dedupeKeyPrefix+messageID, "1", g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("dedupe: mark %s: %w", messageID, err)
	}
	return !inserted, nil
}
