package reservation

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const bookingsKeyPrefix = "bookings:"

// RedisStore backs reservations with a Redis set per tenant. SADD's
// added-count return makes the check-and-insert atomic server-side.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func bookingsKey(tenantID string) string {
	return bookingsKeyPrefix + tenantID
}

func (s *RedisStore) IsAvailable(ctx context.Context, tenantID, slotID string) (bool, error) {
	booked, err := s.client.SIsMember(ctx, bookingsKey(tenantID), slotID).Result()
	if err != nil {
		return false, fmt.Errorf("reservation: membership check for %s/%s: %w", tenantID, slotID, err)
	}
	return !booked, nil
}

func (s *RedisStore) TryReserve(ctx context.Context, tenantID, slotID string) (bool, error) {
	added, err := s.client.SAdd(ctx, bookingsKey(tenantID), slotID).Result()
	if err != nil {
		return false, fmt.Errorf("reservation: reserve %s/%s: %w", tenantID, slotID, err)
	}
	return added > 0, nil
}

func (s *RedisStore) Release(ctx context.Context, tenantID, slotID string) error {
	if err := s.client.SRem(ctx, bookingsKey(tenantID), slotID).Err(); err != nil {
		return fmt.Errorf("reservation: release %s/%s: %w", tenantID, slotID, err)
	}
	return nil
}
