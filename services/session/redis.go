package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"turnero/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "sess:"

// RedisStore keeps sessions as JSON values with a rolling TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(tenantID, endUserAddress string) string {
	return sessionKeyPrefix + tenantID + ":" + endUserAddress
}

func (s *RedisStore) Load(ctx context.Context, tenantID, endUserAddress string) (*models.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(tenantID, endUserAddress)).Result()
	if err == redis.Nil {
		return models.NewSession(tenantID, endUserAddress), nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: load %s/%s: %w", tenantID, endUserAddress, err)
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		// A corrupt session restarts the conversation rather than wedging it.
		return models.NewSession(tenantID, endUserAddress), nil
	}
	return &sess, nil
}

func (s *RedisStore) Save(ctx context.Context, sess *models.Session) error {
	sess.UpdatedAt = time.Now()
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}
	key := sessionKey(sess.TenantID, sess.EndUserAddress)
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("session: save %s: %w", key, err)
	}
	return nil
}
